package driving

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleAt(speed float64, at time.Time) Sample {
	return Sample{
		Latitude:       42.37,
		Longitude:      -87.90,
		Accuracy:       10,
		Speed:          speed,
		AudioCompleted: true,
		Timestamp:      at,
	}
}

// feed pushes a speed sequence through the tracker, resolving any proximity
// request against the given match, and returns how many alerts fired.
func feed(t *Tracker, start time.Time, speeds []float64, match *Match) int {
	alerts := 0
	for i, speed := range speeds {
		at := start.Add(time.Duration(i) * 5 * time.Second)
		outcome := t.Advance(sampleAt(speed, at))
		if outcome.NeedsProximity {
			if t.Resolve(sampleAt(speed, at), match) {
				alerts++
			}
		}
	}
	return alerts
}

func TestArmDisarmCycle(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	venue := &Match{Name: "Burger Palace", Distance: 80}

	// Driving at 18 km/h arms on the first sample.
	feed(tracker, start, []float64{18, 18}, nil)
	assert.Equal(t, StateArmed, tracker.State)

	// Slowing to 8 km/h for two samples near a venue fires the alert.
	alerts := feed(tracker, start.Add(time.Minute), []float64{8, 8}, venue)
	assert.Equal(t, 1, alerts)
	assert.Equal(t, StateAlert, tracker.State)

	// Three fast samples reset the tracker to standby.
	feed(tracker, start.Add(2*time.Minute), []float64{30, 30, 30}, nil)
	assert.Equal(t, StateStandby, tracker.State)
}

func TestAlertRequiresArming(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	venue := &Match{Name: "Burger Palace", Distance: 50}

	// Crawling past a venue without ever arming never alerts.
	alerts := feed(tracker, start, []float64{5, 3, 0, 2, 4, 1}, venue)
	assert.Equal(t, 0, alerts)
	assert.Equal(t, StateStandby, tracker.State)
}

func TestSlowSamplesMustBeConsecutive(t *testing.T) {
	cfg := DefaultConfig()
	tracker := NewTracker(cfg)
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	venue := &Match{Name: "Burger Palace", Distance: 50}

	feed(tracker, start, []float64{18}, nil)

	// One slow sample, one mid-speed sample, one slow sample: the counter
	// restarts, so no proximity check on the third sample.
	alerts := feed(tracker, start.Add(time.Minute), []float64{8, 18, 8}, venue)
	assert.Equal(t, 0, alerts)
}

func TestSameVenueCooldown(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	venue := &Match{Name: "Burger Palace", Distance: 50}

	feed(tracker, start, []float64{18}, nil)
	alerts := feed(tracker, start.Add(10*time.Second), []float64{8, 8}, venue)
	assert.Equal(t, 1, alerts)

	// Same venue two minutes later: inside the five minute window.
	alerts = feed(tracker, start.Add(2*time.Minute), []float64{8, 8}, venue)
	assert.Equal(t, 0, alerts)

	// Same venue six minutes later: window elapsed.
	alerts = feed(tracker, start.Add(6*time.Minute), []float64{8, 8}, venue)
	assert.Equal(t, 1, alerts)
}

func TestDifferentVenueUsesShortCooldown(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	feed(tracker, start, []float64{18}, nil)
	alerts := feed(tracker, start.Add(10*time.Second), []float64{8, 8}, &Match{Name: "Burger Palace", Distance: 50})
	assert.Equal(t, 1, alerts)

	// A different venue 30 seconds later is still inside the one minute
	// general cooldown.
	alerts = feed(tracker, start.Add(30*time.Second), []float64{8, 8}, &Match{Name: "Taco Corner", Distance: 60})
	assert.Equal(t, 0, alerts)

	// After the minute it fires.
	alerts = feed(tracker, start.Add(2*time.Minute), []float64{8, 8}, &Match{Name: "Taco Corner", Distance: 60})
	assert.Equal(t, 1, alerts)
}

func TestBypassVenueIgnoresCooldown(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	venue := &Match{Name: "Raising Cane's Chicken Fingers", Distance: 40}

	feed(tracker, start, []float64{18}, nil)

	alerts := feed(tracker, start.Add(10*time.Second), []float64{8, 8}, venue)
	alerts += feed(tracker, start.Add(20*time.Second), []float64{8, 8}, venue)
	alerts += feed(tracker, start.Add(30*time.Second), []float64{8, 8}, venue)
	assert.Equal(t, 3, alerts)
}

func TestResetClearsResidualAlertState(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	venue := &Match{Name: "Burger Palace", Distance: 50}

	feed(tracker, start, []float64{18}, nil)
	alerts := feed(tracker, start.Add(10*time.Second), []float64{8, 8}, venue)
	assert.Equal(t, 1, alerts)

	// Drive away fast enough to reset.
	feed(tracker, start.Add(time.Minute), []float64{30, 30}, nil)
	assert.Equal(t, StateStandby, tracker.State)

	// Re-arm and return to the same venue well inside the old cooldown
	// window: the reset dropped the alert record, so it fires again.
	feed(tracker, start.Add(90*time.Second), []float64{18}, nil)
	alerts = feed(tracker, start.Add(2*time.Minute), []float64{8, 8}, venue)
	assert.Equal(t, 1, alerts)
}

func TestResetRequiresConsecutiveFastSamples(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	feed(tracker, start, []float64{18}, nil)
	assert.Equal(t, StateArmed, tracker.State)

	// A slow sample between the fast ones restarts the reset counter.
	feed(tracker, start.Add(time.Minute), []float64{30, 18, 30}, nil)
	assert.Equal(t, StateArmed, tracker.State)

	feed(tracker, start.Add(2*time.Minute), []float64{30, 30}, nil)
	assert.Equal(t, StateStandby, tracker.State)
}

func TestPoorAccuracyDiscarded(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sample := sampleAt(18, at)
	sample.Accuracy = 35

	outcome := tracker.Advance(sample)
	assert.True(t, outcome.Discarded)
	assert.Equal(t, "Poor GPS accuracy", outcome.DiscardReason)
	assert.Equal(t, StateStandby, tracker.State)
}

func TestAudioInProgressDiscarded(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sample := sampleAt(18, at)
	sample.AudioCompleted = false

	outcome := tracker.Advance(sample)
	assert.True(t, outcome.Discarded)
	assert.Equal(t, StateStandby, tracker.State)
}

func TestParkedBypassesSpeedGate(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tracker.Advance(sampleAt(18, at))
	assert.Equal(t, StateArmed, tracker.State)

	// One parked sample requests a check without waiting for two slow
	// samples.
	parked := sampleAt(2, at.Add(time.Minute))
	parked.IsParked = true
	outcome := tracker.Advance(parked)
	assert.True(t, outcome.NeedsProximity)

	fired := tracker.Resolve(parked, &Match{Name: "Burger Palace", Distance: 30})
	assert.True(t, fired)
}

func TestParkedInStandbyDoesNotAlert(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	parked := sampleAt(0, at)
	parked.IsParked = true
	outcome := tracker.Advance(parked)
	assert.False(t, outcome.NeedsProximity)
	assert.Equal(t, StateStandby, tracker.State)
}

func TestMatchOutsideRadiusDoesNotAlert(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	alerts := feed(tracker, start, []float64{18}, nil)
	alerts += feed(tracker, start.Add(time.Minute), []float64{8, 8}, &Match{Name: "Burger Palace", Distance: 400})
	assert.Equal(t, 0, alerts)
	assert.Equal(t, StateArmed, tracker.State)
}

func TestCooldownUsesSampleTimestamps(t *testing.T) {
	tracker := NewTracker(DefaultConfig())
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	venue := &Match{Name: "Burger Palace", Distance: 50}

	feed(tracker, start, []float64{18}, nil)
	alerts := feed(tracker, start.Add(10*time.Second), []float64{8, 8}, venue)
	assert.Equal(t, 1, alerts)

	// Samples captured six minutes later pass the cooldown even if they
	// were all processed in one burst.
	alerts = feed(tracker, start.Add(6*time.Minute), []float64{8, 8}, venue)
	assert.Equal(t, 1, alerts)
}

func TestRegistryIsolatesUsersAndDevices(t *testing.T) {
	registry := NewRegistry(DefaultConfig())

	a := registry.Get(1, "phone")
	b := registry.Get(1, "watch")
	c := registry.Get(2, "phone")

	assert.NotSame(t, a, b)
	assert.NotSame(t, a, c)
	assert.Same(t, a, registry.Get(1, "phone"))

	registry.Drop(1, "phone")
	assert.NotSame(t, a, registry.Get(1, "phone"))
}
