package driving

import (
	"strings"
	"sync"
	"time"
)

type State string

const (
	StateStandby  State = "standby"
	StateArmed    State = "armed"
	StateChecking State = "checking"
	StateAlert    State = "alert"
)

// Sample is one geolocation reading from the client. Speed is km/h,
// accuracy is meters. Timestamp is when the client captured the fix, not
// when the server processed it.
type Sample struct {
	Latitude       float64
	Longitude      float64
	Accuracy       float64
	Speed          float64
	IsParked       bool
	AudioCompleted bool
	Timestamp      time.Time
}

type Config struct {
	ArmSpeed     float64 // km/h, one sample at or above arms the tracker
	SlowSpeed    float64 // km/h, below this while armed counts toward a check
	ResetSpeed   float64 // km/h, sustained at or above disarms
	SlowSamples  int     // consecutive slow samples before a proximity check
	ResetSamples int     // consecutive fast samples before a reset

	AlertRadius       float64 // meters
	MinAccuracy       float64 // meters, worse fixes are discarded
	SameVenueCooldown time.Duration
	AlertCooldown     time.Duration

	// BypassVenue alerts ignore every cooldown. Carried over from the
	// previous build of this feature; see DESIGN.md before removing.
	BypassVenue string
}

func DefaultConfig() Config {
	return Config{
		ArmSpeed:          16.1,
		SlowSpeed:         16.1,
		ResetSpeed:        24.14,
		SlowSamples:       2,
		ResetSamples:      2,
		AlertRadius:       150,
		MinAccuracy:       20,
		SameVenueCooldown: 5 * time.Minute,
		AlertCooldown:     time.Minute,
		BypassVenue:       "raising cane",
	}
}

// Match is a venue returned by the proximity lookup.
type Match struct {
	Name     string
	Distance float64
}

// Tracker is the full per-user/device alert state. All methods mutate the
// receiver and take every time input from the sample, so a sequence of
// samples always produces the same transitions.
type Tracker struct {
	Config Config
	State  State

	// Guards concurrent samples from the same device; transitions
	// themselves stay deterministic.
	mu sync.Mutex

	slowCount int
	fastCount int

	lastAlertAt    time.Time
	lastAlertVenue string
	alerted        bool
}

func NewTracker(cfg Config) *Tracker {
	return &Tracker{Config: cfg, State: StateStandby}
}

type Outcome struct {
	// Discarded samples (poor accuracy, audio still playing) produce no
	// state change.
	Discarded      bool
	DiscardReason  string
	NeedsProximity bool
}

// Advance feeds one sample through the arming and reset logic. When the
// tracker is armed and slowing, the outcome asks for a proximity lookup;
// the caller then finishes the step with Resolve.
func (t *Tracker) Advance(sample Sample) Outcome {
	if sample.Accuracy > t.Config.MinAccuracy {
		return Outcome{Discarded: true, DiscardReason: "Poor GPS accuracy"}
	}
	if !sample.AudioCompleted {
		return Outcome{Discarded: true, DiscardReason: "Audio playing"}
	}

	// Speeds at or above the reset threshold count toward disarming and
	// never arm: sustained fast driving means the stop is over.
	if sample.Speed >= t.Config.ResetSpeed {
		t.fastCount++
		t.slowCount = 0
		if t.fastCount >= t.Config.ResetSamples {
			t.reset()
		}
		return Outcome{}
	}
	t.fastCount = 0

	if sample.Speed >= t.Config.ArmSpeed {
		t.slowCount = 0
		t.State = StateArmed
		return Outcome{}
	}

	if t.State == StateStandby {
		// Not armed: slow samples alone never alert.
		return Outcome{}
	}

	// Armed and below the slow threshold.
	if sample.Speed < t.Config.SlowSpeed {
		t.slowCount++
	}

	if sample.IsParked || t.slowCount >= t.Config.SlowSamples {
		t.State = StateChecking
		return Outcome{NeedsProximity: true}
	}

	return Outcome{}
}

// Resolve completes a checking step with the lookup result. It returns true
// when an alert should fire; the tracker records the alert so cooldowns
// apply to later samples.
func (t *Tracker) Resolve(sample Sample, match *Match) bool {
	if t.State != StateChecking {
		return false
	}

	if match == nil || match.Distance > t.Config.AlertRadius {
		t.State = StateArmed
		return false
	}

	if !t.cooldownElapsed(sample.Timestamp, match.Name) {
		t.State = StateArmed
		return false
	}

	// Alert is one-shot; the next qualifying sample moves the tracker
	// back through Armed.
	t.State = StateAlert
	t.lastAlertAt = sample.Timestamp
	t.lastAlertVenue = match.Name
	t.alerted = true
	t.slowCount = 0
	return true
}

func (t *Tracker) cooldownElapsed(at time.Time, venue string) bool {
	if t.isBypassVenue(venue) {
		return true
	}
	if !t.alerted {
		return true
	}

	elapsed := at.Sub(t.lastAlertAt)
	if venue == t.lastAlertVenue {
		return elapsed >= t.Config.SameVenueCooldown
	}
	return elapsed >= t.Config.AlertCooldown
}

func (t *Tracker) isBypassVenue(venue string) bool {
	return t.Config.BypassVenue != "" &&
		strings.Contains(strings.ToLower(venue), t.Config.BypassVenue)
}

// reset clears every counter and any residual alert state, so the next
// alert requires a full re-arm.
func (t *Tracker) reset() {
	t.State = StateStandby
	t.slowCount = 0
	t.fastCount = 0
	t.alerted = false
	t.lastAlertAt = time.Time{}
	t.lastAlertVenue = ""
}
