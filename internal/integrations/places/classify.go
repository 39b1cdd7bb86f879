package places

import "strings"

// fastFoodChains is the recognized chain list, lowercased. Generic terms at
// the end deliberately widen the match to catch independent venues.
var fastFoodChains = []string{
	"mcdonalds", "burger king", "wendys", "taco bell", "kfc",
	"popeyes", "white castle", "subway", "five guys", "culvers",
	"arbys", "chipotle", "panera", "jimmy johns", "jersey mikes",
	"raising canes", "chick-fil-a", "panda express", "dairy queen",
	"baskin robbins", "cold stone", "haagen-dazs", "ben & jerrys",
	"dunkin", "krispy kreme", "in-n-out", "whataburger", "shake shack",
	"zaxbys", "wingstop", "bojangles",

	"jollibee", "tim hortons", "mos burger", "yoshinoya", "lotteria",
	"telepizza", "supermacs", "nordsee", "hesburger", "max burger",
	"vapiano", "wagamama", "pret a manger", "greggs", "nandos",
	"giraffe", "wimpy", "itsu", "el pollo loco", "goiko grill",

	"starbucks", "costa coffee", "caffe nero", "second cup",
	"coffee bean", "dutch bros", "peets coffee",

	"restaurant", "food", "pizza", "burger", "cafe", "diner",
	"ice cream", "frozen yogurt", "donut", "doughnut", "bakery",
	"steakhouse", "grill", "bar", "pub", "bistro", "trattoria",
	"eatery", "dining", "fast food",
}

var foodRelatedTypes = []string{
	"restaurant", "food", "cafe", "meal_delivery", "meal_takeaway",
	"bakery", "bar", "establishment", "point_of_interest", "store",
	"supermarket", "grocery_or_supermarket", "convenience_store",
}

var foodKeywords = []string{
	"burger", "pizza", "sandwich", "taco", "chicken", "fries",
	"grill", "fast", "drive", "express", "quick", "wings",
	"ice", "cream", "frozen", "yogurt", "donut", "doughnut",
	"bakery", "pastry", "kitchen", "mexican", "chinese", "thai",
	"italian", "steakhouse", "seafood", "diner", "buffet", "house",
}

// IsFastFood classifies a venue from its name and Places API types. The
// matching is intentionally permissive: missing a venue is worse than a
// false positive here.
func IsFastFood(name string, types []string) bool {
	name = strings.ToLower(name)

	foodRelated := false
	for _, t := range types {
		for _, known := range foodRelatedTypes {
			if t == known {
				foodRelated = true
				break
			}
		}
		if foodRelated {
			break
		}
	}
	if !foodRelated {
		return false
	}

	for _, chain := range fastFoodChains {
		if strings.Contains(name, chain) {
			return true
		}
	}

	for _, keyword := range foodKeywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}

	for _, t := range types {
		if t == "restaurant" {
			return true
		}
	}

	return false
}
