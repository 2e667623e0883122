package weather

import "time"

// pattern is one destination entry in the lookup table. Temperatures are
// keyed by season; the remaining fields are functions of the month because
// some regions vary guidance by time of year (hurricane season, Mediterranean
// hot/cool split).
type pattern struct {
	key             string
	temps           map[string]Temperature
	conditions      func(m time.Month) string
	recommendations []string
	clothing        func(m time.Month) ClothingSuggestions
	essentials      func(m time.Month) []string
}

// hurricaneSeason reports whether m falls in the Atlantic hurricane season
// (June through November), which drives Caribbean and Bahamas guidance.
func hurricaneSeason(m time.Month) bool {
	return m >= time.June && m <= time.November
}

// medHot and medCool split the Mediterranean year into hot (Jun–Aug),
// cool (Nov–Feb), and mild (everything else).
func medHot(m time.Month) bool  { return m >= time.June && m <= time.August }
func medCool(m time.Month) bool { return m >= time.November || m <= time.February }

// constant wraps month-independent guidance so the table can treat every
// entry uniformly.
func constant[T any](v T) func(time.Month) T {
	return func(time.Month) T { return v }
}

// patterns is the ordered destination table. Order matters: matching is
// first-match-wins, so more specific regions come before the generic
// "tropical" entry that doubles as the fallback.
var patterns = []pattern{
	{
		key: "caribbean",
		temps: map[string]Temperature{
			SeasonWinter: {High: 82, Low: 73},
			SeasonSpring: {High: 85, Low: 76},
			SeasonSummer: {High: 88, Low: 79},
			SeasonFall:   {High: 86, Low: 77},
		},
		conditions: func(m time.Month) string {
			if hurricaneSeason(m) {
				return "Hurricane season - pack rain gear"
			}
			return "Generally sunny and warm"
		},
		recommendations: []string{"Lightweight clothing", "Sunscreen", "Hat", "Swimwear", "Rain jacket (if hurricane season)"},
		clothing: func(m time.Month) ClothingSuggestions {
			c := ClothingSuggestions{
				Tops:        []string{"Cotton t-shirts", "Tank tops", "Light blouses", "Short-sleeve shirts", "Cover-ups"},
				Bottoms:     []string{"Shorts", "Light pants", "Capris", "Sundresses", "Swimwear"},
				Outerwear:   []string{"Light cardigan", "Thin sweater"},
				Footwear:    []string{"Sandals", "Flip-flops", "Boat shoes", "Water shoes", "Light sneakers"},
				Accessories: []string{"Sun hat", "Sunglasses", "Beach bag", "Waterproof phone case"},
			}
			if hurricaneSeason(m) {
				c.Outerwear = []string{"Light rain jacket", "Windbreaker"}
			}
			return c
		},
		essentials: constant([]string{"SPF 30+ sunscreen", "After-sun lotion", "Insect repellent", "Umbrella", "Portable fan"}),
	},
	{
		key: "bahamas",
		temps: map[string]Temperature{
			SeasonWinter: {High: 77, Low: 65},
			SeasonSpring: {High: 81, Low: 71},
			SeasonSummer: {High: 87, Low: 78},
			SeasonFall:   {High: 83, Low: 74},
		},
		conditions: func(m time.Month) string {
			if hurricaneSeason(m) {
				return "Hurricane season possible"
			}
			return "Pleasant weather"
		},
		recommendations: []string{"Beach attire", "Light jacket for evening", "Sunglasses", "Flip-flops"},
		clothing: constant(ClothingSuggestions{
			Tops:        []string{"Lightweight shirts", "Tank tops", "Beach cover-ups", "Polo shirts"},
			Bottoms:     []string{"Swim shorts", "Board shorts", "Light dresses", "Casual shorts"},
			Outerwear:   []string{"Light sweater for evening", "Windbreaker"},
			Footwear:    []string{"Beach sandals", "Water shoes", "Canvas sneakers"},
			Accessories: []string{"Sun hat", "Beach towel", "Waterproof watch"},
		}),
		essentials: constant([]string{"Reef-safe sunscreen", "Aloe vera gel", "Beach umbrella", "Cooler bag"}),
	},
	{
		key: "mediterranean",
		temps: map[string]Temperature{
			SeasonWinter: {High: 59, Low: 43},
			SeasonSpring: {High: 68, Low: 54},
			SeasonSummer: {High: 82, Low: 68},
			SeasonFall:   {High: 73, Low: 59},
		},
		conditions: func(m time.Month) string {
			switch {
			case medHot(m):
				return "Hot and dry"
			case medCool(m):
				return "Cool and possibly rainy"
			default:
				return "Mild weather"
			}
		},
		recommendations: []string{"Layered clothing", "Comfortable walking shoes", "Light rain jacket", "Sun hat"},
		clothing: func(m time.Month) ClothingSuggestions {
			c := ClothingSuggestions{
				Footwear:    []string{"Comfortable walking shoes", "Sandals", "Boat shoes", "Sneakers"},
				Accessories: []string{"Sun hat", "Scarf", "Crossbody bag", "Sunglasses"},
			}
			if medHot(m) {
				c.Tops = []string{"Linen shirts", "Cotton blouses", "Light tops"}
				c.Bottoms = []string{"Linen pants", "Light shorts", "Maxi dresses"}
				c.Outerwear = []string{"Light shawl", "Thin cardigan"}
			} else {
				c.Tops = []string{"Long-sleeve shirts", "Light sweaters", "Cardigans"}
				c.Bottoms = []string{"Jeans", "Pants", "Long dresses with tights"}
				c.Outerwear = []string{"Jacket", "Trench coat", "Warm sweater"}
			}
			return c
		},
		essentials: func(m time.Month) []string {
			if medHot(m) {
				return []string{"High SPF sunscreen", "Cooling towel", "Hand fan"}
			}
			return []string{"Compact umbrella", "Moisturizer", "Lip balm", "Rain poncho"}
		},
	},
	{
		key: "alaska",
		temps: map[string]Temperature{
			SeasonWinter: {High: 23, Low: 11},
			SeasonSpring: {High: 46, Low: 32},
			SeasonSummer: {High: 65, Low: 50},
			SeasonFall:   {High: 44, Low: 29},
		},
		conditions:      constant("Cool temperatures year-round, possible rain"),
		recommendations: []string{"Warm layers", "Waterproof jacket", "Warm hat and gloves", "Sturdy boots", "Thermal underwear"},
		clothing: constant(ClothingSuggestions{
			Tops:        []string{"Thermal base layers", "Fleece jackets", "Wool sweaters", "Long-sleeve shirts", "Insulated vests"},
			Bottoms:     []string{"Thermal leggings", "Warm pants", "Jeans", "Waterproof pants", "Long underwear"},
			Outerwear:   []string{"Waterproof parka", "Insulated jacket", "Rain poncho", "Wind-resistant shell"},
			Footwear:    []string{"Waterproof hiking boots", "Warm socks", "Boot warmers", "Non-slip sole shoes"},
			Accessories: []string{"Warm hat", "Insulated gloves", "Scarf", "Neck warmer", "Waterproof gloves"},
		}),
		essentials: constant([]string{"Hand/foot warmers", "Waterproof phone case", "Thermal blanket", "Lip balm with SPF", "Moisturizing lotion", "Binoculars for wildlife"}),
	},
	{
		key: "norway",
		temps: map[string]Temperature{
			SeasonWinter: {High: 30, Low: 19},
			SeasonSpring: {High: 50, Low: 36},
			SeasonSummer: {High: 66, Low: 52},
			SeasonFall:   {High: 48, Low: 37},
		},
		conditions:      constant("Cool and potentially wet"),
		recommendations: []string{"Warm clothing", "Waterproof outerwear", "Thermal layers", "Warm accessories", "Waterproof boots"},
		clothing: constant(ClothingSuggestions{
			Tops:        []string{"Merino wool base layers", "Fleece mid-layers", "Waterproof shell jacket", "Warm sweaters"},
			Bottoms:     []string{"Thermal pants", "Waterproof trousers", "Warm jeans", "Leggings for layering"},
			Outerwear:   []string{"Gore-Tex jacket", "Insulated parka", "Wool coat", "Rain jacket"},
			Footwear:    []string{"Waterproof hiking boots", "Warm wool socks", "Insulated boots", "Grip-sole shoes"},
			Accessories: []string{"Wool hat", "Waterproof gloves", "Warm scarf", "Rain hat with brim"},
		}),
		essentials: constant([]string{"Waterproof backpack cover", "Quick-dry towel", "Travel umbrella", "Vitamin D supplements", "Warm thermos"}),
	},
	{
		key: "tropical",
		temps: map[string]Temperature{
			SeasonWinter: {High: 80, Low: 70},
			SeasonSpring: {High: 83, Low: 73},
			SeasonSummer: {High: 86, Low: 76},
			SeasonFall:   {High: 84, Low: 74},
		},
		conditions:      constant("Warm tropical climate"),
		recommendations: []string{"Light clothing", "Sunscreen", "Hat", "Swimwear", "Sandals"},
		clothing: constant(ClothingSuggestions{
			Tops:        []string{"Breathable cotton shirts", "Tank tops", "Linen blouses", "UV protection shirts"},
			Bottoms:     []string{"Light shorts", "Flowing pants", "Beach wraps", "Swimwear"},
			Outerwear:   []string{"Light cardigan for AC", "Beach cover-up"},
			Footwear:    []string{"Comfortable sandals", "Water shoes", "Breathable sneakers"},
			Accessories: []string{"Wide-brim hat", "Beach bag", "Sunglasses", "Sarong"},
		}),
		essentials: constant([]string{"High SPF sunscreen", "After-sun care", "Insect repellent", "Cooling towel", "Electrolyte drinks"}),
	},
}
