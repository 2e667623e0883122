// Package weather derives a historical-pattern forecast for a cruise
// destination. There is no live weather provider behind it: the data is a
// fixed table of seasonal averages for popular cruise regions, so the same
// (destination, date) pair always produces the same answer and no request
// ever performs I/O.
package weather

import (
	"time"
)

// Source is the provenance label attached to every forecast.
const Source = "Historical weather patterns"

// Season names as they appear on the wire.
const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonFall   = "fall"
	SeasonWinter = "winter"
)

// Temperature is a seasonal high/low pair in degrees Fahrenheit.
type Temperature struct {
	High int `json:"high"`
	Low  int `json:"low"`
}

// ClothingSuggestions groups suggested garments by packing slot.
type ClothingSuggestions struct {
	Tops        []string `json:"tops"`
	Bottoms     []string `json:"bottoms"`
	Outerwear   []string `json:"outerwear"`
	Footwear    []string `json:"footwear"`
	Accessories []string `json:"accessories"`
}

// Forecast is the full derived bundle returned to the client.
// It is computed on demand and never persisted.
type Forecast struct {
	Destination         string              `json:"destination"`
	Date                string              `json:"date"`
	Season              string              `json:"season"`
	Temperature         Temperature         `json:"temperature"`
	Conditions          string              `json:"conditions"`
	Recommendations     []string            `json:"recommendations"`
	ClothingSuggestions ClothingSuggestions `json:"clothingSuggestions"`
	WeatherEssentials   []string            `json:"weatherEssentials"`
	Source              string              `json:"source"`
}

// seasonOf maps a calendar month to a season: Mar–May spring, Jun–Aug
// summer, Sep–Nov fall, Dec–Feb winter.
func seasonOf(m time.Month) string {
	switch {
	case m >= time.March && m <= time.May:
		return SeasonSpring
	case m >= time.June && m <= time.August:
		return SeasonSummer
	case m >= time.September && m <= time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}
