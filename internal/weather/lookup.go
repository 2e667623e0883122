package weather

import (
	"fmt"
	"strings"
	"time"

	"github.com/hmdeck/cruise-packing/internal/domain"
)

// dateLayouts are the accepted input formats for the date query parameter,
// tried in order. The client sends plain calendar dates.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Lookup derives the forecast bundle for a free-text destination and an ISO
// date. It is pure: same inputs, same output, no I/O. The only failure mode
// is an unparsable date, reported as domain.ErrInvalidInput.
func Lookup(destination, date string) (Forecast, error) {
	t, err := parseDate(date)
	if err != nil {
		return Forecast{}, fmt.Errorf("weather.Lookup: %w: unparsable date %q", domain.ErrInvalidInput, date)
	}

	m := t.Month()
	season := seasonOf(m)
	p := match(destination)

	// Every entry defines all four seasons; the summer fallback guards
	// against a table edit that removes one.
	temp, ok := p.temps[season]
	if !ok {
		temp = p.temps[SeasonSummer]
	}

	return Forecast{
		Destination:         destination,
		Date:                date,
		Season:              season,
		Temperature:         temp,
		Conditions:          p.conditions(m),
		Recommendations:     p.recommendations,
		ClothingSuggestions: p.clothing(m),
		WeatherEssentials:   p.essentials(m),
		Source:              Source,
	}, nil
}

// match finds the first pattern whose key is contained in the lowercased
// destination, or whose key contains the destination's first six characters.
// The asymmetric prefix rule is preserved from the original behavior — keep
// it as-is, first match wins. Unknown destinations fall back to the generic
// tropical entry.
func match(destination string) pattern {
	dest := strings.ToLower(destination)
	prefix := dest
	if len(prefix) > 6 {
		prefix = prefix[:6]
	}
	for _, p := range patterns {
		if strings.Contains(dest, p.key) || strings.Contains(p.key, prefix) {
			return p
		}
	}
	return patterns[len(patterns)-1] // tropical
}

func parseDate(date string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, date)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
