package section

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// dateFormats are tried in order. The wire accepts everything the products'
// editors have historically produced, from full ISO dates down to a bare year.
var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"Jan 2006",
	"January 2006",
	"01/2006",
	"2006",
}

// ParseDate converts a wire date string to a date. Empty input, the literal
// "present" and anything matching no known format all yield nil: a bad date
// is stored as null, never rejected.
func ParseDate(raw string) *time.Time {
	candidate := strings.TrimSpace(raw)
	if candidate == "" || strings.EqualFold(candidate, "present") {
		return nil
	}
	// ISO datetimes: keep the date part only.
	if idx := strings.IndexByte(candidate, 'T'); idx >= 0 {
		candidate = candidate[:idx]
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, candidate); err == nil {
			return &t
		}
	}
	return nil
}

// DumpTechnologies JSON-encodes a technology list, dropping empty entries.
// An empty result serializes to nil rather than "[]" so downstream emptiness
// checks stay a simple null test.
func DumpTechnologies(values []string) *string {
	techs := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			techs = append(techs, v)
		}
	}
	if len(techs) == 0 {
		return nil
	}
	encoded, err := json.Marshal(techs)
	if err != nil {
		return nil
	}
	s := string(encoded)
	return &s
}

// LoadTechnologies is the tolerant inverse of DumpTechnologies.
func LoadTechnologies(raw *string) []string {
	if raw == nil || *raw == "" {
		return []string{}
	}
	var techs []string
	if err := json.Unmarshal([]byte(*raw), &techs); err != nil {
		return []string{}
	}
	return techs
}

// SafeYear extracts a four digit year from a raw wire value, falling back to
// full date parsing. Returns nil when nothing usable is present.
func SafeYear(raw string) *int {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return nil
	}
	if len(candidate) >= 4 {
		if year, err := strconv.Atoi(candidate[:4]); err == nil {
			return &year
		}
	}
	if parsed := ParseDate(candidate); parsed != nil {
		year := parsed.Year()
		return &year
	}
	return nil
}
