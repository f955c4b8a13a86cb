package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Minutes is a duration in whole minutes as it arrives from the backend,
// which is not consistent about the field: attractions ship durations as
// strings ("25" or "25 min"), shows as numbers, and some records omit the
// field entirely. Anything that cannot be read as a number decodes to
// zero so aggregates over mixed data never fail.
type Minutes int

func (m *Minutes) UnmarshalJSON(data []byte) error {
	*m = 0

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*m = Minutes(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// null, objects, arrays: keep zero
		return nil
	}

	s = strings.TrimSpace(s)
	// accept a trailing unit, e.g. "25 min"
	if i := strings.IndexFunc(s, func(r rune) bool { return (r < '0' || r > '9') && r != '.' }); i > 0 {
		s = strings.TrimSpace(s[:i])
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*m = Minutes(f)
	}
	return nil
}

func (m Minutes) Int() int { return int(m) }
