package forms

import (
	"strings"
	"time"

	"github.com/apex/log"
)

// isoDate is the canonical calendar date layout every archived report carries.
const isoDate = "2006-01-02"

// NormalizeInspectionDate resolves the heterogeneous date representations a
// form can carry (ISO date, RFC3339 timestamp, Brazilian DD/MM/YYYY, native
// time.Time) into one canonical YYYY-MM-DD string. Malformed input falls back
// to today with a warning; a bad date must not block an otherwise valid
// archive.
func NormalizeInspectionDate(value interface{}) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format(isoDate)
	case string:
		if d, ok := parseDateString(v); ok {
			return d
		}
		log.WithField("value", v).Warn("unparseable inspection date, using today")
	case nil:
		// Absent date also resolves to today.
	default:
		log.WithField("value", value).Warn("unexpected inspection date type, using today")
	}
	return time.Now().Format(isoDate)
}

func parseDateString(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	// ISO date is already canonical (fixed point).
	if t, err := time.Parse(isoDate, s); err == nil {
		return t.Format(isoDate), true
	}
	// Brazilian DD/MM/YYYY.
	if t, err := time.Parse("02/01/2006", s); err == nil {
		return t.Format(isoDate), true
	}
	// Full timestamps keep only the calendar date.
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(isoDate), true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.Format(isoDate), true
	}

	return "", false
}
