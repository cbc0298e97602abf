package model

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the persisted timestamp format. The original data files use
// this exact zero-padded layout, which also makes lexical order equal to
// chronological order for any consumer still comparing strings.
const TimeLayout = "2006-01-02 15:04:05"

// DateLayout is the day-granularity prefix of TimeLayout used by range filters.
const DateLayout = "2006-01-02"

// Timestamp is a time.Time that marshals as "YYYY-MM-DD HH:MM:SS".
type Timestamp struct {
	time.Time
}

func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return Timestamp{Time: t}, nil
}

func (t Timestamp) String() string {
	return t.Format(TimeLayout)
}

// Day truncates the timestamp to day granularity in its own location.
func (t Timestamp) Day() time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(TimeLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
