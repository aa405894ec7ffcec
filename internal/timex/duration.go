// Package timex holds time helpers shared by config and the engine.
package timex

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Duration wraps time.Duration so JSON can carry either a Go duration string
// ("10s", "1h30m") or integer nanoseconds.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// AddMonths adds n calendar months to t. Day overflow normalizes forward the
// way time.AddDate does (Jan 31 + 1 month is Mar 3 in non-leap years).
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// CeilDays returns ceil(d / 24h). Negative durations round toward zero, so a
// due date 1h in the past yields 0 and 25h in the past yields -1.
func CeilDays(d time.Duration) int {
	days := d / (24 * time.Hour)
	if d%(24*time.Hour) > 0 {
		days++
	}
	return int(days)
}

// SameMonth reports whether t falls in year/month, compared in UTC.
func SameMonth(t time.Time, year int, month time.Month) bool {
	u := t.UTC()
	return u.Year() == year && u.Month() == month
}
