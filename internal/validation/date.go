package validation

import (
	"encoding/json"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date is a request-body date that accepts the formats clients actually
// send (full RFC3339 timestamps or bare YYYY-MM-DD). Parse failures are
// recorded instead of aborting the JSON decode so they can surface as
// field-level validation errors.
type Date struct {
	Time  time.Time
	Set   bool
	Valid bool
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		d.Set = true
		return nil
	}
	if s == "" {
		return nil
	}
	d.Set = true
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			d.Valid = true
			return nil
		}
	}
	return nil
}

// Ptr returns the parsed time, or nil when the date was absent or invalid
func (d Date) Ptr() *time.Time {
	if d.Set && d.Valid {
		t := d.Time
		return &t
	}
	return nil
}
