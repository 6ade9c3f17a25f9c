package handler

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// requestDateLayouts are tried in order. Inputs without a zone are UTC.
var requestDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// requestDate is a timestamp in a request body. Besides RFC3339 it accepts
// "YYYY-MM-DDTHH:mm:ss" and a bare "YYYY-MM-DD". The parsed value is UTC.
type requestDate struct {
	time.Time
}

func parseRequestDate(s string) (time.Time, error) {
	for _, layout := range requestDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD, YYYY-MM-DDTHH:mm:ss or RFC3339", s)
}

func (d *requestDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("date must be a string")
	}
	t, err := parseRequestDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ptr returns nil for an absent date.
func (d *requestDate) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// requestDateValue lets the validator see a requestDate as time.Time, so
// "required" rejects the zero value.
func requestDateValue(v reflect.Value) any {
	if d, ok := v.Interface().(requestDate); ok {
		return d.Time
	}
	return nil
}
