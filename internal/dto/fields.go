package dto

import (
	"fmt"
	"strconv"
	"time"
)

// FloatField is a float64 that accepts either a JSON number or a numeric
// string on the wire, matching what clients of the API already send.
type FloatField float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FloatField) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %s", string(data))
	}

	*f = FloatField(value)
	return nil
}

// IntField is an integer that accepts either a JSON number or a numeric
// string on the wire.
type IntField uint

// UnmarshalJSON implements json.Unmarshaler
func (i *IntField) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	value, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer value %s", string(data))
	}

	*i = IntField(value)
	return nil
}

// dateLayouts are the ISO-8601 shapes accepted for the date field.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 date string. Layouts without an explicit
// offset are interpreted in server local time, which is also the time frame
// the monthly summary is computed in.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", value)
}
