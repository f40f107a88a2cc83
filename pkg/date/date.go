// Package date provides a calendar date that travels as YYYY-MM-DD over JSON,
// CBOR and SQL.
package date

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/fxamacker/cbor/v2"
)

// Date is a calendar date without time of day or location.
type Date struct {
	civil.Date
}

// Of returns the date for year, month and day.
func Of(year int, month time.Month, day int) Date {
	return Date{civil.Date{Year: year, Month: month, Day: day}}
}

// Parse parses a YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{d}, nil
}

// IsZero reports whether d is the zero Date, which encodes as null.
func (d Date) IsZero() bool {
	return d == Date{}
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a YYYY-MM-DD string: %w", err)
	}
	return d.set(s)
}

// MarshalCBOR encodes the date as a CBOR text string.
func (d Date) MarshalCBOR() ([]byte, error) {
	if d.IsZero() {
		return cbor.Marshal(nil)
	}
	return cbor.Marshal(d.String())
}

// UnmarshalCBOR decodes a CBOR text string produced by MarshalCBOR.
func (d *Date) UnmarshalCBOR(data []byte) error {
	var s *string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.set(s)
}

func (d *Date) set(s *string) error {
	if s == nil {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer for DATE columns. The zero Date is NULL.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements sql.Scanner. lib/pq hands DATE columns back as time.Time.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Date = civil.DateOf(v)
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into date", src)
	}
}
