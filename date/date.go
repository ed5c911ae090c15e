// Package date provides a day-granularity Date used to timestamp transactions.
package date

import (
	"encoding"
	"fmt"
	"time"
)

// Layout is the ISO-8601 layout dates are written in.
const Layout = "2006-01-02"

// lenient accepts single-digit months and days when reading.
const lenient = "2006-1-2"

// Date is a calendar day. The zero Date means no date.
type Date struct {
	y int
	m time.Month
	d int
}

func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns the Date for year, month and day, normalized like time.Date
// (January 32 is February 1).
func New(year int, month time.Month, day int) Date {
	y, m, dd := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, dd}
}

// Today returns the current local day.
func Today() Date { return New(time.Now().Date()) }

func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Equal(x Date) bool  { return d == x }
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// Add returns the Date i days later, or earlier for a negative i.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// String formats d in the Layout format. The zero Date is the empty string.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(Layout)
}

// Parse reads a date like 2025-07-01 or 2025-7-1.
func Parse(s string) (Date, error) {
	t, err := time.Parse(lenient, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", s, err)
	}
	return New(t.Date()), nil
}

// MustParse is like Parse but panics on error. It is meant for tests and constants.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MarshalText writes d in the Layout format, which JSON encodes as a string.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText parses text with Parse. Empty text is the zero Date.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

var (
	_ encoding.TextMarshaler   = Date{}
	_ encoding.TextUnmarshaler = (*Date)(nil)
)
