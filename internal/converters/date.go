package converters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PickerDateLayout is the text form a PickerDate is edited in
const PickerDateLayout = "2006-01-02"

// ErrInvalidPickerDate is returned when text cannot be read as a picker date
var ErrInvalidPickerDate = errors.New("invalid date, expected YYYY-MM-DD")

// PickerDate is the calendar-only value a date field edits.
// It carries no time of day and no zone.
type PickerDate struct {
	Year  int
	Month int
	Day   int
}

// ToPickerDate converts a timestamp to the picker representation, using the
// timestamp's own location to pick the calendar day
func ToPickerDate(t time.Time) PickerDate {
	return PickerDate{
		Year:  t.Year(),
		Month: int(t.Month()),
		Day:   t.Day(),
	}
}

// FromPickerDate converts a picker value to local midnight of that day
func FromPickerDate(d PickerDate) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
}

// String formats the date as YYYY-MM-DD
func (d PickerDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether the date was never set
func (d PickerDate) IsZero() bool {
	return d == PickerDate{}
}

// ParsePickerDate reads YYYY-MM-DD text. Out of range parts (month 13,
// February 30th) are rejected rather than normalized.
func ParsePickerDate(s string) (PickerDate, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 || len(parts[0]) != 4 {
		return PickerDate{}, fmt.Errorf("%w: %q", ErrInvalidPickerDate, s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || p == "" {
			return PickerDate{}, fmt.Errorf("%w: %q", ErrInvalidPickerDate, s)
		}
		nums[i] = n
	}

	d := PickerDate{Year: nums[0], Month: nums[1], Day: nums[2]}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > daysIn(d.Year, time.Month(d.Month)) {
		return PickerDate{}, fmt.Errorf("%w: %q", ErrInvalidPickerDate, s)
	}
	return d, nil
}

// ParsePickerText parses picker text straight to a timestamp
func ParsePickerText(s string) (time.Time, error) {
	d, err := ParsePickerDate(s)
	if err != nil {
		return time.Time{}, err
	}
	return FromPickerDate(d), nil
}

// FormatPickerText formats a timestamp as picker text
func FormatPickerText(t time.Time) string {
	return ToPickerDate(t).String()
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
