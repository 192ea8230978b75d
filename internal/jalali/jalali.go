// Package jalali converts between Persian-calendar input strings and
// Gregorian time values. The backend speaks ISO timestamps; users type
// dates like 1403/05/01.
package jalali

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

var ErrBadDate = errors.New("date must look like 1403/05/01")

// ParseDate parses a yyyy/mm/dd Persian date into midnight Iran time.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, ErrBadDate
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, ErrBadDate
		}
		nums[i] = n
	}
	year, month, day := nums[0], nums[1], nums[2]
	if year < 1300 || year > 1500 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, ErrBadDate
	}

	pt := ptime.Date(year, ptime.Month(month), day, 0, 0, 0, 0, ptime.Iran())
	// ptime normalizes out-of-range days (1403/07/31 becomes 1403/08/01);
	// a round-trip mismatch means the date never existed
	if pt.Year() != year || int(pt.Month()) != month || pt.Day() != day {
		return time.Time{}, fmt.Errorf("%w: no such day in month", ErrBadDate)
	}
	return pt.Time(), nil
}

// Format renders a Gregorian instant as a Persian yyyy/mm/dd date.
func Format(t time.Time) string {
	return ptime.New(t.In(ptime.Iran())).Format("yyyy/MM/dd")
}

// FormatTime renders date plus wall clock, for transaction rows.
func FormatTime(t time.Time) string {
	return ptime.New(t.In(ptime.Iran())).Format("yyyy/MM/dd HH:mm")
}
