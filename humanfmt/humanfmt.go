// Package humanfmt renders sizes, counts, durations and numbers for people.
package humanfmt

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Bytes uses SI units: 1500 is "1.5 kB".
func Bytes(n uint64) string {
	return humanize.Bytes(n)
}

// IBytes uses IEC units: 1536 is "1.5 KiB".
func IBytes(n uint64) string {
	return humanize.IBytes(n)
}

// ParseBytes accepts both unit families, e.g. "42 MB" or "1.5GiB".
func ParseBytes(s string) (uint64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parse size %q", s)
	}
	return n, nil
}

// Count groups digits by thousands: 1234567 is "1,234,567".
func Count(n int64) string {
	return humanize.Comma(n)
}

// Ordinal returns 1st, 2nd, 3rd and so on.
func Ordinal(n int) string {
	return humanize.Ordinal(n)
}

func SI(v float64, unit string) string {
	return humanize.SI(v, unit)
}

// Since describes then relative to now, e.g. "3 hours ago".
func Since(then, now time.Time) string {
	return humanize.RelTime(then, now, "ago", "from now")
}

// Duration prints d compactly, largest unit first: 1d2h, 1h2m, 45s.
// Below one second it falls back to milliseconds.
func Duration(d time.Duration) string {
	if d < 0 {
		return "-" + Duration(-d)
	}
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	d = d.Truncate(time.Second)
	var b strings.Builder
	for _, u := range []struct {
		size time.Duration
		name string
	}{
		{24 * time.Hour, "d"},
		{time.Hour, "h"},
		{time.Minute, "m"},
		{time.Second, "s"},
	} {
		if n := d / u.size; n > 0 {
			b.WriteString(strconv.FormatInt(int64(n), 10))
			b.WriteString(u.name)
			d -= n * u.size
		}
	}
	return b.String()
}

// Number formats v with the grouping and decimal marks of tag.
func Number(tag language.Tag, v any) string {
	return message.NewPrinter(tag).Sprint(number.Decimal(v))
}
