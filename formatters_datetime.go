package intl

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DateTimeFormatter renders dates and times for one locale from the
// calendar tables.
type DateTimeFormatter struct {
	locale string
	rules  CalendarRules
	loc    *time.Location

	weekday      string
	year         string
	month        string
	day          string
	hour         string
	minute       string
	second       string
	timeZoneName string
	hour12       *bool
}

func newDateTimeFormatter(locale string, opts FormatOptions) (*DateTimeFormatter, error) {
	f := &DateTimeFormatter{
		locale:       locale,
		rules:        calendarRules(locale),
		weekday:      optString(opts, "weekday"),
		year:         optString(opts, "year"),
		month:        optString(opts, "month"),
		day:          optString(opts, "day"),
		hour:         optString(opts, "hour"),
		minute:       optString(opts, "minute"),
		second:       optString(opts, "second"),
		timeZoneName: optString(opts, "timeZoneName"),
	}
	if h12, ok := optBool(opts, "hour12"); ok {
		f.hour12 = &h12
	}
	if zone := optString(opts, "timeZone"); zone != "" {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			return nil, fmt.Errorf("intl: time zone %q: %w", zone, err)
		}
		f.loc = loc
	}
	if !f.hasDate() && !f.hasTime() {
		f.year, f.month, f.day = "numeric", "numeric", "numeric"
	}
	return f, nil
}

// Locale returns the locale the formatter was built for.
func (f *DateTimeFormatter) Locale() string { return f.locale }

func (f *DateTimeFormatter) hasDate() bool {
	return f.weekday != "" || f.year != "" || f.month != "" || f.day != ""
}

func (f *DateTimeFormatter) hasTime() bool {
	return f.hour != "" || f.minute != "" || f.second != ""
}

// Format renders t. Without a configured time zone t keeps its own location.
func (f *DateTimeFormatter) Format(t time.Time) string {
	if f.loc != nil {
		t = t.In(f.loc)
	}

	datePart := f.formatDate(t)
	timePart := f.formatTime(t)

	switch {
	case datePart != "" && timePart != "":
		return datePart + f.rules.DateTimeSep + timePart
	case datePart != "":
		return datePart
	default:
		return timePart
	}
}

func (f *DateTimeFormatter) formatDate(t time.Time) string {
	var date string
	switch f.month {
	case "long", "short", "narrow":
		date = f.textDate(t)
	default:
		date = f.numericDate(t)
	}

	if f.weekday == "" {
		return date
	}
	weekday := f.weekdayName(t.Weekday())
	if date == "" {
		return weekday
	}
	return strings.NewReplacer("{weekday}", weekday, "{date}", date).Replace(f.rules.WeekdayPattern)
}

func (f *DateTimeFormatter) textDate(t time.Time) string {
	patterns := f.rules.ShortPatterns
	var month string
	switch f.month {
	case "long":
		patterns = f.rules.LongPatterns
		month = pick(f.rules.MonthNames, int(t.Month())-1)
	case "short":
		month = pick(f.rules.ShortMonths, int(t.Month())-1)
	default:
		month = narrow(pick(f.rules.MonthNames, int(t.Month())-1))
	}

	var pattern string
	switch {
	case f.day != "" && f.year != "":
		pattern = patterns.MonthDayYear
	case f.day != "":
		pattern = patterns.MonthDay
	case f.year != "":
		pattern = patterns.MonthYear
	default:
		return month
	}

	return strings.NewReplacer(
		"{month}", month,
		"{day}", f.numeric(t.Day(), f.day, false),
		"{year}", f.yearValue(t.Year()),
	).Replace(pattern)
}

func (f *DateTimeFormatter) numericDate(t time.Time) string {
	var parts []string
	for _, component := range f.rules.NumericOrder {
		switch component {
		case 'd':
			if f.day != "" {
				parts = append(parts, f.numeric(t.Day(), f.day, f.rules.PadNumeric))
			}
		case 'm':
			if f.month != "" {
				parts = append(parts, f.numeric(int(t.Month()), f.month, f.rules.PadNumeric))
			}
		case 'y':
			if f.year != "" {
				parts = append(parts, f.yearValue(t.Year()))
			}
		}
	}
	return strings.Join(parts, f.rules.NumericSep)
}

func (f *DateTimeFormatter) yearValue(year int) string {
	if f.year == "2-digit" {
		return fmt.Sprintf("%02d", year%100)
	}
	return strconv.Itoa(year)
}

func (f *DateTimeFormatter) numeric(n int, style string, pad bool) string {
	if style == "2-digit" || pad {
		return fmt.Sprintf("%02d", n)
	}
	return strconv.Itoa(n)
}

func (f *DateTimeFormatter) weekdayName(day time.Weekday) string {
	switch f.weekday {
	case "short":
		return pick(f.rules.ShortWeekdays, int(day))
	case "narrow":
		return narrow(pick(f.rules.WeekdayNames, int(day)))
	default:
		return pick(f.rules.WeekdayNames, int(day))
	}
}

func (f *DateTimeFormatter) formatTime(t time.Time) string {
	if !f.hasTime() {
		return ""
	}

	use24 := f.rules.Time.Use24Hour
	if f.hour12 != nil {
		use24 = !*f.hour12
	}

	var parts []string
	if f.hour != "" {
		h := t.Hour()
		if !use24 {
			h %= 12
			if h == 0 {
				h = 12
			}
		}
		parts = append(parts, f.numeric(h, f.hour, use24 && f.rules.Time.PadHour))
	}
	if f.minute != "" {
		parts = append(parts, f.numeric(t.Minute(), f.minute, f.hour != ""))
	}
	if f.second != "" {
		parts = append(parts, f.numeric(t.Second(), f.second, f.hour != "" || f.minute != ""))
	}
	out := strings.Join(parts, ":")

	if f.hour != "" && !use24 {
		period := f.rules.Time.DayPeriods[0]
		if t.Hour() >= 12 {
			period = f.rules.Time.DayPeriods[1]
		}
		out += " " + period
	}

	switch f.timeZoneName {
	case "":
	case "long":
		out += " " + t.Location().String()
	default:
		name, _ := t.Zone()
		out += " " + name
	}
	return out
}

func pick(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

func narrow(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
