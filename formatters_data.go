package intl

import (
	"golang.org/x/text/language"
)

// calendarData contains hardcoded calendar rules for supported locales.
var calendarData = map[string]CalendarRules{
	"en": {
		Locale: "en",
		MonthNames: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		ShortMonths: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		WeekdayNames:  []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		ShortWeekdays: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		NumericOrder:  "mdy",
		NumericSep:    "/",
		LongPatterns: TextDatePatterns{
			MonthDayYear: "{month} {day}, {year}",
			MonthDay:     "{month} {day}",
			MonthYear:    "{month} {year}",
		},
		ShortPatterns: TextDatePatterns{
			MonthDayYear: "{month} {day}, {year}",
			MonthDay:     "{month} {day}",
			MonthYear:    "{month} {year}",
		},
		WeekdayPattern: "{weekday}, {date}",
		DateTimeSep:    ", ",
		Time: TimeFormatRules{
			Use24Hour:  false,
			DayPeriods: [2]string{"AM", "PM"},
		},
	},
	"es": {
		Locale: "es",
		MonthNames: []string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		ShortMonths: []string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sept", "oct", "nov", "dic",
		},
		WeekdayNames:  []string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		ShortWeekdays: []string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		NumericOrder:  "dmy",
		NumericSep:    "/",
		LongPatterns: TextDatePatterns{
			MonthDayYear: "{day} de {month} de {year}",
			MonthDay:     "{day} de {month}",
			MonthYear:    "{month} de {year}",
		},
		ShortPatterns: TextDatePatterns{
			MonthDayYear: "{day} {month} {year}",
			MonthDay:     "{day} {month}",
			MonthYear:    "{month} {year}",
		},
		WeekdayPattern: "{weekday}, {date}",
		DateTimeSep:    ", ",
		Time: TimeFormatRules{
			Use24Hour:  true,
			DayPeriods: [2]string{"a. m.", "p. m."},
		},
	},
	"de": {
		Locale: "de",
		MonthNames: []string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		ShortMonths: []string{
			"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
			"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez.",
		},
		WeekdayNames:  []string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		ShortWeekdays: []string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
		NumericOrder:  "dmy",
		NumericSep:    ".",
		LongPatterns: TextDatePatterns{
			MonthDayYear: "{day}. {month} {year}",
			MonthDay:     "{day}. {month}",
			MonthYear:    "{month} {year}",
		},
		ShortPatterns: TextDatePatterns{
			MonthDayYear: "{day}. {month} {year}",
			MonthDay:     "{day}. {month}",
			MonthYear:    "{month} {year}",
		},
		WeekdayPattern: "{weekday}, {date}",
		DateTimeSep:    ", ",
		Time: TimeFormatRules{
			Use24Hour:  true,
			PadHour:    true,
			DayPeriods: [2]string{"AM", "PM"},
		},
	},
	"fr": {
		Locale: "fr",
		MonthNames: []string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		ShortMonths: []string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc.",
		},
		WeekdayNames:  []string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		ShortWeekdays: []string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		NumericOrder:  "dmy",
		NumericSep:    "/",
		PadNumeric:    true,
		LongPatterns: TextDatePatterns{
			MonthDayYear: "{day} {month} {year}",
			MonthDay:     "{day} {month}",
			MonthYear:    "{month} {year}",
		},
		ShortPatterns: TextDatePatterns{
			MonthDayYear: "{day} {month} {year}",
			MonthDay:     "{day} {month}",
			MonthYear:    "{month} {year}",
		},
		WeekdayPattern: "{weekday} {date}",
		DateTimeSep:    " ",
		Time: TimeFormatRules{
			Use24Hour:  true,
			PadHour:    true,
			DayPeriods: [2]string{"AM", "PM"},
		},
	},
}

var numberData = map[string]NumberRules{
	"en": {
		CurrencyPattern: "{symbol}{amount}",
		CompactShort:    [4]string{"K", "M", "B", "T"},
		CompactLong:     [4]string{" thousand", " million", " billion", " trillion"},
	},
	"es": {
		CurrencyPattern: "{amount} {symbol}",
		CompactShort:    [4]string{" mil", " M", " mil M", " B"},
		CompactLong:     [4]string{" mil", " millones", " mil millones", " billones"},
	},
	"de": {
		CurrencyPattern: "{amount} {symbol}",
		CompactShort:    [4]string{"", " Mio.", " Mrd.", " Bio."},
		CompactLong:     [4]string{" Tausend", " Millionen", " Milliarden", " Billionen"},
	},
	"fr": {
		CurrencyPattern: "{amount} {symbol}",
		CompactShort:    [4]string{" k", " M", " Md", " Bn"},
		CompactLong:     [4]string{" mille", " millions", " milliards", " billions"},
	},
}

// lookupLocaleData tries an exact match, then the base language, then
// falls back to English.
func lookupLocaleData[T any](data map[string]T, locale string) T {
	if rules, ok := data[locale]; ok {
		return rules
	}

	tag := language.Make(locale)
	base, _ := tag.Base()
	if rules, ok := data[base.String()]; ok {
		return rules
	}

	return data["en"]
}

func calendarRules(locale string) CalendarRules {
	return lookupLocaleData(calendarData, locale)
}

func numberRules(locale string) NumberRules {
	return lookupLocaleData(numberData, locale)
}
