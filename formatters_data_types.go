package intl

// CalendarRules contains the locale specific pieces used to render dates
// and times.
type CalendarRules struct {
	Locale        string   `json:"locale"`
	MonthNames    []string `json:"month_names"`
	ShortMonths   []string `json:"short_months"`
	WeekdayNames  []string `json:"weekday_names"` // Sunday first
	ShortWeekdays []string `json:"short_weekdays"`

	// NumericOrder is one of "mdy", "dmy" or "ymd".
	NumericOrder string `json:"numeric_order"`
	NumericSep   string `json:"numeric_separator"`
	PadNumeric   bool   `json:"pad_numeric"`

	LongPatterns  TextDatePatterns `json:"long_patterns"`
	ShortPatterns TextDatePatterns `json:"short_patterns"`
	// WeekdayPattern uses placeholders: {weekday}, {date}
	WeekdayPattern string `json:"weekday_pattern"`
	DateTimeSep    string `json:"date_time_separator"`

	Time TimeFormatRules `json:"time"`
}

// TextDatePatterns use placeholders: {day}, {month}, {year}
type TextDatePatterns struct {
	MonthDayYear string `json:"month_day_year"`
	MonthDay     string `json:"month_day"`
	MonthYear    string `json:"month_year"`
}

// TimeFormatRules defines time formatting
type TimeFormatRules struct {
	Use24Hour  bool      `json:"use_24_hour"`
	PadHour    bool      `json:"pad_hour"`
	DayPeriods [2]string `json:"day_periods"`
}

// NumberRules holds the locale specific number patterns x/text does not
// cover.
type NumberRules struct {
	// CurrencyPattern uses placeholders: {symbol}, {amount}
	CurrencyPattern string `json:"currency_pattern"`
	// Compact suffixes for thousands, millions, billions and trillions. An
	// empty suffix leaves that magnitude uncompacted.
	CompactShort [4]string `json:"compact_short"`
	CompactLong  [4]string `json:"compact_long"`
}
