package intl

import (
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormatter formats numbers for one locale, backed by golang.org/x/text.
type NumberFormatter struct {
	locale  string
	tag     language.Tag
	printer *message.Printer
	rules   NumberRules

	style           string
	currency        string
	currencyDisplay string
	unit            string
	unitDisplay     string
	notation        string
	compactDisplay  string
	minInt          int
	minFrac         int
	maxFrac         int
	maxSig          int
	grouping        bool
}

func newNumberFormatter(locale string, opts FormatOptions) *NumberFormatter {
	tag := language.Make(locale)
	f := &NumberFormatter{
		locale:          locale,
		tag:             tag,
		printer:         message.NewPrinter(tag),
		rules:           numberRules(locale),
		style:           optString(opts, "style"),
		currency:        strings.ToUpper(optString(opts, "currency")),
		currencyDisplay: optString(opts, "currencyDisplay"),
		unit:            optString(opts, "unit"),
		unitDisplay:     optString(opts, "unitDisplay"),
		notation:        optString(opts, "notation"),
		compactDisplay:  optString(opts, "compactDisplay"),
		minFrac:         -1,
		maxFrac:         -1,
		grouping:        true,
	}

	if n, ok := optInt(opts, "minimumIntegerDigits"); ok {
		f.minInt = n
	}
	if n, ok := optInt(opts, "minimumFractionDigits"); ok {
		f.minFrac = n
	}
	if n, ok := optInt(opts, "maximumFractionDigits"); ok {
		f.maxFrac = n
	}
	if n, ok := optInt(opts, "maximumSignificantDigits"); ok {
		f.maxSig = n
	}
	if grouping, ok := optBool(opts, "useGrouping"); ok {
		f.grouping = grouping
	}
	if f.minFrac > 3 && f.maxFrac < 0 {
		f.maxFrac = f.minFrac
	}
	if f.maxFrac >= 0 && f.minFrac > f.maxFrac {
		f.minFrac = f.maxFrac
	}
	return f
}

// Locale returns the locale the formatter was built for.
func (f *NumberFormatter) Locale() string { return f.locale }

// Format renders v. Non numeric values render as "NaN".
func (f *NumberFormatter) Format(v any) string {
	x, ok := toFloat(v)
	if !ok || math.IsNaN(x) {
		return "NaN"
	}
	if math.IsInf(x, 1) {
		return "∞"
	}
	if math.IsInf(x, -1) {
		return "-∞"
	}

	switch f.notation {
	case "scientific":
		return f.printer.Sprintf("%v", number.Scientific(x, f.digitOptions()...))
	case "engineering":
		return f.printer.Sprintf("%v", number.Engineering(x, f.digitOptions()...))
	case "compact":
		return f.formatCompact(x)
	}

	switch f.style {
	case "percent":
		return f.printer.Sprintf("%v", number.Percent(x, f.digitOptions()...))
	case "currency":
		return f.formatCurrency(x)
	case "unit":
		return f.formatUnit(x)
	}
	return f.formatDecimal(x, f.digitOptions()...)
}

func (f *NumberFormatter) digitOptions() []number.Option {
	var opts []number.Option
	if f.minInt > 0 {
		opts = append(opts, number.MinIntegerDigits(f.minInt))
	}
	if f.minFrac >= 0 {
		opts = append(opts, number.MinFractionDigits(f.minFrac))
	}
	if f.maxFrac >= 0 {
		opts = append(opts, number.MaxFractionDigits(f.maxFrac))
	}
	if f.maxSig > 0 {
		opts = append(opts, number.Precision(f.maxSig))
	}
	if !f.grouping {
		opts = append(opts, number.NoSeparator())
	}
	return opts
}

func (f *NumberFormatter) formatDecimal(x float64, opts ...number.Option) string {
	return f.printer.Sprintf("%v", number.Decimal(x, opts...))
}

func (f *NumberFormatter) formatUnit(x float64) string {
	amount := f.formatDecimal(x, f.digitOptions()...)
	if f.unit == "" {
		return amount
	}
	return amount + " " + f.unit
}

func (f *NumberFormatter) formatCurrency(x float64) string {
	code := f.currency
	opts := f.digitOptions()

	unit, err := currency.ParseISO(code)
	if code == "" || err != nil {
		amount := f.formatDecimal(x, number.MinFractionDigits(2), number.MaxFractionDigits(2))
		if code == "" {
			return amount
		}
		return code + " " + amount
	}

	if f.minFrac < 0 && f.maxFrac < 0 {
		scale, _ := currency.Standard.Rounding(unit)
		opts = append(opts, number.MinFractionDigits(scale), number.MaxFractionDigits(scale))
	}
	amount := f.formatDecimal(math.Abs(x), opts...)

	var symbol string
	switch f.currencyDisplay {
	case "code", "name":
		symbol = unit.String()
	case "narrowSymbol":
		symbol = f.currencySymbol(unit, currency.NarrowSymbol)
	default:
		symbol = f.currencySymbol(unit, currency.Symbol)
	}

	pattern := f.rules.CurrencyPattern
	if f.currencyDisplay == "code" || f.currencyDisplay == "name" {
		pattern = "{symbol} {amount}"
		if f.currencyDisplay == "name" {
			pattern = "{amount} {symbol}"
		}
	}
	out := strings.NewReplacer("{symbol}", symbol, "{amount}", amount).Replace(pattern)
	if x < 0 {
		out = "-" + out
	}
	return out
}

// currencySymbol asks x/text for the symbol of unit in the formatter locale,
// then in English, then falls back to the ISO code. x/text renders the
// symbol together with an amount, which is stripped again.
func (f *NumberFormatter) currencySymbol(unit currency.Unit, kind currency.Formatter) string {
	symbol := extractSymbol(f.printer, unit, kind)
	if symbol != "" && symbol != unit.String() {
		return symbol
	}

	symbol = extractSymbol(message.NewPrinter(language.English), unit, kind)
	if symbol == "" {
		return unit.String()
	}
	return symbol
}

func extractSymbol(p *message.Printer, unit currency.Unit, kind currency.Formatter) string {
	full := p.Sprintf("%v", kind(unit.Amount(0)))
	amount := p.Sprintf("%v", number.Decimal(0, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	full = strings.Replace(full, amount, "", 1)
	return strings.TrimSpace(strings.Trim(full, "0.,"))
}

func (f *NumberFormatter) formatCompact(x float64) string {
	suffixes := f.rules.CompactShort
	if f.compactDisplay == "long" {
		suffixes = f.rules.CompactLong
	}

	abs := math.Abs(x)
	mag := -1
	for i := len(suffixes) - 1; i >= 0; i-- {
		if abs >= math.Pow(1000, float64(i+1)) {
			mag = i
			break
		}
	}

	mantissa := x
	if mag >= 0 {
		mantissa = x / math.Pow(1000, float64(mag+1))
	}
	rounded, frac := roundCompact(mantissa)
	if math.Abs(rounded) >= 1000 && mag < len(suffixes)-1 {
		mag++
		rounded, frac = roundCompact(x / math.Pow(1000, float64(mag+1)))
	}

	if mag < 0 || suffixes[mag] == "" {
		if mag < 0 {
			return f.formatDecimal(rounded, number.MaxFractionDigits(frac))
		}
		return f.formatDecimal(x, number.MaxFractionDigits(0))
	}
	return f.formatDecimal(rounded, number.MaxFractionDigits(frac)) + suffixes[mag]
}

// roundCompact keeps two significant digits below ten and whole numbers
// above.
func roundCompact(x float64) (float64, int) {
	if math.Abs(x) < 10 {
		return math.Round(x*10) / 10, 1
	}
	return math.Round(x), 0
}
