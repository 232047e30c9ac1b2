package i18n

import (
	"math"
	"strconv"
	"strings"
)

// LocaleFormat holds the number conventions of a locale: separators,
// currency and percentage patterns. It is immutable after creation and safe
// for concurrent use.
//
// Patterns use "%n" for the formatted number and "%u" for the unit, so
// "%u%n" renders "$1,234.50" and "%n %u" renders "1.234,50 €".
type LocaleFormat struct {
	locale            string
	decimalSeparator  string
	thousandSeparator string
	currencyUnit      string
	currencyPattern   string
	percentPattern    string
	precision         int
	currencyPrecision int
	stripZeros        bool
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a LocaleFormat. Without options it formats like
// US English.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		locale:            "en-US",
		decimalSeparator:  ".",
		thousandSeparator: ",",
		currencyUnit:      "$",
		currencyPattern:   "%u%n",
		percentPattern:    "%n%",
		precision:         3,
		currencyPrecision: 2,
		stripZeros:        true,
	}

	for _, opt := range opts {
		opt(lf)
	}

	return lf
}

// WithFormatLocale records the locale code the format belongs to.
func WithFormatLocale(locale string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.locale = NormalizeLocale(locale)
	}
}

// WithDecimalSeparator sets the decimal separator.
func WithDecimalSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.decimalSeparator = sep
	}
}

// WithThousandSeparator sets the digit group delimiter.
func WithThousandSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.thousandSeparator = sep
	}
}

// WithCurrency sets the currency unit and its pattern ("%u%n", "%n %u").
func WithCurrency(unit, pattern string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.currencyUnit = unit
		if strings.Contains(pattern, "%n") {
			lf.currencyPattern = pattern
		}
	}
}

// WithPercentPattern sets the percentage pattern ("%n%", "%n %").
func WithPercentPattern(pattern string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if strings.Contains(pattern, "%n") {
			lf.percentPattern = pattern
		}
	}
}

// WithPrecision sets the number of fraction digits for plain numbers and
// percentages. Default: 3.
func WithPrecision(p int) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if p >= 0 {
			lf.precision = p
		}
	}
}

// WithStripInsignificantZeros controls trailing fraction zeros for plain
// numbers and percentages. Currency always keeps its precision.
func WithStripInsignificantZeros(strip bool) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.stripZeros = strip
	}
}

// Locale returns the locale code of the format.
func (lf *LocaleFormat) Locale() string {
	return lf.locale
}

// FormatNumber formats n with the locale separators, rounded to the
// configured precision.
func (lf *LocaleFormat) FormatNumber(n float64) string {
	return lf.number(n, lf.precision, lf.stripZeros)
}

// FormatCurrency formats an amount with the currency unit and pattern.
// Negative amounts get a leading minus before the whole pattern.
func (lf *LocaleFormat) FormatCurrency(amount float64) string {
	neg := amount < 0
	s := lf.apply(lf.currencyPattern, lf.number(math.Abs(amount), lf.currencyPrecision, false), lf.currencyUnit)
	if neg && s != "" {
		return "-" + s
	}
	return s
}

// FormatPercent formats a ratio as a percentage (0.5 -> "50%").
func (lf *LocaleFormat) FormatPercent(ratio float64) string {
	return lf.apply(lf.percentPattern, lf.number(ratio*100, lf.precision, lf.stripZeros), "")
}

// sizeUnits are binary multiples, named the way catalogs traditionally do.
var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB"}

// FormatHumanSize formats a byte count with a binary unit ("1.5 KB").
// A single byte renders as "1 Byte".
func (lf *LocaleFormat) FormatHumanSize(size int64) string {
	if size == 1 || size == -1 {
		return lf.number(float64(size), 0, true) + " Byte"
	}

	f := math.Abs(float64(size))
	exp := 0
	for f >= 1024 && exp < len(sizeUnits)-1 {
		f /= 1024
		exp++
	}
	if size < 0 {
		f = -f
	}

	precision := 1
	if exp == 0 {
		precision = 0
	}
	return lf.number(f, precision, true) + " " + sizeUnits[exp]
}

func (lf *LocaleFormat) apply(pattern, number, unit string) string {
	return strings.NewReplacer("%n", number, "%u", unit).Replace(pattern)
}

// number rounds n half away from zero to precision digits, groups the
// integer part and joins the fraction with the locale separator.
func (lf *LocaleFormat) number(n float64, precision int, strip bool) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	scale := math.Pow(10, float64(precision))
	n = math.Round(n*scale) / scale

	s := strconv.FormatFloat(math.Abs(n), 'f', precision, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	if strip {
		fracPart = strings.TrimRight(fracPart, "0")
	}

	var b strings.Builder
	if n < 0 {
		b.WriteByte('-')
	}
	b.WriteString(groupDigits(intPart, lf.thousandSeparator))
	if fracPart != "" {
		b.WriteString(lf.decimalSeparator)
		b.WriteString(fracPart)
	}
	return b.String()
}

func groupDigits(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
