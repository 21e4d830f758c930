package localize

import (
	"fmt"

	"github.com/goodsign/monday"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders values according to one locale's conventions. Construct
// it once per locale and reuse it; all methods are safe for concurrent use.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	locale  monday.Locale
	region  string
}

// New parses a BCP 47 locale tag ("en-US", "de", "pt-BR") and returns a
// Formatter bound to it.
func New(localeTag string) (*Formatter, error) {
	tag, err := language.Parse(localeTag)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", localeTag, err)
	}
	f := &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
		locale:  mondayLocale(tag),
	}
	if region, conf := tag.Region(); conf > language.No {
		f.region = region.String()
	}
	return f, nil
}

// Tag returns the parsed locale tag the formatter is bound to.
func (f *Formatter) Tag() language.Tag { return f.tag }

// Number renders v with the locale's digit grouping and decimal separator.
func (f *Formatter) Number(v float64) string {
	return f.printer.Sprint(number.Decimal(v))
}

// NumberWithScale renders v rounded to exactly scale fraction digits.
func (f *Formatter) NumberWithScale(v float64, scale int) string {
	return f.printer.Sprint(number.Decimal(v, number.Scale(scale)))
}

// Percent renders the fraction v as a locale percentage; 1.0 means 100%.
func (f *Formatter) Percent(v float64) string {
	return f.printer.Sprint(number.Percent(v))
}

// Currency renders an amount in the currency named by its ISO 4217 code,
// using the locale's symbol placement and digit conventions. Unknown codes
// are an error; amounts are never silently reinterpreted.
func (f *Formatter) Currency(v float64, isoCode string) (string, error) {
	unit, err := currency.ParseISO(isoCode)
	if err != nil {
		return "", fmt.Errorf("unknown currency %q: %w", isoCode, err)
	}
	return f.printer.Sprint(currency.Symbol(unit.Amount(v))), nil
}
