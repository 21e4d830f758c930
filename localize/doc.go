// Package localize is a thin locale-aware formatting façade over the Go
// internationalization ecosystem. A Formatter is constructed once per locale
// and renders numbers, percentages, currency amounts, calendar dates, clock
// times and phone numbers according to that locale's conventions.
//
// The heavy lifting is delegated: numeric and currency rendering to
// golang.org/x/text, localized month and weekday names to
// github.com/goodsign/monday, and phone number parsing and formatting to
// github.com/nyaruka/phonenumbers. The package holds no state beyond the
// parsed locale and performs no locale data computation of its own.
//
// It is independent of the conversion layer; neither package imports the
// other.
package localize
