package localize

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// PhoneStyle selects the rendering of a parsed phone number.
type PhoneStyle int

const (
	// PhoneE164 renders +<country code><national number>, no separators.
	PhoneE164 PhoneStyle = iota
	// PhoneInternational renders the international format with separators.
	PhoneInternational
	// PhoneNational renders the national convention without country code.
	PhoneNational
	// PhoneRFC3966 renders a tel: URI.
	PhoneRFC3966
)

func (s PhoneStyle) libFormat() phonenumbers.PhoneNumberFormat {
	switch s {
	case PhoneInternational:
		return phonenumbers.INTERNATIONAL
	case PhoneNational:
		return phonenumbers.NATIONAL
	case PhoneRFC3966:
		return phonenumbers.RFC3966
	default:
		return phonenumbers.E164
	}
}

// Phone parses raw and renders it in the requested style. Numbers without an
// international prefix are interpreted against the formatter's region, so an
// "en-GB" formatter reads "020 8366 1177" as a London number. Unparseable and
// invalid numbers are errors.
func (f *Formatter) Phone(raw string, style PhoneStyle) (string, error) {
	num, err := f.parsePhone(raw)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, style.libFormat()), nil
}

// PhoneRegion reports the ISO 3166-1 alpha-2 region a number belongs to.
func (f *Formatter) PhoneRegion(raw string) (string, error) {
	num, err := f.parsePhone(raw)
	if err != nil {
		return "", err
	}
	return phonenumbers.GetRegionCodeForNumber(num), nil
}

func (f *Formatter) parsePhone(raw string) (*phonenumbers.PhoneNumber, error) {
	num, err := phonenumbers.Parse(raw, f.region)
	if err != nil {
		return nil, fmt.Errorf("parse phone %q: %w", raw, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil, fmt.Errorf("invalid phone number %q", raw)
	}
	return num, nil
}
