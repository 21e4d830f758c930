package localize

import (
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Style selects how verbose a rendered date or time is.
type Style int

const (
	// StyleShort is compact: abbreviated month, no weekday, minutes only.
	StyleShort Style = iota
	// StyleMedium spells out the month and includes seconds.
	StyleMedium
	// StyleLong adds the weekday and the time zone.
	StyleLong
)

var dateLayouts = map[Style]string{
	StyleShort:  "02 Jan 2006",
	StyleMedium: "02 January 2006",
	StyleLong:   "Monday, 02 January 2006",
}

var timeLayouts = map[Style]string{
	StyleShort:  "15:04",
	StyleMedium: "15:04:05",
	StyleLong:   "15:04:05 MST",
}

// Date renders the calendar date of t with localized month and weekday names.
func (f *Formatter) Date(t time.Time, style Style) string {
	return monday.Format(t, dateLayouts[style], f.locale)
}

// Time renders the clock time of t.
func (f *Formatter) Time(t time.Time, style Style) string {
	return monday.Format(t, timeLayouts[style], f.locale)
}

// DateTime renders date and time together, both at the given style.
func (f *Formatter) DateTime(t time.Time, style Style) string {
	return monday.Format(t, dateLayouts[style]+" "+timeLayouts[style], f.locale)
}

// mondayLocales maps BCP 47 tags onto the locales monday ships calendar
// names for. Lookup tries the full tag first, then the bare language.
var mondayLocales = map[string]monday.Locale{
	"en-US": monday.LocaleEnUS,
	"en-GB": monday.LocaleEnGB,
	"en":    monday.LocaleEnUS,
	"da":    monday.LocaleDaDK,
	"nl-BE": monday.LocaleNlBE,
	"nl":    monday.LocaleNlNL,
	"fi":    monday.LocaleFiFI,
	"fr-CA": monday.LocaleFrCA,
	"fr":    monday.LocaleFrFR,
	"de":    monday.LocaleDeDE,
	"hu":    monday.LocaleHuHU,
	"it":    monday.LocaleItIT,
	"nn":    monday.LocaleNnNO,
	"nb":    monday.LocaleNbNO,
	"pt-BR": monday.LocalePtBR,
	"pt":    monday.LocalePtPT,
	"ro":    monday.LocaleRoRO,
	"ru":    monday.LocaleRuRU,
	"es":    monday.LocaleEsES,
	"ca":    monday.LocaleCaES,
	"sv":    monday.LocaleSvSE,
	"tr":    monday.LocaleTrTR,
	"bg":    monday.LocaleBgBG,
	"zh-TW": monday.LocaleZhTW,
	"zh-HK": monday.LocaleZhHK,
	"zh":    monday.LocaleZhCN,
	"ko":    monday.LocaleKoKR,
	"ja":    monday.LocaleJaJP,
	"el":    monday.LocaleElGR,
	"id":    monday.LocaleIdID,
	"uk":    monday.LocaleUkUA,
	"cs":    monday.LocaleCsCZ,
	"sl":    monday.LocaleSlSI,
	"lt":    monday.LocaleLtLT,
	"et":    monday.LocaleEtEE,
	"hr":    monday.LocaleHrHR,
	"lv":    monday.LocaleLvLV,
	"sk":    monday.LocaleSkSK,
	"th":    monday.LocaleThTH,
	"uz":    monday.LocaleUzUZ,
	"kk":    monday.LocaleKkKZ,
}

// mondayLocale resolves the closest month/weekday name table for tag,
// falling back to US English names when the language is not shipped.
func mondayLocale(tag language.Tag) monday.Locale {
	if loc, ok := mondayLocales[tag.String()]; ok {
		return loc
	}
	base, _ := tag.Base()
	if loc, ok := mondayLocales[base.String()]; ok {
		return loc
	}
	return monday.LocaleEnUS
}
