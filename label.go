package ring

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatPercent formats the rounded fill for the satellite label using the
// number conventions of the BCP 47 locale tag. Unparseable tags fall back
// to English. A NaN fill has no digits and formats as "".
func FormatPercent(fill float64, locale string) string {
	if math.IsNaN(fill) {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		Logger().Debug("ring: unknown label locale, using en", "locale", locale, "err", err)
		tag = language.English
	}
	return message.NewPrinter(tag).Sprintf("%d", int(math.Round(fill)))
}
