// Package device classifies a request's User-Agent into a coarse device-type
// label. Parsing is delegated to github.com/mileusna/useragent.
package device

import ua "github.com/mileusna/useragent"

// Device-type labels recorded in click events and user analytics.
const (
	Mobile  = "Mobile"
	Tablet  = "Tablet"
	Desktop = "Desktop"
	Bot     = "Bot"
	Unknown = "Unknown"
)

// Classify returns the device-type label for a raw User-Agent string.
func Classify(userAgent string) string {
	if userAgent == "" {
		return Unknown
	}

	parsed := ua.Parse(userAgent)
	switch {
	case parsed.Bot:
		return Bot
	case parsed.Mobile:
		return Mobile
	case parsed.Tablet:
		return Tablet
	case parsed.Desktop:
		return Desktop
	}
	return Unknown
}
