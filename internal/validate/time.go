package validate

import "regexp"

var hhmm = regexp.MustCompile(`^\d{2}:\d{2}$`)

// NormalizeTime widens an HH:MM value to HH:MM:SS before it crosses the
// upstream boundary. This is a pure string transform: values already in
// HH:MM:SS form, empty strings and anything unrecognized pass through
// unchanged.
func NormalizeTime(t string) string {
	if hhmm.MatchString(t) {
		return t + ":00"
	}
	return t
}
