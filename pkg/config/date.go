package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate reads an author or committer date. It accepts git's raw form
// ("<unix> <+|-HHMM>", optionally with a leading "@"), bare unix seconds,
// RFC 3339, RFC 1123 with a numeric zone and "YYYY-MM-DD HH:MM:SS[ +HHMM]".
// Layouts without a zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrConversion)
	}

	if t, ok, err := parseRawDate(strings.TrimPrefix(s, "@")); ok {
		return t, err
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognised date %q", ErrConversion, s)
}

// parseRawDate handles "<unix>" and "<unix> <zone>". ok is false when s does
// not start with a number.
func parseRawDate(s string) (time.Time, bool, error) {
	secText, zoneText, hasZone := strings.Cut(s, " ")
	secs, err := strconv.ParseInt(secText, 10, 64)
	if err != nil {
		return time.Time{}, false, nil
	}
	if !hasZone {
		return time.Unix(secs, 0).UTC(), true, nil
	}

	zoneText = strings.TrimSpace(zoneText)
	if len(zoneText) != 5 || (zoneText[0] != '+' && zoneText[0] != '-') {
		return time.Time{}, true, fmt.Errorf("%w: bad timezone %q", ErrConversion, zoneText)
	}
	hh, err1 := strconv.Atoi(zoneText[1:3])
	mm, err2 := strconv.Atoi(zoneText[3:5])
	if err1 != nil || err2 != nil || mm > 59 {
		return time.Time{}, true, fmt.Errorf("%w: bad timezone %q", ErrConversion, zoneText)
	}
	offset := hh*3600 + mm*60
	if zoneText[0] == '-' {
		offset = -offset
	}
	return time.Unix(secs, 0).In(time.FixedZone("", offset)), true, nil
}
