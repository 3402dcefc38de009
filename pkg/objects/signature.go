package objects

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Signature is the author or committer of a commit.
//
// Written as: "Name <email> <unix seconds> <+HHMM|-HHMM>"
// Example:    "John Doe <john@example.com> 1609459200 +0000"
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

var signaturePattern = regexp.MustCompile(`^(.*) <([^<>]*)> (-?\d+) ([+-]\d{4})$`)

// String returns the git form of the signature.
func (s Signature) String() string {
	return fmt.Sprintf("%s <%s> %d %s", s.Name, s.Email, s.When.Unix(), FormatTimezone(s.When))
}

// validate checks the signature for the given role ("author" or "committer").
func (s Signature) validate(role string) error {
	if strings.TrimSpace(s.Name) == "" {
		return NewMissingIdentityError(role, "name")
	}
	if strings.TrimSpace(s.Email) == "" {
		return NewMissingIdentityError(role, "email")
	}
	if strings.ContainsAny(s.Name, "<>\n\x00") {
		return NewEncodingError("encode_commit", "", role+" name contains '<', '>', newline or NUL")
	}
	if strings.ContainsAny(s.Email, "<>\n\x00") {
		return NewEncodingError("encode_commit", "", role+" email contains '<', '>', newline or NUL")
	}
	return nil
}

// ParseSignature parses the git form of a signature.
func ParseSignature(line string) (Signature, error) {
	m := signaturePattern.FindStringSubmatch(line)
	if m == nil {
		return Signature{}, fmt.Errorf("invalid signature %q", line)
	}
	secs, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return Signature{}, fmt.Errorf("invalid timestamp %q: %w", m[3], err)
	}
	loc, err := ParseTimezone(m[4])
	if err != nil {
		return Signature{}, err
	}
	return Signature{Name: m[1], Email: m[2], When: time.Unix(secs, 0).In(loc)}, nil
}

// FormatTimezone formats t's UTC offset as +HHMM or -HHMM.
func FormatTimezone(t time.Time) string {
	_, offset := t.Zone()
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("%c%02d%02d", sign, offset/3600, (offset%3600)/60)
}

// ParseTimezone parses "+0530" or "-0800" into a fixed zone.
func ParseTimezone(tz string) (*time.Location, error) {
	if len(tz) != 5 || (tz[0] != '+' && tz[0] != '-') {
		return nil, fmt.Errorf("invalid timezone %q", tz)
	}
	hours, err := strconv.Atoi(tz[1:3])
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	minutes, err := strconv.Atoi(tz[3:5])
	if err != nil || minutes >= 60 {
		return nil, fmt.Errorf("invalid timezone %q", tz)
	}
	offset := hours*3600 + minutes*60
	if tz[0] == '-' {
		offset = -offset
	}
	return time.FixedZone(tz, offset), nil
}
