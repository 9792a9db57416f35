package bookmarks

import (
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// MaxURLLength is the longest url a bookmark may hold.
const MaxURLLength = 2048

var (
	labelPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
	tldPattern   = regexp.MustCompile(`^([a-z]{2,63}|xn--[a-z0-9-]{1,59})$`)
)

// ValidateURL reports whether raw is an absolute http(s) URL with a routable
// host: a dotted domain name with an alphabetic TLD, or an IP literal.
func ValidateURL(raw string) error {
	if raw == "" || len(raw) > MaxURLLength {
		return ErrInvalidURL
	}
	for _, r := range raw {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return ErrInvalidURL
		}
	}

	u, err := url.Parse(raw)
	if err != nil || u.Opaque != "" {
		return ErrInvalidURL
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return ErrInvalidURL
	}

	host := u.Hostname()
	if host == "" {
		return ErrInvalidURL
	}
	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 65535 {
			return ErrInvalidURL
		}
	}
	if net.ParseIP(host) != nil {
		return nil
	}
	if !validDomain(host) {
		return ErrInvalidURL
	}
	return nil
}

func validDomain(host string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if len(host) > 253 {
		return false
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if len(l) == 0 || len(l) > 63 || !labelPattern.MatchString(l) {
			return false
		}
	}
	return tldPattern.MatchString(labels[len(labels)-1])
}
