package config

import "regexp"

var (
	protocolAndDomain  = regexp.MustCompile(`^(?:\w+:)?//(\S+)$`)
	localhostDomain    = regexp.MustCompile(`^localhost[:?\d]*(?:[^:?\d]\S*)?$`)
	nonLocalhostDomain = regexp.MustCompile(`^[^\s.]+\.\S{2,}$`)
)

// IsURL reports whether s is URL-shaped: an optional scheme, "//", then
// either localhost (with optional port) or a dotted host. Reachability is not
// checked.
func IsURL(s string) bool {
	matches := protocolAndDomain.FindStringSubmatch(s)
	if matches == nil {
		return false
	}

	rest := matches[1]
	return localhostDomain.MatchString(rest) || nonLocalhostDomain.MatchString(rest)
}
