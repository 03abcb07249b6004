package tabs

import (
	"strings"

	"github.com/danwakefield/fnmatch"
)

// MatchPattern reports whether url matches an extension match pattern of the
// form <scheme>://<host><path>. A "*" scheme covers http and https, "*." host
// prefixes cover subdomains, and "<all_urls>" covers every http, https and
// file URL.
func MatchPattern(pattern, url string) bool {
	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return false
	}
	scheme = strings.ToLower(scheme)

	if pattern == "<all_urls>" {
		return scheme == "http" || scheme == "https" || scheme == "file"
	}

	patternScheme, patternRest, ok := strings.Cut(pattern, "://")
	if !ok {
		return false
	}
	if !matchScheme(patternScheme, scheme) {
		return false
	}

	patternHost, patternPath := splitHostPath(patternRest)
	host, path := splitHostPath(rest)
	if !matchHost(patternHost, host) {
		return false
	}
	return fnmatch.Match(patternPath, path, 0)
}

func matchScheme(pattern, scheme string) bool {
	if pattern == "*" {
		return scheme == "http" || scheme == "https"
	}
	return strings.EqualFold(pattern, scheme)
}

func matchHost(pattern, host string) bool {
	if i := strings.LastIndexByte(host, '@'); i >= 0 {
		host = host[i+1:]
	}
	if i := strings.LastIndexByte(host, ':'); i >= 0 && !strings.HasSuffix(host, "]") {
		host = host[:i]
	}

	switch {
	case pattern == "*":
		return true
	case strings.HasPrefix(pattern, "*."):
		base := pattern[2:]
		return strings.EqualFold(host, base) || fnmatch.Match("*."+base, host, fnmatch.FNM_CASEFOLD)
	default:
		return strings.EqualFold(pattern, host)
	}
}

func splitHostPath(s string) (string, string) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i], s[i:]
	}
	return s, "/"
}
