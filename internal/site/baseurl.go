// Package site resolves the public origin of the site. Responders are built
// with a BaseURLFunc instead of reading the environment themselves.
package site

import (
	"os"
	"strings"
)

const (
	// DefaultBaseURL is used when no origin is configured.
	DefaultBaseURL = "https://yhdfc.com"

	// BaseURLEnv is the environment variable holding the public origin.
	BaseURLEnv = "NEXT_PUBLIC_SITE_URL"
)

// BaseURLFunc returns the current site origin without a trailing slash.
type BaseURLFunc func() string

// Static returns a resolver that always yields override, or DefaultBaseURL
// when override is empty.
func Static(override string) BaseURLFunc {
	base := resolve(override)
	return func() string { return base }
}

// FromEnv returns a resolver that reads BaseURLEnv through lookup on every
// call. A nil lookup uses os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) BaseURLFunc {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return func() string {
		v, _ := lookup(BaseURLEnv)
		return resolve(v)
	}
}

// TrimSlash removes surrounding whitespace and every trailing slash.
func TrimSlash(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}

// Join appends path segments to base, producing exactly one slash between
// each part. Join(base) returns base itself.
func Join(base string, parts ...string) string {
	out := TrimSlash(base)
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p == "" {
			continue
		}
		out += "/" + p
	}
	return out
}

func resolve(v string) string {
	if v = TrimSlash(v); v != "" {
		return v
	}
	return DefaultBaseURL
}
