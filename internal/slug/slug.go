// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives and checks the URL path segments of service pages.
package slug

import "strings"

// Generate lowercases s, keeps ASCII letters and digits, and joins the
// remaining words with single hyphens.
// Example: "Mobile Forensics (iOS & Android)" → "mobile-forensics-ios-android"
func Generate(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '/':
			pendingHyphen = true
		}
	}
	return b.String()
}

// Valid reports whether s is already in the form Generate produces.
func Valid(s string) bool {
	return s != "" && len(s) <= 100 && Generate(s) == s
}
