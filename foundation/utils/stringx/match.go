// File: match.go
// Title: Locale-Aware Matching
// Description: Case-insensitive comparison of a string against several
//              candidates using the case mapping rules of a locale, and
//              detection of the process locale from the environment.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// localeEnvVars are consulted in order; the first non-empty one wins.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// CurrentLocale returns the locale of the process as configured through the
// POSIX locale variables. "C", "POSIX" and unparsable values map to
// language.Und, which applies the default Unicode case mapping.
func CurrentLocale() language.Tag {
	for _, key := range localeEnvVars {
		value := os.Getenv(key)
		if IsBlank(value) {
			continue
		}
		return ParseLocale(value)
	}
	return language.Und
}

// ParseLocale converts a POSIX locale name such as "tr_TR.UTF-8" or
// "de_DE@euro" into a language tag.
func ParseLocale(value string) language.Tag {
	value = strings.TrimSpace(value)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und
	}

	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}

// MatchAny reports whether s equals any of the candidates, ignoring case under
// the current locale. No candidates means no match.
func MatchAny(s string, candidates ...string) bool {
	return MatchAnyIn(CurrentLocale(), s, candidates...)
}

// MatchAnyIn is MatchAny with an explicit locale. Both sides are lowercased
// under tag and then compared with Unicode simple folding, so locale rules
// (Turkish dotted and dotless i) and fold-only equivalences (Greek final
// sigma) both hold.
func MatchAnyIn(tag language.Tag, s string, candidates ...string) bool {
	if len(candidates) == 0 {
		return false
	}

	caser := cases.Lower(tag)
	lowered := caser.String(s)
	for _, candidate := range candidates {
		if strings.EqualFold(caser.String(candidate), lowered) {
			return true
		}
	}
	return false
}
