// Package match implements the pattern matcher and confidence scorer shared
// by every detector and the clinical scale engine.  All functions are pure:
// no state, no I/O, and invalid text yields a zero result instead of an
// error.
package match

import (
	"regexp"
	"strings"

	"github.com/sendasalud/senda/internal/detection/rules"
	"golang.org/x/text/unicode/norm"
)

// Result references the rule that resolved a first-match scan.
type Result struct {
	Label   string
	Pattern string
}

// Normalize prepares text for matching: NFC normalization, trim, lower-case,
// single-space whitespace.  Every matcher input and cache key goes through
// this exact transform so that equivalent messages compare equal.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.ToLower(strings.TrimSpace(text))
	return strings.Join(strings.Fields(text), " ")
}

// First scans the set's categories in declaration order and returns the first
// label whose pattern list contains any matching pattern.  This is first
// match, not best match: ties are broken by declaration order.  Empty text
// never matches.
func First(text string, set *rules.Set) (Result, bool) {
	if text == "" {
		return Result{}, false
	}
	for _, c := range set.Categories {
		for _, p := range c.Patterns {
			if p.MatchString(text) {
				return Result{Label: c.Label, Pattern: p.String()}, true
			}
		}
	}
	return Result{}, false
}

// Any reports whether any pattern in the list matches, ignoring labels.
func Any(text string, patterns []*regexp.Regexp) bool {
	if text == "" {
		return false
	}
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// Count returns how many patterns in the list match the text.
func Count(text string, patterns []*regexp.Regexp) int {
	if text == "" {
		return 0
	}
	n := 0
	for _, p := range patterns {
		if p.MatchString(text) {
			n++
		}
	}
	return n
}

// FirstPattern returns the source of the first matching pattern in the list,
// or "".
func FirstPattern(text string, patterns []*regexp.Regexp) string {
	if text == "" {
		return ""
	}
	for _, p := range patterns {
		if p.MatchString(text) {
			return p.String()
		}
	}
	return ""
}
