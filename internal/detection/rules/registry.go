// Package rules holds the static, ordered pattern rule sets consumed by every
// detector.  All sets are compiled once at process start and must be treated
// as read-only: the Registry is shared across concurrent requests without
// locking.
//
// Declaration order inside a Set is significant.  The pattern matcher resolves
// "first label whose any pattern matches", so higher-priority categories
// (e.g. crisis intent) are declared before generic ones.
package rules

import "regexp"

// Category is one labeled group of patterns inside a Set.
type Category struct {
	Label    string
	Patterns []*regexp.Regexp
}

// Set is a named, ordered collection of categories.
type Set struct {
	Name       string
	Categories []Category
}

// Category returns the category with the given label, or nil.
func (s *Set) Category(label string) *Category {
	for i := range s.Categories {
		if s.Categories[i].Label == label {
			return &s.Categories[i]
		}
	}
	return nil
}

// Labels returns the category labels in declaration order.
func (s *Set) Labels() []string {
	out := make([]string, len(s.Categories))
	for i, c := range s.Categories {
		out[i] = c.Label
	}
	return out
}

// compile builds case-insensitive patterns.  Rules are authored without the
// flag; it is applied uniformly here.
func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile("(?i)" + e)
	}
	return out
}

// cat is shorthand for building a Category.
func cat(label string, exprs ...string) Category {
	return Category{Label: label, Patterns: compile(exprs...)}
}

// Registry aggregates every rule set used by the engine.
type Registry struct {
	Intent Set
	Topic  Set
	// Urgency markers are a flat list: any match escalates to ALTA.
	Urgency []*regexp.Regexp

	Resistance Set
	Relapse    Set
	Needs      Set
	Strengths  Set

	EfficacyLow  []*regexp.Regexp
	EfficacyHigh []*regexp.Regexp
	SupportHigh  []*regexp.Regexp
	SupportLow   []*regexp.Regexp

	Distortions Set

	// Symptoms maps a clinical-scale symptom key to its pattern list.
	Symptoms map[string][]*regexp.Regexp
	// FrequencyDaily / FrequencyOften drive auto-scoring: daily language
	// scores 3, often language scores 2.
	FrequencyDaily []*regexp.Regexp
	FrequencyOften []*regexp.Regexp
}

var defaultRegistry = &Registry{
	Intent:  intentSet,
	Topic:   topicSet,
	Urgency: urgencyMarkers,

	Resistance: resistanceSet,
	Relapse:    relapseSet,
	Needs:      needsSet,
	Strengths:  strengthsSet,

	EfficacyLow:  efficacyLowPatterns,
	EfficacyHigh: efficacyHighPatterns,
	SupportHigh:  supportHighPatterns,
	SupportLow:   supportLowPatterns,

	Distortions: distortionSet,

	Symptoms:       symptomPatterns,
	FrequencyDaily: frequencyDailyPatterns,
	FrequencyOften: frequencyOftenPatterns,
}

// Default returns the process-wide immutable registry.
func Default() *Registry {
	return defaultRegistry
}
