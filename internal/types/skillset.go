// Package types provides type definitions for structured data used throughout the hirelens system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"sort"
	"strings"
)

// SkillSet is a set of normalized (lower-cased, trimmed) skill names.
// Uniqueness is by normalized value; iteration order is unspecified.
type SkillSet map[string]struct{}

// NewSkillSet builds a SkillSet from raw skill names, normalizing each entry.
// Empty strings (after trimming) are dropped.
func NewSkillSet(names ...string) SkillSet {
	s := make(SkillSet, len(names))
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// NormalizeSkill lowercases and trims a skill name. Normalization is
// idempotent: normalizing an already-normalized name is a no-op.
func NormalizeSkill(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add inserts a skill after normalization. Blank names are ignored.
func (s SkillSet) Add(name string) {
	normalized := NormalizeSkill(name)
	if normalized == "" {
		return
	}
	s[normalized] = struct{}{}
}

// Contains reports whether the set holds the normalized form of name.
func (s SkillSet) Contains(name string) bool {
	_, ok := s[NormalizeSkill(name)]
	return ok
}

// Len returns the number of distinct skills.
func (s SkillSet) Len() int {
	return len(s)
}

// Union returns a new set with the members of both sets.
func (s SkillSet) Union(other SkillSet) SkillSet {
	result := make(SkillSet, len(s)+len(other))
	for skill := range s {
		result[skill] = struct{}{}
	}
	for skill := range other {
		result[skill] = struct{}{}
	}
	return result
}

// Intersect returns a new set with the members present in both sets.
func (s SkillSet) Intersect(other SkillSet) SkillSet {
	result := make(SkillSet)
	for skill := range s {
		if _, ok := other[skill]; ok {
			result[skill] = struct{}{}
		}
	}
	return result
}

// Subtract returns a new set with the members of s not present in other.
func (s SkillSet) Subtract(other SkillSet) SkillSet {
	result := make(SkillSet)
	for skill := range s {
		if _, ok := other[skill]; !ok {
			result[skill] = struct{}{}
		}
	}
	return result
}

// MarshalJSON encodes the set as a sorted JSON array of strings.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array of strings, normalizing each entry.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = NewSkillSet(names...)
	return nil
}

// Sorted returns the skills as a sorted slice. Used wherever a stable
// ordering is needed for JSON output or suggestion text.
func (s SkillSet) Sorted() []string {
	skills := make([]string, 0, len(s))
	for skill := range s {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}
