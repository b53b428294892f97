// Copyright 2026 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package callout

import (
	"fmt"
	"regexp"

	"codeberg.org/forgejo/mdalert/modules/regexplru"

	"github.com/gobwas/glob"
)

// NameFilter decides whether a raw title qualifies. A nil NameFilter
// accepts every title.
type NameFilter func(title string) bool

// Match calls f, treating a nil filter as "always matches".
func (f NameFilter) Match(title string) bool {
	if f == nil {
		return true
	}
	return f(title)
}

// AnyName accepts every title.
func AnyName() NameFilter {
	return func(string) bool { return true }
}

// ExactName accepts titles equal to one of names.
func ExactName(names ...string) NameFilter {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return func(title string) bool {
		_, ok := set[title]
		return ok
	}
}

// PatternName accepts titles containing a match of the regular expression expr.
func PatternName(expr string) (NameFilter, error) {
	re, err := regexplru.GetCompiled(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid title pattern %q: %w", expr, err)
	}
	return re.MatchString, nil
}

// GlobName accepts titles matching the glob pattern.
func GlobName(pattern string) (NameFilter, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid title glob %q: %w", pattern, err)
	}
	return g.Match, nil
}

// AnyOf accepts a title when one of filters does. Nil filters are skipped;
// with no usable filter every title is accepted.
func AnyOf(filters ...NameFilter) NameFilter {
	usable := make([]NameFilter, 0, len(filters))
	for _, f := range filters {
		if f != nil {
			usable = append(usable, f)
		}
	}
	switch len(usable) {
	case 0:
		return AnyName()
	case 1:
		return usable[0]
	}
	return func(title string) bool {
		for _, f := range usable {
			if f(title) {
				return true
			}
		}
		return false
	}
}

// NewNameFilter normalizes the supported filter specs into a NameFilter:
// nil, a literal string, a list of literal strings, a compiled regexp,
// a compiled glob or a predicate.
func NewNameFilter(spec any) (NameFilter, error) {
	switch v := spec.(type) {
	case nil:
		return AnyName(), nil
	case NameFilter:
		if v == nil {
			return AnyName(), nil
		}
		return v, nil
	case func(string) bool:
		if v == nil {
			return AnyName(), nil
		}
		return v, nil
	case string:
		return ExactName(v), nil
	case []string:
		return ExactName(v...), nil
	case *regexp.Regexp:
		return v.MatchString, nil
	case glob.Glob:
		return v.Match, nil
	}
	return nil, fmt.Errorf("unsupported title filter type %T", spec)
}
