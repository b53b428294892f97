// Copyright 2026 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package callout

import "fmt"

// ClassNameMap computes the ordered class list for a checked title. The
// order is kept as returned and duplicates are not removed.
type ClassNameMap func(key string) []string

// Map calls m, returning nil for a nil map.
func (m ClassNameMap) Map(key string) []string {
	if m == nil {
		return nil
	}
	return m(key)
}

// ClassName always yields the single class name.
func ClassName(name string) ClassNameMap {
	return ClassNames(name)
}

// ClassNames always yields names, in order. Every call returns a fresh slice.
func ClassNames(names ...string) ClassNameMap {
	return func(string) []string {
		return append(make([]string, 0, len(names)), names...)
	}
}

// ClassNameFunc adapts a function returning one class name.
func ClassNameFunc(fn func(key string) string) ClassNameMap {
	return func(key string) []string {
		return []string{fn(key)}
	}
}

// NewClassNameMap normalizes the supported class specs into a ClassNameMap:
// a class name, a list of class names, or a function returning either.
func NewClassNameMap(spec any) (ClassNameMap, error) {
	switch v := spec.(type) {
	case ClassNameMap:
		if v != nil {
			return v, nil
		}
	case func(string) []string:
		if v != nil {
			return v, nil
		}
	case func(string) string:
		if v != nil {
			return ClassNameFunc(v), nil
		}
	case string:
		return ClassName(v), nil
	case []string:
		return ClassNames(v...), nil
	}
	return nil, fmt.Errorf("unsupported class name spec %T", spec)
}
