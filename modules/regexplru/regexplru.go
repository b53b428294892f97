// Copyright 2022 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package regexplru

import (
	"regexp"

	"codeberg.org/forgejo/mdalert/modules/log"

	lru "github.com/hashicorp/golang-lru/v2"
)

var lruCache *lru.Cache[string, any]

func init() {
	var err error
	lruCache, err = lru.New[string, any](1000)
	if err != nil {
		log.Fatal("failed to new LRU cache, err: %v", err)
	}
}

// GetCompiled works like regexp.Compile, the compiled expr or error is stored in LRU cache
func GetCompiled(expr string) (r *regexp.Regexp, err error) {
	v, ok := lruCache.Get(expr)
	if !ok {
		r, err = regexp.Compile(expr)
		if err != nil {
			lruCache.Add(expr, err)
			return nil, err
		}
		lruCache.Add(expr, r)
		return r, nil
	}
	switch cached := v.(type) {
	case *regexp.Regexp:
		return cached, nil
	case error:
		return nil, cached
	}
	panic("impossible")
}
