package bcp47

import (
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
)

var parsed = cache.New[string, *Tag]()

// ParseCached is a memoizing front for Parse. Media pipelines resolve the
// same handful of tags over and over; parsed tags are immutable so sharing
// them is safe. Failed parses are not cached.
func ParseCached(raw string) (*Tag, error) {
	if tag, ok := parsed.Get(raw); ok {
		return tag, nil
	}
	tag, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	parsed.Set(raw, tag, cache.WithExpiration(time.Hour))
	return tag, nil
}
