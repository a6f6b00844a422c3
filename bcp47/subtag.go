// Package bcp47 parses BCP47 language tags against the IANA subtag registry
// and converts parsed tags into the internal code space used by unilang.
package bcp47

import (
	"strings"

	"github.com/orsinium-labs/enum"
	"github.com/samber/lo"
)

type SubtagKind enum.Member[string]

var (
	KindLanguage      = SubtagKind{Value: "language"}
	KindExtlang       = SubtagKind{Value: "extlang"}
	KindScript        = SubtagKind{Value: "script"}
	KindRegion        = SubtagKind{Value: "region"}
	KindVariant       = SubtagKind{Value: "variant"}
	KindGrandfathered = SubtagKind{Value: "grandfathered"}
	KindRedundant     = SubtagKind{Value: "redundant"}
	SubtagKinds       = enum.New(
		KindLanguage,
		KindExtlang,
		KindScript,
		KindRegion,
		KindVariant,
		KindGrandfathered,
		KindRedundant,
	)
)

// Subtag is one record from the subtag registry. Key holds the lowercased
// subtag, or the lowercased whole tag for grandfathered and redundant entries.
type Subtag struct {
	Kind           SubtagKind
	Key            string
	Description    []string
	PreferredValue string
}

// Registry is an immutable index over subtag records. Grandfathered and
// redundant entries are keyed by whole tag, everything else by subtag.
// Safe for concurrent reads once built.
type Registry struct {
	bySubtag map[SubtagKind]map[string]Subtag
	byTag    map[SubtagKind]map[string]Subtag
}

func NewRegistry(records []Subtag) *Registry {
	byKind := lo.GroupBy(records, func(st Subtag) SubtagKind {
		return st.Kind
	})

	r := &Registry{
		bySubtag: map[SubtagKind]map[string]Subtag{},
		byTag:    map[SubtagKind]map[string]Subtag{},
	}
	for kind, sts := range byKind {
		m := make(map[string]Subtag, len(sts))
		for _, st := range sts {
			m[strings.ToLower(st.Key)] = st
		}
		if kind == KindGrandfathered || kind == KindRedundant {
			r.byTag[kind] = m
		} else {
			r.bySubtag[kind] = m
		}
	}
	return r
}

// Lookup resolves a single subtag of the given kind. The probe is lowercased
// before matching.
func (r *Registry) Lookup(kind SubtagKind, subtag string) (Subtag, bool) {
	st, ok := r.bySubtag[kind][strings.ToLower(subtag)]
	return st, ok
}

// LookupTag resolves a whole tag against the grandfathered or redundant
// entries of the registry.
func (r *Registry) LookupTag(kind SubtagKind, tag string) (Subtag, bool) {
	st, ok := r.byTag[kind][strings.ToLower(tag)]
	return st, ok
}
