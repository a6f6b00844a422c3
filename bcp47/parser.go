package bcp47

import (
	"strings"

	"github.com/ansel1/merry/v2"
	mapset "github.com/deckarep/golang-set/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	ErrMalformedTag    = merry.Sentinel("malformed language tag")
	ErrInvalidLanguage = merry.Sentinel("invalid primary language subtag")
)

// Tag is the parsed form of a BCP47 language tag.
//
// If Grandfathered is set the tag matched a legacy whole-tag entry and every
// other field is empty. Variants keep the left-to-right order of the input.
// Extensions maps singleton characters to their data pieces in input order.
type Tag struct {
	Language      *Subtag
	Extlang       *Subtag
	Script        *Subtag
	Region        *Subtag
	Variants      []Subtag
	Grandfathered *Subtag
	Extensions    *orderedmap.OrderedMap[string, []string]
}

// Parse parses a raw tag against the bundled subtag registry.
func Parse(raw string) (*Tag, error) {
	return Subtags.Parse(raw)
}

// Parse tokenizes and validates a raw BCP47 tag. Matching is case-insensitive
// and strictly ordered: language, extlang, script, region, variants,
// extensions. A piece consumed by one stage is never reconsidered by another.
func (r *Registry) Parse(raw string) (*Tag, error) {
	code := strings.ToLower(raw)
	tag := &Tag{Extensions: orderedmap.New[string, []string]()}

	// Grandfathered tags take precedence over everything.
	if gf, ok := r.LookupTag(KindGrandfathered, code); ok {
		tag.Grandfathered = &gf
		return tag, nil
	}

	// Private use tags consist solely of extension sequences.
	if strings.HasPrefix(code, "x-") {
		if err := parseExtensions(strings.Split(code, "-"), tag); err != nil {
			return nil, err
		}
		return tag, nil
	}

	pieces := strings.Split(code, "-")
	for _, piece := range pieces {
		if piece == "" {
			return nil, merry.Wrap(ErrMalformedTag,
				merry.AppendMessagef("%q: empty subtag (stray hyphen)", raw))
		}
	}

	// The primary language is required and always comes first.
	lang, ok := r.Lookup(KindLanguage, pieces[0])
	if !ok {
		return nil, merry.Wrap(ErrInvalidLanguage,
			merry.AppendMessagef("%q", pieces[0]))
	}
	tag.Language = &lang
	rest := pieces[1:]

	consume := func(kind SubtagKind) *Subtag {
		if len(rest) == 0 {
			return nil
		}
		st, ok := r.Lookup(kind, rest[0])
		if !ok {
			return nil
		}
		rest = rest[1:]
		return &st
	}

	tag.Extlang = consume(KindExtlang)
	tag.Script = consume(KindScript)
	tag.Region = consume(KindRegion)
	for {
		variant := consume(KindVariant)
		if variant == nil {
			break
		}
		tag.Variants = append(tag.Variants, *variant)
	}

	if len(rest) > 0 {
		if err := parseExtensions(rest, tag); err != nil {
			return nil, err
		}
	}
	return tag, nil
}

// parseExtensions consumes the remaining pieces as extension sequences: each
// starts with an unseen one-character singleton followed by at least one data
// piece longer than one character.
func parseExtensions(pieces []string, tag *Tag) error {
	seen := mapset.NewThreadUnsafeSet[string]()
	i := 0
	for i < len(pieces) {
		singleton := pieces[i]
		if len(singleton) != 1 {
			return merry.Wrap(ErrMalformedTag,
				merry.AppendMessagef("garbage %q at the end of the tag", singleton))
		}
		if seen.Contains(singleton) {
			return merry.Wrap(ErrMalformedTag,
				merry.AppendMessagef("duplicate singleton %q", singleton))
		}
		seen.Add(singleton)
		i++

		var data []string
		for i < len(pieces) && len(pieces[i]) > 1 {
			data = append(data, pieces[i])
			i++
		}
		if len(data) == 0 {
			return merry.Wrap(ErrMalformedTag,
				merry.AppendMessagef("singleton %q without data", singleton))
		}
		tag.Extensions.Set(singleton, data)
	}
	return nil
}
