package bcp47

// CanonicalLanguage resolves the canonical language code for the tag,
// honoring preferred values from the registry:
//
//   - a grandfathered preferred value overrides everything ("i-navajo" -> "nv")
//   - an extlang preferred value overrides the primary language ("sgn-ase" -> "ase")
//   - otherwise the primary language subtag is already canonical
func (t *Tag) CanonicalLanguage() string {
	if t.Grandfathered != nil {
		if t.Grandfathered.PreferredValue != "" {
			return t.Grandfathered.PreferredValue
		}
		return t.Grandfathered.Key
	}
	if t.Extlang != nil && t.Extlang.PreferredValue != "" {
		return t.Extlang.PreferredValue
	}
	if t.Language != nil {
		return t.Language.Key
	}
	return ""
}

// Normalize returns a tag with preferred-value substitutions applied. A
// grandfathered or extlang preferred value becomes the primary language;
// script, region and variants pass through untouched.
func (r *Registry) Normalize(t *Tag) *Tag {
	substituted := (t.Grandfathered != nil && t.Grandfathered.PreferredValue != "") ||
		(t.Extlang != nil && t.Extlang.PreferredValue != "")
	if !substituted {
		return t
	}

	canonical := t.CanonicalLanguage()
	lang, ok := r.Lookup(KindLanguage, canonical)
	if !ok {
		lang = Subtag{Kind: KindLanguage, Key: canonical}
	}

	out := *t
	out.Language = &lang
	out.Extlang = nil
	out.Grandfathered = nil
	return &out
}

// Triple is the (language, region, script) key used for code conversion.
// Region and script may be empty.
type Triple struct {
	Language string
	Region   string
	Script   string
}

// Triple projects the tag onto its conversion key. The language component is
// the canonical language, so grandfathered and extlang preferred values are
// already applied.
func (t *Tag) Triple() Triple {
	tr := Triple{Language: t.CanonicalLanguage()}
	if t.Region != nil {
		tr.Region = t.Region.Key
	}
	if t.Script != nil {
		tr.Script = t.Script.Key
	}
	return tr
}
