// Package unilang converts language codes between named standards by routing
// them through one internal "universal" code space.
//
// Decode a code by naming the standard it is written in, then encode it into
// any other registered standard:
//
//	lc, err := unilang.New("en", "iso-639-1")
//	code, err := lc.Encode("youtube")
package unilang

import (
	"strings"

	"github.com/ansel1/merry/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	ErrUnknownStandard = merry.Sentinel("standard is not registered")
	ErrUnknownCode     = merry.Sentinel("code is not present in standard")
)

// Mapping is one standard-code -> internal-code pair. Standards are declared
// as ordered lists of these because insertion order decides which standard
// code wins the reverse mapping when several share an internal code.
type Mapping struct {
	Code     string
	Internal string
}

// CaseTransform re-keys codes copied from a base standard, e.g. to the
// mixed-case region convention some platforms use ("en-gb" -> "en-GB").
type CaseTransform func(code string) string

// Registration declares one standard. Table-backed standards use Overlay,
// optionally on top of Base minus Exclude. Parser-backed standards (BCP47)
// set Decode and Reverse instead.
type Registration struct {
	Name          string
	Overlay       []Mapping
	Base          string
	Exclude       []string
	CaseTransform CaseTransform

	Decode  func(code string) (string, error)
	Reverse []Mapping
}

type standardTable struct {
	toInternal   *orderedmap.OrderedMap[string, string]
	fromInternal map[string]string
	decode       func(code string) (string, error)
}

// StandardRegistry holds every registered standard, frozen after
// construction. Reads are lock-free and safe from any number of goroutines.
type StandardRegistry struct {
	standards map[string]*standardTable
	names     []string
}

// NewStandardRegistry processes registrations in order; a Base must be
// registered before any standard that builds on it.
func NewStandardRegistry(regs []Registration) (*StandardRegistry, error) {
	r := &StandardRegistry{standards: map[string]*standardTable{}}
	for _, reg := range regs {
		table, err := r.compose(reg)
		if err != nil {
			return nil, err
		}
		name := strings.ToLower(reg.Name)
		r.standards[name] = table
		r.names = append(r.names, name)
	}
	return r, nil
}

func (r *StandardRegistry) compose(reg Registration) (*standardTable, error) {
	if reg.Decode != nil {
		from := make(map[string]string, len(reg.Reverse))
		for _, m := range reg.Reverse {
			from[m.Internal] = m.Code
		}
		return &standardTable{decode: reg.Decode, fromInternal: from}, nil
	}

	to := orderedmap.New[string, string]()
	if reg.Base != "" {
		base, ok := r.standards[strings.ToLower(reg.Base)]
		if !ok {
			return nil, merry.Wrap(ErrUnknownStandard,
				merry.AppendMessagef("%q (base of %q)", reg.Base, reg.Name))
		}
		for pair := base.toInternal.Oldest(); pair != nil; pair = pair.Next() {
			key := pair.Key
			if reg.CaseTransform != nil {
				key = reg.CaseTransform(key)
			}
			to.Set(key, pair.Value)
		}
	}
	for _, m := range reg.Overlay {
		to.Set(m.Code, m.Internal)
	}
	for _, code := range reg.Exclude {
		to.Delete(code)
	}

	// Reverse in insertion order so the last-inserted code wins ties.
	// Standards downstream rely on specific codes winning, so this stays
	// order-dependent.
	from := make(map[string]string, to.Len())
	for pair := to.Oldest(); pair != nil; pair = pair.Next() {
		from[pair.Value] = pair.Key
	}
	return &standardTable{toInternal: to, fromInternal: from}, nil
}

// Standards lists the registered standard names in registration order.
func (r *StandardRegistry) Standards() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *StandardRegistry) table(standard string) (*standardTable, error) {
	table, ok := r.standards[strings.ToLower(standard)]
	if !ok {
		return nil, merry.Wrap(ErrUnknownStandard, merry.AppendMessagef("%q", standard))
	}
	return table, nil
}

// Decode resolves a standard-specific code into a LanguageCode holding the
// internal representation.
func (r *StandardRegistry) Decode(code, standard string) (LanguageCode, error) {
	table, err := r.table(standard)
	if err != nil {
		return LanguageCode{}, err
	}

	if table.decode != nil {
		internal, err := table.decode(code)
		if err != nil {
			return LanguageCode{}, err
		}
		return LanguageCode{code: internal, registry: r}, nil
	}

	internal, ok := table.toInternal.Get(code)
	if !ok {
		return LanguageCode{}, merry.Wrap(ErrUnknownCode,
			merry.AppendMessagef("%q in standard %q", code, standard))
	}
	return LanguageCode{code: internal, registry: r}, nil
}

func (r *StandardRegistry) encode(internal, standard string) (string, error) {
	table, err := r.table(standard)
	if err != nil {
		return "", err
	}
	code, ok := table.fromInternal[internal]
	if !ok {
		// Legitimate outcome: internal codes need not exist in every
		// standard.
		return "", merry.Wrap(ErrUnknownCode,
			merry.AppendMessagef("internal code %q has no %q representation", internal, standard))
	}
	return code, nil
}
