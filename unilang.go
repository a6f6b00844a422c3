package unilang

import (
	"github.com/ansel1/merry/v2"
)

// LanguageCode is a language identifier held in the internal code space,
// decoded from and encodable into any registered standard.
type LanguageCode struct {
	code     string
	registry *StandardRegistry
}

// New decodes a code from the given standard using the default registry.
func New(code, standard string) (LanguageCode, error) {
	return Default().Decode(code, standard)
}

// MustNew is New for statically known codes.
func MustNew(code, standard string) LanguageCode {
	lc, err := New(code, standard)
	if err != nil {
		panic(err)
	}
	return lc
}

// Internal returns the internal representation of the code.
func (lc LanguageCode) Internal() string {
	return lc.code
}

// Encode renders the code in the given standard. Fails with ErrUnknownCode
// when the internal code has no representation there.
func (lc LanguageCode) Encode(standard string) (string, error) {
	return lc.registry.encode(lc.code, standard)
}

// Aliases returns this code's representation in every standard that can
// encode it, keyed by standard name.
func (lc LanguageCode) Aliases() map[string]string {
	out := map[string]string{}
	for _, name := range lc.registry.names {
		if code, ok := lc.registry.standards[name].fromInternal[lc.code]; ok {
			out[name] = code
		}
	}
	return out
}

// Name returns the English name of the language.
func (lc LanguageCode) Name() (string, error) {
	names, ok := internalNames[lc.code]
	if !ok {
		return "", merry.Wrap(ErrUnknownCode,
			merry.AppendMessagef("no name for internal code %q", lc.code))
	}
	return names.English, nil
}

// NativeName returns the language's name in the language itself.
func (lc LanguageCode) NativeName() (string, error) {
	names, ok := internalNames[lc.code]
	if !ok {
		return "", merry.Wrap(ErrUnknownCode,
			merry.AppendMessagef("no name for internal code %q", lc.code))
	}
	return names.Native, nil
}

// NameMapping returns code -> English name for every code of one standard
// that has a name entry.
func NameMapping(standard string) (map[string]string, error) {
	return nameMapping(standard, func(n languageName) string { return n.English })
}

// NativeNameMapping returns code -> native name for every code of one
// standard that has a name entry.
func NativeNameMapping(standard string) (map[string]string, error) {
	return nameMapping(standard, func(n languageName) string { return n.Native })
}

func nameMapping(standard string, pick func(languageName) string) (map[string]string, error) {
	table, err := Default().table(standard)
	if err != nil {
		return nil, err
	}
	if table.toInternal == nil {
		return nil, merry.Wrap(ErrUnknownStandard,
			merry.AppendMessagef("%q is parser-backed and has no finite code list", standard))
	}

	out := map[string]string{}
	for pair := table.toInternal.Oldest(); pair != nil; pair = pair.Next() {
		if names, ok := internalNames[pair.Value]; ok {
			out[pair.Key] = pick(names)
		}
	}
	return out, nil
}

// Codes lists the codes of a table-backed standard in registration order.
func Codes(standard string) ([]string, error) {
	table, err := Default().table(standard)
	if err != nil {
		return nil, err
	}
	if table.toInternal == nil {
		return nil, merry.Wrap(ErrUnknownStandard,
			merry.AppendMessagef("%q is parser-backed and has no finite code list", standard))
	}
	out := make([]string, 0, table.toInternal.Len())
	for pair := table.toInternal.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out, nil
}
