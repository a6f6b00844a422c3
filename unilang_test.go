package unilang

import (
	"testing"

	"github.com/bcc-code/unilang/bcp47"
	"github.com/stretchr/testify/assert"
)

func Test_DecodeEncode(t *testing.T) {
	lc, err := New("en", "iso-639-1")
	assert.NoError(t, err)
	assert.Equal(t, "en", lc.Internal())

	code, err := lc.Encode("iso-639-1")
	assert.NoError(t, err)
	assert.Equal(t, "en", code)

	lc, err = New("bm", "iso-639-1")
	assert.NoError(t, err)
	code, err = lc.Encode("iso-639-1")
	assert.NoError(t, err)
	assert.Equal(t, "bm", code)
	code, err = lc.Encode("unisubs")
	assert.NoError(t, err)
	assert.Equal(t, "bam", code)
}

func Test_DecodeErrors(t *testing.T) {
	_, err := New("en", "klingon-federation")
	assert.ErrorIs(t, err, ErrUnknownStandard)

	_, err = New("american", "iso-639-1")
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func Test_EncodeMissingCode(t *testing.T) {
	// tlh exists in unisubs but django has no Klingon; a legitimate miss.
	lc, err := New("tlh", "unisubs")
	assert.NoError(t, err)
	_, err = lc.Encode("django")
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func Test_Aliases(t *testing.T) {
	lc, err := New("bm", "iso-639-1")
	assert.NoError(t, err)

	aliases := lc.Aliases()
	assert.Equal(t, "bm", aliases["iso-639-1"])
	assert.Equal(t, "bam", aliases["unisubs"])
	assert.Equal(t, "bam", aliases["iso-639-2"])
	assert.NotContains(t, aliases, "django")
}

func Test_Names(t *testing.T) {
	lc := MustNew("bm", "iso-639-1")
	name, err := lc.Name()
	assert.NoError(t, err)
	assert.Equal(t, "Bambara", name)

	native, err := lc.NativeName()
	assert.NoError(t, err)
	assert.Equal(t, "Bamanankan", native)

	mapping, err := NameMapping("iso-639-1")
	assert.NoError(t, err)
	assert.Equal(t, "English", mapping["en"])
	assert.Equal(t, "Bambara", mapping["bm"])

	_, err = NameMapping("bcp47")
	assert.ErrorIs(t, err, ErrUnknownStandard)
}

func Test_ISO6392Bibliographic(t *testing.T) {
	// Both the bibliographic and terminological codes decode...
	ger := MustNew("ger", "iso-639-2")
	deu := MustNew("deu", "iso-639-2")
	assert.Equal(t, ger.Internal(), deu.Internal())

	// ...and the terminological code wins the reverse mapping.
	code, err := deu.Encode("iso-639-2")
	assert.NoError(t, err)
	assert.Equal(t, "deu", code)

	code, err = MustNew("wel", "iso-639-2").Encode("iso-639-2")
	assert.NoError(t, err)
	assert.Equal(t, "cym", code)
}

func Test_BCP47Standard(t *testing.T) {
	lc, err := New("en-gb", "bcp47")
	assert.NoError(t, err)
	assert.Equal(t, "en-gb", lc.Internal())

	code, err := lc.Encode("unisubs")
	assert.NoError(t, err)
	assert.Equal(t, "en-gb", code)

	// Round trip without lossy fallback.
	code, err = lc.Encode("bcp47")
	assert.NoError(t, err)
	assert.Equal(t, "en-gb", code)

	lc, err = New("zh-Hant-HK", "bcp47")
	assert.NoError(t, err)
	assert.Equal(t, "zh-hk", lc.Internal())

	// Extensions carry no conversion weight.
	lc, err = New("en-GB-a-foo-x-mouse-dogs-cats", "bcp47")
	assert.NoError(t, err)
	assert.Equal(t, "en-gb", lc.Internal())

	lc, err = New("en-x-cats-dogs-mice", "bcp47")
	assert.NoError(t, err)
	assert.Equal(t, "en", lc.Internal())

	// Grandfathered and extlang preferred values apply before conversion.
	lc, err = New("i-klingon", "bcp47")
	assert.NoError(t, err)
	assert.Equal(t, "tlh", lc.Internal())

	lc, err = New("sgn-ase", "bcp47")
	assert.NoError(t, err)
	assert.Equal(t, "ase", lc.Internal())

	lc, err = New("aao", "bcp47")
	assert.NoError(t, err)
	assert.Equal(t, "arq", lc.Internal())

	lc, err = New("yue", "bcp47")
	assert.NoError(t, err)
	assert.Equal(t, "zh", lc.Internal())
}

func Test_BCP47StrictVersusLossy(t *testing.T) {
	// The strict table has no (en, us, latn) entry.
	_, err := New("en-Latn-US", "bcp47")
	assert.ErrorIs(t, err, bcp47.ErrNotFound)

	lossy, err := New("en-Latn-US", "bcp47-lossy")
	assert.NoError(t, err)
	assert.Equal(t, "en", lossy.Internal())

	plain, err := New("en", "bcp47")
	assert.NoError(t, err)
	assert.Equal(t, plain.Internal(), lossy.Internal())

	lossy, err = New("sr-Latn-SR", "bcp47-lossy")
	assert.NoError(t, err)
	assert.Equal(t, "sr-latn", lossy.Internal())

	// A malformed tag fails the same way under both policies.
	_, err = New("en--us", "bcp47")
	assert.ErrorIs(t, err, bcp47.ErrMalformedTag)
	_, err = New("en--us", "bcp47-lossy")
	assert.ErrorIs(t, err, bcp47.ErrMalformedTag)
	_, err = New("cheese", "bcp47-lossy")
	assert.ErrorIs(t, err, bcp47.ErrInvalidLanguage)
}
