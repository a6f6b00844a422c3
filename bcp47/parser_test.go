package bcp47

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseGrandfathered(t *testing.T) {
	tag, err := Parse("i-klingon")
	assert.NoError(t, err)
	assert.Equal(t, "i-klingon", tag.Grandfathered.Key)
	assert.Equal(t, "tlh", tag.Grandfathered.PreferredValue)
	assert.Equal(t, "Klingon", tag.Grandfathered.Description[0])
	assert.Nil(t, tag.Language)
	assert.Nil(t, tag.Extlang)
	assert.Nil(t, tag.Script)
	assert.Nil(t, tag.Region)
	assert.Empty(t, tag.Variants)
	assert.Equal(t, 0, tag.Extensions.Len())

	tag, err = Parse("art-lojban")
	assert.NoError(t, err)
	assert.Equal(t, "art-lojban", tag.Grandfathered.Key)
	assert.Equal(t, "jbo", tag.Grandfathered.PreferredValue)
	assert.Nil(t, tag.Language)
}

func Test_ParseBareLanguage(t *testing.T) {
	tag, err := Parse("en")
	assert.NoError(t, err)
	assert.Equal(t, "en", tag.Language.Key)
	assert.Equal(t, "English", tag.Language.Description[0])
	assert.Nil(t, tag.Extlang)
	assert.Nil(t, tag.Script)
	assert.Nil(t, tag.Region)
	assert.Nil(t, tag.Grandfathered)

	_, err = Parse("cheese")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
	_, err = Parse("dogs")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
}

// Every registered language subtag must parse back to itself.
func Test_ParseAllLanguageSubtags(t *testing.T) {
	for _, st := range defaultSubtags {
		if st.Kind != KindLanguage {
			continue
		}
		tag, err := Parse(st.Key)
		assert.NoError(t, err)
		assert.Equal(t, st.Key, tag.Language.Key)
	}
}

func Test_ParseCaseInsensitive(t *testing.T) {
	for _, raw := range []string{"en-gb", "zh-Hant-HK", "sr-Cyrl-RS", "i-KLINGON"} {
		lower, err := Parse(strings.ToLower(raw))
		assert.NoError(t, err)
		upper, err := Parse(strings.ToUpper(raw))
		assert.NoError(t, err)
		assert.Equal(t, lower.Language, upper.Language)
		assert.Equal(t, lower.Script, upper.Script)
		assert.Equal(t, lower.Region, upper.Region)
		assert.Equal(t, lower.Grandfathered, upper.Grandfathered)
	}
}

func Test_ParseScript(t *testing.T) {
	tag, err := Parse("zh-Hans")
	assert.NoError(t, err)
	assert.Equal(t, "zh", tag.Language.Key)
	assert.Equal(t, "hans", tag.Script.Key)
	assert.Equal(t, "Han (Simplified variant)", tag.Script.Description[0])
	assert.Nil(t, tag.Region)

	// Scripts cannot stand without a language.
	_, err = Parse("Cyrl")
	assert.ErrorIs(t, err, ErrInvalidLanguage)

	// An unknown script is trailing garbage, not a language error.
	_, err = Parse("zh-Hannt")
	assert.ErrorIs(t, err, ErrMalformedTag)
}

func Test_ParseRegion(t *testing.T) {
	tag, err := Parse("en-gb")
	assert.NoError(t, err)
	assert.Equal(t, "en", tag.Language.Key)
	assert.Equal(t, "gb", tag.Region.Key)
	assert.Equal(t, "United Kingdom", tag.Region.Description[0])

	tag, err = Parse("es-419")
	assert.NoError(t, err)
	assert.Equal(t, "419", tag.Region.Key)

	_, err = Parse("419")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
	_, err = Parse("cheese-gb")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
	_, err = Parse("en-murica")
	assert.ErrorIs(t, err, ErrMalformedTag)
}

func Test_ParseFullTag(t *testing.T) {
	tag, err := Parse("zh-Hant-HK")
	assert.NoError(t, err)
	assert.Equal(t, "zh", tag.Language.Key)
	assert.Equal(t, "hant", tag.Script.Key)
	assert.Equal(t, "hk", tag.Region.Key)

	tag, err = Parse("sr-Cyrl-RS")
	assert.NoError(t, err)
	assert.Equal(t, "sr", tag.Language.Key)
	assert.Equal(t, "cyrl", tag.Script.Key)
	assert.Equal(t, "rs", tag.Region.Key)

	_, err = Parse("Latn-us")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
	_, err = Parse("en-cursive-us")
	assert.ErrorIs(t, err, ErrMalformedTag)
}

func Test_ParseExtlang(t *testing.T) {
	tag, err := Parse("sgn-ase")
	assert.NoError(t, err)
	assert.Equal(t, "sgn", tag.Language.Key)
	assert.Equal(t, "ase", tag.Extlang.Key)
	assert.Equal(t, "ase", tag.Extlang.PreferredValue)

	tag, err = Parse("zh-yue")
	assert.NoError(t, err)
	assert.Equal(t, "zh", tag.Language.Key)
	assert.Equal(t, "yue", tag.Extlang.Key)
}

func Test_ParseVariants(t *testing.T) {
	tag, err := Parse("ca-es-valencia")
	assert.NoError(t, err)
	assert.Equal(t, "ca", tag.Language.Key)
	assert.Equal(t, "es", tag.Region.Key)
	assert.Len(t, tag.Variants, 1)
	assert.Equal(t, "valencia", tag.Variants[0].Key)

	// Input order is preserved across multiple variants.
	tag, err = Parse("sl-rozaj-1901")
	assert.NoError(t, err)
	assert.Equal(t, []string{"rozaj", "1901"}, variantKeys(tag))

	tag, err = Parse("sl-1901-rozaj")
	assert.NoError(t, err)
	assert.Equal(t, []string{"1901", "rozaj"}, variantKeys(tag))
}

func variantKeys(tag *Tag) []string {
	keys := make([]string, 0, len(tag.Variants))
	for _, v := range tag.Variants {
		keys = append(keys, v.Key)
	}
	return keys
}

func Test_ParseExtensions(t *testing.T) {
	tag, err := Parse("en-GB-a-foo-x-mouse-dogs-cats")
	assert.NoError(t, err)
	assert.Equal(t, "en", tag.Language.Key)
	assert.Equal(t, "gb", tag.Region.Key)
	assert.Equal(t, 2, tag.Extensions.Len())
	a, _ := tag.Extensions.Get("a")
	assert.Equal(t, []string{"foo"}, a)
	x, _ := tag.Extensions.Get("x")
	assert.Equal(t, []string{"mouse", "dogs", "cats"}, x)

	// Singleton sequences keep input order.
	first := tag.Extensions.Oldest()
	assert.Equal(t, "a", first.Key)
	assert.Equal(t, "x", first.Next().Key)
}

func Test_ParsePrivateUse(t *testing.T) {
	tag, err := Parse("x-foo-bar")
	assert.NoError(t, err)
	assert.Nil(t, tag.Language)
	x, ok := tag.Extensions.Get("x")
	assert.True(t, ok)
	assert.Equal(t, []string{"foo", "bar"}, x)
}

func Test_ParseMalformed(t *testing.T) {
	for _, raw := range []string{
		"en--us",
		"en-us-",
		"-en",
		"x-a-foo",
		"en-x",
		"ar-a-aaa-b-bbb-a-ccc",
		"en-us-x",
	} {
		_, err := Parse(raw)
		assert.ErrorIs(t, err, ErrMalformedTag, raw)
	}
}

func Test_ParseCached(t *testing.T) {
	tag, err := ParseCached("en-gb")
	assert.NoError(t, err)
	again, err := ParseCached("en-gb")
	assert.NoError(t, err)
	assert.Same(t, tag, again)

	_, err = ParseCached("cheese")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
}
