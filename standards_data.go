package unilang

import (
	"strings"

	"github.com/bcc-code/unilang/bcp47"
	"github.com/samber/lo"
)

var defaultRegistry *StandardRegistry

// Default returns the process-wide registry with the built-in standards.
func Default() *StandardRegistry {
	return defaultRegistry
}

func init() {
	r, err := NewStandardRegistry(builtinRegistrations())
	if err != nil {
		panic(err)
	}
	defaultRegistry = r
}

// BCP47Case re-keys a lowercase tag into the mixed-case BCP47 convention:
// two-letter regions upper, four-letter scripts title-cased ("sr-latn" ->
// "sr-Latn", "en-gb" -> "en-GB").
func BCP47Case(code string) string {
	pieces := strings.Split(code, "-")
	for i, piece := range pieces[1:] {
		switch len(piece) {
		case 2:
			pieces[i+1] = strings.ToUpper(piece)
		case 4:
			pieces[i+1] = strings.ToUpper(piece[:1]) + piece[1:]
		}
	}
	return strings.Join(pieces, "-")
}

func builtinRegistrations() []Registration {
	strict := bcp47.NewStrictConverter(bcp47Triples())
	bestFit := bcp47.NewBestFitConverter(bcp47Triples())

	return []Registration{
		{Name: "iso-639-1", Overlay: iso6391},
		{Name: "iso-639-2", Overlay: iso6392},
		{Name: "django", Overlay: django},
		{Name: "unisubs", Base: "django", Overlay: unisubs},
		{
			Name:          "youtube",
			Base:          "django",
			CaseTransform: BCP47Case,
			Overlay:       youtube,
			Exclude:       []string{"fy-NL"},
		},
		{Name: "bcp47", Decode: bcp47Decoder(strict), Reverse: internalToBCP47()},
		{Name: "bcp47-lossy", Decode: bcp47Decoder(bestFit), Reverse: internalToBCP47()},
	}
}

func bcp47Decoder(conv bcp47.Converter) func(string) (string, error) {
	return func(code string) (string, error) {
		tag, err := bcp47.Parse(code)
		if err != nil {
			return "", err
		}
		triple := tag.Triple()
		return conv.Lookup(triple.Language, triple.Region, triple.Script)
	}
}

// tripleOverride pins (language, region, script) combinations that resolve
// to a regional or script-specific internal code.
type tripleOverride struct {
	triple   bcp47.Triple
	internal string
}

// Order matters: when several triples share an internal code, the last one
// provides the tag used when encoding back to BCP47.
var tripleOverrides = []tripleOverride{
	{bcp47.Triple{Language: "en", Region: "gb"}, "en-gb"},
	{bcp47.Triple{Language: "es", Region: "ar"}, "es-ar"},
	{bcp47.Triple{Language: "es", Region: "mx"}, "es-mx"},
	{bcp47.Triple{Language: "es", Region: "ni"}, "es-ni"},
	{bcp47.Triple{Language: "fr", Region: "ca"}, "fr-ca"},
	{bcp47.Triple{Language: "pt", Region: "br"}, "pt-br"},
	{bcp47.Triple{Language: "sr", Script: "latn"}, "sr-latn"},
	{bcp47.Triple{Language: "zh", Script: "hans"}, "zh-cn"},
	{bcp47.Triple{Language: "zh", Script: "hant"}, "zh-tw"},
	{bcp47.Triple{Language: "zh", Region: "hk", Script: "hant"}, "zh-hk"},
	{bcp47.Triple{Language: "zh", Region: "sg", Script: "hans"}, "zh-sg"},
	{bcp47.Triple{Language: "zh", Region: "cn"}, "zh-cn"},
	{bcp47.Triple{Language: "zh", Region: "tw"}, "zh-tw"},
	{bcp47.Triple{Language: "zh", Region: "hk"}, "zh-hk"},
	{bcp47.Triple{Language: "zh", Region: "sg"}, "zh-sg"},
	{bcp47.Triple{Language: "yue"}, "zh"},
	{bcp47.Triple{Language: "nan"}, "nan"},
	{bcp47.Triple{Language: "aao"}, "arq"},
	{bcp47.Triple{Language: "arq"}, "arq"},
	{bcp47.Triple{Language: "ase"}, "ase"},
	{bcp47.Triple{Language: "tlh"}, "tlh"},
	{bcp47.Triple{Language: "nv"}, "nv"},
	{bcp47.Triple{Language: "jbo"}, "jbo"},
}

// bcp47Triples is the full decode table: every plain ISO-639-1 language maps
// through its bare triple, then the overrides are layered on top.
func bcp47Triples() map[bcp47.Triple]string {
	table := map[bcp47.Triple]string{}
	for _, m := range iso6391 {
		table[bcp47.Triple{Language: m.Code}] = m.Internal
	}
	for _, o := range tripleOverrides {
		table[o.triple] = o.internal
	}
	return table
}

// internalToBCP47 reverses the triple table for encoding, reconstructing the
// lowercase tag from the triple. Overrides come last so they win ties in
// insertion order, same as every other standard.
func internalToBCP47() []Mapping {
	overrides := lo.Map(tripleOverrides, func(o tripleOverride, _ int) Mapping {
		return Mapping{Code: tagString(o.triple), Internal: o.internal}
	})
	return append(append([]Mapping{}, iso6391...), overrides...)
}

func tagString(t bcp47.Triple) string {
	pieces := []string{t.Language}
	if t.Script != "" {
		pieces = append(pieces, t.Script)
	}
	if t.Region != "" {
		pieces = append(pieces, t.Region)
	}
	return strings.Join(pieces, "-")
}

var iso6391 = []Mapping{
	{"aa", "aa"},
	{"ab", "ab"},
	{"af", "af"},
	{"ak", "aka"},
	{"am", "amh"},
	{"ar", "ar"},
	{"as", "as"},
	{"az", "az"},
	{"be", "be"},
	{"bg", "bg"},
	{"bm", "bam"},
	{"bn", "bn"},
	{"bo", "bo"},
	{"br", "br"},
	{"bs", "bs"},
	{"ca", "ca"},
	{"cs", "cs"},
	{"cy", "cy"},
	{"da", "da"},
	{"de", "de"},
	{"el", "el"},
	{"en", "en"},
	{"eo", "eo"},
	{"es", "es"},
	{"et", "et"},
	{"eu", "eu"},
	{"fa", "fa"},
	{"fi", "fi"},
	{"fo", "fo"},
	{"fr", "fr"},
	{"fy", "fy-nl"},
	{"ga", "ga"},
	{"gd", "gd"},
	{"gl", "gl"},
	{"he", "he"},
	{"hi", "hi"},
	{"hr", "hr"},
	{"hu", "hu"},
	{"hy", "hy"},
	{"id", "id"},
	{"ig", "ibo"},
	{"is", "is"},
	{"it", "it"},
	{"ja", "ja"},
	{"ka", "ka"},
	{"kk", "kk"},
	{"km", "km"},
	{"ko", "ko"},
	{"lt", "lt"},
	{"lv", "lv"},
	{"mi", "mi"},
	{"mk", "mk"},
	{"mn", "mn"},
	{"ms", "ms"},
	{"my", "my"},
	{"nb", "nb"},
	{"nl", "nl"},
	{"nn", "nn"},
	{"no", "no"},
	{"ny", "nya"},
	{"pl", "pl"},
	{"pt", "pt"},
	{"ro", "ro"},
	{"ru", "ru"},
	{"sk", "sk"},
	{"sl", "sl"},
	{"sq", "sq"},
	{"sr", "sr"},
	{"sv", "sv"},
	{"sw", "swa"},
	{"ta", "ta"},
	{"te", "te"},
	{"th", "th"},
	{"tl", "tl"},
	{"tr", "tr"},
	{"uk", "uk"},
	{"ur", "ur"},
	{"uz", "uz"},
	{"vi", "vi"},
	{"wo", "wol"},
	{"xh", "xho"},
	{"yi", "yi"},
	{"yo", "yor"},
	{"zh", "zh"},
	{"zu", "zul"},
}

// ISO-639-2 with the bibliographic code listed before the terminological
// one, so the terminological code wins the reverse mapping.
var iso6392 = []Mapping{
	{"aka", "aka"},
	{"amh", "amh"},
	{"ara", "ar"},
	{"ase", "ase"},
	{"bam", "bam"},
	{"ben", "bn"},
	{"bul", "bg"},
	{"alb", "sq"},
	{"sqi", "sq"},
	{"arm", "hy"},
	{"hye", "hy"},
	{"baq", "eu"},
	{"eus", "eu"},
	{"bur", "my"},
	{"mya", "my"},
	{"cat", "ca"},
	{"cze", "cs"},
	{"ces", "cs"},
	{"chi", "zh"},
	{"zho", "zh"},
	{"wel", "cy"},
	{"dan", "da"},
	{"dut", "nl"},
	{"nld", "nl"},
	{"eng", "en"},
	{"est", "et"},
	{"fin", "fi"},
	{"fre", "fr"},
	{"fra", "fr"},
	{"geo", "ka"},
	{"kat", "ka"},
	{"ger", "de"},
	{"deu", "de"},
	{"gre", "el"},
	{"ell", "el"},
	{"heb", "he"},
	{"hin", "hi"},
	{"hrv", "hr"},
	{"hun", "hu"},
	{"ibo", "ibo"},
	{"ice", "is"},
	{"isl", "is"},
	{"ind", "id"},
	{"jpn", "ja"},
	{"kor", "ko"},
	{"lav", "lv"},
	{"lit", "lt"},
	{"mac", "mk"},
	{"mkd", "mk"},
	{"may", "ms"},
	{"msa", "ms"},
	{"nor", "no"},
	{"per", "fa"},
	{"fas", "fa"},
	{"pol", "pl"},
	{"por", "pt"},
	{"rum", "ro"},
	{"ron", "ro"},
	{"rus", "ru"},
	{"slo", "sk"},
	{"slk", "sk"},
	{"slv", "sl"},
	{"spa", "es"},
	{"srp", "sr"},
	{"swa", "swa"},
	{"swe", "sv"},
	{"tam", "ta"},
	{"tel", "te"},
	{"tha", "th"},
	{"tlh", "tlh"},
	{"tur", "tr"},
	{"ukr", "uk"},
	{"urd", "ur"},
	{"vie", "vi"},
	{"cym", "cy"},
	{"wol", "wol"},
	{"xho", "xho"},
	{"yor", "yor"},
	{"zul", "zul"},
}

var django = []Mapping{
	{"ar", "ar"},
	{"az", "az"},
	{"bg", "bg"},
	{"bn", "bn"},
	{"bs", "bs"},
	{"ca", "ca"},
	{"cs", "cs"},
	{"cy", "cy"},
	{"da", "da"},
	{"de", "de"},
	{"el", "el"},
	{"en", "en"},
	{"en-gb", "en-gb"},
	{"es", "es"},
	{"es-ar", "es-ar"},
	{"es-mx", "es-mx"},
	{"es-ni", "es-ni"},
	{"et", "et"},
	{"eu", "eu"},
	{"fa", "fa"},
	{"fi", "fi"},
	{"fr", "fr"},
	{"fr-ca", "fr-ca"},
	{"fy-nl", "fy-nl"},
	{"ga", "ga"},
	{"gl", "gl"},
	{"he", "he"},
	{"hi", "hi"},
	{"hr", "hr"},
	{"hu", "hu"},
	{"id", "id"},
	{"is", "is"},
	{"it", "it"},
	{"ja", "ja"},
	{"ka", "ka"},
	{"kk", "kk"},
	{"km", "km"},
	{"ko", "ko"},
	{"lt", "lt"},
	{"lv", "lv"},
	{"mk", "mk"},
	{"mn", "mn"},
	{"nb", "nb"},
	{"nl", "nl"},
	{"nn", "nn"},
	{"no", "no"},
	{"pl", "pl"},
	{"pt", "pt"},
	{"pt-br", "pt-br"},
	{"ro", "ro"},
	{"ru", "ru"},
	{"sk", "sk"},
	{"sl", "sl"},
	{"sq", "sq"},
	{"sr", "sr"},
	{"sr-latn", "sr-latn"},
	{"sv", "sv"},
	{"sw", "swa"},
	{"ta", "ta"},
	{"te", "te"},
	{"th", "th"},
	{"tl", "tl"},
	{"tr", "tr"},
	{"uk", "uk"},
	{"ur", "ur"},
	{"vi", "vi"},
	{"zh-cn", "zh-cn"},
	{"zh-tw", "zh-tw"},
}

var unisubs = []Mapping{
	{"aa", "aa"},
	{"ab", "ab"},
	{"af", "af"},
	{"aka", "aka"},
	{"amh", "amh"},
	{"arq", "arq"},
	{"as", "as"},
	{"ase", "ase"},
	{"bam", "bam"},
	{"be", "be"},
	{"bo", "bo"},
	{"br", "br"},
	{"eo", "eo"},
	{"fo", "fo"},
	{"gd", "gd"},
	{"ibo", "ibo"},
	{"jbo", "jbo"},
	{"mi", "mi"},
	{"ms", "ms"},
	{"my", "my"},
	{"nan", "nan"},
	{"nv", "nv"},
	{"nya", "nya"},
	{"swa", "swa"},
	{"tlh", "tlh"},
	{"uz", "uz"},
	{"wol", "wol"},
	{"xho", "xho"},
	{"yi", "yi"},
	{"yor", "yor"},
	{"zh", "zh"},
	{"zh-hk", "zh-hk"},
	{"zh-sg", "zh-sg"},
	{"zul", "zul"},
}

// YouTube inherits django re-cased to mixed-case BCP47 and swaps the Chinese
// dialect codes for its own. The bare "zh" entry points at zh-hk and is
// deliberately inserted before zh-HK, which therefore wins the reverse
// mapping.
var youtube = []Mapping{
	{"fy", "fy-nl"},
	{"zh", "zh-hk"},
	{"zh-CN", "zh-cn"},
	{"zh-HK", "zh-hk"},
	{"zh-Hans", "zh-cn"},
	{"zh-Hant", "zh-tw"},
	{"zh-SG", "zh-sg"},
	{"zh-TW", "zh-tw"},
}
