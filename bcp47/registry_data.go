package bcp47

// Subtags is the registry every package-level function parses against,
// built once at startup and read-only afterwards.
var Subtags *Registry

func init() {
	Subtags = NewRegistry(defaultSubtags)
}

// Trimmed from the IANA language subtag registry; see
// https://www.iana.org/assignments/language-subtag-registry
var defaultSubtags = []Subtag{
	{Kind: KindLanguage, Key: "aa", Description: []string{"Afar"}},
	{Kind: KindLanguage, Key: "aao", Description: []string{"Algerian Saharan Arabic"}},
	{Kind: KindLanguage, Key: "ab", Description: []string{"Abkhazian"}},
	{Kind: KindLanguage, Key: "af", Description: []string{"Afrikaans"}},
	{Kind: KindLanguage, Key: "ak", Description: []string{"Akan"}},
	{Kind: KindLanguage, Key: "am", Description: []string{"Amharic"}},
	{Kind: KindLanguage, Key: "ar", Description: []string{"Arabic"}},
	{Kind: KindLanguage, Key: "arq", Description: []string{"Algerian Arabic"}},
	{Kind: KindLanguage, Key: "as", Description: []string{"Assamese"}},
	{Kind: KindLanguage, Key: "ase", Description: []string{"American Sign Language"}},
	{Kind: KindLanguage, Key: "az", Description: []string{"Azerbaijani"}},
	{Kind: KindLanguage, Key: "be", Description: []string{"Belarusian"}},
	{Kind: KindLanguage, Key: "bg", Description: []string{"Bulgarian"}},
	{Kind: KindLanguage, Key: "bm", Description: []string{"Bambara"}},
	{Kind: KindLanguage, Key: "bn", Description: []string{"Bengali", "Bangla"}},
	{Kind: KindLanguage, Key: "bo", Description: []string{"Tibetan"}},
	{Kind: KindLanguage, Key: "br", Description: []string{"Breton"}},
	{Kind: KindLanguage, Key: "bs", Description: []string{"Bosnian"}},
	{Kind: KindLanguage, Key: "ca", Description: []string{"Catalan", "Valencian"}},
	{Kind: KindLanguage, Key: "cs", Description: []string{"Czech"}},
	{Kind: KindLanguage, Key: "cy", Description: []string{"Welsh"}},
	{Kind: KindLanguage, Key: "da", Description: []string{"Danish"}},
	{Kind: KindLanguage, Key: "de", Description: []string{"German"}},
	{Kind: KindLanguage, Key: "el", Description: []string{"Modern Greek (1453-)"}},
	{Kind: KindLanguage, Key: "en", Description: []string{"English"}},
	{Kind: KindLanguage, Key: "eo", Description: []string{"Esperanto"}},
	{Kind: KindLanguage, Key: "es", Description: []string{"Spanish", "Castilian"}},
	{Kind: KindLanguage, Key: "et", Description: []string{"Estonian"}},
	{Kind: KindLanguage, Key: "eu", Description: []string{"Basque"}},
	{Kind: KindLanguage, Key: "fa", Description: []string{"Persian"}},
	{Kind: KindLanguage, Key: "fi", Description: []string{"Finnish"}},
	{Kind: KindLanguage, Key: "fo", Description: []string{"Faroese"}},
	{Kind: KindLanguage, Key: "fr", Description: []string{"French"}},
	{Kind: KindLanguage, Key: "fy", Description: []string{"Western Frisian"}},
	{Kind: KindLanguage, Key: "ga", Description: []string{"Irish"}},
	{Kind: KindLanguage, Key: "gd", Description: []string{"Scottish Gaelic", "Gaelic"}},
	{Kind: KindLanguage, Key: "gl", Description: []string{"Galician"}},
	{Kind: KindLanguage, Key: "he", Description: []string{"Hebrew"}},
	{Kind: KindLanguage, Key: "hi", Description: []string{"Hindi"}},
	{Kind: KindLanguage, Key: "hr", Description: []string{"Croatian"}},
	{Kind: KindLanguage, Key: "ht", Description: []string{"Haitian", "Haitian Creole"}},
	{Kind: KindLanguage, Key: "hu", Description: []string{"Hungarian"}},
	{Kind: KindLanguage, Key: "hy", Description: []string{"Armenian"}},
	{Kind: KindLanguage, Key: "id", Description: []string{"Indonesian"}},
	{Kind: KindLanguage, Key: "ig", Description: []string{"Igbo"}},
	{Kind: KindLanguage, Key: "is", Description: []string{"Icelandic"}},
	{Kind: KindLanguage, Key: "it", Description: []string{"Italian"}},
	{Kind: KindLanguage, Key: "ja", Description: []string{"Japanese"}},
	{Kind: KindLanguage, Key: "jbo", Description: []string{"Lojban"}},
	{Kind: KindLanguage, Key: "ka", Description: []string{"Georgian"}},
	{Kind: KindLanguage, Key: "kk", Description: []string{"Kazakh"}},
	{Kind: KindLanguage, Key: "km", Description: []string{"Khmer", "Central Khmer"}},
	{Kind: KindLanguage, Key: "ko", Description: []string{"Korean"}},
	{Kind: KindLanguage, Key: "lt", Description: []string{"Lithuanian"}},
	{Kind: KindLanguage, Key: "lv", Description: []string{"Latvian"}},
	{Kind: KindLanguage, Key: "mi", Description: []string{"Maori"}},
	{Kind: KindLanguage, Key: "mk", Description: []string{"Macedonian"}},
	{Kind: KindLanguage, Key: "mn", Description: []string{"Mongolian"}},
	{Kind: KindLanguage, Key: "ms", Description: []string{"Malay (macrolanguage)"}},
	{Kind: KindLanguage, Key: "my", Description: []string{"Burmese"}},
	{Kind: KindLanguage, Key: "nan", Description: []string{"Min Nan Chinese"}},
	{Kind: KindLanguage, Key: "nb", Description: []string{"Norwegian Bokmål"}},
	{Kind: KindLanguage, Key: "nl", Description: []string{"Dutch", "Flemish"}},
	{Kind: KindLanguage, Key: "nn", Description: []string{"Norwegian Nynorsk"}},
	{Kind: KindLanguage, Key: "no", Description: []string{"Norwegian"}},
	{Kind: KindLanguage, Key: "nv", Description: []string{"Navajo", "Navaho"}},
	{Kind: KindLanguage, Key: "ny", Description: []string{"Nyanja", "Chewa", "Chichewa"}},
	{Kind: KindLanguage, Key: "pl", Description: []string{"Polish"}},
	{Kind: KindLanguage, Key: "pt", Description: []string{"Portuguese"}},
	{Kind: KindLanguage, Key: "ro", Description: []string{"Romanian", "Moldavian", "Moldovan"}},
	{Kind: KindLanguage, Key: "ru", Description: []string{"Russian"}},
	{Kind: KindLanguage, Key: "sgn", Description: []string{"Sign languages"}},
	{Kind: KindLanguage, Key: "sk", Description: []string{"Slovak"}},
	{Kind: KindLanguage, Key: "sl", Description: []string{"Slovenian"}},
	{Kind: KindLanguage, Key: "sq", Description: []string{"Albanian"}},
	{Kind: KindLanguage, Key: "sr", Description: []string{"Serbian"}},
	{Kind: KindLanguage, Key: "sv", Description: []string{"Swedish"}},
	{Kind: KindLanguage, Key: "sw", Description: []string{"Swahili (macrolanguage)"}},
	{Kind: KindLanguage, Key: "ta", Description: []string{"Tamil"}},
	{Kind: KindLanguage, Key: "te", Description: []string{"Telugu"}},
	{Kind: KindLanguage, Key: "th", Description: []string{"Thai"}},
	{Kind: KindLanguage, Key: "tl", Description: []string{"Tagalog"}},
	{Kind: KindLanguage, Key: "tlh", Description: []string{"Klingon", "tlhIngan Hol"}},
	{Kind: KindLanguage, Key: "tr", Description: []string{"Turkish"}},
	{Kind: KindLanguage, Key: "uk", Description: []string{"Ukrainian"}},
	{Kind: KindLanguage, Key: "ur", Description: []string{"Urdu"}},
	{Kind: KindLanguage, Key: "uz", Description: []string{"Uzbek"}},
	{Kind: KindLanguage, Key: "vi", Description: []string{"Vietnamese"}},
	{Kind: KindLanguage, Key: "wo", Description: []string{"Wolof"}},
	{Kind: KindLanguage, Key: "xh", Description: []string{"Xhosa"}},
	{Kind: KindLanguage, Key: "yi", Description: []string{"Yiddish"}},
	{Kind: KindLanguage, Key: "yo", Description: []string{"Yoruba"}},
	{Kind: KindLanguage, Key: "yue", Description: []string{"Yue Chinese", "Cantonese"}},
	{Kind: KindLanguage, Key: "zh", Description: []string{"Chinese"}},
	{Kind: KindLanguage, Key: "zu", Description: []string{"Zulu"}},

	{Kind: KindExtlang, Key: "aao", Description: []string{"Algerian Saharan Arabic"}, PreferredValue: "aao"},
	{Kind: KindExtlang, Key: "afb", Description: []string{"Gulf Arabic"}, PreferredValue: "afb"},
	{Kind: KindExtlang, Key: "ase", Description: []string{"American Sign Language"}, PreferredValue: "ase"},
	{Kind: KindExtlang, Key: "bfi", Description: []string{"British Sign Language"}, PreferredValue: "bfi"},
	{Kind: KindExtlang, Key: "nan", Description: []string{"Min Nan Chinese"}, PreferredValue: "nan"},
	{Kind: KindExtlang, Key: "yue", Description: []string{"Yue Chinese", "Cantonese"}, PreferredValue: "yue"},

	{Kind: KindScript, Key: "arab", Description: []string{"Arabic"}},
	{Kind: KindScript, Key: "cans", Description: []string{"Unified Canadian Aboriginal Syllabics"}},
	{Kind: KindScript, Key: "cyrl", Description: []string{"Cyrillic"}},
	{Kind: KindScript, Key: "deva", Description: []string{"Devanagari", "Nagari"}},
	{Kind: KindScript, Key: "grek", Description: []string{"Greek"}},
	{Kind: KindScript, Key: "hans", Description: []string{"Han (Simplified variant)"}},
	{Kind: KindScript, Key: "hant", Description: []string{"Han (Traditional variant)"}},
	{Kind: KindScript, Key: "hebr", Description: []string{"Hebrew"}},
	{Kind: KindScript, Key: "jpan", Description: []string{"Japanese (alias for Han + Hiragana + Katakana)"}},
	{Kind: KindScript, Key: "kore", Description: []string{"Korean (alias for Hangul + Han)"}},
	{Kind: KindScript, Key: "latn", Description: []string{"Latin"}},
	{Kind: KindScript, Key: "thai", Description: []string{"Thai"}},

	{Kind: KindRegion, Key: "001", Description: []string{"World"}},
	{Kind: KindRegion, Key: "419", Description: []string{"Latin America and the Caribbean"}},
	{Kind: KindRegion, Key: "ar", Description: []string{"Argentina"}},
	{Kind: KindRegion, Key: "at", Description: []string{"Austria"}},
	{Kind: KindRegion, Key: "au", Description: []string{"Australia"}},
	{Kind: KindRegion, Key: "be", Description: []string{"Belgium"}},
	{Kind: KindRegion, Key: "br", Description: []string{"Brazil"}},
	{Kind: KindRegion, Key: "ca", Description: []string{"Canada"}},
	{Kind: KindRegion, Key: "ch", Description: []string{"Switzerland"}},
	{Kind: KindRegion, Key: "cn", Description: []string{"China"}},
	{Kind: KindRegion, Key: "de", Description: []string{"Germany"}},
	{Kind: KindRegion, Key: "es", Description: []string{"Spain"}},
	{Kind: KindRegion, Key: "fr", Description: []string{"France"}},
	{Kind: KindRegion, Key: "gb", Description: []string{"United Kingdom"}},
	{Kind: KindRegion, Key: "hk", Description: []string{"Hong Kong"}},
	{Kind: KindRegion, Key: "ie", Description: []string{"Ireland"}},
	{Kind: KindRegion, Key: "in", Description: []string{"India"}},
	{Kind: KindRegion, Key: "it", Description: []string{"Italy"}},
	{Kind: KindRegion, Key: "jp", Description: []string{"Japan"}},
	{Kind: KindRegion, Key: "kr", Description: []string{"Republic of Korea"}},
	{Kind: KindRegion, Key: "mx", Description: []string{"Mexico"}},
	{Kind: KindRegion, Key: "ni", Description: []string{"Nicaragua"}},
	{Kind: KindRegion, Key: "nl", Description: []string{"Netherlands"}},
	{Kind: KindRegion, Key: "no", Description: []string{"Norway"}},
	{Kind: KindRegion, Key: "nz", Description: []string{"New Zealand"}},
	{Kind: KindRegion, Key: "pt", Description: []string{"Portugal"}},
	{Kind: KindRegion, Key: "rs", Description: []string{"Serbia"}},
	{Kind: KindRegion, Key: "ru", Description: []string{"Russian Federation"}},
	{Kind: KindRegion, Key: "sg", Description: []string{"Singapore"}},
	{Kind: KindRegion, Key: "sr", Description: []string{"Suriname"}},
	{Kind: KindRegion, Key: "tw", Description: []string{"Taiwan, Province of China"}},
	{Kind: KindRegion, Key: "us", Description: []string{"United States"}},

	{Kind: KindVariant, Key: "1901", Description: []string{"Traditional German orthography"}},
	{Kind: KindVariant, Key: "ijekavsk", Description: []string{"Serbian with Ijekavian pronunciation"}},
	{Kind: KindVariant, Key: "rozaj", Description: []string{"Resian", "Resianic", "Rezijan"}},
	{Kind: KindVariant, Key: "scouse", Description: []string{"Scouse"}},
	{Kind: KindVariant, Key: "valencia", Description: []string{"Valencian"}},

	{Kind: KindGrandfathered, Key: "art-lojban", Description: []string{"Lojban"}, PreferredValue: "jbo"},
	{Kind: KindGrandfathered, Key: "cel-gaulish", Description: []string{"Gaulish"}},
	{Kind: KindGrandfathered, Key: "i-ami", Description: []string{"Amis"}, PreferredValue: "ami"},
	{Kind: KindGrandfathered, Key: "i-default", Description: []string{"Default Language"}},
	{Kind: KindGrandfathered, Key: "i-klingon", Description: []string{"Klingon"}, PreferredValue: "tlh"},
	{Kind: KindGrandfathered, Key: "i-navajo", Description: []string{"Navajo"}, PreferredValue: "nv"},
	{Kind: KindGrandfathered, Key: "zh-min-nan", Description: []string{"Minnan, Hokkien, Taiwanese"}, PreferredValue: "nan"},

	{Kind: KindRedundant, Key: "sgn-gb", Description: []string{"British Sign Language"}, PreferredValue: "bfi"},
	{Kind: KindRedundant, Key: "sgn-us", Description: []string{"American Sign Language"}, PreferredValue: "ase"},
	{Kind: KindRedundant, Key: "zh-cmn", Description: []string{"Mandarin Chinese"}, PreferredValue: "cmn"},
	{Kind: KindRedundant, Key: "zh-hans", Description: []string{"simplified Chinese"}},
	{Kind: KindRedundant, Key: "zh-hant", Description: []string{"traditional Chinese"}},
}
