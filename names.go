package unilang

type languageName struct {
	English string
	Native  string
}

// English and native display names for internal codes. Not every internal
// code has an entry; Name/NativeName fail for those.
var internalNames = map[string]languageName{
	"aa":      {"Afar", "Afar"},
	"ab":      {"Abkhazian", "Abkhazian"},
	"af":      {"Afrikaans", "Afrikaans"},
	"aka":     {"Akan", "Akana"},
	"amh":     {"Amharic", "Amharic"},
	"ar":      {"Arabic", "العربية"},
	"arq":     {"Algerian Arabic", "دزيري/جزائري"},
	"as":      {"Assamese", "Assamese"},
	"ase":     {"American Sign Language", "American Sign Language"},
	"az":      {"Azerbaijani", "Azərbaycan"},
	"bam":     {"Bambara", "Bamanankan"},
	"be":      {"Belarusian", "Беларуская"},
	"bg":      {"Bulgarian", "Български"},
	"bn":      {"Bengali", "Bengali"},
	"bo":      {"Tibetan", "Bod skad"},
	"br":      {"Breton", "Brezhoneg"},
	"bs":      {"Bosnian", "Bosanski"},
	"ca":      {"Catalan", "Català"},
	"cs":      {"Czech", "Čeština"},
	"cy":      {"Welsh", "Cymraeg"},
	"da":      {"Danish", "Dansk"},
	"de":      {"German", "Deutsch"},
	"el":      {"Greek", "Ελληνικά"},
	"en":      {"English", "English"},
	"en-gb":   {"English, British", "English, British"},
	"eo":      {"Esperanto", "Esperanto"},
	"es":      {"Spanish", "Español"},
	"es-ar":   {"Spanish, Argentinian", "Spanish, Argentinian"},
	"es-mx":   {"Spanish, Mexican", "Spanish, Mexican"},
	"es-ni":   {"Spanish, Nicaraguan", "Spanish, Nicaraguan"},
	"et":      {"Estonian", "Eesti"},
	"eu":      {"Basque", "Euskara"},
	"fa":      {"Persian", "فارسی"},
	"fi":      {"Finnish", "Suomi"},
	"fo":      {"Faroese", "Føroyskt"},
	"fr":      {"French", "Français"},
	"fr-ca":   {"French, Canadian", "French, Canadian"},
	"fy-nl":   {"Frisian", "Frysk"},
	"ga":      {"Irish", "Gaeilge"},
	"gd":      {"Scottish Gaelic", "Gàidhlig"},
	"gl":      {"Galician", "Galego"},
	"he":      {"Hebrew", "עברית"},
	"hi":      {"Hindi", "हिन्दी"},
	"hr":      {"Croatian", "Hrvatski"},
	"hu":      {"Hungarian", "Magyar"},
	"hy":      {"Armenian", "Հայերեն"},
	"ibo":     {"Igbo", "Igbo"},
	"id":      {"Indonesian", "Bahasa Indonesia"},
	"is":      {"Icelandic", "Íslenska"},
	"it":      {"Italian", "Italiano"},
	"ja":      {"Japanese", "日本語"},
	"jbo":     {"Lojban", "Lojban"},
	"ka":      {"Georgian", "ქართული"},
	"kk":      {"Kazakh", "қазақша"},
	"km":      {"Khmer", "Khmer"},
	"ko":      {"Korean", "한국어"},
	"lt":      {"Lithuanian", "Lietuvių"},
	"lv":      {"Latvian", "Latviešu"},
	"mi":      {"Maori", "Māori"},
	"mk":      {"Macedonian", "Македонски"},
	"mn":      {"Mongolian", "Монгол"},
	"ms":      {"Malay", "Bahasa Melayu"},
	"my":      {"Burmese", "Myanmasa"},
	"nan":     {"Hokkien", "Hokkien"},
	"nb":      {"Norwegian Bokmal", "Norsk Bokmål"},
	"nl":      {"Dutch", "Nederlands"},
	"nn":      {"Norwegian Nynorsk", "Norsk Nynorsk"},
	"no":      {"Norwegian", "Norsk"},
	"nv":      {"Navajo", "Navajo"},
	"nya":     {"Chewa", "Chewa"},
	"pl":      {"Polish", "Polski"},
	"pt":      {"Portuguese", "Português"},
	"pt-br":   {"Portuguese, Brazilian", "Português, Brasil"},
	"ro":      {"Romanian", "Română"},
	"ru":      {"Russian", "Русский"},
	"sk":      {"Slovak", "Slovenčina"},
	"sl":      {"Slovenian", "Slovenščina"},
	"sq":      {"Albanian", "Shqip"},
	"sr":      {"Serbian", "Српски / Srpski"},
	"sr-latn": {"Serbian, Latin", "Srpski"},
	"sv":      {"Swedish", "Svenska"},
	"swa":     {"Swahili", "Kiswahili"},
	"ta":      {"Tamil", "தமிழ்"},
	"te":      {"Telugu", "తెలుగు"},
	"th":      {"Thai", "ไทย"},
	"tl":      {"Tagalog", "Tagalog"},
	"tlh":     {"Klingon", "tlhIngan Hol"},
	"tr":      {"Turkish", "Türkçe"},
	"uk":      {"Ukrainian", "Українська"},
	"ur":      {"Urdu", "اردو"},
	"uz":      {"Uzbek", "O'zbek"},
	"vi":      {"Vietnamese", "Tiếng Việt"},
	"wol":     {"Wolof", "Wolof"},
	"xho":     {"Xhosa", "isiXhosa"},
	"yi":      {"Yiddish", "ייִדיש"},
	"yor":     {"Yoruba", "Yorùbá"},
	"zh":      {"Chinese, Yue", "中文"},
	"zh-cn":   {"Chinese, Simplified", "简体中文"},
	"zh-hk":   {"Chinese, Traditional (Hong Kong)", "繁體中文(香港)"},
	"zh-sg":   {"Chinese, Simplified (Singaporean)", "简体中文(新加坡)"},
	"zh-tw":   {"Chinese, Traditional", "繁體中文"},
	"zul":     {"Zulu", "isiZulu"},
}
