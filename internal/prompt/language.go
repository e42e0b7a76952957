package prompt

import "fmt"

// languageNames maps supported language tags, including regional variants,
// to the display name used in the language instruction. Tags absent from
// the table are used verbatim so assembly stays total.
var languageNames = map[string]string{
	"spanish":             "Spanish",
	"spanish_mx":          "Mexican Spanish with Mexican cultural references and expressions",
	"spanish_ar":          "Argentinian Spanish with Argentinian cultural references and expressions",
	"german":              "German",
	"french":              "French",
	"french_ca":           "Canadian French (Québécois) with Canadian cultural references",
	"hindi":               "Hindi",
	"urdu":                "Urdu",
	"arabic":              "Arabic",
	"chinese":             "Simplified Chinese (Mandarin)",
	"chinese_traditional": "Traditional Chinese",
	"japanese":            "Japanese",
	"korean":              "Korean",
	"portuguese":          "Portuguese",
	"portuguese_br":       "Brazilian Portuguese with Brazilian cultural references and expressions",
	"russian":             "Russian",
	"italian":             "Italian",
	"dutch":               "Dutch",
	"swedish":             "Swedish",
	"norwegian":           "Norwegian",
	"danish":              "Danish",
	"finnish":             "Finnish",
	"polish":              "Polish",
	"czech":               "Czech",
	"hungarian":           "Hungarian",
	"romanian":            "Romanian",
	"bulgarian":           "Bulgarian",
	"greek":               "Greek",
	"turkish":             "Turkish",
	"hebrew":              "Hebrew",
	"persian":             "Persian (Farsi)",
	"bengali":             "Bengali",
	"tamil":               "Tamil",
	"telugu":              "Telugu",
	"marathi":             "Marathi",
	"gujarati":            "Gujarati",
	"punjabi":             "Punjabi",
	"thai":                "Thai",
	"vietnamese":          "Vietnamese",
	"indonesian":          "Indonesian",
	"malay":               "Malay",
	"tagalog":             "Tagalog (Filipino)",
	"swahili":             "Swahili",
	"amharic":             "Amharic",
	"yoruba":              "Yoruba",
	"hausa":               "Hausa",
	"igbo":                "Igbo",
	"zulu":                "Zulu",
	"afrikaans":           "Afrikaans",
	"ukrainian":           "Ukrainian",
	"croatian":            "Croatian",
	"serbian":             "Serbian",
	"slovenian":           "Slovenian",
	"slovak":              "Slovak",
	"lithuanian":          "Lithuanian",
	"latvian":             "Latvian",
	"estonian":            "Estonian",
	"maltese":             "Maltese",
	"icelandic":           "Icelandic",
	"irish":               "Irish (Gaelic)",
	"welsh":               "Welsh",
	"basque":              "Basque",
	"catalan":             "Catalan",
	"galician":            "Galician",
	"english_uk":          "British English with British cultural references and expressions",
	"english_au":          "Australian English with Australian cultural references and expressions",
	"english_in":          "Indian English with Indian cultural references and expressions",
}

// LanguageInstruction returns the target-language directive. English and
// the empty tag produce the short English form; everything else instructs
// the backend to write natively in the mapped (or raw) language name.
func LanguageInstruction(language string) string {
	if language == "" || language == "english" {
		return "Write the content in English."
	}

	name, ok := languageNames[language]
	if !ok {
		name = language
	}

	return fmt.Sprintf("Write the content entirely in %s. Use natural expressions, idioms, and cultural references appropriate for native speakers of this language. Do not include any English text except for brand names, hashtags, or technical terms that are commonly used in %s. Make sure the tone and style feel authentic to native speakers of this language.", name, name)
}
