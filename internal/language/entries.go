package language

// builtinEntries is the default language table. Display names are unique;
// codes may repeat (regional variants of the same translation code).
var builtinEntries = []Entry{
	{Name: "English (US)", Code: "en", TTSLocale: "en-US"},
	{Name: "English (UK)", Code: "en", TTSLocale: "en-GB"},
	{Name: "Turkish", Code: "tr", TTSLocale: "tr-TR"},
	{Name: "French", Code: "fr", TTSLocale: "fr-FR"},
	{Name: "German", Code: "de", TTSLocale: "de-DE"},
	{Name: "Spanish", Code: "es", TTSLocale: "es-ES"},
	{Name: "Portuguese", Code: "pt", TTSLocale: "pt-BR"},
	{Name: "Italian", Code: "it", TTSLocale: "it-IT"},
	{Name: "Japanese", Code: "ja", TTSLocale: "ja-JP"},
	{Name: "Korean", Code: "ko", TTSLocale: "ko-KR"},
	{Name: "Chinese (Simplified)", Code: "zh-cn", TTSLocale: "zh-CN"},
	{Name: "Chinese (Traditional)", Code: "zh-tw", TTSLocale: "zh-TW"},
	{Name: "Arabic", Code: "ar", TTSLocale: "ar-SA"},
	{Name: "Russian", Code: "ru", TTSLocale: "ru-RU"},
	{Name: "Dutch", Code: "nl", TTSLocale: "nl-NL"},
	{Name: "Polish", Code: "pl", TTSLocale: "pl-PL"},
	{Name: "Greek", Code: "el", TTSLocale: "el-GR"},
	{Name: "Hebrew", Code: "he", TTSLocale: "he-IL"},
	{Name: "Hindi", Code: "hi", TTSLocale: "hi-IN"},
	{Name: "Thai", Code: "th", TTSLocale: "th-TH"},
	{Name: "Vietnamese", Code: "vi", TTSLocale: "vi-VN"},
	{Name: "Indonesian", Code: "id", TTSLocale: "id-ID"},
	{Name: "Malay", Code: "ms", TTSLocale: "ms-MY"},
	{Name: "Filipino", Code: "tl", TTSLocale: "tl-PH"},
	{Name: "Swedish", Code: "sv", TTSLocale: "sv-SE"},
	{Name: "Norwegian", Code: "no", TTSLocale: "no-NO"},
	{Name: "Danish", Code: "da", TTSLocale: "da-DK"},
	{Name: "Finnish", Code: "fi", TTSLocale: "fi-FI"},
	{Name: "Czech", Code: "cs", TTSLocale: "cs-CZ"},
	{Name: "Slovak", Code: "sk", TTSLocale: "sk-SK"},
	{Name: "Hungarian", Code: "hu", TTSLocale: "hu-HU"},
	{Name: "Romanian", Code: "ro", TTSLocale: "ro-RO"},
	{Name: "Bulgarian", Code: "bg", TTSLocale: "bg-BG"},
	{Name: "Croatian", Code: "hr", TTSLocale: "hr-HR"},
	{Name: "Serbian", Code: "sr", TTSLocale: "sr-RS"},
	{Name: "Ukrainian", Code: "uk", TTSLocale: "uk-UA"},
	{Name: "Lithuanian", Code: "lt", TTSLocale: "lt-LT"},
	{Name: "Latvian", Code: "lv", TTSLocale: "lv-LV"},
	{Name: "Estonian", Code: "et", TTSLocale: "et-EE"},
	{Name: "Slovenian", Code: "sl", TTSLocale: "sl-SI"},
	{Name: "Catalan", Code: "ca", TTSLocale: "ca-ES"},
	{Name: "Basque", Code: "eu"},
	{Name: "Galician", Code: "gl"},
	{Name: "Welsh", Code: "cy", TTSLocale: "cy-GB"},
	{Name: "Irish", Code: "ga", TTSLocale: "ga-IE"},
	{Name: "Icelandic", Code: "is", TTSLocale: "is-IS"},
	{Name: "Maltese", Code: "mt", TTSLocale: "mt-MT"},
	{Name: "Esperanto", Code: "eo"},
	{Name: "Latin", Code: "la"},
	{Name: "Persian", Code: "fa", TTSLocale: "fa-IR"},
	{Name: "Urdu", Code: "ur", TTSLocale: "ur-PK"},
	{Name: "Bengali", Code: "bn", TTSLocale: "bn-IN"},
	{Name: "Tamil", Code: "ta", TTSLocale: "ta-IN"},
	{Name: "Telugu", Code: "te", TTSLocale: "te-IN"},
	{Name: "Gujarati", Code: "gu", TTSLocale: "gu-IN"},
	{Name: "Punjabi", Code: "pa", TTSLocale: "pa-IN"},
	{Name: "Marathi", Code: "mr", TTSLocale: "mr-IN"},
	{Name: "Kannada", Code: "kn", TTSLocale: "kn-IN"},
	{Name: "Malayalam", Code: "ml", TTSLocale: "ml-IN"},
	{Name: "Sinhalese", Code: "si", TTSLocale: "si-LK"},
	{Name: "Nepali", Code: "ne", TTSLocale: "ne-NP"},
	{Name: "Burmese", Code: "my", TTSLocale: "my-MM"},
	{Name: "Khmer", Code: "km", TTSLocale: "km-KH"},
	{Name: "Lao", Code: "lo", TTSLocale: "lo-LA"},
	{Name: "Georgian", Code: "ka", TTSLocale: "ka-GE"},
	{Name: "Armenian", Code: "hy", TTSLocale: "hy-AM"},
	{Name: "Azerbaijani", Code: "az", TTSLocale: "az-AZ"},
	{Name: "Kazakh", Code: "kk", TTSLocale: "kk-KZ"},
	{Name: "Kyrgyz", Code: "ky", TTSLocale: "ky-KG"},
	{Name: "Uzbek", Code: "uz", TTSLocale: "uz-UZ"},
	{Name: "Tajik", Code: "tg", TTSLocale: "tg-TJ"},
	{Name: "Mongolian", Code: "mn", TTSLocale: "mn-MN"},
	{Name: "Tibetan", Code: "bo"},
	{Name: "Swahili", Code: "sw", TTSLocale: "sw-KE"},
	{Name: "Amharic", Code: "am", TTSLocale: "am-ET"},
	{Name: "Somali", Code: "so", TTSLocale: "so-SO"},
	{Name: "Zulu", Code: "zu", TTSLocale: "zu-ZA"},
	{Name: "Xhosa", Code: "xh", TTSLocale: "xh-ZA"},
	{Name: "Afrikaans", Code: "af", TTSLocale: "af-ZA"},
	{Name: "Hausa", Code: "ha", TTSLocale: "ha-NG"},
	{Name: "Yoruba", Code: "yo", TTSLocale: "yo-NG"},
	{Name: "Igbo", Code: "ig", TTSLocale: "ig-NG"},
}
