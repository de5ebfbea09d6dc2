package locale

// knownLocales are the language/territory combinations with their own
// locale data.
var knownLocales = []string{
	"af-NA", "af-ZA", "ar-AE", "ar-DZ", "ar-EG", "ar-IL", "ar-IQ", "ar-JO",
	"ar-LB", "ar-MA", "ar-PS", "ar-SA", "ar-TN", "bg-BG", "ca-AD", "ca-ES",
	"cs-CZ", "da-DK", "da-GL", "de-AT", "de-CH", "de-DE", "de-LI", "el-CY",
	"el-GR", "en-AU", "en-CA", "en-GB", "en-IE", "en-IN", "en-NZ", "en-TT",
	"en-US", "en-ZA", "es-AR", "es-ES", "es-MX", "fa-IR", "fi-FI", "fr-BE",
	"fr-CA", "fr-CH", "fr-FR", "he-IL", "hu-HU", "is-IS", "it-CH", "it-IT",
	"ja-JP", "ko-KR", "lt-LT", "mas-KE", "mas-TZ", "nb-NO", "nl-BE", "nl-NL",
	"pl-PL", "pt-BR", "pt-PT", "ro-RO", "ru-RU", "sk-SK", "sl-SI", "sv-FI",
	"sv-SE", "sw-KE", "sw-TZ", "tr-TR", "uk-UA", "vi-VN", "zh-Hans-CN", "zh-Hant-TW",
}
