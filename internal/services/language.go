package services

import (
	"strings"

	"golang.org/x/text/language"
)

// FallbackLanguage is used for unsupported languages and merged into every
// other language's search index.
const FallbackLanguage = "en"

var supportedLanguages = []string{"de", "en", "es", "fr", "it", "ja", "nl", "pt"}

// dialectAliases maps regional languages to the resource they read.
var dialectAliases = map[string]string{
	"gsw": "de",
	"bar": "de",
	"nds": "de",
	"wa":  "fr",
	"li":  "nl",
}

var languageMatcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(supportedLanguages))
	// The fallback goes first so the matcher defaults to it.
	tags = append(tags, language.MustParse(FallbackLanguage))
	for _, code := range supportedLanguages {
		if code != FallbackLanguage {
			tags = append(tags, language.MustParse(code))
		}
	}
	return language.NewMatcher(tags)
}()

// SupportedLanguages returns the language codes with keyword resources.
func SupportedLanguages() []string {
	return append([]string(nil), supportedLanguages...)
}

// NormalizeLanguage reduces a BCP 47 tag to a supported base language code.
// Regional dialects map to their parent language; anything unsupported or
// unparsable yields FallbackLanguage.
func NormalizeLanguage(tag string) string {
	if code, ok := supportedBase(tag); ok {
		return code
	}
	return FallbackLanguage
}

// NegotiateLanguage picks a supported language from an Accept-Language
// header. Entries are tried in preference order before falling back to the
// matcher, so "gsw" resolves to German even though no Swiss resource exists.
func NegotiateLanguage(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return FallbackLanguage
	}
	for _, tag := range tags {
		if code, ok := supportedBase(tag.String()); ok {
			return code
		}
	}
	matched, _, confidence := languageMatcher.Match(tags...)
	if confidence < language.High {
		return FallbackLanguage
	}
	base, _ := matched.Base()
	return NormalizeLanguage(base.String())
}

func supportedBase(tag string) (string, bool) {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return "", false
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", false
	}
	base, confidence := parsed.Base()
	if confidence == language.No {
		return "", false
	}
	code := base.String()
	if alias, ok := dialectAliases[code]; ok {
		code = alias
	}
	for _, supported := range supportedLanguages {
		if supported == code {
			return code, true
		}
	}
	return "", false
}
