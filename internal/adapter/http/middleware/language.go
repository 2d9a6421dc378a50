package middleware

import (
	"todolist/pkg/translator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const langKey = "lang"

// supportedLanguages and languageMatcher share the same order; the first entry is the fallback.
var (
	supportedLanguages = []string{translator.LanguageEn, translator.LanguageFr}
	languageMatcher    = language.NewMatcher([]language.Tag{language.English, language.French})
)

// LanguageMiddleware resolves the Accept-Language header to one of the translated languages.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, ResolveLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func ResolveLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No {
		return translator.LanguageEn
	}
	return supportedLanguages[index]
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
