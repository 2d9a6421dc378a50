package translator

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

//go:embed translation/*.toml
var embeddedTranslations embed.FS

type Config struct {
	// TranslationFolder overrides the embedded bundles. Empty means embedded only.
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator loads the embedded message files, then any file found in
// cfg.TranslationFolder on top of them.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	loadEmbedded(cfg.SupportedLanguages)

	if cfg.TranslationFolder == "" {
		return
	}

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}
		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

func loadEmbedded(languages []string) {
	if len(languages) == 0 {
		languages = []string{LanguageEn, LanguageFr}
	}
	for _, lang := range languages {
		path := "translation/" + lang + ".toml"
		if _, err := Translator.LoadMessageFileFS(embeddedTranslations, path); err != nil {
			zap.L().Warn("no embedded translation", zap.String("lang", lang), zap.Error(err))
		}
	}
}
