package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed all:locales
var localeFS embed.FS

// Manager owns the i18n bundle and a localizer per loaded language.
type Manager struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *zap.Logger
	localizers      map[string]*i18n.Localizer
	availableLangs  map[string]string
}

func NewManager(defaultLang string, logger *zap.Logger) (*Manager, error) {
	defaultLanguageTag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid default language tag '%s': %w", defaultLang, err)
	}

	bundle := i18n.NewBundle(defaultLanguageTag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	m := &Manager{
		bundle:          bundle,
		defaultLanguage: defaultLanguageTag,
		logger:          logger.Named("i18n"),
		localizers:      make(map[string]*i18n.Localizer),
		availableLangs:  make(map[string]string),
	}

	if err := m.loadTranslations(); err != nil {
		return nil, err
	}

	for langCode := range m.availableLangs {
		m.localizers[langCode] = i18n.NewLocalizer(m.bundle, langCode)
	}
	if _, ok := m.localizers[defaultLang]; !ok {
		m.localizers[defaultLang] = i18n.NewLocalizer(m.bundle, defaultLang)
		m.availableLangs[defaultLang] = defaultLang
		m.logger.Warn("Default language was not found in locale files, added manually", zap.String("lang", defaultLang))
	}

	m.logger.Info("i18n manager initialized",
		zap.String("default_language", defaultLang),
		zap.Int("loaded_languages", len(m.availableLangs)),
	)
	return m, nil
}

func (m *Manager) loadTranslations() error {
	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return fmt.Errorf("failed to read embedded locales directory: %w", err)
	}

	loadedCount := 0
	for _, file := range files {
		fileName := file.Name()
		if file.IsDir() || filepath.Ext(fileName) != ".toml" {
			continue
		}
		if _, err := m.bundle.LoadMessageFileFS(localeFS, "locales/"+fileName); err != nil {
			m.logger.Warn("Failed to load translation file", zap.String("file", fileName), zap.Error(err))
			continue
		}
		loadedCount++

		// Filenames look like active.en.toml; the language code is the
		// last part before the extension.
		baseName := strings.TrimSuffix(fileName, ".toml")
		parts := strings.Split(baseName, ".")
		langCode := parts[len(parts)-1]
		m.availableLangs[langCode] = langCode
	}

	if loadedCount == 0 {
		return errors.New("no valid translation files loaded")
	}
	return nil
}

// T translates the message identified by key for the given language,
// falling back to the default language and finally to the key itself.
// args are key-value pairs used as template data.
func (m *Manager) T(lang *string, key string, args ...interface{}) string {
	langCode := m.defaultLanguage.String()
	if lang != nil && *lang != "" {
		langCode = *lang
	}

	localizer, ok := m.localizers[langCode]
	if !ok {
		localizer = m.localizers[m.defaultLanguage.String()]
		if localizer == nil {
			return key
		}
	}

	templateData := make(map[string]interface{})
	for i := 0; i+1 < len(args); i += 2 {
		if k, ok := args[i].(string); ok {
			templateData[k] = args[i+1]
		}
	}

	localizeConfig := &i18n.LocalizeConfig{MessageID: key}
	if len(templateData) > 0 {
		localizeConfig.TemplateData = templateData
	}

	localized, err := localizer.Localize(localizeConfig)
	if err != nil {
		m.logger.Debug("Failed to localize message", zap.String("key", key), zap.String("lang", langCode), zap.Error(err))
		return key
	}
	return localized
}

// GetAvailableLanguages returns the loaded language codes.
func (m *Manager) GetAvailableLanguages() []string {
	langs := make([]string, 0, len(m.availableLangs))
	for code := range m.availableLangs {
		langs = append(langs, code)
	}
	return langs
}
