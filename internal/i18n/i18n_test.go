package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewManager_LoadsEmbeddedLocales(t *testing.T) {
	m, err := NewManager("en", zap.NewNop())
	require.NoError(t, err)
	require.Contains(t, m.GetAvailableLanguages(), "en")
	require.Contains(t, m.GetAvailableLanguages(), "zh")
}

func TestNewManager_InvalidDefaultLanguage(t *testing.T) {
	_, err := NewManager("definitely-not-a-tag!", zap.NewNop())
	require.Error(t, err)
}

func TestT_DefaultLanguage(t *testing.T) {
	m, err := NewManager("en", zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, "👋 Bot Online!\nUsage: `/generate Name Element Rarity`", m.T(nil, "msg_greeting"))
}

func TestT_ExplicitLanguage(t *testing.T) {
	m, err := NewManager("en", zap.NewNop())
	require.NoError(t, err)
	zh := "zh"
	require.Contains(t, m.T(&zh, "msg_greeting"), "已上线")
}

func TestT_TemplateData(t *testing.T) {
	m, err := NewManager("en", zap.NewNop())
	require.NoError(t, err)
	out := m.T(nil, "msg_version", "Version", "1.2.3", "BuildDate", "today", "GoVersion", "go1.23")
	require.Contains(t, out, "Version: 1.2.3")
	require.Contains(t, out, "Build date: today")
}

func TestT_UnknownKeyFallsBackToKey(t *testing.T) {
	m, err := NewManager("en", zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, "msg_does_not_exist", m.T(nil, "msg_does_not_exist"))
}

func TestT_UnknownLanguageFallsBackToDefault(t *testing.T) {
	m, err := NewManager("en", zap.NewNop())
	require.NoError(t, err)
	kl := "tlh"
	require.Equal(t, m.T(nil, "msg_greeting"), m.T(&kl, "msg_greeting"))
}
