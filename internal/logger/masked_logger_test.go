package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskSensitiveInfo(t *testing.T) {
	require.Equal(t, "", MaskSensitiveInfo(""))
	require.Equal(t, "****", MaskSensitiveInfo("short"))
	require.Equal(t, "1234****WXYZ", MaskSensitiveInfo("12345678WXYZ"))
}

func TestMaskedLogger_RedactsCredentialFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewMaskedLogger(zap.New(core))

	log.Info("starting",
		zap.String("api_key", "AAAABBBBCCCCDDDD"),
		zap.String("bot_token", "123456789:secretpart"),
		zap.String("username", "monster_maker_bot"),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "AAAA********DDDD", fields["api_key"])
	require.NotContains(t, fields["bot_token"], "secretpart")
	require.Equal(t, "monster_maker_bot", fields["username"], "non-sensitive fields untouched")
}

func TestGetLevel(t *testing.T) {
	require.Equal(t, "debug", GetLevel("DEBUG").String())
	require.Equal(t, "warn", GetLevel("warning").String())
	require.Equal(t, "info", GetLevel("bogus").String())
}
