package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/everledger-liquor/pkg/jwt"
)

func TestTokenCmd_EmiteTokenVerificable(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("APP_ENV", "test")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "0xabc"})
	require.NoError(t, rootCmd.Execute())

	address, err := jwt.Parse("cli-secret", strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "0xabc", address)
}

func TestReplayCmd_Memoria(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("APP_ENV", "test")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"replay"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "0 operaciones re-aplicadas")
}

func TestMigrateCmd_DireccionInvalida(t *testing.T) {
	rootCmd.SetArgs([]string{"migrate", "sideways"})
	assert.Error(t, rootCmd.Execute())
}
