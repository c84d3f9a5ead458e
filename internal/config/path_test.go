package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("SPENDSENSE_TEST_DIR", "/tmp/spendsense")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "/var/data/app.db", "/var/data/app.db"},
		{"tilde prefix", "~/data/app.db", filepath.Join(home, "data/app.db")},
		{"bare tilde", "~", home},
		{"env var", "$SPENDSENSE_TEST_DIR/app.db", "/tmp/spendsense/app.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestDatabasePath_ConfigOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("database.path", "/custom/location.db")
	assert.Equal(t, "/custom/location.db", DatabasePath())

	viper.Set("database.path", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local/share/spendsense/spendsense.db"), DatabasePath())
}
