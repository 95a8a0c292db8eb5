package configpkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults apply without a config file", func(t *testing.T) {
		viper.Reset()

		c, err := Load(t.TempDir())
		require.NoError(t, err)

		require.Equal(t, "customers", c.DataDir)
		require.Equal(t, "next_account_id.txt", c.CounterFile)
		require.Equal(t, "production", c.Environement)
	})

	t.Run("Config file overrides defaults", func(t *testing.T) {
		viper.Reset()

		dir := t.TempDir()
		content := "DATA_DIR=ledgerdata\nGO_ENV=development\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o644))

		c, err := Load(dir)
		require.NoError(t, err)

		require.Equal(t, "ledgerdata", c.DataDir)
		require.Equal(t, "next_account_id.txt", c.CounterFile)
		require.Equal(t, "development", c.Environement)
	})
}
