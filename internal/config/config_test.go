package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, ".", cfg.OutputDir)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, ChartSize{Width: 1000, Height: 400}, cfg.YearChart)
		assert.Equal(t, ChartSize{Width: 600, Height: 600}, cfg.ScatterChart)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeSettings(t, "output_dir: /tmp/charts\nseed: 7\nscatter_chart:\n  width: 800\n  height: 800\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "/tmp/charts", cfg.OutputDir)
		assert.Equal(t, int64(7), cfg.Seed)
		assert.Equal(t, ChartSize{Width: 800, Height: 800}, cfg.ScatterChart)
	})

	t.Run("unset sections keep defaults", func(t *testing.T) {
		path := writeSettings(t, "seed: 7\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, ".", cfg.OutputDir)
		assert.Equal(t, ChartSize{Width: 1000, Height: 400}, cfg.YearChart)
		assert.Equal(t, ChartSize{Width: 600, Height: 400}, cfg.CauseChart)
	})

	t.Run("explicit zero seed is preserved", func(t *testing.T) {
		path := writeSettings(t, "seed: 0\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, int64(0), cfg.Seed)
	})

	t.Run("partial chart size backfills the missing dimension", func(t *testing.T) {
		path := writeSettings(t, "year_chart:\n  width: 1400\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, ChartSize{Width: 1400, Height: 400}, cfg.YearChart)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeSettings(t, "output_dir: [\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse settings")
	})

	t.Run("negative dimensions rejected", func(t *testing.T) {
		path := writeSettings(t, "cause_chart:\n  width: -10\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be negative")
	})
}
