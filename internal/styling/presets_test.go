package styling_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/campusmap/internal/styling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := styling.Default()

	assert.Equal(t, []string{"presetWind4", "presetIcons", "presetAttributify"}, cfg.Names())
}

func TestLoad(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")

	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := styling.Load("")

		require.NoError(t, err)
		assert.Equal(t, styling.Default(), cfg)
	})

	t.Run("shipped config matches defaults", func(t *testing.T) {
		cfg, err := styling.Load(filepath.Join("..", "..", "configs", "styling.yaml"))

		require.NoError(t, err)
		assert.Equal(t, styling.Default().Names(), cfg.Names())
	})

	t.Run("yaml list of names", func(t *testing.T) {
		path := filepath.Join(dir, "names.yaml")
		filet.File(t, path, "presets:\n  - presetIcons\n  - presetWind4\n")

		cfg, err := styling.Load(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"presetIcons", "presetWind4"}, cfg.Names())
	})

	t.Run("json activation records", func(t *testing.T) {
		path := filepath.Join(dir, "records.json")
		filet.File(t, path, `{"presets":[{"name":"presetWind4"},{"name":"presetAttributify"}]}`)

		cfg, err := styling.Load(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"presetWind4", "presetAttributify"}, cfg.Names())
	})

	t.Run("missing presets key uses defaults", func(t *testing.T) {
		path := filepath.Join(dir, "other.yaml")
		filet.File(t, path, "theme: dark\n")

		cfg, err := styling.Load(path)

		require.NoError(t, err)
		assert.Equal(t, styling.Default().Names(), cfg.Names())
	})

	t.Run("empty presets list", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		filet.File(t, path, `{"presets":[]}`)

		cfg, err := styling.Load(path)

		require.NoError(t, err)
		assert.Empty(t, cfg.Names())
	})

	t.Run("unknown preset", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.yaml")
		filet.File(t, path, "presets:\n  - presetUno\n")

		cfg, err := styling.Load(path)

		require.ErrorIs(t, err, styling.ErrUnknownPreset)
		assert.Nil(t, cfg)
	})

	t.Run("presets is not a list", func(t *testing.T) {
		path := filepath.Join(dir, "scalar.yaml")
		filet.File(t, path, "presets: presetIcons\n")

		_, err := styling.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "presets must be a list")
	})

	t.Run("record without name", func(t *testing.T) {
		path := filepath.Join(dir, "noname.json")
		filet.File(t, path, `{"presets":[{"label":"x"}]}`)

		_, err := styling.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "preset #0 has no name")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := styling.Load(filepath.Join(dir, "absent.yaml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read styling config")
	})
}

func TestConfig_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(styling.Default())

	require.NoError(t, err)
	assert.JSONEq(t,
		`{"presets":[{"name":"presetWind4"},{"name":"presetIcons"},{"name":"presetAttributify"}]}`,
		string(data),
	)

	data, err = json.Marshal(&styling.Config{})

	require.NoError(t, err)
	assert.JSONEq(t, `{"presets":[]}`, string(data))
}
