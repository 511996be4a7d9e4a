package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	LoadConfig(t.TempDir()) // no config.yaml present

	require.NotNil(t, Config)
	assert.Equal(t, DefaultThreshold, Config.Threshold)
	assert.Equal(t, 10, Config.TopN)
	assert.Equal(t, "similar_papers.txt", Config.OutputPath)
	assert.Equal(t, 2, Config.ParallelismRatio)
	assert.Equal(t, "info", Config.LogLevel)
}

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	yaml := "threshold: 0.65\ntop_n: 5\noutput_path: results.txt\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	LoadConfig(dir)
	assert.Equal(t, 0.65, Config.Threshold)
	assert.Equal(t, 5, Config.TopN)
	assert.Equal(t, "results.txt", Config.OutputPath)
	assert.Equal(t, "debug", Config.LogLevel)
}

// A threshold outside [0,1] in the config file falls back to the default
// instead of poisoning every run.
func TestLoadConfigClampsThreshold(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("threshold: 1.5\n"), 0644))

	LoadConfig(dir)
	assert.Equal(t, DefaultThreshold, Config.Threshold)
}

func TestCompareConfigValidate(t *testing.T) {
	valid := func(t *testing.T) CompareConfig {
		return CompareConfig{
			FolderA:    t.TempDir(),
			FolderB:    t.TempDir(),
			Threshold:  0.8,
			OutputPath: "out.txt",
			SaveReport: true,
		}
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid(t)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing folder A", func(t *testing.T) {
		cfg := valid(t)
		cfg.FolderA = filepath.Join(cfg.FolderA, "nope")
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing folder B", func(t *testing.T) {
		cfg := valid(t)
		cfg.FolderB = filepath.Join(cfg.FolderB, "nope")
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty folder path", func(t *testing.T) {
		cfg := valid(t)
		cfg.FolderA = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("folder is a file", func(t *testing.T) {
		cfg := valid(t)
		file := filepath.Join(t.TempDir(), "a.pdf")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
		cfg.FolderB = file
		assert.Error(t, cfg.Validate())
	})

	t.Run("threshold bounds", func(t *testing.T) {
		for _, th := range []float64{-0.01, 1.01, 2} {
			cfg := valid(t)
			cfg.Threshold = th
			assert.Error(t, cfg.Validate(), "threshold %v", th)
		}
		for _, th := range []float64{0, 0.8, 1} {
			cfg := valid(t)
			cfg.Threshold = th
			assert.NoError(t, cfg.Validate(), "threshold %v", th)
		}
	})

	t.Run("saving needs an output path", func(t *testing.T) {
		cfg := valid(t)
		cfg.OutputPath = ""
		assert.Error(t, cfg.Validate())

		cfg.SaveReport = false
		assert.NoError(t, cfg.Validate())
	})
}
