package compare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaywantadh/papermatch/config"
)

func validConfig(t *testing.T) *config.CompareConfig {
	t.Helper()
	return &config.CompareConfig{
		FolderA:          t.TempDir(),
		FolderB:          t.TempDir(),
		Threshold:        0.8,
		Recursive:        true,
		OutputPath:       filepath.Join(t.TempDir(), "out.txt"),
		TopN:             10,
		ParallelismRatio: 2,
		SaveReport:       true,
	}
}

func TestRunEmptyCollections(t *testing.T) {
	cfg := validConfig(t)
	rep, err := Run(cfg)
	require.NoError(t, err)
	assert.Empty(t, rep.Matches)
	assert.Equal(t, cfg.FolderA, rep.FolderA)
	assert.Equal(t, cfg.FolderB, rep.FolderB)
}

// Empty A against a non-empty B yields an empty report without errors; the
// unreadable fixture in B is skipped by the scanner.
func TestRunEmptyAAgainstNonEmptyB(t *testing.T) {
	cfg := validConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.FolderB, "junk.pdf"), []byte("junk"), 0644))

	rep, err := Run(cfg)
	require.NoError(t, err)
	assert.Empty(t, rep.Matches)
}

func TestRunRejectsMissingFolder(t *testing.T) {
	cfg := validConfig(t)
	cfg.FolderA = filepath.Join(cfg.FolderA, "does-not-exist")
	_, err := Run(cfg)
	assert.Error(t, err)
}

func TestRunRejectsBadThreshold(t *testing.T) {
	for _, th := range []float64{-0.1, 1.5} {
		cfg := validConfig(t)
		cfg.Threshold = th
		_, err := Run(cfg)
		assert.Error(t, err, "threshold %v must be rejected", th)
	}
}

func TestPoolSize(t *testing.T) {
	assert.Equal(t, 1, poolSize(0))
	assert.Equal(t, 1, poolSize(-3))
	assert.GreaterOrEqual(t, poolSize(1), 1)
	assert.Equal(t, 1, poolSize(1<<16))
}
