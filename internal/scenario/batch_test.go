package scenario

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/clash/internal/game"
)

func TestRunFiles(t *testing.T) {
	paths := []string{
		"testdata/boomerang.yaml",
		"testdata/missing.yaml",
		"testdata/boomerang.yaml",
	}
	reports, err := RunFiles(context.Background(), paths, testDefaults, 2)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	for i, r := range reports {
		assert.Equal(t, paths[i], r.Path)
	}

	require.NoError(t, reports[0].Err)
	assert.Equal(t, game.OutcomeAttackerWins, reports[0].Outcome)
	assert.NotEmpty(t, reports[0].Steps)
	// Same file, same seeds: identical logs.
	assert.Equal(t, reports[0].Steps, reports[2].Steps)

	assert.ErrorIs(t, reports[1].Err, os.ErrNotExist)
	assert.Empty(t, reports[1].Steps)
}

func TestRunFilesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := RunFiles(ctx, []string{"testdata/boomerang.yaml"}, testDefaults, 0)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, reports, 1)
	assert.Empty(t, reports[0].Steps)
}
