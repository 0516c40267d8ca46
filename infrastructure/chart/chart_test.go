package chart_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/diffprobe/domain"
	"github.com/rios0rios0/diffprobe/infrastructure/chart"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("should write a non-empty PNG file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "mismatch_statistics.png")
		counts := []domain.CategoryCount{
			{Name: "Source Code", Count: 12},
			{Name: "Test Code", Count: 4},
			{Name: "README", Count: 1},
			{Name: "LICENSE", Count: 0},
		}

		// when
		err := chart.New().Render(path, counts)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		require.NotEmpty(t, content)
		// PNG signature
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, content[:4])
	})

	t.Run("should fail for an unwritable path", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing", "chart.png")
		counts := []domain.CategoryCount{{Name: "Source Code", Count: 1}}

		// when
		err := chart.New().Render(path, counts)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create chart file")
	})
}
