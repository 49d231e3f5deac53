package linq_test

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSourcesAreGofmtClean keeps the package and the CLI in canonical gofmt layout.
func TestSourcesAreGofmtClean(t *testing.T) {
	for _, pattern := range []string{"*.go", filepath.Join("..", "cmd", "linq", "*.go")} {
		files, err := filepath.Glob(pattern)
		require.NoError(t, err)
		require.NotEmpty(t, files)

		for _, file := range files {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			formatted, err := format.Source(src)
			require.NoError(t, err, file)
			assert.Equal(t, string(formatted), string(src), "%s is not gofmt-clean", file)
		}
	}
}
