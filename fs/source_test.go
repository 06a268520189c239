package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/seofetch/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileSource_Discover(t *testing.T) {
	t.Parallel()

	t.Run("reads URLs in file order skipping comments and blanks", func(t *testing.T) {
		t.Parallel()

		src := &fs.FileSource{Path: writeFile(t, "# ranked results\nhttps://a.example/\n\n  https://b.example/x  \n")}

		urls, err := src.Discover(context.Background(), "anything")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example/", "https://b.example/x"}, urls)
	})

	t.Run("filters keyword columns", func(t *testing.T) {
		t.Parallel()

		src := &fs.FileSource{Path: writeFile(t, "serum\thttps://a.example/\ntoner\thttps://b.example/\nSERUM\thttps://c.example/\nhttps://d.example/\n")}

		urls, err := src.Discover(context.Background(), "Serum")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example/", "https://c.example/", "https://d.example/"}, urls)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		src := &fs.FileSource{Path: filepath.Join(t.TempDir(), "missing.txt")}

		_, err := src.Discover(context.Background(), "kw")

		assert.Error(t, err)
	})
}
