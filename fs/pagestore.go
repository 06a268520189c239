package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/seofetch"
	"gopkg.in/yaml.v3"
)

// Ensure FileStore implements seofetch.PageStore at compile time.
var _ seofetch.PageStore = (*FileStore)(nil)

// FileStore implements seofetch.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string

	// Now returns the fetch date written to frontmatter.
	Now func() time.Time
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		Now:     time.Now,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes page as Markdown with YAML frontmatter to the temp directory.
func (s *FileStore) Save(ctx context.Context, page *seofetch.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatPage(page, s.Now())
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

type frontmatter struct {
	Source  string `yaml:"source"`
	Title   string `yaml:"title"`
	Fetched string `yaml:"fetched"`
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *seofetch.Page, fetched time.Time) (string, error) {
	fm, err := yaml.Marshal(frontmatter{
		Source:  page.URL,
		Title:   page.Title,
		Fetched: fetched.Format("2006-01-02"),
	})
	if err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}
	return "---\n" + string(fm) + "---\n\n" + page.Content + "\n", nil
}

// Commit replaces the output directory with the saved pages.
func (s *FileStore) Commit() error {
	if _, err := os.Stat(s.tempDir()); os.IsNotExist(err) {
		if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
			return err
		}
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards saved pages.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
