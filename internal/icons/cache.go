package icons

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/charmbracelet/log"
)

// FetchFunc downloads the PNG for an icon id.
type FetchFunc func(ctx context.Context, iconID int) ([]byte, error)

// Cache keeps profile icons on disk, one file per player and icon id.
type Cache struct {
	dir   string
	fetch FetchFunc
	mu    sync.Mutex
}

func New(dir string, fetch FetchFunc) *Cache {
	return &Cache{dir: dir, fetch: fetch}
}

// Get returns the icon from disk, downloading and storing it on a miss.
// A new icon id maps to a new file, so a changed icon is never served stale.
func (c *Cache) Get(ctx context.Context, username string, iconID int) ([]byte, error) {
	path := c.Path(username, iconID)

	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(path)
	if err == nil {
		log.Debug("Profile icon cache hit", "username", username, "icon", iconID)
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read cached icon: %w", err)
	}

	data, err = c.fetch(ctx, iconID)
	if err != nil {
		return nil, err
	}
	if err := c.write(path, data); err != nil {
		// Still serve what was downloaded.
		log.Warn("Failed to cache profile icon", "username", username, "icon", iconID, "error", err)
	}
	return data, nil
}

// Path is where the icon of username with iconID is stored.
func (c *Cache) Path(username string, iconID int) string {
	return filepath.Join(c.dir, fmt.Sprintf("%s-%d.png", slug(username), iconID))
}

func (c *Cache) write(path string, data []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(c.dir, ".icon-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func slug(username string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(username) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
