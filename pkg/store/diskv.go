package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const (
	// KeyLog holds the full log as a JSON array, rewritten on every mutation.
	KeyLog = "emotionLog"
	// KeyGoal holds the optional mood goal; it is removed when no goal is set.
	KeyGoal = "moodGoal"

	// MemoryPath selects the in-memory store instead of a directory.
	MemoryPath = ":memory:"

	tempDir = ".tmp"
)

// Persistence is a string key-value store. Load reports whether the key was
// present; a missing key is not an error.
type Persistence interface {
	Load(key string) (string, bool, error)
	Save(key, value string) error
	Remove(key string) error
}

// Load creates a Persistence for the provided config. A nil config is read
// from the environment with LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == MemoryPath {
		return NewMemory(), nil
	}
	return NewDisk(basePath), nil
}

// Disk stores one file per key under a base directory.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// NewDisk returns a diskv-backed store rooted at basePath. Writes go through
// a temp file so a snapshot is never observed half written.
func NewDisk(basePath string) *Disk {
	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, tempDir),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
}

// BasePath is the directory holding the key files.
func (p *Disk) BasePath() string {
	return p.basePath
}

// Load reads key straight from disk, bypassing the cache so that writes made
// by another process are seen.
func (p *Disk) Load(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	if !p.d.Has(key) {
		return "", false, nil
	}
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Save replaces the value stored under key.
func (p *Disk) Save(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	if err := p.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Remove deletes key; removing a missing key is a no-op.
func (p *Disk) Remove(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func checkKey(key string) error {
	switch {
	case key == "":
		return errors.New("store: empty key")
	case strings.ContainsAny(key, `/\`), key == "." || key == "..", strings.HasPrefix(key, "."):
		return fmt.Errorf("store: invalid key %q", key)
	}
	return nil
}

// Keys are flat: every key is a file directly under the base path.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
