// Package portrait renders character portraits from image files on disk.
// Rendered PNGs are cached in memory and concurrent first requests for the
// same image share one render.
package portrait

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/singleflight"
)

// ErrNotFound is returned when the image file does not exist or the name
// is not a plain file name.
var ErrNotFound = errors.New("portrait not found")

type Store struct {
	dir  string
	size int

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string][]byte
}

// NewStore serves images from dir, fitted into size x size pixels.
func NewStore(dir string, size int) *Store {
	return &Store{dir: dir, size: size, cache: make(map[string][]byte)}
}

// PNG returns the rendered portrait for the image file name.
func (s *Store) PNG(name string) ([]byte, error) {
	if !validName(name) {
		return nil, ErrNotFound
	}
	if b, ok := s.cached(name); ok {
		return b, nil
	}
	v, err, _ := s.group.Do(name, func() (interface{}, error) {
		// Re-check in case another caller stored it while we were queued.
		if b, ok := s.cached(name); ok {
			return b, nil
		}
		b, err := s.render(name)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[name] = b
		s.mu.Unlock()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *Store) cached(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.cache[name]
	return b, ok
}

func (s *Store) render(name string) ([]byte, error) {
	img, err := imaging.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open portrait %s: %w", name, err)
	}
	fitted := imaging.Fit(img, s.size, s.size, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode portrait %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// validName accepts bare file names only, so requests cannot escape dir.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
