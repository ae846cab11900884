package alertfeed

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/eduface/eduface/internal/pkg/logger"
)

// LocalFeed reads alert images from a directory on the local filesystem.
// The directory is populated by an external detection process; this feed
// never writes to it.
type LocalFeed struct {
	dir     string // The directory the external writer deposits images into
	baseURL string // The URL path prefix the directory is served under
}

// NewLocalFeed creates a new LocalFeed instance. The directory is not
// required to exist; the external writer creates it on first capture.
func NewLocalFeed(dir, baseURL string) *LocalFeed {
	return &LocalFeed{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// List enumerates image files in the alert directory, newest first.
func (f *LocalFeed) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(f.dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("dir", f.dir).Msg("Alert directory does not exist, returning empty feed")
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read alert directory %s: %w", f.dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || !isImageFile(de.Name()) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			// File disappeared between readdir and stat; the writer may
			// rotate captures at any time.
			logger.Warn().Err(err).Str("file", de.Name()).Msg("Failed to stat alert file, skipping")
			continue
		}
		entries = append(entries, Entry{
			Filename:   de.Name(),
			CapturedAt: info.ModTime(),
			Path:       f.baseURL + "/" + de.Name(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CapturedAt.After(entries[j].CapturedAt)
	})

	return entries, nil
}

// Dir returns the directory the feed reads from.
func (f *LocalFeed) Dir() string {
	return f.dir
}

// isImageFile reports whether the filename carries an image extension the
// external writer produces.
func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
