package capture

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DirCamera plays back the JPEG files of a directory in name order, one per
// Preview call, wrapping around at the end. The listing is refreshed on each
// wrap so files dropped in by a tethering tool are picked up.
type DirCamera struct {
	dir    string
	logger *slog.Logger
	files  []string
	next   int
}

func NewDirCamera(dir string, logger *slog.Logger) *DirCamera {
	return &DirCamera{dir: dir, logger: logger}
}

// Preview returns the next file's bytes. An empty directory yields no frame;
// a missing or unreadable directory is an error.
func (c *DirCamera) Preview() ([]byte, error) {
	if c.next >= len(c.files) {
		files, err := listJPEG(c.dir)
		if err != nil {
			return nil, err
		}
		c.files, c.next = files, 0
		if len(files) == 0 {
			return nil, nil
		}
	}
	path := c.files[c.next]
	c.next++
	data, err := os.ReadFile(path)
	if err != nil {
		// The file may have been removed since listing; skip this tick.
		if c.logger != nil {
			c.logger.Debug("dir camera read failed", "path", path, "error", err)
		}
		return nil, nil
	}
	return data, nil
}

func listJPEG(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("capture: read camera dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".jpg", ".jpeg":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
