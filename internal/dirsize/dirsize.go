// Package dirsize computes recursive directory statistics for CLI
// reporting.
package dirsize

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// Info summarizes a directory tree.
type Info struct {
	Files int64
	Bytes int64
}

// Of walks root without following symlinks and sums regular file sizes.
// Unreadable entries are skipped rather than failing the whole walk.
func Of(root string) (Info, error) {
	var files, bytes int64
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		// fastwalk invokes the callback from multiple goroutines.
		atomic.AddInt64(&files, 1)
		atomic.AddInt64(&bytes, info.Size())
		return nil
	})
	if err != nil {
		return Info{}, err
	}
	return Info{Files: files, Bytes: bytes}, nil
}

// Human renders a byte count in binary units.
func Human(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), units[exp])
}
