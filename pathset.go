package apppath

import (
	"errors"
	"fmt"
	"os"
)

// PathSet is the resolved set of standard directories for one application.
// Every path is absolute. The value is immutable once computed; resolving
// never touches the filesystem.
type PathSet struct {
	DataDir   string `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
	ConfigDir string `json:"config_dir" yaml:"config_dir" toml:"config_dir"`
	CacheDir  string `json:"cache_dir" yaml:"cache_dir" toml:"cache_dir"`
	StateDir  string `json:"state_dir" yaml:"state_dir" toml:"state_dir"`
	LogDir    string `json:"log_dir" yaml:"log_dir" toml:"log_dir"`

	// First entry of the corresponding shared list.
	SharedDataDir   string `json:"shared_data_dir" yaml:"shared_data_dir" toml:"shared_data_dir"`
	SharedConfigDir string `json:"shared_config_dir" yaml:"shared_config_dir" toml:"shared_config_dir"`

	// All configured site-wide roots, highest priority first. Single
	// element on macOS and Windows.
	SharedDataDirs   []string `json:"shared_data_dirs" yaml:"shared_data_dirs" toml:"shared_data_dirs"`
	SharedConfigDirs []string `json:"shared_config_dirs" yaml:"shared_config_dirs" toml:"shared_config_dirs"`
}

// UserDirs lists the per-user directories in a stable order.
func (p PathSet) UserDirs() []string {
	return []string{p.DataDir, p.ConfigDir, p.CacheDir, p.StateDir, p.LogDir}
}

// SharedDirs lists the site-wide directories, data roots first.
func (p PathSet) SharedDirs() []string {
	dirs := make([]string, 0, len(p.SharedDataDirs)+len(p.SharedConfigDirs))
	dirs = append(dirs, p.SharedDataDirs...)
	dirs = append(dirs, p.SharedConfigDirs...)
	return dirs
}

// Ensure creates every per-user directory, including parents. It is
// idempotent and safe to call concurrently: an existing directory is a
// success. A path component occupied by a non-directory file or a
// permission failure yields a *DirCreateError; the first failure stops the
// walk and the remaining directories are left untouched.
func (p PathSet) Ensure() error {
	return ensureDirs(p.UserDirs())
}

// EnsureShared creates the site-wide directories. These usually require
// elevated privileges, which is why they are not part of Ensure.
func (p PathSet) EnsureShared() error {
	return ensureDirs(p.SharedDirs())
}

// Clean recursively removes every per-user directory. Missing directories
// are not an error.
func (p PathSet) Clean() error {
	return removeDirs(p.UserDirs())
}

// CleanShared recursively removes the site-wide directories.
func (p PathSet) CleanShared() error {
	return removeDirs(p.SharedDirs())
}

func ensureDirs(dirs []string) error {
	for _, dir := range dirs {
		if err := ensureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

func ensureDir(dir string) error {
	if info, err := os.Stat(dir); err == nil {
		if info.IsDir() {
			return nil
		}
		return &DirCreateError{Path: dir, Err: errors.New("path exists and is not a directory")}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &DirCreateError{Path: dir, Err: err}
	}
	return nil
}

func removeDirs(dirs []string) error {
	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("remove directory %s: %w", dir, err)
		}
	}
	return nil
}
