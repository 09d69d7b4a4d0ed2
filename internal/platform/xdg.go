package platform

import (
	"path"
	"strings"
)

// XDG defaults, relative to the home directory unless rooted.
// https://specifications.freedesktop.org/basedir-spec/basedir-spec-latest.html
const (
	defDataHome   = ".local/share"
	defConfigHome = ".config"
	defCacheHome  = ".cache"
	defStateHome  = ".local/state"

	defDataDirs   = "/usr/local/share:/usr/share"
	defConfigDirs = "/etc/xdg"
)

// xdgConvention implements the XDG base directory specification. It is the
// normative branch: name then version, author unused.
type xdgConvention struct {
	env  Env
	home string
}

func (c *xdgConvention) Name() string { return "xdg" }

func (c *xdgConvention) UserData(id ID) string {
	return path.Join(c.base("XDG_DATA_HOME", defDataHome), id.Name, id.Version)
}

func (c *xdgConvention) UserConfig(id ID) string {
	return path.Join(c.base("XDG_CONFIG_HOME", defConfigHome), id.Name, id.Version)
}

func (c *xdgConvention) UserCache(id ID) string {
	return path.Join(c.base("XDG_CACHE_HOME", defCacheHome), id.Name, id.Version)
}

func (c *xdgConvention) UserState(id ID) string {
	return path.Join(c.base("XDG_STATE_HOME", defStateHome), id.Name, id.Version)
}

// UserLog nests under the cache directory, mirroring the historical
// appdirs behavior of <cache>/log.
func (c *xdgConvention) UserLog(id ID) string {
	return path.Join(c.UserCache(id), "log")
}

func (c *xdgConvention) SiteData(id ID) []string {
	return c.siteList("XDG_DATA_DIRS", defDataDirs, id)
}

func (c *xdgConvention) SiteConfig(id ID) []string {
	return c.siteList("XDG_CONFIG_DIRS", defConfigDirs, id)
}

// base resolves a single-valued XDG variable, falling back to the
// home-relative default.
func (c *xdgConvention) base(key, fallback string) string {
	if v, ok := lookupAbs(c.env, key, isAbsUnix); ok {
		return v
	}
	return path.Join(c.home, fallback)
}

// siteList resolves a colon-separated XDG list variable, preserving entry
// order and dropping empty or relative entries.
func (c *xdgConvention) siteList(key, fallback string, id ID) []string {
	value := fallback
	if v, ok := c.env(key); ok && v != "" {
		value = v
	}
	var dirs []string
	for _, entry := range strings.Split(value, ":") {
		entry = strings.TrimRight(entry, "/")
		if entry == "" || !isAbsUnix(entry) {
			continue
		}
		dirs = append(dirs, path.Join(entry, id.Name, id.Version))
	}
	if len(dirs) == 0 {
		for _, entry := range strings.Split(fallback, ":") {
			dirs = append(dirs, path.Join(entry, id.Name, id.Version))
		}
	}
	return dirs
}

func isAbsUnix(p string) bool { return strings.HasPrefix(p, "/") }
