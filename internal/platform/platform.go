// Package platform implements the per-operating-system directory
// conventions used to resolve application paths.
//
// Each convention is a pure strategy: it derives every directory from the
// injected environment lookup and home directory, never from ambient
// process state. This keeps resolution deterministic and lets any branch
// be exercised on any host.
package platform

// Env looks up an environment variable. The second return reports whether
// the variable was set at all.
type Env func(key string) (string, bool)

// ID is the normalized application identity used for path construction.
// Fields are assumed to be validated segments (no separators).
type ID struct {
	Name    string
	Author  string
	Version string
	Roaming bool
}

// Convention resolves the standard directories for one operating system
// family. Returned paths are absolute. Site lookups return every
// configured root, highest priority first.
type Convention interface {
	Name() string
	UserData(id ID) string
	UserConfig(id ID) string
	UserCache(id ID) string
	UserState(id ID) string
	UserLog(id ID) string
	SiteData(id ID) []string
	SiteConfig(id ID) []string
}

// Detect returns the convention for a GOOS value. Everything that is not
// darwin or windows follows the XDG base directory specification.
func Detect(goos string, env Env, home string) Convention {
	switch goos {
	case "darwin":
		return &darwinConvention{env: env, home: home}
	case "windows":
		return &windowsConvention{env: env, home: home}
	default:
		return &xdgConvention{env: env, home: home}
	}
}

// lookupAbs returns the value of key if it is set, non-empty and passes
// the supplied absoluteness check. Empty and relative values behave as
// unset so a misconfigured environment cannot break the absolute-path
// invariant.
func lookupAbs(env Env, key string, isAbs func(string) bool) (string, bool) {
	v, ok := env(key)
	if !ok || v == "" || !isAbs(v) {
		return "", false
	}
	return v, true
}
