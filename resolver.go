package apppath

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/GriffinCanCode/apppath/internal/platform"
)

// Env looks up an environment variable, mirroring os.LookupEnv. Resolvers
// take it as an explicit capability so resolution stays pure and testable.
type Env = platform.Env

// Resolver maps application identities to path sets under a single
// operating system convention, chosen once at construction. A Resolver is
// immutable and safe for concurrent use.
type Resolver struct {
	conv platform.Convention
}

// ResolverOption customizes resolver construction.
type ResolverOption func(*resolverOptions)

type resolverOptions struct {
	goos string
	env  Env
	home string
}

// WithGOOS overrides the detected operating system. Valid inputs are GOOS
// values; anything that is not darwin or windows resolves with the XDG
// convention.
func WithGOOS(goos string) ResolverOption {
	return func(o *resolverOptions) { o.goos = goos }
}

// WithEnv replaces the environment lookup, defaulting to os.LookupEnv.
func WithEnv(env Env) ResolverOption {
	return func(o *resolverOptions) { o.env = env }
}

// WithHome overrides the home directory used for defaults.
func WithHome(home string) ResolverOption {
	return func(o *resolverOptions) { o.home = home }
}

// NewResolver builds a resolver for the host system, honoring any
// overrides. It fails when no home directory can be determined.
func NewResolver(opts ...ResolverOption) (*Resolver, error) {
	o := resolverOptions{goos: runtime.GOOS, env: os.LookupEnv}
	for _, opt := range opts {
		opt(&o)
	}

	home := o.home
	if home == "" {
		home = detectHome(o.goos, o.env)
	}
	if home == "" {
		return nil, errors.New("home directory could not be determined")
	}

	return &Resolver{conv: platform.Detect(o.goos, o.env, home)}, nil
}

// Resolve derives the path set for app. The result depends only on the
// identity and the environment captured at resolver construction.
func (r *Resolver) Resolve(app *App) (PathSet, error) {
	if app == nil {
		return PathSet{}, fmt.Errorf("%w: app is nil", ErrInvalidIdentity)
	}

	id := platform.ID{
		Name:    app.name,
		Author:  app.author,
		Version: app.version,
		Roaming: app.roaming,
	}

	sharedData := r.conv.SiteData(id)
	sharedConfig := r.conv.SiteConfig(id)

	return PathSet{
		DataDir:          r.conv.UserData(id),
		ConfigDir:        r.conv.UserConfig(id),
		CacheDir:         r.conv.UserCache(id),
		StateDir:         r.conv.UserState(id),
		LogDir:           r.conv.UserLog(id),
		SharedDataDir:    sharedData[0],
		SharedConfigDir:  sharedConfig[0],
		SharedDataDirs:   sharedData,
		SharedConfigDirs: sharedConfig,
	}, nil
}

// Convention names the directory convention in effect: "xdg", "darwin" or
// "windows".
func (r *Resolver) Convention() string { return r.conv.Name() }

// Resolve maps app to a path set using a resolver for the host system.
func Resolve(app *App) (PathSet, error) {
	r, err := NewResolver()
	if err != nil {
		return PathSet{}, err
	}
	return r.Resolve(app)
}

// detectHome resolves the home directory from the injected environment
// first, so callers overriding Env fully control the result.
func detectHome(goos string, env Env) string {
	key := "HOME"
	if goos == "windows" {
		key = "USERPROFILE"
	}
	if v, ok := env(key); ok && v != "" {
		return v
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return ""
}
