package apppath_test

import (
	"strings"
	"testing"

	"github.com/GriffinCanCode/apppath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapEnv(m map[string]string) apppath.Env {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func posixResolver(t *testing.T, env map[string]string) *apppath.Resolver {
	t.Helper()
	r, err := apppath.NewResolver(
		apppath.WithGOOS("linux"),
		apppath.WithHome("/home/u"),
		apppath.WithEnv(mapEnv(env)),
	)
	require.NoError(t, err)
	return r
}

func TestResolvePosixDefaults(t *testing.T) {
	app, err := apppath.New("demo")
	require.NoError(t, err)

	paths, err := posixResolver(t, nil).Resolve(app)
	require.NoError(t, err)

	assert.Equal(t, "/home/u/.local/share/demo", paths.DataDir)
	assert.Equal(t, "/home/u/.config/demo", paths.ConfigDir)
	assert.Equal(t, "/home/u/.cache/demo", paths.CacheDir)
	assert.Equal(t, "/home/u/.local/state/demo", paths.StateDir)
	assert.Equal(t, "/home/u/.cache/demo/log", paths.LogDir)
	assert.Equal(t, "/usr/local/share/demo", paths.SharedDataDir)
	assert.Equal(t, "/etc/xdg/demo", paths.SharedConfigDir)
}

func TestResolveDeterministic(t *testing.T) {
	app, err := apppath.New("demo", apppath.WithAuthor("acme"), apppath.WithVersion("1.0"))
	require.NoError(t, err)

	r := posixResolver(t, map[string]string{"XDG_DATA_HOME": "/custom"})
	first, err := r.Resolve(app)
	require.NoError(t, err)
	second, err := r.Resolve(app)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A separate resolver over the same inputs agrees too.
	third, err := posixResolver(t, map[string]string{"XDG_DATA_HOME": "/custom"}).Resolve(app)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestResolveEnvOverrideMovesOnlyData(t *testing.T) {
	app, err := apppath.New("demo")
	require.NoError(t, err)

	paths, err := posixResolver(t, map[string]string{"XDG_DATA_HOME": "/custom"}).Resolve(app)
	require.NoError(t, err)

	assert.Equal(t, "/custom/demo", paths.DataDir)
	assert.Equal(t, "/home/u/.config/demo", paths.ConfigDir)
	assert.Equal(t, "/home/u/.cache/demo", paths.CacheDir)
}

func TestResolveAllPathsAbsolute(t *testing.T) {
	app, err := apppath.New("demo", apppath.WithAuthor("acme"), apppath.WithVersion("1.0"))
	require.NoError(t, err)

	paths, err := posixResolver(t, nil).Resolve(app)
	require.NoError(t, err)
	for _, dir := range append(paths.UserDirs(), paths.SharedDirs()...) {
		assert.True(t, strings.HasPrefix(dir, "/"), "path %q is not absolute", dir)
	}
}

func TestResolveSegmentOrdering(t *testing.T) {
	app, err := apppath.New("demo", apppath.WithAuthor("acme"), apppath.WithVersion("1.0"))
	require.NoError(t, err)

	paths, err := posixResolver(t, nil).Resolve(app)
	require.NoError(t, err)
	assert.Equal(t, "/home/u/.local/share/demo/1.0", paths.DataDir)

	win, err := apppath.NewResolver(
		apppath.WithGOOS("windows"),
		apppath.WithHome(`C:\Users\u`),
		apppath.WithEnv(mapEnv(nil)),
	)
	require.NoError(t, err)
	wp, err := win.Resolve(app)
	require.NoError(t, err)

	// Vendor folder first: author, then name, then version.
	author := strings.Index(wp.DataDir, "acme")
	name := strings.Index(wp.DataDir, "demo")
	version := strings.Index(wp.DataDir, "1.0")
	assert.True(t, author >= 0 && author < name && name < version, "unexpected ordering in %q", wp.DataDir)
}

func TestResolveDarwin(t *testing.T) {
	r, err := apppath.NewResolver(
		apppath.WithGOOS("darwin"),
		apppath.WithHome("/Users/u"),
		apppath.WithEnv(mapEnv(nil)),
	)
	require.NoError(t, err)
	assert.Equal(t, "darwin", r.Convention())

	app, err := apppath.New("demo")
	require.NoError(t, err)
	paths, err := r.Resolve(app)
	require.NoError(t, err)

	assert.Equal(t, "/Users/u/Library/Application Support/demo", paths.DataDir)
	assert.Equal(t, paths.DataDir, paths.StateDir)
	assert.Equal(t, "/Users/u/Library/Logs/demo", paths.LogDir)
	assert.Equal(t, []string{"/Library/Application Support/demo"}, paths.SharedDataDirs)
}

func TestResolveSharedListsPreserveOrder(t *testing.T) {
	env := map[string]string{"XDG_DATA_DIRS": "/opt/share:/srv/share"}
	app, err := apppath.New("demo")
	require.NoError(t, err)

	paths, err := posixResolver(t, env).Resolve(app)
	require.NoError(t, err)

	assert.Equal(t, []string{"/opt/share/demo", "/srv/share/demo"}, paths.SharedDataDirs)
	assert.Equal(t, paths.SharedDataDirs[0], paths.SharedDataDir)
}

func TestResolveNilApp(t *testing.T) {
	_, err := posixResolver(t, nil).Resolve(nil)
	assert.ErrorIs(t, err, apppath.ErrInvalidIdentity)
}

func TestResolverHomeFromInjectedEnv(t *testing.T) {
	r, err := apppath.NewResolver(
		apppath.WithGOOS("linux"),
		apppath.WithEnv(mapEnv(map[string]string{"HOME": "/home/elsewhere"})),
	)
	require.NoError(t, err)

	app, err := apppath.New("demo")
	require.NoError(t, err)
	paths, err := r.Resolve(app)
	require.NoError(t, err)
	assert.Equal(t, "/home/elsewhere/.local/share/demo", paths.DataDir)
}
