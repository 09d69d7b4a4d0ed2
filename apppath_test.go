package apppath_test

import (
	"testing"

	"github.com/GriffinCanCode/apppath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		_, err := apppath.New(name)
		require.Error(t, err)
		assert.ErrorIs(t, err, apppath.ErrInvalidIdentity)
	}
}

func TestNewRejectsSeparators(t *testing.T) {
	cases := []string{"a/b", `a\b`, "..", "."}
	for _, name := range cases {
		_, err := apppath.New(name)
		assert.ErrorIs(t, err, apppath.ErrInvalidIdentity, "name %q", name)
	}

	_, err := apppath.New("demo", apppath.WithAuthor("acme/inc"))
	assert.ErrorIs(t, err, apppath.ErrInvalidIdentity)

	_, err = apppath.New("demo", apppath.WithVersion("1/0"))
	assert.ErrorIs(t, err, apppath.ErrInvalidIdentity)
}

func TestNewNormalizes(t *testing.T) {
	app, err := apppath.New(" My App ", apppath.WithAuthor("ACME Inc"), apppath.WithVersion("1.0 Beta"))
	require.NoError(t, err)

	assert.Equal(t, "my_app", app.Name())
	assert.Equal(t, "acme_inc", app.Author())
	assert.Equal(t, "1.0_beta", app.Version())
}

func TestWithoutNormalize(t *testing.T) {
	app, err := apppath.New("MyApp", apppath.WithAuthor("ACME"), apppath.WithoutNormalize())
	require.NoError(t, err)

	assert.Equal(t, "MyApp", app.Name())
	assert.Equal(t, "ACME", app.Author())
}

func TestWithoutNormalizeStillValidates(t *testing.T) {
	_, err := apppath.New("My/App", apppath.WithoutNormalize())
	assert.ErrorIs(t, err, apppath.ErrInvalidIdentity)
}
