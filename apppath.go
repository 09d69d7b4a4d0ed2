// Package apppath resolves platform-convention filesystem locations for an
// application: user data, config, cache, state and log directories plus
// their site-wide counterparts.
//
// Resolution is a pure function of the application identity, the selected
// operating system convention and the environment captured by the
// resolver. Directories are only touched when the caller explicitly asks
// for it via PathSet.Ensure or PathSet.Clean.
//
//	app, err := apppath.New("demo", apppath.WithAuthor("acme"))
//	if err != nil { ... }
//	paths, err := apppath.Resolve(app)
//	if err != nil { ... }
//	if err := paths.Ensure(); err != nil { ... }
package apppath

import (
	"fmt"
	"strings"
)

// App identifies the application requesting paths. Construct it with New;
// a zero App is not valid.
type App struct {
	name    string
	author  string
	version string
	roaming bool
}

// AppOption customizes an App under construction.
type AppOption func(*appOptions)

type appOptions struct {
	author      string
	version     string
	roaming     bool
	noNormalize bool
}

// WithAuthor sets the author or vendor segment. It is only used by
// conventions that nest paths under a vendor folder (Windows).
func WithAuthor(author string) AppOption {
	return func(o *appOptions) { o.author = author }
}

// WithVersion appends a version segment to every resolved directory,
// letting multiple versions of an application coexist.
func WithVersion(version string) AppOption {
	return func(o *appOptions) { o.version = version }
}

// WithRoaming selects the roaming profile root on Windows, so user data
// follows the account across machines on a domain. Other conventions
// ignore it.
func WithRoaming() AppOption {
	return func(o *appOptions) { o.roaming = true }
}

// WithoutNormalize keeps identity fields exactly as supplied instead of
// lowercasing and replacing spaces with underscores.
func WithoutNormalize() AppOption {
	return func(o *appOptions) { o.noNormalize = true }
}

// New validates an application identity. The name is required; author and
// version are optional. Unless WithoutNormalize is given, fields are
// trimmed, lowercased and spaces become underscores. Invalid identities
// return an error wrapping ErrInvalidIdentity.
func New(name string, opts ...AppOption) (*App, error) {
	var o appOptions
	for _, opt := range opts {
		opt(&o)
	}

	author, version := o.author, o.version
	if !o.noNormalize {
		name = normalize(name)
		author = normalize(author)
		version = normalize(version)
	}

	if err := validateSegment("name", name, true); err != nil {
		return nil, err
	}
	if err := validateSegment("author", author, false); err != nil {
		return nil, err
	}
	if err := validateSegment("version", version, false); err != nil {
		return nil, err
	}

	return &App{name: name, author: author, version: version, roaming: o.roaming}, nil
}

// Name returns the (possibly normalized) application name.
func (a *App) Name() string { return a.name }

// Author returns the author segment, empty when unset.
func (a *App) Author() string { return a.author }

// Version returns the version segment, empty when unset.
func (a *App) Version() string { return a.version }

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// validateSegment rejects values that would escape the base directory or
// produce a non-path segment.
func validateSegment(field, value string, required bool) error {
	if value == "" {
		if required {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidIdentity, field)
		}
		return nil
	}
	if value == "." || value == ".." {
		return fmt.Errorf("%w: %s %q is not a usable path segment", ErrInvalidIdentity, field, value)
	}
	if strings.ContainsAny(value, `/\`) || strings.ContainsRune(value, 0) {
		return fmt.Errorf("%w: %s %q contains a path separator", ErrInvalidIdentity, field, value)
	}
	return nil
}
