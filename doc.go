// Package stencil provides the runtime support kernel for a template
// engine: a memoizing template loader, the engine's error taxonomy, and
// HTML escaping with a safe-markup wrapper.
//
// # Overview
//
// stencil does not parse or render templates itself. It supplies the
// pieces every template front end needs around the edges: bounded
// memoization of compiled templates (see the cache sub-package and
// Loader), distinct error kinds for the failures a template system
// produces, escaping for HTML output, and translation extraction (see
// the i18n sub-package).
//
// # Quick Start
//
//	import "github.com/gostencil/stencil"
//
//	// A loader that keeps the 50 most recently used templates compiled.
//	loader, err := stencil.NewLoader(50, func(name string) (*Template, error) {
//	    src, err := os.ReadFile(filepath.Join("templates", name))
//	    if err != nil {
//	        return nil, &stencil.TemplateNotFoundError{Name: name}
//	    }
//	    return Compile(string(src))
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tmpl, err := loader.Load("index.html")
//
// # Errors
//
// Failures are reported through distinct error kinds that all match the
// ErrTemplate sentinel with errors.Is: SecurityError, FilterNotFoundError,
// TestNotFoundError, TemplateNotFoundError (which also matches
// fs.ErrNotExist), SyntaxError and RuntimeError. Callers switch on the
// kind with errors.As when the distinction matters.
//
// # Escaping
//
// Escape and EscapeAttr convert raw text to Markup, a string type that
// marks its content as safe to emit. Escape covers element text (&, <,
// >); EscapeAttr additionally covers double quotes for attribute values.
//
// # Logging
//
// stencil is silent by default. Call SetLogger with a *slog.Logger to
// see cache activity at debug level and failed compilations at warn
// level.
package stencil

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
