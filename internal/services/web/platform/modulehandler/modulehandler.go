// Package modulehandler provides the shared handler scaffold for portal modules.
//
// Every module handler embeds Base for viewer resolution, browser namespace
// lookup, page rendering, flash notices and simulated form latency.
package modulehandler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/text/message"

	"github.com/lceo-rwanda/portal/internal/platform/clock"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	webi18n "github.com/lceo-rwanda/portal/internal/services/web/i18n"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	apperrors "github.com/lceo-rwanda/portal/internal/services/web/platform/errors"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/flash"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/httpx"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/observability"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/pagerender"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/webctx"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/weberror"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	"github.com/lceo-rwanda/portal/internal/services/web/templates"
)

// Base carries shared runtime collaborators for module handlers.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base, filling unset collaborators with defaults.
func NewBase(deps module.Dependencies) Base {
	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	return Base{deps: deps}
}

// NewTestBase builds a base with an instant clock and no viewer.
func NewTestBase() Base {
	return NewBase(module.Dependencies{Clock: clock.Instant{}})
}

// Dependencies returns the collaborators the base was built with.
func (b Base) Dependencies() module.Dependencies { return b.deps }

// Logger returns the module logger.
func (b Base) Logger() *slog.Logger { return b.deps.Logger }

// Metrics returns the shared metrics; nil-safe for callers.
func (b Base) Metrics() *observability.Metrics { return b.deps.Metrics }

// Now reports the current time from the injected clock.
func (b Base) Now() time.Time { return b.deps.Clock.Now() }

// Viewer resolves the signed-in state for r.
func (b Base) Viewer(r *http.Request) module.Viewer {
	if r == nil || b.deps.ResolveViewer == nil {
		return module.Viewer{}
	}
	return b.deps.ResolveViewer(r)
}

// Language is the viewer's content language, English when signed out.
func (b Base) Language(r *http.Request) mockdata.Language {
	if lang := b.Viewer(r).User.Language; lang != "" {
		return lang
	}
	return mockdata.LanguageEnglish
}

// Namespace returns the browser storage namespace for r.
func (b Base) Namespace(r *http.Request) string {
	return webctx.NamespaceFrom(r)
}

// Localizer returns the message printer for r.
func (b Base) Localizer(r *http.Request) *message.Printer {
	loc, _ := webi18n.ForRequest(r)
	return loc
}

// Simulate waits the simulated network latency for a form submission.
func (b Base) Simulate(ctx context.Context, d time.Duration) error {
	return b.deps.Clock.Sleep(ctx, d)
}

// ParseForm parses the request body, classifying failures as invalid input.
func (b Base) ParseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return apperrors.Wrap(apperrors.KindInvalidInput, "error.form_unreadable", err)
	}
	return nil
}

// WritePage renders page for the current viewer.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.Write(w, r, b.Viewer(r), page); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteError renders a localized error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
		b.deps.Logger.ErrorContext(httpx.RequestContext(r), "request failed",
			"path", requestPath(r),
			"request_id", httpx.RequestIDFrom(r),
			"error", err,
		)
	}
	weberror.Write(w, r, err, b.Viewer(r))
}

// WriteNotFound renders the not-found page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WritePage(w, r, http.StatusNotFound, b.Viewer(r))
}

// Toast localizes notice for an inline re-render.
func (b Base) Toast(r *http.Request, notice flash.Notice) *templates.Toast {
	return pagerender.LocalizedToast(b.Localizer(r), notice)
}

// Flash stores notice for the next full-page render.
func (b Base) Flash(w http.ResponseWriter, r *http.Request, notice flash.Notice) {
	flash.Write(w, r, notice, b.deps.SchemePolicy)
}

// Redirect writes an HTMX-aware redirect.
func (b Base) Redirect(w http.ResponseWriter, r *http.Request, location string) {
	httpx.WriteRedirect(w, r, location)
}

// RedirectHome sends unknown paths back to the site root.
func (b Base) RedirectHome(w http.ResponseWriter, r *http.Request) {
	b.Redirect(w, r, routepath.Root)
}

// RedirectWithFlash stores notice and redirects to location.
func (b Base) RedirectWithFlash(w http.ResponseWriter, r *http.Request, location string, notice flash.Notice) {
	b.Flash(w, r, notice)
	b.Redirect(w, r, location)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
