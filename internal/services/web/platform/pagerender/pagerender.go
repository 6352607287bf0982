// Package pagerender centralizes full-page and HTMX fragment rendering.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	webi18n "github.com/lceo-rwanda/portal/internal/services/web/i18n"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/flash"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/httpx"
	"github.com/lceo-rwanda/portal/internal/services/web/templates"
)

// Layout selects the page chrome.
type Layout int

const (
	LayoutPublic Layout = iota
	LayoutPortal
)

// Page describes one rendered response.
type Page struct {
	Title      string
	StatusCode int
	Layout     Layout
	Body       templ.Component
	// Toast overrides any pending flash notice.
	Toast *templates.Toast
}

// Write renders page for viewer. HTMX requests receive only the body and do
// not consume pending flash notices.
func Write(w http.ResponseWriter, r *http.Request, viewer module.Viewer, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}

	loc, tag := webi18n.ForRequest(r)
	pageCtx := templates.PageContext{
		Title:  page.Title,
		Lang:   tag.String(),
		Viewer: viewer,
		Toast:  page.Toast,
		Loc:    loc,
		Year:   time.Now().Year(),
	}
	if r != nil && r.URL != nil {
		pageCtx.CurrentPath = r.URL.Path
	}

	var shell templ.Component
	switch {
	case httpx.IsHTMXRequest(r):
		shell = templates.MainFragment(pageCtx)
	default:
		if pageCtx.Toast == nil {
			pageCtx.Toast = FlashToast(w, r, loc)
		}
		if page.Layout == LayoutPortal && viewer.Authenticated {
			shell = templates.PortalLayout(pageCtx)
		} else {
			shell = templates.PublicLayout(pageCtx)
		}
	}

	var buf bytes.Buffer
	if err := shell.Render(templ.WithChildren(httpx.RequestContext(r), body), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// FlashToast consumes the pending flash notice and localizes it.
func FlashToast(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer) *templates.Toast {
	notice, ok := flash.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	return LocalizedToast(loc, notice)
}

// LocalizedToast resolves a notice against the catalog.
func LocalizedToast(loc webi18n.Localizer, notice flash.Notice) *templates.Toast {
	args := make([]any, 0, len(notice.Args))
	for _, arg := range notice.Args {
		args = append(args, arg)
	}
	message := strings.TrimSpace(webi18n.T(loc, notice.Key, args...))
	if message == "" {
		return nil
	}
	return &templates.Toast{Kind: string(notice.Kind), Message: message}
}
