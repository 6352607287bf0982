package templates

import (
	"github.com/a-h/templ"

	"github.com/lceo-rwanda/portal/internal/portal/role"
	webi18n "github.com/lceo-rwanda/portal/internal/services/web/i18n"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

// Toast is a one-time notice shown at the top of a page.
type Toast struct {
	Kind    string
	Message string
}

// PageContext is the shared chrome state for a rendered page.
type PageContext struct {
	Title       string
	Lang        string
	CurrentPath string
	Viewer      module.Viewer
	Toast       *Toast
	Loc         webi18n.Localizer
	Year        int
}

type navLink struct {
	Path  string
	Label string
}

var publicNav = []navLink{
	{Path: routepath.About, Label: "About"},
	{Path: routepath.Programs, Label: "Programs"},
	{Path: routepath.Impact, Label: "Impact"},
	{Path: routepath.Resources, Label: "Resources"},
	{Path: routepath.GetInvolved, Label: "Get Involved"},
	{Path: routepath.Contact, Label: "Contact"},
}

// PublicLayout wraps the children in the marketing site chrome.
func PublicLayout(page PageContext) templ.Component {
	return document(page, "layout-public",
		navbar(page),
		toast(page.Toast),
		El("main", A("id", "main", "class", "public-main"), Children()),
		footer(page),
	)
}

// PortalLayout wraps the children in the role dashboard chrome.
func PortalLayout(page PageContext) templ.Component {
	cfg := page.Viewer.Role()
	return document(page, "layout-portal",
		navbar(page),
		toast(page.Toast),
		Div("portal",
			El("aside", A("class", "portal-sidebar", "data-role", string(cfg.UserType)),
				El("p", A("class", "portal-label"), Text(cfg.PortalLabel)),
				El("nav", A("aria-label", cfg.PortalLabel),
					El("ul", nil, Each(cfg.Nav, func(item role.NavItem) templ.Component {
						class := "portal-nav-link"
						if cfg.Active(item, page.CurrentPath) {
							class += " active"
						}
						return El("li", nil, Link(item.Path, class, item.Label))
					})),
				),
			),
			El("main", A("id", "main", "class", "portal-main"), Children()),
		),
	)
}

// MainFragment renders only the page body for HTMX swaps.
func MainFragment(page PageContext) templ.Component {
	return Group(toast(page.Toast), Children())
}

func document(page PageContext, bodyClass string, body ...templ.Component) templ.Component {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	title := page.Title
	if title == "" {
		title = webi18n.T(page.Loc, "layout.site_name")
	} else {
		title = webi18n.T(page.Loc, "title.page", title)
	}
	return Group(
		templ.Raw("<!DOCTYPE html>"),
		El("html", A("lang", lang),
			El("head", nil,
				El("meta", A("charset", "utf-8")),
				El("meta", A("name", "viewport", "content", "width=device-width, initial-scale=1")),
				El("meta", A("name", "description", "content", webi18n.T(page.Loc, "layout.meta_description"))),
				El("title", nil, Text(title)),
				El("link", A("rel", "stylesheet", "href", routepath.StaticPrefix+"portal.css")),
			),
			El("body", A("class", bodyClass), body...),
		),
	)
}

func navbar(page PageContext) templ.Component {
	viewer := page.Viewer
	var account templ.Component
	if viewer.Authenticated {
		account = Div("navbar-account",
			El("a", A("href", viewer.Home(), "class", "navbar-portal", "title", viewer.User.FullName),
				Span("avatar", viewer.Initials()),
				Text(" "+webi18n.T(page.Loc, "layout.my_portal")),
			),
			Form(routepath.Logout, Submit(webi18n.T(page.Loc, "layout.sign_out"), "", "")),
		)
	} else {
		account = Link(routepath.Login, "navbar-signin", webi18n.T(page.Loc, "layout.sign_in"))
	}
	return El("header", A("class", "navbar"),
		Link(routepath.Root, "navbar-brand", webi18n.T(page.Loc, "layout.site_name")),
		El("nav", A("class", "navbar-links", "aria-label", "Main"),
			Each(publicNav, func(l navLink) templ.Component {
				class := "navbar-link"
				if page.CurrentPath == l.Path {
					class += " active"
				}
				return Link(l.Path, class, l.Label)
			}),
			Link(routepath.Donate, "button navbar-donate", webi18n.T(page.Loc, "layout.donate")),
		),
		account,
	)
}

func toast(t *Toast) templ.Component {
	if t == nil || t.Message == "" {
		return nil
	}
	kind := t.Kind
	if kind == "" {
		kind = "info"
	}
	return El("div", A("class", "toast toast-"+kind, "role", "status", "data-toast", kind), Text(t.Message))
}

func footer(page PageContext) templ.Component {
	return El("footer", A("class", "footer"),
		Div("footer-brand",
			El("strong", nil, Text(webi18n.T(page.Loc, "layout.site_name"))),
			P(webi18n.T(page.Loc, "layout.tagline")),
		),
		Div("footer-newsletter",
			H3(webi18n.T(page.Loc, "layout.newsletter_heading")),
			Form(routepath.Newsletter,
				Hidden("next", page.CurrentPath),
				El("input", A("type", "email", "name", "email", "placeholder", "you@example.org", "aria-label", "Email")),
				Submit(webi18n.T(page.Loc, "layout.newsletter_button"), "", ""),
			),
		),
		El("p", A("class", "footer-copy"), Text(webi18n.T(page.Loc, "layout.copyright", page.Year))),
	)
}
