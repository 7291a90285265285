package layouts

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// UserSlotID is the DOM id of the element holding the current user.
const UserSlotID = "shell-user"

// NavID is the DOM id of the navigation bar.
const NavID = "shell-nav"

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// ShellData is everything the shell layout needs to render a page.
type ShellData struct {
	Title   string
	Nav     []NavLink
	User    g.Node
	Content g.Node
}

// Shell renders the full page: header, navigation, user slot and the routed
// view. Content may be nil when no route matched.
func Shell(d ShellData) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(d.Title),
		Language: "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
			h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4"), h.Defer()),
		},
		Body: []g.Node{
			h.Div(h.Class("App"),
				h.Header(h.Class("App-header"),
					h.H1(g.Text(AppName)),
					nav(d.Nav),
					d.User,
				),
				h.Main(d.Content),
			),
		},
	})
}

// Content renders what an in-app navigation replaces: the title, the
// navigation bar (swapped out of band so the active link follows) and the
// routed view. The header and user slot are left as they are.
func Content(d ShellData) g.Node {
	return g.Group{
		h.TitleEl(g.Text(CalculateTitle(d.Title))),
		nav(d.Nav, hx.SwapOOB("true")),
		h.Main(d.Content),
	}
}

// nav boosts its links so that following one only swaps <main>.
func nav(links []NavLink, extra ...g.Node) g.Node {
	return h.Nav(h.ID(NavID),
		hx.Boost("true"),
		hx.Target("main"),
		hx.Select("main"),
		hx.Swap("outerHTML"),
		g.Group(extra),
		g.Map(links, navLink),
	)
}

func navLink(l NavLink) g.Node {
	return h.A(h.Href(l.Href),
		g.If(l.Active, g.Group{h.Class("active"), g.Attr("aria-current", "page")}),
		g.Text(l.Label),
	)
}

// UserSlot renders the placeholder for the current user. With a non-empty
// loadURL the browser fetches the user state from it once the page is
// shown; without one the slot stays empty.
func UserSlot(loadURL string) g.Node {
	if loadURL == "" {
		return h.Span(h.ID(UserSlotID))
	}
	return h.Span(h.ID(UserSlotID),
		hx.Get(loadURL),
		hx.Trigger("load"),
		hx.Swap("outerHTML"),
	)
}
