// Package router holds the shell's static route table.
package router

import (
	"strings"

	"github.com/nfrund/compliance-shell/web/src/templates/pages"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
)

// View renders a route's content. Views take no input and have no side
// effects.
type View func() g.Node

// Route binds a path to its navigation label and view.
type Route struct {
	Path  string
	Label string
	View  View
}

// Table is an ordered set of routes; the order is the navigation order.
type Table []Route

var titleCaser = cases.Title(language.English)

// New builds a route whose label is derived from the path, so
// "/risk-assessments" is labelled "Risk Assessments".
func New(path string, view View) Route {
	return Route{Path: path, Label: labelFor(path), View: view}
}

func labelFor(path string) string {
	slug := strings.Trim(path, "/")
	if slug == "" {
		return "Home"
	}
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// Default returns the shell's routes.
func Default() Table {
	return Table{
		New("/", pages.Home),
		New("/risk-assessments", pages.RiskAssessments),
		New("/regulatory-updates", pages.RegulatoryUpdates),
		New("/training-modules", pages.TrainingModules),
		New("/audit-logs", pages.AuditLogs),
		New("/profile", pages.Profile),
		New("/login", pages.Login),
	}
}

// Match finds the route bound to path. Matching is exact apart from a single
// trailing slash; there are no prefix, nested or parameterised matches.
func (t Table) Match(path string) (Route, bool) {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	for _, r := range t {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
