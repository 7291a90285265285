package pages

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// placeholder renders a feature area that has no content yet.
func placeholder(text string) g.Node {
	return h.Div(h.Class("placeholder"), g.Text(text))
}

func Home() g.Node {
	return placeholder("Welcome to the Compliance Management System")
}

func RiskAssessments() g.Node {
	return placeholder("Risk Assessments Page")
}

func RegulatoryUpdates() g.Node {
	return placeholder("Regulatory Updates Page")
}

func TrainingModules() g.Node {
	return placeholder("Training Modules Page")
}

func AuditLogs() g.Node {
	return placeholder("Audit Logs Page")
}

func Profile() g.Node {
	return placeholder("Profile Page")
}

func Login() g.Node {
	return placeholder("Login Page")
}

// NotFound is shown when no route matches. It must not reuse any of the
// placeholder texts above.
func NotFound() g.Node {
	return h.Div(h.Class("not-found"), g.Text("Nothing lives at this address."))
}
