package layouts

// AppName is shown in the header and in every page title.
const AppName = "Compliance Management System"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + AppName
	}
	return AppName
}
