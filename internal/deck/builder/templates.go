package builder

// Section describes one content slide backed by a questionnaire answer.
// Order here is presentation order.
type Section struct {
	Key           string
	DefaultHeader string
}

// sectionOrder is the fixed slide template order after the cover slide.
var sectionOrder = []Section{
	{"problem", "Problem"},
	{"solution", "Solution"},
	{"customer", "Target Customer"},
	{"traction", "Traction"},
	{"ask", "Ask"},
	{"model", "Business Model"},
	{"market", "Market"},
	{"competition", "Competition"},
	{"team", "Team"},
	{"roadmap", "Roadmap"},
	{"contact", "Contact"},
}

// AnswerKeys lists every recognized questionnaire field, cover fields
// included.
func AnswerKeys() []string {
	keys := []string{"startupName", "oneLiner"}
	for _, s := range sectionOrder {
		keys = append(keys, s.Key)
	}
	return keys
}
