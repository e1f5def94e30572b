// Package view holds the enumerated "current view" selector that decides
// which top-level screen renders. It is an explicit value resolved per
// request, not ambient global state; there is no history or back stack —
// back buttons are plain transitions wired by each screen.
package view

// View is one of the app's top-level screens.
type View string

const (
	Welcome         View = "welcome"
	Login           View = "login"
	Dashboard       View = "dashboard"
	Design          View = "design"
	Math            View = "math"
	PersonalProject View = "proyecto-personal"
	Chat            View = "chat"
	Agenda          View = "agenda"
	Quiz            View = "quiz"
	MathQuiz        View = "mathQuiz"
	DesignQuiz      View = "designQuiz"
	ProjectQuiz     View = "proyectoQuiz"
)

var known = map[View]bool{
	Welcome:         true,
	Login:           true,
	Dashboard:       true,
	Design:          true,
	Math:            true,
	PersonalProject: true,
	Chat:            true,
	Agenda:          true,
	Quiz:            true,
	MathQuiz:        true,
	DesignQuiz:      true,
	ProjectQuiz:     true,
}

// Resolve maps a requested view name to the screen to mount. Any unrecognized
// name falls back to the dashboard for an authenticated user and to the
// welcome screen otherwise.
func Resolve(name string, authenticated bool) View {
	if v := View(name); known[v] {
		return v
	}
	if authenticated {
		return Dashboard
	}
	return Welcome
}
