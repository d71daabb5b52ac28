package quadrant

import (
	"fmt"
	"strings"
)

// Quadrant is one of the four urgency/importance buckets a task can live
// in. The zero value means the task is planned but not yet placed in the
// matrix (only valid for tasks attached to a project).
type Quadrant string

const (
	None Quadrant = ""
	Q1   Quadrant = "q1"
	Q2   Quadrant = "q2"
	Q3   Quadrant = "q3"
	Q4   Quadrant = "q4"
)

// Info carries the display metadata for a quadrant.
type Info struct {
	ID      Quadrant
	Title   string
	Tagline string
	Aliases []string
}

func All() []Info {
	return []Info{{
		ID:      Q1,
		Title:   "Do First",
		Tagline: "urgent and important",
		Aliases: []string{"q1", "1", "do", "do-first"},
	}, {
		ID:      Q2,
		Title:   "Schedule",
		Tagline: "important, not urgent",
		Aliases: []string{"q2", "2", "schedule", "plan"},
	}, {
		ID:      Q3,
		Title:   "Delegate",
		Tagline: "urgent, not important",
		Aliases: []string{"q3", "3", "delegate"},
	}, {
		ID:      Q4,
		Title:   "Eliminate",
		Tagline: "neither urgent nor important",
		Aliases: []string{"q4", "4", "eliminate", "drop"},
	}}
}

// ForAlias resolves user input like "1", "do", "q2" to a quadrant.
func ForAlias(alias string) (Quadrant, error) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	if alias == "" {
		return None, nil
	}
	for _, info := range All() {
		for _, a := range info.Aliases {
			if a == alias {
				return info.ID, nil
			}
		}
	}
	return None, fmt.Errorf("unknown quadrant %q", alias)
}

func (q Quadrant) Valid() bool {
	switch q {
	case Q1, Q2, Q3, Q4:
		return true
	}
	return false
}

// Planned reports whether the task holding this quadrant has not yet been
// promoted into the matrix.
func (q Quadrant) Planned() bool {
	return q == None
}

func (q Quadrant) Title() string {
	for _, info := range All() {
		if info.ID == q {
			return info.Title
		}
	}
	return "Planned"
}

func (q Quadrant) String() string {
	return string(q)
}
