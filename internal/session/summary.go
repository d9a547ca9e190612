package session

import "fmt"

// Summary is printed by the launcher once the session ends.
type Summary struct {
	Path      string
	Mode      Mode
	Annotated int
	Total     int
	Percent   float64
	Complete  bool
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(st *State) Summary {
	p := st.Progress()
	return Summary{
		Path:      st.path,
		Mode:      st.mode,
		Annotated: p.Annotated,
		Total:     p.Total,
		Percent:   p.Ratio() * 100,
		Complete:  p.Done(),
	}
}

func (s Summary) String() string {
	verb := "answered"
	if s.Mode == ModeClassify {
		verb = "classified"
	}
	out := fmt.Sprintf("%s: %d of %d questions %s (%.0f%%)", s.Path, s.Annotated, s.Total, verb, s.Percent)
	if s.Complete {
		out += ", all done"
	}
	return out
}
