package session

import "github.com/abhisek/annotiz/internal/question"

// Progress counts questions annotated under the session's mode.
type Progress struct {
	Annotated int
	Total     int
}

// WasAnnotated reports whether q already carries the field mode annotates.
func WasAnnotated(q question.Question, mode Mode) bool {
	switch mode {
	case ModeClassify:
		return q.Classified()
	case ModeAnswer:
		return q.Answered()
	}
	return false
}

// NewProgress scans set once so a partially annotated file resumes with the
// right count.
func NewProgress(set *question.Set, mode Mode) Progress {
	return Progress{
		Annotated: set.Count(func(q question.Question) bool { return WasAnnotated(q, mode) }),
		Total:     set.Len(),
	}
}

// RecordIfNew counts q if it was not yet annotated. It must see the question
// before the mutation that annotates it. Returns whether the count changed.
func (p *Progress) RecordIfNew(q question.Question, mode Mode) bool {
	if WasAnnotated(q, mode) {
		return false
	}
	p.Annotated++
	return true
}

// Ratio returns the annotated fraction in [0, 1].
func (p Progress) Ratio() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Annotated) / float64(p.Total)
}

// Done reports whether every question is annotated.
func (p Progress) Done() bool {
	return p.Total > 0 && p.Annotated >= p.Total
}
