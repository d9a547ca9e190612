package session

import (
	"testing"

	"github.com/abhisek/annotiz/internal/question"
)

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestWasAnnotated(t *testing.T) {
	blank := question.Question{Options: []string{"a", "b"}}
	classified := question.Question{Options: []string{"a", "b"}, Classification: boolPtr(false)}
	answered := question.Question{Options: []string{"a", "b"}, HumanAnswer: strPtr("b")}

	if WasAnnotated(blank, ModeClassify) || WasAnnotated(blank, ModeAnswer) {
		t.Error("blank question should not count as annotated")
	}
	if !WasAnnotated(classified, ModeClassify) {
		t.Error("classified question should count in classify mode")
	}
	if WasAnnotated(classified, ModeAnswer) {
		t.Error("classification should not count in answer mode")
	}
	if !WasAnnotated(answered, ModeAnswer) {
		t.Error("answered question should count in answer mode")
	}
}

func TestNewProgress_ScansSet(t *testing.T) {
	set, err := question.NewSet([]question.Question{
		{Options: []string{"a"}, Classification: boolPtr(true)},
		{Options: []string{"a"}},
		{Options: []string{"a"}, Classification: boolPtr(false), HumanAnswer: strPtr("a")},
	})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	p := NewProgress(set, ModeClassify)
	if p.Annotated != 2 || p.Total != 3 {
		t.Errorf("classify progress = %d/%d, want 2/3", p.Annotated, p.Total)
	}

	p = NewProgress(set, ModeAnswer)
	if p.Annotated != 1 {
		t.Errorf("answer progress = %d, want 1", p.Annotated)
	}
}

func TestRecordIfNew(t *testing.T) {
	p := Progress{Total: 2}
	q := question.Question{Options: []string{"x"}}

	if !p.RecordIfNew(q, ModeClassify) {
		t.Error("expected first annotation to count")
	}
	q.Classification = boolPtr(true)
	if p.RecordIfNew(q, ModeClassify) {
		t.Error("expected re-annotation not to count")
	}
	if p.Annotated != 1 {
		t.Errorf("Annotated = %d, want 1", p.Annotated)
	}
}

func TestProgress_Ratio(t *testing.T) {
	if r := (Progress{}).Ratio(); r != 0 {
		t.Errorf("empty Ratio = %f, want 0", r)
	}
	if r := (Progress{Annotated: 1, Total: 4}).Ratio(); r != 0.25 {
		t.Errorf("Ratio = %f, want 0.25", r)
	}
	if !(Progress{Annotated: 3, Total: 3}).Done() {
		t.Error("expected Done when all annotated")
	}
}
