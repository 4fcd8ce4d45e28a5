package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestTerm_NameKey(t *testing.T) {
	t.Parallel()

	term := Term{ID: uuid.New(), Name: "  Cell   Division "}
	if got := term.NameKey(); got != "cell division" {
		t.Errorf("NameKey() = %q, want %q", got, "cell division")
	}
}

func TestLinkSegment_SetsTermID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	s := LinkSegment("Mitosis", id)

	if !s.IsLink {
		t.Fatal("IsLink = false, want true")
	}
	if s.TermID == nil || *s.TermID != id {
		t.Fatalf("TermID = %v, want %v", s.TermID, id)
	}
}

func TestPlainSegment_HasNoTermID(t *testing.T) {
	t.Parallel()

	s := PlainSegment("is important")
	if s.IsLink || s.TermID != nil {
		t.Fatalf("plain segment carries link data: %+v", s)
	}
}

func TestSegment_JSONOmitsTermIDForPlain(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(PlainSegment("text"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(data); got != `{"text":"text","is_link":false}` {
		t.Errorf("json = %s", got)
	}
}

func TestJoinSegments(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	segs := []Segment{
		LinkSegment("Mitosis", id),
		PlainSegment(" is a kind of "),
		LinkSegment("cell division", id),
	}
	if got := JoinSegments(segs); got != "Mitosis is a kind of cell division" {
		t.Errorf("JoinSegments() = %q", got)
	}
	if got := JoinSegments(nil); got != "" {
		t.Errorf("JoinSegments(nil) = %q, want empty", got)
	}
}

func TestLinkedTermIDs_DistinctInOrder(t *testing.T) {
	t.Parallel()

	a, b := uuid.New(), uuid.New()
	segs := []Segment{
		LinkSegment("B", b),
		PlainSegment(" and "),
		LinkSegment("A", a),
		PlainSegment(" and "),
		LinkSegment("b", b),
	}

	got := LinkedTermIDs(segs)
	if len(got) != 2 || got[0] != b || got[1] != a {
		t.Errorf("LinkedTermIDs() = %v, want [%v %v]", got, b, a)
	}
}
