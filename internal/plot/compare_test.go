package plot

import "testing"

func TestCompareAddNoDuplicates(t *testing.T) {
	s := NewCompareSet()
	s.Add("A")
	s.Add("B")
	s.Add("A")

	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	got := s.IDs()
	if got[0] != "A" || got[1] != "B" {
		t.Fatalf("ids = %v, want [A B]", got)
	}
}

func TestCompareFullSetRejectsFifth(t *testing.T) {
	s := NewCompareSet("a", "b", "c", "d")
	if s.Len() != 4 {
		t.Fatalf("len = %d, want 4", s.Len())
	}
	if s.Add("e") {
		t.Fatal("expected rejection signal when adding a 5th id")
	}
	if s.Len() != 4 || s.Contains("e") {
		t.Fatalf("full set changed: %v", s.IDs())
	}
	// Re-adding an existing member of a full set is still fine.
	if !s.Add("a") {
		t.Fatal("duplicate add must not be reported as rejection")
	}
}

func TestCompareRemoveThenAddMovesToEnd(t *testing.T) {
	s := NewCompareSet("a", "b", "c")
	s.Remove("a")
	s.Add("a")

	got := s.IDs()
	want := []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
}

func TestCompareRemoveAbsentIsNoop(t *testing.T) {
	s := NewCompareSet("a", "b")
	s.Remove("zzz")
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
}

func TestCompareClear(t *testing.T) {
	s := NewCompareSet("a", "b", "c", "d")
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("len = %d after clear", s.Len())
	}
	if !s.Add("a") {
		t.Fatal("cleared set should accept new members")
	}
}

func TestCompareJSONRoundTrip(t *testing.T) {
	s := NewCompareSet("a", "b")
	back := CompareSetFromJSON(s.JSON())
	if back.Len() != 2 || !back.Contains("a") || !back.Contains("b") {
		t.Fatalf("round trip lost members: %v", back.IDs())
	}
}

func TestCompareCorruptDataYieldsEmptySet(t *testing.T) {
	for _, data := range [][]byte{nil, []byte(""), []byte("{not json"), []byte(`{"a":1}`)} {
		s := CompareSetFromJSON(data)
		if s.Len() != 0 {
			t.Fatalf("corrupt data %q produced non-empty set", data)
		}
	}
}

func TestCompareFromJSONEnforcesInvariants(t *testing.T) {
	// Persisted data may predate the cap or contain duplicates; rehydration
	// re-applies both invariants.
	s := CompareSetFromJSON([]byte(`["a","a","b","c","d","e","f"]`))
	if s.Len() > MaxCompare {
		t.Fatalf("len = %d, exceeds cap", s.Len())
	}
	seen := map[string]bool{}
	for _, id := range s.IDs() {
		if seen[id] {
			t.Fatalf("duplicate %q after rehydration", id)
		}
		seen[id] = true
	}
}
