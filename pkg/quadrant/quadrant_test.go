package quadrant

import "testing"

func TestForAlias(t *testing.T) {
	cases := map[string]Quadrant{
		"q1":       Q1,
		"1":        Q1,
		"do":       Q1,
		"DO-FIRST": Q1,
		" q2 ":     Q2,
		"plan":     Q2,
		"delegate": Q3,
		"drop":     Q4,
		"":         None,
	}
	for alias, want := range cases {
		got, err := ForAlias(alias)
		if err != nil {
			t.Fatalf("ForAlias(%q) failed: %v", alias, err)
		}
		if got != want {
			t.Fatalf("ForAlias(%q) = %q, want %q", alias, got, want)
		}
	}
}

func TestForAliasUnknown(t *testing.T) {
	if _, err := ForAlias("q5"); err == nil {
		t.Fatal("expected error for unknown alias")
	}
}

func TestValid(t *testing.T) {
	for _, q := range []Quadrant{Q1, Q2, Q3, Q4} {
		if !q.Valid() {
			t.Fatalf("%q should be valid", q)
		}
	}
	if None.Valid() {
		t.Fatal("the zero quadrant is not a matrix placement")
	}
	if Quadrant("q9").Valid() {
		t.Fatal("q9 should not be valid")
	}
}

func TestTitle(t *testing.T) {
	if got := Q1.Title(); got != "Do First" {
		t.Fatalf("Q1 title %q", got)
	}
	if got := None.Title(); got != "Planned" {
		t.Fatalf("None title %q", got)
	}
}

func TestPlanned(t *testing.T) {
	if !None.Planned() {
		t.Fatal("zero quadrant is planned")
	}
	if Q2.Planned() {
		t.Fatal("q2 is placed, not planned")
	}
}
