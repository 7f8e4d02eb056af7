package nav

import "testing"

func TestParseReselectPolicy(t *testing.T) {
	cases := map[string]ReselectPolicy{
		"":           ReselectNone,
		"none":       ReselectNone,
		"Scroll-Top": ReselectScrollTop,
		" top ":      ReselectScrollTop,
	}
	for in, want := range cases {
		got, err := ParseReselectPolicy(in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", in, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseReselectPolicy("pop"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

func TestIconFor(t *testing.T) {
	tab := Tab{ID: "profile", Label: "Profile", IconKey: "person"}
	if got := IconFor(tab, true); got != "person" {
		t.Fatalf("active icon = %q", got)
	}
	if got := IconFor(tab, false); got != "person-outline" {
		t.Fatalf("inactive icon = %q", got)
	}
	if got := IconFor(Tab{ID: "x"}, false); got != "" {
		t.Fatalf("expected empty icon key, got %q", got)
	}
}
