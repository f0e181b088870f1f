package page

import (
	"reflect"
	"testing"
)

func testSurfaces() []Surface {
	return []Surface{
		{Name: "hero", X: 0, Y: 0, W: 1, H: 0.5},
		{Name: "join", X: 0, Y: 0.5, W: 1, H: 0.5},
	}
}

func TestApplyName(t *testing.T) {
	p := New("PORTAL", testSurfaces())
	p.Apply(ParseQuery("?name=jane%20doe"))

	if p.TopKicker != "Jane Doe, WELCOME TO THE" {
		t.Errorf("TopKicker = %q", p.TopKicker)
	}
	if p.BottomKicker != "Jane Doe… JOIN US INSIDE THE" {
		t.Errorf("BottomKicker = %q", p.BottomKicker)
	}
}

func TestApplyWithoutNameKeepsDefaults(t *testing.T) {
	for _, raw := range []string{"", "?other=1", "?name=", "?name=%20%20"} {
		p := New("PORTAL", testSurfaces())
		p.Apply(ParseQuery(raw))

		if p.TopKicker != DefaultTopKicker || p.BottomKicker != DefaultBottomKicker {
			t.Errorf("query %q changed kickers to %q / %q", raw, p.TopKicker, p.BottomKicker)
		}
	}
}

func TestApplyIdentity(t *testing.T) {
	p := New("PORTAL", testSurfaces())
	p.Apply(Params{Identity: " Founder \\n\\nAcme Corp"})

	want := []string{"Founder", "Acme Corp"}
	if !reflect.DeepEqual(p.Identity, want) {
		t.Errorf("Identity = %q, want %q", p.Identity, want)
	}
	if !p.HasIdentity() {
		t.Error("HasIdentity() = false, want true")
	}

	p.Apply(Params{})
	if p.Identity != nil || p.HasIdentity() {
		t.Errorf("identity block should be removed, got %q", p.Identity)
	}
}

func TestSurfaceLookup(t *testing.T) {
	p := New("PORTAL", testSurfaces())

	s, ok := p.Surface("join")
	if !ok || s.Name != "join" {
		t.Fatalf("Surface(join) = %+v, %v", s, ok)
	}

	x, y, w, h := s.Rect(1000, 600)
	if x != 0 || y != 300 || w != 1000 || h != 300 {
		t.Errorf("Rect = (%v,%v,%v,%v), want (0,300,1000,300)", x, y, w, h)
	}

	if _, ok := p.Surface("missing"); ok {
		t.Error("Surface(missing) reported found")
	}
}
