package game

import (
	"math"
	"testing"

	"portalfx/page"
)

func testPage() *page.Page {
	return page.New("PORTAL", []page.Surface{
		{Name: HeroSurface, X: 0, Y: 0, W: 1, H: 0.5},
		{Name: JoinSurface, X: 0, Y: 0.5, W: 1, H: 0.5},
	})
}

func TestFieldBlankUntilSized(t *testing.T) {
	f := NewField("hero", 160, newTestRand(1))
	c := &CountingCanvas{}
	f.Frame(c)

	if c.Clears != 0 || f.Frames() != 0 || f.DotCount() != 0 {
		t.Errorf("unsized field drew: clears=%d frames=%d dots=%d", c.Clears, f.Frames(), f.DotCount())
	}
}

func TestFieldFrameOrder(t *testing.T) {
	f := NewField("hero", 10, newTestRand(2))
	f.Resize(800, 600, 1)
	f.comets.chance = 1

	c := &recordingCanvas{}
	f.Frame(c)

	if len(c.ops) < 4 {
		t.Fatalf("too few ops: %+v", c.ops)
	}
	if c.ops[0].kind != "clear" {
		t.Errorf("first op %q, want clear", c.ops[0].kind)
	}

	haze := c.ops[1]
	if haze.kind != "fill" || haze.x != 400 || math.Abs(haze.y-600*focalY) > 1e-9 || math.Abs(haze.radius-hazeRadius*600) > 1e-9 {
		t.Errorf("haze op %+v, want fill at (400,%v) radius %v", haze, 600*focalY, hazeRadius*600)
	}
	if c.ops[2].kind != "blend" || c.ops[2].blend != BlendLighter {
		t.Errorf("third op %+v, want lighter blend", c.ops[2])
	}
	last := c.ops[len(c.ops)-1]
	if last.kind != "blend" || last.blend != BlendNormal {
		t.Errorf("last op %+v, want normal blend", last)
	}

	// 10 dots plus one comet (stroke + head)
	if got := c.count("fill"); got != 1+10+1 {
		t.Errorf("fills = %d, want 12", got)
	}
	if got := c.count("stroke"); got != 1 {
		t.Errorf("strokes = %d, want 1", got)
	}
	if f.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", f.Frames())
	}
}

func TestFieldPopulationInvariants(t *testing.T) {
	f := NewField("hero", 160, newTestRand(3))
	f.Resize(1024, 476, 2)
	f.comets.chance = 0.5

	c := &CountingCanvas{}
	for frame := 0; frame < 3000; frame++ {
		f.Frame(c)
		if f.DotCount() != 160 {
			t.Fatalf("frame %d: %d dots, want 160", frame, f.DotCount())
		}
		if f.CometCount() > maxComets {
			t.Fatalf("frame %d: %d comets, cap %d", frame, f.CometCount(), maxComets)
		}
	}
	if c.Clears != 3000 {
		t.Errorf("Clears = %d, want 3000", c.Clears)
	}
}

func TestFieldResizeResets(t *testing.T) {
	f := NewField("hero", 160, newTestRand(4))
	if !f.Resize(800, 600, 1) {
		t.Fatal("first Resize reported no reset")
	}
	f.comets.chance = 1

	c := &CountingCanvas{}
	for i := 0; i < 10; i++ {
		f.Frame(c)
	}
	if f.CometCount() == 0 {
		t.Fatal("expected comets before resize")
	}
	oldDots := &f.dots.dots[0]

	if !f.Resize(640, 480, 1) {
		t.Fatal("Resize to a new size reported no reset")
	}
	if f.CometCount() != 0 {
		t.Errorf("CometCount() = %d after resize, want 0", f.CometCount())
	}
	if f.DotCount() != 160 {
		t.Errorf("DotCount() = %d after resize, want 160", f.DotCount())
	}
	if &f.dots.dots[0] == oldDots {
		t.Error("dot population was not replaced")
	}
	for i, d := range f.dots.dots {
		if d.pos.x >= 640 || d.pos.y >= 480 {
			t.Fatalf("dot %d at %+v outside the new 640x480 surface", i, d.pos)
		}
	}

	if got := f.Geometry(); got != (Geometry{W: 640, H: 480, DPR: 1}) {
		t.Errorf("Geometry() = %+v", got)
	}
}

func TestFieldResizeSameGeometryIsNoop(t *testing.T) {
	f := NewField("hero", 20, newTestRand(5))
	f.Resize(800, 600, 2)
	f.comets.chance = 1
	f.Frame(&CountingCanvas{})

	if f.Resize(800, 600, 2) {
		t.Error("unchanged Resize reported a reset")
	}
	if f.CometCount() == 0 {
		t.Error("unchanged Resize cleared comets")
	}

	if !f.Resize(800, 600, 1) {
		t.Error("pixel ratio change did not reset")
	}
}

func TestFieldResizeClampsDegenerateSize(t *testing.T) {
	f := NewField("hero", 5, newTestRand(6))
	f.Resize(0, -10, 0)

	if got := f.Geometry(); got != (Geometry{W: 1, H: 1, DPR: 1}) {
		t.Errorf("Geometry() = %+v, want 1x1 @1", got)
	}

	c := &CountingCanvas{}
	f.Frame(c)
	if c.Clears != 1 || f.DotCount() != 5 {
		t.Errorf("degenerate field did not draw: clears=%d dots=%d", c.Clears, f.DotCount())
	}
}

func TestFieldsAreIsolated(t *testing.T) {
	p := testPage()
	a := Attach(p, HeroSurface, 40, 7)
	b := Attach(p, JoinSurface, 40, 7)
	a.Resize(800, 300, 1)
	b.Resize(800, 300, 1)
	a.comets.chance = 1

	bDots := append([]Dot(nil), b.dots.dots...)

	for i := 0; i < 50; i++ {
		a.Frame(&CountingCanvas{})
	}

	if b.Frames() != 0 || b.CometCount() != 0 {
		t.Errorf("field b advanced: frames=%d comets=%d", b.Frames(), b.CometCount())
	}
	for i := range bDots {
		if b.dots.dots[i] != bDots[i] {
			t.Fatalf("field b dot %d changed while only a ran", i)
		}
	}
	if a.CometCount() == 0 {
		t.Error("field a spawned no comets")
	}
	if a.dots == b.dots || a.comets == b.comets || a.rng == b.rng {
		t.Error("fields share population state")
	}
}

func TestAttachMissingSurfaceIsInert(t *testing.T) {
	p := page.New("PORTAL", []page.Surface{{Name: HeroSurface, W: 1, H: 1}})
	f := Attach(p, JoinSurface, 160, 1)

	if !f.Inert() {
		t.Fatal("field for a missing surface is not inert")
	}
	if f.Resize(800, 600, 1) {
		t.Error("inert Resize reported a reset")
	}

	c := &CountingCanvas{}
	f.Frame(c)
	if c.Clears != 0 || c.Fills != 0 {
		t.Errorf("inert field drew: %+v", c)
	}
	if f.DotCount() != 0 || f.CometCount() != 0 || f.Frames() != 0 {
		t.Error("inert field reports state")
	}
	if f.Name() != JoinSurface {
		t.Errorf("Name() = %q", f.Name())
	}

	if !Attach(nil, HeroSurface, 1, 1).Inert() {
		t.Error("Attach(nil) is not inert")
	}

	var nilField *Field
	nilField.Frame(c)
	if !nilField.Inert() || nilField.Name() != "" {
		t.Error("nil field is not inert")
	}
}
