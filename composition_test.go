package onebit

import (
	"encoding/json"
	"testing"
)

// testSprites returns a SpriteMap with one 8x8 sprite per given id.
func testSprites(ids ...string) SpriteMap {
	m := SpriteMap{}
	for _, id := range ids {
		g := NewGrid(8, 8)
		g.Fill(true)
		m[id] = g
	}
	return m
}

func TestAddLayerExplicitCoordinates(t *testing.T) {
	c := NewComposition(64, 64)
	l := c.AddLayer("hero", -3, 100) // off-canvas is legal, nothing validates it
	if l.X != -3 || l.Y != 100 {
		t.Errorf("layer at (%d,%d), want (-3,100) uncontrolled", l.X, l.Y)
	}
	if !l.Visible {
		t.Error("new layers should be visible")
	}
	if l.ID == "" {
		t.Error("layer id should be assigned")
	}
	if l.Z != 0 {
		t.Errorf("first layer Z = %d, want 0", l.Z)
	}
}

func TestLayerIDsUnique(t *testing.T) {
	c := NewComposition(64, 64)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		l := c.AddLayer("s", 0, 0)
		if seen[l.ID] {
			t.Fatalf("duplicate layer id %q", l.ID)
		}
		seen[l.ID] = true
	}
}

func TestAutoPlacementAvoidsOccupiedLattice(t *testing.T) {
	src := testSprites("a", "b")
	c := NewComposition(64, 64)
	c.AddLayer("a", 0, 0) // occupies lattice cell (0,0)

	l := c.AddLayerAuto(src, "b")
	if l.X == 0 && l.Y == 0 {
		t.Error("auto-placement reused the occupied origin")
	}
	// Row-major search puts it in the first free lattice slot of row 0.
	if l.Y != 0 || l.X != 8 {
		t.Errorf("auto-placed at (%d,%d), want (8,0)", l.X, l.Y)
	}
}

func TestAutoPlacementSkipsInvisibleLayers(t *testing.T) {
	src := testSprites("a", "b")
	c := NewComposition(64, 64)
	hidden := c.AddLayer("a", 0, 0)
	hidden.Visible = false

	l := c.AddLayerAuto(src, "b")
	if l.X != 0 || l.Y != 0 {
		t.Errorf("auto-placed at (%d,%d), want (0,0) since the blocker is hidden", l.X, l.Y)
	}
}

func TestAutoPlacementFallsBackToOrigin(t *testing.T) {
	src := testSprites("a", "b")
	c := NewComposition(8, 8) // a single 8x8 sprite occupies everything
	c.AddLayer("a", 0, 0)

	l := c.AddLayerAuto(src, "b")
	if l.X != 0 || l.Y != 0 {
		t.Errorf("fallback placement = (%d,%d), want origin", l.X, l.Y)
	}
}

func TestDuplicateClonesAndAutoPlaces(t *testing.T) {
	src := testSprites("a")
	c := NewComposition(64, 64)
	orig := c.AddLayer("a", 0, 0)
	orig.Visible = true

	dup := c.Duplicate(src, orig.ID)
	if dup == nil {
		t.Fatal("Duplicate returned nil for a known layer")
	}
	if dup.ID == orig.ID {
		t.Error("duplicate shares the original's id")
	}
	if dup.SpriteID != "a" {
		t.Error("duplicate lost the sprite reference")
	}
	if dup.X == orig.X && dup.Y == orig.Y {
		t.Error("duplicate landed on top of the original despite free space")
	}
	if dup.Z != 1 {
		t.Errorf("duplicate Z = %d, want stacked on top", dup.Z)
	}
	if c.Duplicate(src, "no-such-layer") != nil {
		t.Error("duplicating an unknown layer should return nil")
	}
}

func TestMoveSnapsAndClamps(t *testing.T) {
	src := testSprites("a")
	c := NewComposition(64, 64)
	l := c.AddLayer("a", 0, 0)

	tests := []struct {
		name         string
		x, y         int
		snap         bool
		wantX, wantY int
	}{
		{"snap rounds to pitch", 13, 13, true, 16, 16},
		{"snap down", 11, 3, true, 8, 0},
		{"no snap", 13, 13, false, 13, 13},
		{"clamp right edge", 200, 0, false, 56, 0},
		{"clamp top-left", -20, -20, false, 0, 0},
		{"snap then clamp", 61, 61, true, 56, 56},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.Move(src, l.ID, tt.x, tt.y, tt.snap)
			if l.X != tt.wantX || l.Y != tt.wantY {
				t.Errorf("Move(%d,%d,snap=%v) = (%d,%d), want (%d,%d)",
					tt.x, tt.y, tt.snap, l.X, l.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMoveOversizedSpriteClampsNegative(t *testing.T) {
	big := NewGrid(100, 100)
	src := SpriteMap{"big": big}
	c := NewComposition(64, 64)
	l := c.AddLayer("big", 0, 0)

	c.Move(src, l.ID, 10, 10, false)
	// canvas - sprite = -36; position clamps into [-36, 0].
	if l.X != 0 || l.Y != 0 {
		t.Errorf("oversized move to (10,10) = (%d,%d), want (0,0)", l.X, l.Y)
	}
	c.Move(src, l.ID, -100, -100, false)
	if l.X != -36 || l.Y != -36 {
		t.Errorf("oversized move to (-100,-100) = (%d,%d), want (-36,-36)", l.X, l.Y)
	}
}

func TestReorderSwapsNearestNeighbor(t *testing.T) {
	c := NewComposition(64, 64)
	bottom := c.AddLayer("a", 0, 0) // Z=0
	middle := c.AddLayer("b", 0, 0) // Z=1
	top := c.AddLayer("c", 0, 0)    // Z=2

	c.Reorder(middle.ID, ReorderUp)
	if middle.Z != 2 || top.Z != 1 {
		t.Errorf("after up: middle Z=%d top Z=%d, want 2 and 1", middle.Z, top.Z)
	}
	if bottom.Z != 0 {
		t.Error("reorder touched an uninvolved layer")
	}

	c.Reorder(bottom.ID, ReorderDown) // already lowest: no-op
	if bottom.Z != 0 {
		t.Errorf("down at the bottom changed Z to %d, want no-op", bottom.Z)
	}
	c.Reorder(middle.ID, ReorderUp) // already highest: no-op
	if middle.Z != 2 {
		t.Errorf("up at the top changed Z to %d, want no-op", middle.Z)
	}
}

func TestReorderSparseZSwapsClosest(t *testing.T) {
	c := NewComposition(64, 64)
	a := c.AddLayer("a", 0, 0)
	b := c.AddLayer("b", 0, 0)
	d := c.AddLayer("c", 0, 0)
	a.Z, b.Z, d.Z = 10, 40, 25 // sparse and out of insertion order

	c.Reorder(a.ID, ReorderUp)
	// Nearest above Z=10 is 25, not 40.
	if a.Z != 25 || d.Z != 10 {
		t.Errorf("sparse up: a.Z=%d d.Z=%d, want 25 and 10", a.Z, d.Z)
	}
	if b.Z != 40 {
		t.Error("sparse up touched the far layer")
	}
}

func TestHitTestTopmostFirst(t *testing.T) {
	src := testSprites("a", "b")
	c := NewComposition(64, 64)
	under := c.AddLayer("a", 0, 0)
	over := c.AddLayer("b", 4, 4) // overlaps (4..7, 4..7)

	if got := c.HitTest(src, 5, 5); got != over {
		t.Error("hit test should return the topmost layer in the overlap")
	}
	if got := c.HitTest(src, 1, 1); got != under {
		t.Error("hit test missed the lower layer outside the overlap")
	}
	if got := c.HitTest(src, 40, 40); got != nil {
		t.Error("hit test on empty canvas space should return nil")
	}

	over.Visible = false
	if got := c.HitTest(src, 5, 5); got != under {
		t.Error("hidden layers must be transparent to hit testing")
	}
}

func TestDanglingSpriteReferencesTolerated(t *testing.T) {
	src := testSprites("alive")
	c := NewComposition(64, 64)
	ghost := c.AddLayer("deleted-sprite", 0, 0)
	alive := c.AddLayer("alive", 0, 0)

	// Hit testing ignores the dangling layer even though it is on top of
	// the same position.
	c.Reorder(ghost.ID, ReorderUp)
	if got := c.HitTest(src, 2, 2); got != alive {
		t.Error("dangling layer should be invisible to hit testing")
	}

	// Auto-placement ignores it as an obstacle.
	l := c.AddLayerAuto(src, "alive")
	if l.X != 8 || l.Y != 0 {
		t.Errorf("auto-place = (%d,%d), want (8,0): only the live layer blocks", l.X, l.Y)
	}

	// Moving it clamps a zero-size box to the canvas without panicking.
	c.Move(src, ghost.ID, 500, 500, false)
	if ghost.X != 64 || ghost.Y != 64 {
		t.Errorf("dangling move = (%d,%d), want clamped to canvas edge (64,64)", ghost.X, ghost.Y)
	}
}

func TestRemoveLayer(t *testing.T) {
	c := NewComposition(64, 64)
	l := c.AddLayer("a", 0, 0)
	if !c.Remove(l.ID) {
		t.Fatal("Remove returned false for a known layer")
	}
	if len(c.Layers) != 0 {
		t.Error("layer still present after Remove")
	}
	if c.Remove(l.ID) {
		t.Error("Remove should return false for an unknown id")
	}
}

func TestLayersByZKeepsInsertionOrderOnTies(t *testing.T) {
	c := NewComposition(64, 64)
	a := c.AddLayer("a", 0, 0)
	b := c.AddLayer("b", 0, 0)
	a.Z, b.Z = 5, 5
	byZ := c.LayersByZ()
	if byZ[0] != a || byZ[1] != b {
		t.Error("equal Z should keep insertion order")
	}
}

func TestFlattenStampsInkOnly(t *testing.T) {
	dot := NewGrid(2, 2)
	dot.Set(0, 0, true)
	src := SpriteMap{"dot": dot}

	c := NewComposition(8, 8)
	c.AddLayer("dot", 1, 1)
	c.AddLayer("dot", 1, 1) // same spot: the copy's background must not erase

	flat := c.Flatten(src)
	if !flat.Get(1, 1) {
		t.Error("flatten lost the ink cell")
	}
	if flat.Get(2, 2) {
		t.Error("flatten stamped a background cell as ink")
	}

	// Off-canvas portions clip instead of wrapping or panicking.
	c.AddLayer("dot", -1, -1)
	c.AddLayer("dot", 7, 7)
	flat = c.Flatten(src)
	if !flat.Get(7, 7) {
		t.Error("partially off-canvas layer lost its on-canvas ink")
	}
}

func TestCompositionJSONRoundTrip(t *testing.T) {
	c := NewComposition(48, 32)
	l := c.AddLayer("hero", 8, 16)
	l.Visible = false
	c.AddLayer("villain", -4, 0)

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Composition
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Width != 48 || back.Height != 32 || len(back.Layers) != 2 {
		t.Fatalf("round trip lost structure: %s", data)
	}
	for i := range c.Layers {
		if *back.Layers[i] != *c.Layers[i] {
			t.Errorf("layer %d round trip = %+v, want %+v", i, back.Layers[i], c.Layers[i])
		}
	}
}
