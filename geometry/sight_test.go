package geometry

import "testing"

type testGrid [][]bool

func (g testGrid) Width() int               { return len(g[0]) }
func (g testGrid) Height() int              { return len(g) }
func (g testGrid) Blocked(tx, ty int) bool { return g[ty][tx] }

func openGrid(w, h int) testGrid {
	g := make(testGrid, h)
	for y := range g {
		g[y] = make([]bool, w)
	}
	return g
}

type countingGrid struct {
	testGrid
	lookups int
}

func (g *countingGrid) Blocked(tx, ty int) bool {
	g.lookups++
	return g.testGrid.Blocked(tx, ty)
}

func TestLineOfSight(t *testing.T) {
	walled := openGrid(8, 8)
	walled[3][4] = true

	tests := []struct {
		name           string
		grid           testGrid
		x1, y1, x2, y2 float64
		want           bool
	}{
		{"open corridor", openGrid(8, 8), 1.5, 3.5, 6.5, 3.5, true},
		{"wall between", walled, 1.5, 3.5, 6.5, 3.5, false},
		{"wall beside the line", walled, 1.5, 1.5, 6.5, 1.5, true},
		{"same point", openGrid(8, 8), 2.5, 2.5, 2.5, 2.5, true},
		{"leaves the grid", openGrid(8, 8), 1.5, 1.5, 9.5, 1.5, false},
		{"starts outside", openGrid(8, 8), -0.5, 1.5, 1.5, 1.5, false},
		{"ends inside wall", walled, 1.5, 3.5, 4.5, 3.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineOfSight(tt.grid, tt.x1, tt.y1, tt.x2, tt.y2); got != tt.want {
				t.Errorf("LineOfSight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSightCacheMemoizes(t *testing.T) {
	g := &countingGrid{testGrid: openGrid(8, 8)}
	c := NewSightCache(g)

	if !c.LineOfSight(1.5, 1.5, 6.5, 1.5) {
		t.Fatal("expected open line")
	}
	first := g.lookups
	if first == 0 {
		t.Fatal("first query did not walk the grid")
	}

	// 1.52 rounds to the same key as 1.5.
	c.LineOfSight(1.52, 1.5, 6.5, 1.5)
	if g.lookups != first {
		t.Errorf("quantized repeat walked the grid again: %d lookups, want %d", g.lookups, first)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestSightCacheWindow(t *testing.T) {
	g := openGrid(8, 8)
	c := NewSightCache(g)

	c.LineOfSight(1.5, 1.5, 6.5, 1.5)
	for i := 1; i < DefaultSightWindow; i++ {
		c.LineOfSight(1.5, 1.5, 6.5, 6.5)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d inside the window, want 2", c.Len())
	}

	// the 61st lookup drops the memo before answering
	c.LineOfSight(1.5, 1.5, 6.5, 6.5)
	if c.Len() != 1 {
		t.Errorf("Len() = %d after the window, want 1", c.Len())
	}
}

func TestSightCacheStaleWithinWindow(t *testing.T) {
	g := openGrid(8, 8)
	c := NewSightCache(g)

	if !c.LineOfSight(1.5, 3.5, 6.5, 3.5) {
		t.Fatal("expected open line")
	}
	g[3][4] = true
	if !c.LineOfSight(1.5, 3.5, 6.5, 3.5) {
		t.Error("cached answer should survive inside the window")
	}

	c.Reset()
	if c.LineOfSight(1.5, 3.5, 6.5, 3.5) {
		t.Error("reset cache should see the new wall")
	}
}

func TestSightCacheCapacity(t *testing.T) {
	c := NewSightCacheSize(openGrid(8, 8), 1000, 4)
	for i := 0; i < 10; i++ {
		c.LineOfSight(1.5, 1.5, 1.5+float64(i)*0.5, 1.5)
	}
	if c.Len() > 4 {
		t.Errorf("Len() = %d, want at most 4", c.Len())
	}
}
