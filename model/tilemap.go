package model

import "math"

type Tile int

const (
	Open Tile = iota
	Wall
)

// TileMap is a row-major grid: m[y][x].
type TileMap [][]Tile

var defaultLayout = TileMap{
	{Wall, Wall, Wall, Wall, Wall, Wall, Wall, Wall},
	{Wall, Open, Open, Open, Open, Open, Open, Wall},
	{Wall, Open, Wall, Open, Open, Wall, Open, Wall},
	{Wall, Open, Wall, Open, Open, Wall, Open, Wall},
	{Wall, Open, Open, Open, Open, Open, Open, Wall},
	{Wall, Open, Wall, Wall, Wall, Wall, Open, Wall},
	{Wall, Open, Open, Open, Open, Open, Open, Wall},
	{Wall, Wall, Wall, Wall, Wall, Wall, Wall, Wall},
}

// DefaultMap returns a fresh copy of the fixed 8x8 level.
func DefaultMap() TileMap {
	return defaultLayout.Clone()
}

func (m TileMap) Clone() TileMap {
	out := make(TileMap, len(m))
	for y, row := range m {
		out[y] = append([]Tile(nil), row...)
	}
	return out
}

func (m TileMap) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

func (m TileMap) Height() int { return len(m) }

func (m TileMap) InBounds(tx, ty int) bool {
	return tx >= 0 && ty >= 0 && ty < len(m) && tx < len(m[ty])
}

// TileAt returns the tile at (tx, ty); anything outside the grid reads as Wall.
func (m TileMap) TileAt(tx, ty int) Tile {
	if !m.InBounds(tx, ty) {
		return Wall
	}
	return m[ty][tx]
}

func (m TileMap) Blocked(tx, ty int) bool {
	return m.TileAt(tx, ty) == Wall
}

// Walkable reports whether the continuous point (x, y) sits on an open tile.
func (m TileMap) Walkable(x, y float64) bool {
	return m.TileAt(int(math.Floor(x)), int(math.Floor(y))) == Open
}

// Interior reports whether (x, y) lies strictly inside the grid's outer edges.
func (m TileMap) Interior(x, y float64) bool {
	return x > 0 && y > 0 && x < float64(m.Width()) && y < float64(m.Height())
}
