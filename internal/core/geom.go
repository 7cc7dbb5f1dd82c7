// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a grid-aligned position. Coordinates are always multiples of the
// cell size of the Bounds they live in.
type Point struct {
	X, Y int
}

// Step returns the point one cell away in direction d.
func (p Point) Step(d Direction, cell int) Point {
	return Point{X: p.X + d.DX*cell, Y: p.Y + d.DY*cell}
}

// Direction is one of the four cardinal unit vectors.
// The zero value means "no direction".
type Direction struct {
	DX, DY int
}

// Cardinal directions. Screen coordinates: Y grows downwards.
var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Cardinals lists the four movement directions in a fixed order.
// Used wherever a direction has to be picked at random.
func Cardinals() []Direction {
	return []Direction{DirUp, DirDown, DirLeft, DirRight}
}

// Opposite returns the negated direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite reports whether d is the exact negation of other.
func (d Direction) IsOpposite(other Direction) bool {
	return d != (Direction{}) && d == other.Opposite()
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Bounds describes the play area: [0,Width) x [0,Height), divided into
// square cells of size Cell.
type Bounds struct {
	Width  int
	Height int
	Cell   int
}

// Contains returns true if p lies inside the play area.
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Cols returns the number of cells per row.
func (b Bounds) Cols() int {
	if b.Cell <= 0 {
		return 0
	}
	return b.Width / b.Cell
}

// Rows returns the number of cells per column.
func (b Bounds) Rows() int {
	if b.Cell <= 0 {
		return 0
	}
	return b.Height / b.Cell
}

// CellCount returns the total number of cells in the play area.
func (b Bounds) CellCount() int {
	return b.Cols() * b.Rows()
}

// At returns the grid-aligned point for the given column and row.
func (b Bounds) At(col, row int) Point {
	return Point{X: col * b.Cell, Y: row * b.Cell}
}

// Aligned returns true if p sits exactly on the cell grid.
func (b Bounds) Aligned(p Point) bool {
	return b.Cell > 0 && p.X%b.Cell == 0 && p.Y%b.Cell == 0
}

// ToCell converts a grid-aligned point to its column and row.
func (b Bounds) ToCell(p Point) (col, row int) {
	return p.X / b.Cell, p.Y / b.Cell
}
