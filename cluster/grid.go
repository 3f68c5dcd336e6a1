// SPDX-License-Identifier: MIT

package cluster

// Number is any integer or floating-point element type accepted by FromNumeric.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NewGrid constructs a Grid from a non-empty, rectangular [y][x] slice.
// It deep-copies the input so later caller edits cannot leak in.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]bool) (*Grid, error) {
	h, w, err := shape(values)
	if err != nil {
		return nil, err
	}
	cells := make([]bool, 0, h*w)
	for _, row := range values {
		cells = append(cells, row...)
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// FromNumeric constructs a Grid from a numeric [y][x] slice; any nonzero
// value (NaN included) marks an active cell.
// Same errors as NewGrid.
func FromNumeric[T Number](values [][]T) (*Grid, error) {
	h, w, err := shape(values)
	if err != nil {
		return nil, err
	}
	cells := make([]bool, h*w)
	for y, row := range values {
		for x, v := range row {
			cells[y*w+x] = v != 0
		}
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// shape validates that values is non-empty and rectangular.
func shape[T any](values [][]T) (h, w int, err error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	h, w = len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return 0, 0, ErrNonRectangular
		}
	}
	return h, w, nil
}

// InBounds reports whether (y,x) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(y, x int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Active reports whether (y,x) is inside the grid and marked active.
// Complexity: O(1).
func (g *Grid) Active(y, x int) bool {
	return g.InBounds(y, x) && g.cells[g.index(y, x)]
}

// ActiveCount returns the number of active cells.
// Complexity: O(W×H).
func (g *Grid) ActiveCount() int {
	n := 0
	for _, on := range g.cells {
		if on {
			n++
		}
	}
	return n
}

// Bools returns a fresh [y][x] copy of the occupancy flags.
func (g *Grid) Bools() [][]bool {
	out := make([][]bool, g.Height)
	for y := range out {
		out[y] = make([]bool, g.Width)
		copy(out[y], g.cells[y*g.Width:(y+1)*g.Width])
	}
	return out
}

// Neighbors returns the in-domain neighbors of (y,x) under opts, in offset order.
// With opts.Cyclic the x coordinate wraps modulo Width; on very narrow grids a
// wrapped neighbor can coincide with (y,x) itself or with another neighbor.
// Complexity: O(d).
func (g *Grid) Neighbors(y, x int, opts Options) []Cell {
	offs := opts.offsets()
	out := make([]Cell, 0, len(offs))
	for _, d := range offs {
		if vy, vx, ok := g.step(y, x, d, opts.Cyclic); ok {
			out = append(out, Cell{Y: vy, X: vx})
		}
	}
	return out
}

// step applies offset d to (y,x), wrapping x when cyclic.
func (g *Grid) step(y, x int, d [2]int, cyclic bool) (int, int, bool) {
	vy, vx := y+d[0], x+d[1]
	if vy < 0 || vy >= g.Height {
		return 0, 0, false
	}
	if cyclic {
		vx = ((vx % g.Width) + g.Width) % g.Width
	} else if vx < 0 || vx >= g.Width {
		return 0, 0, false
	}
	return vy, vx, true
}

// index maps (y,x) to a row-major index: y*Width + x.
func (g *Grid) index(y, x int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (y,x).
func (g *Grid) Coordinate(idx int) (y, x int) {
	return idx / g.Width, idx % g.Width
}
