// SPDX-License-Identifier: MIT

package series

import (
	"reflect"

	"github.com/katalvlaran/orgindex/cluster"
)

// ToGrids normalises input into grids. series reports whether input holds
// more than one time slice: a 2D ([y][x]) grid, or a 3D ([t][y][x]) stack
// with a single slice, yields series = false.
//
// Accepted inputs:
//   - *cluster.Grid and []*cluster.Grid;
//   - 2D or 3D slices or arrays of bool, integers or floats (nonzero = active).
//
// All slices of a series must share one (ny, nx) shape. Every failure is an
// *InputShapeError.
// Complexity: O(T×H×W).
func ToGrids(input any) (grids []*cluster.Grid, series bool, err error) {
	switch in := input.(type) {
	case nil:
		return nil, false, shapeErrorf(-1, nil, "nil input")
	case *cluster.Grid:
		if in == nil {
			return nil, false, shapeErrorf(-1, nil, "nil grid")
		}
		return []*cluster.Grid{in}, false, nil
	case []*cluster.Grid:
		if err = checkShapes(in); err != nil {
			return nil, true, err
		}
		return in, len(in) > 1, nil
	case [][]bool:
		g, err := cluster.NewGrid(in)
		if err != nil {
			return nil, false, shapeErrorf(-1, err, "2D grid")
		}
		return []*cluster.Grid{g}, false, nil
	}

	v := reflect.ValueOf(input)
	rank, elem := describe(v.Type())
	if !truthyKind(elem.Kind()) {
		return nil, false, shapeErrorf(-1, nil, "unsupported element type %s", elem)
	}

	switch rank {
	case 2:
		g, err := gridFromValue(v)
		if err != nil {
			return nil, false, shapeErrorf(-1, err, "2D grid")
		}
		return []*cluster.Grid{g}, false, nil
	case 3:
		nt := v.Len()
		if nt == 0 {
			return nil, true, shapeErrorf(-1, cluster.ErrEmptyGrid, "empty series")
		}
		grids = make([]*cluster.Grid, nt)
		for t := 0; t < nt; t++ {
			if grids[t], err = gridFromValue(v.Index(t)); err != nil {
				return nil, true, shapeErrorf(t, err, "")
			}
		}
		if err = checkShapes(grids); err != nil {
			return nil, true, err
		}
		return grids, nt > 1, nil
	default:
		return nil, false, shapeErrorf(-1, nil, "rank %d, want 2 or 3", rank)
	}
}

// checkShapes verifies grids is non-empty, nil-free and of one shape.
func checkShapes(grids []*cluster.Grid) error {
	if len(grids) == 0 {
		return shapeErrorf(-1, cluster.ErrEmptyGrid, "empty series")
	}
	for t, g := range grids {
		if g == nil {
			return shapeErrorf(t, nil, "nil grid")
		}
		if g.Height != grids[0].Height || g.Width != grids[0].Width {
			return shapeErrorf(t, nil, "shape %dx%d differs from %dx%d",
				g.Height, g.Width, grids[0].Height, grids[0].Width)
		}
	}
	return nil
}

// describe counts nested slice/array levels and returns the innermost type.
func describe(t reflect.Type) (rank int, elem reflect.Type) {
	for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		rank++
		t = t.Elem()
	}
	return rank, t
}

// gridFromValue converts a rank-2 slice value into a Grid.
func gridFromValue(v reflect.Value) (*cluster.Grid, error) {
	vals := make([][]bool, v.Len())
	for y := range vals {
		row := v.Index(y)
		vals[y] = make([]bool, row.Len())
		for x := range vals[y] {
			vals[y][x] = truthy(row.Index(x))
		}
	}
	return cluster.NewGrid(vals)
}

func truthyKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// truthy reports whether a scalar of a truthyKind is nonzero. NaN is nonzero.
func truthy(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() != 0
	default:
		return v.Float() != 0
	}
}
