// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// parseGrids reads blank-line separated grids from r.
//
// Each non-blank line is one row. A row is either cells separated by
// whitespace or commas, each a number (nonzero = active), or one token of
// at least two '0'/'1' characters or of '.'/'#' characters ('1' and '#' are
// active). Lines starting with ';' are comments and do not end a grid.
func parseGrids(r io.Reader, name string) ([][][]bool, error) {
	var (
		grids   [][][]bool
		current [][]bool
		lineNo  int
	)
	flush := func() {
		if len(current) > 0 {
			grids = append(grids, current)
			current = nil
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			flush()
			continue
		case strings.HasPrefix(line, ";"):
			continue
		}
		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
		current = append(current, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	flush()
	return grids, nil
}

func parseRow(line string) ([]bool, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 1 && isCharRow(fields[0]) {
		row := make([]bool, len(fields[0]))
		for x, ch := range fields[0] {
			row[x] = ch == '1' || ch == '#'
		}
		return row, nil
	}

	row := make([]bool, len(fields))
	for x, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("cell %d: invalid value %q", x+1, f)
		}
		row[x] = v != 0
	}
	return row, nil
}

// isCharRow reports whether s is a '.'/'#' token or a '0'/'1' token of two
// or more characters. Mixed alphabets are numbers ("1.0").
func isCharRow(s string) bool {
	if strings.Trim(s, ".#") == "" {
		return true
	}
	return len(s) > 1 && strings.Trim(s, "01") == ""
}
