// SPDX-License-Identifier: MIT

// Package matrix - plain-text matrix format.
//
// Format:
//
//	rows [cols]
//	v00 v01 ... v0c
//	...
//
// The header gives the shape (cols defaults to rows when omitted). Each following
// line holds one row of values separated by spaces, tabs or commas. Lines shorter
// than two bytes are skipped. Rows with fewer values than cols are zero-padded,
// extra values are ignored, and missing trailing rows stay zero.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// minRowLineLen mirrors the loader rule that a data line must carry at least two bytes.
const minRowLineLen = 2

// parseErrorf attaches a 1-based line number to ErrParse.
func parseErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrParse)
}

// splitFields splits a line on spaces, tabs and commas.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '\r'
	})
}

// Load opens path and decodes a matrix with Read.
func Load(path string) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrix: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("matrix: load %s: %w", path, err)
	}

	return m, nil
}

// Read decodes the plain-text matrix format from r.
//
// Implementation:
//   - Stage 1: parse the header into (rows, cols); cols defaults to rows.
//   - Stage 2: read up to rows data lines, skipping too-short lines.
//   - Stage 3: parse up to cols values per line; missing values stay zero.
//
// Errors:
//   - ErrParse (wrapped with the line number) on an empty input, a bad header or a bad number.
//   - ErrNaNInf when a value is not finite.
//
// Complexity:
//   - Time O(size of input), Space O(rows*cols).
func Read(r io.Reader) (*Dense, error) {
	var (
		sc     = bufio.NewScanner(r)
		lineNo int
		m      *Dense
		row    int
		err    error
	)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if m == nil {
			if m, err = parseHeader(line, lineNo); err != nil {
				return nil, err
			}
			continue
		}
		if row >= m.r {
			break
		}
		if len(line) < minRowLineLen {
			continue
		}
		if err = parseRow(m, row, line, lineNo); err != nil {
			return nil, err
		}
		row++
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("matrix: read: %w", err)
	}
	if m == nil {
		return nil, parseErrorf(1, "missing header")
	}

	return m, nil
}

// parseHeader decodes "rows [cols]".
func parseHeader(line string, lineNo int) (*Dense, error) {
	fields := splitFields(line)
	if len(fields) == 0 {
		return nil, parseErrorf(lineNo, "missing header")
	}
	rows, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, parseErrorf(lineNo, "bad row count %q", fields[0])
	}
	cols := rows
	if len(fields) > 1 {
		if cols, err = strconv.Atoi(fields[1]); err != nil {
			return nil, parseErrorf(lineNo, "bad column count %q", fields[1])
		}
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, parseErrorf(lineNo, "shape %dx%d: %v", rows, cols, err)
	}

	return m, nil
}

// parseRow decodes up to m.Cols() values into row.
func parseRow(m *Dense, row int, line string, lineNo int) error {
	var (
		fields = splitFields(line)
		col    int
		v      float64
		err    error
	)
	for col = 0; col < m.c && col < len(fields); col++ {
		if v, err = strconv.ParseFloat(fields[col], 64); err != nil {
			return parseErrorf(lineNo, "bad value %q", fields[col])
		}
		if err = m.Set(row, col, v); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	return nil
}

// Write encodes m in the plain-text format accepted by Read.
func Write(w io.Writer, m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", m.r, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
