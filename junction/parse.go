package junction

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads one point per line from r.
//
// Each non-blank line must hold exactly three comma-separated base-10 integers;
// whitespace around the line and around each field is ignored. The first bad line
// stops parsing with an error wrapping ErrMalformedPoint.
func Parse(r io.Reader) ([]Point, error) {
	var (
		points []Point
		line   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		p, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("junction: read input: %w", err)
	}

	return points, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]Point, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(text string) (Point, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: %q has %d fields, want 3", ErrMalformedPoint, text, len(fields))
	}

	var coords [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Point{}, fmt.Errorf("%w: %q: %v", ErrMalformedPoint, text, err)
		}
		coords[i] = v
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
