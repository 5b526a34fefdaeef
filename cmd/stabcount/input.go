package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/forestrie/go-stabcount/stab"
)

var ErrBadInput = errors.New("stabcount: bad input")

// Case is one test case in the stdin format.
type Case struct {
	Rectangles []stab.Rectangle
	Points     []stab.Point
}

// tokenReader reads whitespace separated integers.
type tokenReader struct {
	sc     *bufio.Scanner
	tokens int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

// next returns io.EOF only when the input ends cleanly.
func (t *tokenReader) next() (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	t.tokens++
	v, err := strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d: %w", ErrBadInput, t.tokens, err)
	}
	return v, nil
}

func (t *tokenReader) mustNext(what string) (int64, error) {
	v, err := t.next()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w: input ends before %s", ErrBadInput, what)
	}
	return v, err
}

func (t *tokenReader) count(what string) (int, error) {
	n, err := t.next()
	if err != nil {
		return 0, err
	}
	if n < 0 || n > stab.MaxRectangles {
		return 0, fmt.Errorf("%w: %s count %d", ErrBadInput, what, n)
	}
	return int(n), nil
}

func readRectangles(t *tokenReader) ([]stab.Rectangle, error) {
	n, err := t.count("rectangle")
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing rectangle count", ErrBadInput)
	}
	if err != nil {
		return nil, err
	}
	rects := make([]stab.Rectangle, 0, n)
	var c [4]int64
	for i := 0; i < n; i++ {
		for j := range c {
			if c[j], err = t.mustNext(fmt.Sprintf("rectangle %d", i)); err != nil {
				return nil, err
			}
		}
		rects = append(rects, stab.NewRectangle(c[0], c[1], c[2], c[3]))
	}
	return rects, nil
}

// readPoints treats a missing point count as no points.
func readPoints(t *tokenReader) ([]stab.Point, error) {
	m, err := t.count("point")
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	points := make([]stab.Point, 0, m)
	for i := 0; i < m; i++ {
		what := fmt.Sprintf("point %d", i)
		x, err := t.mustNext(what)
		if err != nil {
			return nil, err
		}
		y, err := t.mustNext(what)
		if err != nil {
			return nil, err
		}
		points = append(points, stab.Point{X: x, Y: y})
	}
	return points, nil
}

func ReadCase(r io.Reader) (Case, error) {
	t := newTokenReader(r)
	rects, err := readRectangles(t)
	if err != nil {
		return Case{}, err
	}
	points, err := readPoints(t)
	if err != nil {
		return Case{}, err
	}
	return Case{Rectangles: rects, Points: points}, nil
}

// ReadPoints reads a point section on its own, for queries against a stored
// snapshot.
func ReadPoints(r io.Reader) ([]stab.Point, error) {
	return readPoints(newTokenReader(r))
}

func WriteCase(w io.Writer, c Case) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(c.Rectangles))
	for _, r := range c.Rectangles {
		fmt.Fprintln(bw, r.LeftDown.X, r.LeftDown.Y, r.RightUp.X, r.RightUp.Y)
	}
	fmt.Fprintln(bw, len(c.Points))
	for _, p := range c.Points {
		fmt.Fprintln(bw, p.X, p.Y)
	}
	return bw.Flush()
}

// WriteAnswers writes the counts separated by single spaces and ends the line.
func WriteAnswers(w io.Writer, answers []int) error {
	bw := bufio.NewWriter(w)
	for i, n := range answers {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(n))
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
