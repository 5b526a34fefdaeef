package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/forestrie/go-stabcount/stab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCase(t *testing.T) {
	c, err := ReadCase(strings.NewReader("2\n0 0 10 10\n5 5 15 15\n3\n7 7\n2 2\n-12 12\n"))
	require.NoError(t, err)
	assert.Equal(t, []stab.Rectangle{
		stab.NewRectangle(0, 0, 10, 10),
		stab.NewRectangle(5, 5, 15, 15),
	}, c.Rectangles)
	assert.Equal(t, []stab.Point{{X: 7, Y: 7}, {X: 2, Y: 2}, {X: -12, Y: 12}}, c.Points)
}

func TestReadCaseWithoutPoints(t *testing.T) {
	c, err := ReadCase(strings.NewReader("1 0 0 1 1"))
	require.NoError(t, err)
	assert.Len(t, c.Rectangles, 1)
	assert.Empty(t, c.Points)
}

func TestReadCaseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "negative count", input: "-1\n"},
		{name: "not a number", input: "1\n0 0 x 1\n"},
		{name: "short rectangle", input: "2\n0 0 1 1\n0 0 1\n"},
		{name: "short point", input: "0\n2\n1 1\n3\n"},
		{name: "overflow", input: "1\n0 0 1 99999999999999999999\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCase(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrBadInput)
		})
	}
}

func TestWriteCaseReadsBack(t *testing.T) {
	want := Case{
		Rectangles: []stab.Rectangle{stab.NewRectangle(-3, 4, 5, 6)},
		Points:     []stab.Point{{X: 1, Y: -1}, {X: 0, Y: 0}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCase(&buf, want))
	assert.Equal(t, "1\n-3 4 5 6\n2\n1 -1\n0 0\n", buf.String())

	got, err := ReadCase(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteAnswers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAnswers(&buf, []int{2, 1, 0}))
	assert.Equal(t, "2 1 0\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteAnswers(&buf, nil))
	assert.Equal(t, "\n", buf.String())
}
