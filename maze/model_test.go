package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazekit/maze"
)

func TestNewModel_Errors(t *testing.T) {
	cases := []struct {
		name string
		m    *maze.Maze
		want error
	}{
		{"nil maze", nil, maze.ErrEmptyGrid},
		{"no rows", &maze.Maze{Grid: []string{}}, maze.ErrEmptyGrid},
		{"no cols", &maze.Maze{Grid: []string{""}}, maze.ErrEmptyGrid},
		{"ragged rows", &maze.Maze{Grid: []string{"###", "##"}}, maze.ErrNonRectangular},
		{"no start", &maze.Maze{Grid: []string{"###", "#G#", "###"}}, maze.ErrStartGoal},
		{"no goal", &maze.Maze{Grid: []string{"###", "#S#", "###"}}, maze.ErrStartGoal},
		{"two starts", &maze.Maze{Grid: []string{"#####", "#SSG#", "#####"}}, maze.ErrStartGoal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.NewModel(tc.m)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestModel_Lookups(t *testing.T) {
	m := &maze.Maze{
		Grid: []string{
			"#####",
			"#S G#",
			"#####",
		},
		Costs: map[maze.Cell]float64{
			{Row: 1, Col: 2}: 3.5,
		},
	}
	md, err := maze.NewModel(m)
	require.NoError(t, err)

	require.Equal(t, maze.Cell{Row: 1, Col: 1}, md.Start())
	require.Equal(t, maze.Cell{Row: 1, Col: 3}, md.Goal())
	require.Equal(t, 3, md.Rows())
	require.Equal(t, 5, md.Cols())

	require.True(t, md.InBounds(maze.Cell{Row: 0, Col: 0}))
	require.False(t, md.InBounds(maze.Cell{Row: -1, Col: 0}))
	require.False(t, md.InBounds(maze.Cell{Row: 3, Col: 0}))

	require.True(t, md.Passable(maze.Cell{Row: 1, Col: 2}))
	require.True(t, md.Passable(md.Start()), "start is passable")
	require.False(t, md.Passable(maze.Cell{Row: 0, Col: 0}), "walls are not")
	require.False(t, md.Passable(maze.Cell{Row: 9, Col: 9}), "out of bounds is not")

	require.Equal(t, 3.5, md.Cost(maze.Cell{Row: 1, Col: 2}))
	require.Equal(t, 1.0, md.Cost(md.Goal()), "cells without an assigned cost default to 1")
}

func TestModel_Neighbors(t *testing.T) {
	m := &maze.Maze{
		Grid: []string{
			"#####",
			"#S  #",
			"###G#",
			"#####",
		},
	}
	md, err := maze.NewModel(m)
	require.NoError(t, err)

	// Start has a single passable neighbor to its east.
	got := md.Neighbors(md.Start(), nil)
	require.Equal(t, []maze.Cell{{Row: 1, Col: 2}}, got)

	// Middle cell: east and... south is a wall, so east and west only —
	// order follows the fixed offset order (S, N, E, W).
	got = md.Neighbors(maze.Cell{Row: 1, Col: 2}, got[:0])
	require.Equal(t, []maze.Cell{{Row: 1, Col: 3}, {Row: 1, Col: 1}}, got)
}
