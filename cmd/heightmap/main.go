// Command heightmap prints a level's ground heights as an ASCII grid,
// forward (-Z) at the top.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/yumeututucosmology/RPG-sub000/levels"
	"github.com/yumeututucosmology/RPG-sub000/stage"
)

func main() {
	levelName := flag.String("level", "courtyard", "embedded level name (.json optional)")
	file := flag.String("file", "", "level JSON on disk; overrides -level")
	step := flag.Float64("step", 0.5, "sample spacing in metres")
	flag.Parse()

	var (
		lvl *levels.Level
		err error
	)
	if *file != "" {
		lvl, err = levels.LoadLevelFile(*file)
	} else {
		lvl, err = levels.LoadLevelFromFS(*levelName)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "heightmap: %v\n", err)
		os.Exit(1)
	}

	out, err := Render(lvl, *step)
	if err != nil {
		fmt.Fprintf(os.Stderr, "heightmap: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

// Render samples the level on a grid of the given spacing.
//
//	' ' no ground   '.' height 0   ':' below 1   '1'..'9' whole metres
//	'S' spawn       'P' party start   'N' NPC home
func Render(lvl *levels.Level, step float64) (string, error) {
	if step <= 0 {
		return "", fmt.Errorf("step must be positive, got %g", step)
	}
	st, err := stage.FromLevel(lvl)
	if err != nil {
		return "", err
	}
	bb, ok := st.Bounds()
	if !ok {
		return "", fmt.Errorf("level %s has no blocks", lvl.Name)
	}

	cols := int(math.Ceil((bb.R - bb.L) / step))
	rows := int(math.Ceil((bb.T - bb.B) / step))
	grid := make([][]byte, rows)
	for r := range grid {
		grid[r] = make([]byte, cols)
		z := bb.B + (float64(r)+0.5)*step
		for c := range grid[r] {
			x := bb.L + (float64(c)+0.5)*step
			grid[r][c] = heightGlyph(st.GroundHeight(x, z))
		}
	}

	mark := func(p levels.Point, glyph byte) {
		c := int((p.X - bb.L) / step)
		r := int((p.Z - bb.B) / step)
		if r >= 0 && r < rows && c >= 0 && c < cols {
			grid[r][c] = glyph
		}
	}
	for _, p := range lvl.Party {
		mark(p, 'P')
	}
	for _, n := range lvl.NPCs {
		mark(n.Home, 'N')
	}
	mark(lvl.Spawn, 'S')

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  x [%g, %g]  z [%g, %g]  step %g\n", lvl.Name, bb.L, bb.R, bb.B, bb.T, step)
	for _, row := range grid {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func heightGlyph(h float64) byte {
	switch {
	case !stage.HasGround(h):
		return ' '
	case h == 0:
		return '.'
	case h < 1:
		return ':'
	case h >= 9:
		return '9'
	default:
		return byte('0' + int(h))
	}
}
