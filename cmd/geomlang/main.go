// 2D-objects-language - a small language of planar geometric objects
// Copyright (C) 2026  The 2D-objects-language authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command geomlang evaluates and draws programs of a small language
// of planar geometric objects.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/rect"

	geomlang "github.com/rokobo/2D-objects-language"
	"github.com/rokobo/2D-objects-language/render"
)

const historyFile = ".geomlang_history"

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

var root = &cobra.Command{
	Use:   "geomlang",
	Short: "Evaluate and draw programs of a small plane geometry language",
	Long: `Geomlang evaluates programs of a small language of planar geometric
objects. A program is a sequence of s-expressions:

    (let p (point 1 1)
      (intersect p (shift 1 1 (point 0 0))))

Values are the empty object, points, lines, vertical lines and line
segments. Use the subcommands to evaluate files, to explore the
language interactively, or to draw the results.`,
	SilenceUsage: true,
}

func init() {
	root.AddCommand(runCmd, replCmd, renderCmd, pdfCmd)
	renderFlags.register(renderCmd, "out.png")
	pdfFlags.register(pdfCmd, "out.pdf")
}

var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Evaluate programs and print the resulting values",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := evalFiles(args)
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Println(v)
		}
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render FILE...",
	Short: "Draw the values of programs into a PNG image",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := evalFiles(args)
		if err != nil {
			return err
		}
		scene, err := renderFlags.scene()
		if err != nil {
			return err
		}
		f, err := os.Create(renderFlags.out)
		if err != nil {
			return err
		}
		if err := scene.WritePNG(f, values...); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	},
}

var pdfCmd = &cobra.Command{
	Use:   "pdf FILE...",
	Short: "Draw the values of programs into a PDF file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := evalFiles(args)
		if err != nil {
			return err
		}
		scene, err := pdfFlags.scene()
		if err != nil {
			return err
		}
		return scene.WritePDF(pdfFlags.out, values...)
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl()
	},
}

// evalFiles evaluates all programs in the given files and returns the
// resulting values in order.
func evalFiles(paths []string) ([]geomlang.Value, error) {
	var values []geomlang.Value
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		exprs, err := geomlang.ParseAll(string(src))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for _, e := range exprs {
			v, err := geomlang.Evaluate(e)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// sceneFlags holds the drawing options shared by the render and pdf
// subcommands.
type sceneFlags struct {
	out    string
	width  int
	height int
	bounds string
}

var renderFlags, pdfFlags sceneFlags

func (f *sceneFlags) register(cmd *cobra.Command, defaultOut string) {
	cmd.Flags().StringVarP(&f.out, "out", "o", defaultOut, "output file name")
	cmd.Flags().IntVar(&f.width, "width", 512, "output width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 512, "output height in pixels")
	cmd.Flags().StringVar(&f.bounds, "bounds", "-10,-10,10,10",
		`shown window as "llx,lly,urx,ury"`)
}

func (f *sceneFlags) scene() (*render.Scene, error) {
	bounds, err := parseBounds(f.bounds)
	if err != nil {
		return nil, err
	}
	s := render.DefaultScene()
	s.Bounds = bounds
	s.Width = f.width
	s.Height = f.height
	return s, nil
}

func parseBounds(s string) (rect.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return rect.Rect{}, fmt.Errorf("invalid bounds %q, want llx,lly,urx,ury", s)
	}
	var v [4]float64
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return rect.Rect{}, fmt.Errorf("invalid bounds %q: %v", s, err)
		}
		v[i] = x
	}
	r := rect.Rect{LLx: v[0], LLy: v[1], URx: v[2], URy: v[3]}
	if r.URx <= r.LLx || r.URy <= r.LLy {
		return rect.Rect{}, fmt.Errorf("invalid bounds %q: the window is empty", s)
	}
	return r, nil
}

func repl() error {
	fmt.Println("geomlang - Ctrl+C discards the current input, Ctrl+D exits.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		src, ok := read(ln)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(src) == "" {
			continue
		}

		exprs, err := geomlang.ParseAll(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		for _, e := range exprs {
			v, err := geomlang.Evaluate(e)
			if err != nil {
				fmt.Println(err)
				break
			}
			fmt.Println(v)
		}
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return nil
}

// read accumulates input lines until they form a complete program.
// The second return value is false at the end of the input.
func read(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := "> "
		if b.Len() > 0 {
			prompt = "... "
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the lines typed so far.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := geomlang.ParseAll(src); geomlang.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}
