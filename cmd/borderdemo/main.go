// Command borderdemo renders the border composition into an image file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/border"
	"github.com/gogpu/canvas2d/surface"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("borderdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		width      = fs.Int("width", 500, "surface width")
		height     = fs.Int("height", 350, "surface height")
		output     = fs.String("output", "border.png", "output file (.png, .jpg, .bmp, .tiff)")
		id         = fs.String("id", border.SurfaceID, "identifier of the surface to create")
		background = fs.String("background", "white", "CSS background color")
		scale      = fs.Int("scale", 1, "integer upscale factor for the written image")
		verbose    = fs.Bool("v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		canvas2d.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	bg, err := canvas2d.ParseColor(*background)
	if err != nil {
		return fmt.Errorf("-background: %w", err)
	}
	if _, err := canvas2d.FormatFromPath(*output); err != nil {
		return fmt.Errorf("-output: %w", err)
	}

	doc := surface.NewDocument()
	s, err := doc.CreateSurface(*id, *width, *height, surface.WithBackground(bg))
	if err != nil {
		return err
	}

	if err := border.Draw(border.FromDocument(doc)); err != nil {
		return err
	}

	if err := s.Pixmap().Scaled(*scale).Save(*output); err != nil {
		return fmt.Errorf("save %s: %w", *output, err)
	}

	log.Printf("Border saved to %s (%dx%d, scale %d)\n", *output, *width, *height, *scale)
	return nil
}
