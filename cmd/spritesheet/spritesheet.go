// spritesheet composites per-direction character sprites into walk and
// idle sheet PNGs.
//
// Usage:
//
//	spritesheet [flags] [prefix]
//
// Sources are read from -sprites_dir as {prefix}_{direction}.png, one per
// facing direction; missing directions become transparent rows. The walk
// and idle sheets land next to the sources unless -output_dir says
// otherwise.
package main

import (
	"flag"
	"fmt"
	"image/gif"
	"os"
	"path/filepath"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/go-nara/imageprint"
	"badc0de.net/pkg/go-nara/sheet"

	"github.com/golang/glog"
)

var (
	spritesDir = flag.String("sprites_dir", "public/sprites", "directory with {prefix}_{direction}.png sources")
	outputDir  = flag.String("output_dir", "", "output directory (default: same as -sprites_dir)")
	gifOut     = flag.Bool("gif", false, "also write a {prefix}_turnaround.gif preview")
	preview    = flag.Bool("preview", false, "print the sheet to the terminal")
)

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	prefix := "test"
	if flag.NArg() > 0 {
		prefix = flag.Arg(0)
	}

	outDir := *outputDir
	if outDir == "" {
		outDir = *spritesDir
	}

	fmt.Printf("Creating sprite sheets for %q...\n", prefix)

	c := sheet.Compositor{SpritesDir: *spritesDir}
	frames, err := c.Frames(prefix)
	if err != nil {
		glog.Exitf("loading sprites: %v", err)
	}
	img := sheet.Sheet(frames)

	for _, anim := range sheet.Animations {
		path, err := sheet.WriteSheet(outDir, prefix, anim, img)
		if err != nil {
			glog.Exitf("writing %s sheet: %v", anim, err)
		}
		fmt.Printf("Created %s (%dx%d)\n", path, sheet.SheetWidth, sheet.SheetHeight)
	}

	if *gifOut {
		g := sheet.Turnaround(frames)
		path := filepath.Join(outDir, prefix+"_turnaround.gif")
		f, err := os.Create(path)
		if err != nil {
			glog.Exitf("creating turnaround gif: %v", err)
		}
		if err := gif.EncodeAll(f, g); err != nil {
			f.Close()
			glog.Exitf("encoding turnaround gif: %v", err)
		}
		if err := f.Close(); err != nil {
			glog.Exitf("closing turnaround gif: %v", err)
		}
		fmt.Printf("Created %s (%d frames)\n", path, len(g.Image))
	}

	if *preview {
		imageprint.Auto(img)
	}
}
