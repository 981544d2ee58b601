// stagegen generates procedural .nara stage templates.
//
// One run writes -count documents into -output, or a single document to
// stdout with -stdout. Region selection is random unless forced with the
// -sidebar/-no_sidebar, -footer/-no_footer and -labels flags; -seed makes
// a run reproducible.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/go-nara/stage"

	"github.com/golang/glog"
	"github.com/vincent-petithory/dataurl"
)

var (
	count     = flag.Int("count", 1, "number of templates to generate")
	name      = flag.String("name", "", "template name (default: random adjective-noun)")
	output    = flag.String("output", "./generated-templates", "output directory")
	layout    = flag.String("layout", "", "layout preset: "+strings.Join(stage.PresetNames(), ", ")+" (default: random)")
	sidebar   = flag.Bool("sidebar", false, "force the sidebar in")
	noSidebar = flag.Bool("no_sidebar", false, "force the sidebar out")
	footer    = flag.Bool("footer", false, "force the footer in")
	noFooter  = flag.Bool("no_footer", false, "force the footer out")
	labels    = flag.Bool("labels", false, "force floating labels in")
	noLabels  = flag.Bool("no_labels", false, "force floating labels out")
	toStdout  = flag.Bool("stdout", false, "print one template to stdout instead of writing files")
	seed      = flag.Int64("seed", 0, "random seed; 0 seeds from the clock")
	check     = flag.Bool("check", false, "validate generated documents against the built-in schema")
	imagePath = flag.String("image", "", "image file to embed as the imageUrl default, as a data: URL")
)

// forced turns an on/off flag pair into the tri-state the generator takes.
func forced(on, off bool) *bool {
	switch {
	case on:
		v := true
		return &v
	case off:
		v := false
		return &v
	}
	return nil
}

func buildOptions() (stage.Options, error) {
	opts := stage.Options{
		Name:    *name,
		Layout:  *layout,
		Sidebar: forced(*sidebar, *noSidebar),
		Footer:  forced(*footer, *noFooter),
		Labels:  forced(*labels, *noLabels),
	}
	if *imagePath != "" {
		b, err := os.ReadFile(*imagePath)
		if err != nil {
			return stage.Options{}, err
		}
		opts.ImageURL = dataurl.EncodeBytes(b)
	}
	return opts, nil
}

// emit encodes one document, optionally schema-checks it, and writes it to
// path ("" means stdout).
func emit(doc *stage.Template, path string) error {
	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		return err
	}
	if *check {
		if err := stage.CheckSchema(buf.Bytes()); err != nil {
			return err
		}
	}
	if path == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return err
	}
	fmt.Printf("Generated: %s\n", path)
	return nil
}

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	opts, err := buildOptions()
	if err != nil {
		glog.Exitf("reading image: %v", err)
	}

	if *toStdout {
		doc, err := stage.Generate(rng, opts)
		if err != nil {
			glog.Exitf("generating template: %v", err)
		}
		if err := emit(doc, ""); err != nil {
			glog.Exitf("writing template: %v", err)
		}
		return
	}

	if *count == 1 && opts.Name != "" {
		doc, err := stage.Generate(rng, opts)
		if err != nil {
			glog.Exitf("generating template: %v", err)
		}
		if err := emit(doc, filepath.Join(*output, doc.Name+stage.Extension)); err != nil {
			glog.Exitf("writing template: %v", err)
		}
		return
	}

	// Batch runs randomize every name; a fixed -name would make the batch
	// overwrite itself.
	batchOpts := opts
	batchOpts.Name = ""
	for i := 0; i < *count; i++ {
		doc, err := stage.Generate(rng, batchOpts)
		if err != nil {
			glog.Exitf("generating template %d: %v", i+1, err)
		}
		path := filepath.Join(*output, fmt.Sprintf("%s-%d%s", doc.Name, i+1, stage.Extension))
		if err := emit(doc, path); err != nil {
			glog.Exitf("writing template %d: %v", i+1, err)
		}
	}
}
