// Package stage generates procedural stage templates: .nara documents that
// describe a poster-like arrangement of text and image regions for a canvas
// renderer to fill in at display time.
//
// A document is assembled from a fixed layout preset, a weighted-random set
// of regions (title, main image, optional caption, sidebar, footer and
// floating labels) and an envelope carrying parameters, a text-generator
// dictionary and storage hints. Positions inside regions stay symbolic;
// nothing here rasterizes anything.
//
// All randomness flows through an explicit *rand.Rand so documents are
// reproducible from a seed.
package stage

import (
	"fmt"
	"math/rand"
)

// Version written into every generated document.
const Version = "1.0.0"

// documentType is the envelope type tag of stage templates.
const documentType = "stage"

// Parameter describes one externally supplied value of a template.
type Parameter struct {
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description"`
}

// Parameters lists the externally supplied values every stage expects.
type Parameters struct {
	ImageURL  Parameter `json:"imageUrl"`
	CursorPos Parameter `json:"cursorPos"`
}

// LayoutInfo is the layout block of a document: the chosen preset's
// proportions, without its name.
type LayoutInfo struct {
	ImageWidth int     `json:"imageWidth"`
	Spacing    Spacing `json:"spacing"`
}

// TextGenerator names the consumer-side text generator and the dictionary
// it may draw from.
type TextGenerator struct {
	Name       string   `json:"name"`
	Dictionary []string `json:"dictionary"`
}

// Storage holds the consumer-side persistence hints.
type Storage struct {
	Text      string `json:"text"`
	Images    string `json:"images"`
	Ephemeral bool   `json:"ephemeral"`
	ClearKey  string `json:"clearKey"`
}

// Template is one complete stage template document. Field order here is
// the key order of the serialized form.
type Template struct {
	Version       string        `json:"version"`
	Type          string        `json:"type"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Parameters    Parameters    `json:"parameters"`
	Layout        LayoutInfo    `json:"layout"`
	Regions       []Region      `json:"regions"`
	TextGenerator TextGenerator `json:"textGenerator"`
	Storage       Storage       `json:"storage"`
}

// Candidate defaults for the imageUrl parameter.
var imageURLs = []string{
	"https://picsum.photos/400/300",
	"https://picsum.photos/500/400",
	"https://picsum.photos/600/400",
	"https://source.unsplash.com/random/400x300",
	"https://source.unsplash.com/random/500x400",
}

var storageTexts = []string{"worldData", "lightModeData"}

// Options select what goes into a generated template. The nil state of the
// *bool fields means "let the dice decide"; a non-nil value is honored
// exactly.
type Options struct {
	// Name of the template; empty picks a random adjective-noun pair.
	Name string
	// Layout preset name; empty picks a random preset. An unknown name
	// makes Generate fail with ErrUnknownLayout.
	Layout string
	// ImageURL overrides the random default of the imageUrl parameter.
	ImageURL string

	Sidebar *bool
	Footer  *bool
	Caption *bool
	// Labels: nil rolls 0-3 labels, true forces 1-3, false forces none.
	Labels *bool
}

// resolveFlag honors a forced flag, otherwise rolls against the threshold.
func resolveFlag(rng *rand.Rand, forced *bool, threshold float64) bool {
	if forced != nil {
		return *forced
	}
	return rng.Float64() > threshold
}

// Generate builds one stage template document from opts, drawing every
// random decision from rng. The returned document always validates.
func Generate(rng *rand.Rand, opts Options) (*Template, error) {
	name := opts.Name
	if name == "" {
		name = RandomName(rng)
	}

	sidebar := resolveFlag(rng, opts.Sidebar, 0.4)
	footer := resolveFlag(rng, opts.Footer, 0.5)

	var labelCount int
	switch {
	case opts.Labels == nil:
		labelCount = randRange(rng, 0, 3)
	case *opts.Labels:
		labelCount = randRange(rng, 1, 3)
	}

	layout, err := selectPreset(rng, opts.Layout)
	if err != nil {
		return nil, err
	}

	regions := make([]Region, 0, 5+labelCount)
	regions = append(regions, titleRegion(rng, layout))
	regions = append(regions, imageRegion())
	if resolveFlag(rng, opts.Caption, 0.2) {
		regions = append(regions, captionRegion(rng, layout))
	}
	if sidebar {
		regions = append(regions, sidebarRegion(rng, layout))
	}
	if footer {
		regions = append(regions, footerRegion(rng, layout))
	}
	usedLabels := make(map[string]bool)
	for i := 0; i < labelCount; i++ {
		regions = append(regions, labelRegion(rng, usedLabels))
	}

	imageURL := opts.ImageURL
	if imageURL == "" {
		imageURL = pick(rng, imageURLs)
	}

	t := &Template{
		Version:     Version,
		Type:        documentType,
		Name:        name,
		Description: fmt.Sprintf("Procedurally generated %s template", layout.Name),
		Parameters: Parameters{
			ImageURL: Parameter{
				Type:        "string",
				Default:     imageURL,
				Description: "URL of the image to display",
			},
			CursorPos: Parameter{
				Type:        "point",
				Description: "Position where the stage will be rendered",
			},
		},
		Layout: LayoutInfo{ImageWidth: layout.ImageWidth, Spacing: layout.Spacing},
		Regions: regions,
		TextGenerator: TextGenerator{
			Name:       "bogus",
			Dictionary: Dictionary(rng, randRange(rng, 15, 25)),
		},
		Storage: Storage{
			Text:      pick(rng, storageTexts),
			Images:    "stagedImageData",
			Ephemeral: rng.Intn(2) == 0,
			ClearKey:  "Escape",
		},
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the document invariants: a well-formed envelope, exactly
// one image region and one title, every region well-formed for its type,
// and region ids unique across the whole tree.
func (t *Template) Validate() error {
	if t.Version == "" {
		return fmt.Errorf("document has no version")
	}
	if t.Type != documentType {
		return fmt.Errorf("document type is %q, want %q", t.Type, documentType)
	}
	if t.Name == "" {
		return fmt.Errorf("document has no name")
	}

	seen := make(map[string]bool)
	var walk func(rs []Region) error
	walk = func(rs []Region) error {
		for _, r := range rs {
			if seen[r.ID] {
				return fmt.Errorf("duplicate region id %q", r.ID)
			}
			seen[r.ID] = true
			if err := walk(r.Components); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(t.Regions); err != nil {
		return err
	}

	titles, images := 0, 0
	for _, r := range t.Regions {
		if err := r.validate(); err != nil {
			return err
		}
		if r.ID == "title" && r.Type == TextRegion {
			titles++
		}
		if r.Type == ImageRegion {
			images++
		}
	}
	if titles != 1 {
		return fmt.Errorf("document has %d title regions, want 1", titles)
	}
	if images != 1 {
		return fmt.Errorf("document has %d image regions, want 1", images)
	}
	return nil
}
