package stage

import (
	"fmt"
	"math/rand"
)

// Region generators. Each is a pure function of the layout preset and the
// randomness source; Generate sequences them and owns the document-level
// decisions about which ones run.

var sidebarHeaders = []string{"NOTES", "META", "INFO", "DATA", "CONTEXT"}

func titleRegion(rng *rand.Rand, l Layout) Region {
	content := StaticContent{Text: RandomTitle(rng, randRange(rng, 1, 3))}
	if rng.Float64() > 0.3 {
		content.Transform = "uppercase"
	}
	return Region{
		ID:   "title",
		Type: TextRegion,
		Position: Position{
			X: Anchor("startX"),
			Y: Anchor("startY").Shift(-l.Spacing.TitleAboveImage),
		},
		Content: content,
		Layout: &RegionLayout{
			Alignment: pick(rng, []string{"center", "left"}),
			Width:     l.ImageWidth,
		},
	}
}

// imageRegion is the only region kind every stage has. The image itself is
// not part of the document; the source names the parameter that will hold
// its URL.
func imageRegion() Region {
	return Region{
		ID:   "main-image",
		Type: ImageRegion,
		Position: Position{
			X: Anchor("startX"),
			Y: Anchor("startY"),
		},
		Source: "imageUrl",
	}
}

func captionRegion(rng *rand.Rand, l Layout) Region {
	return Region{
		ID:   "caption",
		Type: TextRegion,
		Position: Position{
			X: Anchor("startX"),
			Y: Anchor("startY").Plus("imageHeight").Shift(l.Spacing.CaptionBelowImage),
		},
		Content: GeneratedContent{Generator: "bogus", WordCount: randRange(rng, 8, 20)},
		Layout:  &RegionLayout{Wrap: true, Width: l.ImageWidth},
	}
}

// sidebarRegion builds the three-part sidebar composite: header, divider
// rule, body. Children position themselves against the composite's own
// sidebarX/sidebarStartY anchors.
func sidebarRegion(rng *rand.Rand, l Layout) Region {
	width := randRange(rng, 25, 35)
	return Region{
		ID:   "sidebar",
		Type: CompositeRegion,
		Position: Position{
			X: Anchor("startX").Plus("imageWidth").Shift(l.Spacing.SidebarFromImage),
			Y: Anchor("startY"),
		},
		Components: []Region{
			{
				ID:   "sidebar-header",
				Type: TextRegion,
				Position: Position{
					X: Anchor("sidebarX"),
					Y: Anchor("sidebarStartY"),
				},
				Content: StaticContent{Text: pick(rng, sidebarHeaders)},
			},
			{
				ID:   "sidebar-divider",
				Type: TextRegion,
				Position: Position{
					X: Anchor("sidebarX"),
					Y: Anchor("sidebarStartY").Shift(1),
				},
				Content: RepeatContent{Glyph: "─", Count: width},
			},
			{
				ID:   "sidebar-body",
				Type: TextRegion,
				Position: Position{
					X: Anchor("sidebarX"),
					Y: Anchor("sidebarStartY").Shift(2),
				},
				Content: GeneratedContent{Generator: "bogus", WordCount: randRange(rng, 15, 40)},
				Layout:  &RegionLayout{Wrap: true, Width: width},
			},
		},
	}
}

func footerRegion(rng *rand.Rand, l Layout) Region {
	return Region{
		ID:   "footer",
		Type: TextRegion,
		Position: Position{
			X: Anchor("startX"),
			Y: Anchor("startY").Plus("imageHeight").
				Shift(l.Spacing.CaptionBelowImage + l.Spacing.FooterBelowCaption + 2),
		},
		Content: GeneratedContent{
			Generator: "bogus",
			WordCount: randRange(rng, 1, 3),
			Prefix:    "— ",
			Suffix:    " —",
		},
		Layout: &RegionLayout{Alignment: "center", Width: l.ImageWidth},
	}
}

// labelRegion builds one floating label. Ids follow the label-NNNN pattern;
// four digits are plenty for the at most handful of labels a document
// carries, and re-rolling on collision keeps ids unique without changing
// the wire format. used is shared across the labels of one document.
func labelRegion(rng *rand.Rand, used map[string]bool) Region {
	var id string
	for {
		id = fmt.Sprintf("label-%d", randRange(rng, 1000, 9999))
		if !used[id] {
			break
		}
	}
	used[id] = true
	return Region{
		ID:   id,
		Type: TextRegion,
		Position: Position{
			X: Anchor("startX").Shift(randRange(rng, 0, 20)),
			Y: Anchor("startY").Shift(randRange(rng, -10, 30)),
		},
		Content: StaticContent{Text: RandomTitle(rng, 1)},
	}
}
