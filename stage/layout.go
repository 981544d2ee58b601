package stage

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Spacing fixes the gaps between the standard regions of a stage, in text
// cells of the target surface.
type Spacing struct {
	TitleAboveImage    int `json:"titleAboveImage"`
	CaptionBelowImage  int `json:"captionBelowImage"`
	SidebarFromImage   int `json:"sidebarFromImage"`
	FooterBelowCaption int `json:"footerBelowCaption"`
}

// Layout is a named preset controlling the proportions of a generated
// stage. Presets are fixed data; they are selected, never computed.
type Layout struct {
	Name       string
	ImageWidth int
	Spacing    Spacing
}

var presets = []Layout{
	{Name: "poster", ImageWidth: 40, Spacing: Spacing{2, 2, 4, 3}},
	{Name: "card", ImageWidth: 30, Spacing: Spacing{1, 1, 2, 2}},
	{Name: "banner", ImageWidth: 80, Spacing: Spacing{1, 1, 3, 2}},
	{Name: "postcard", ImageWidth: 35, Spacing: Spacing{2, 2, 3, 2}},
}

// ErrUnknownLayout is returned when a layout name does not match any
// preset. Earlier tooling silently fell back to the first preset, which
// hid typos on the command line; the lookup now fails instead.
var ErrUnknownLayout = errors.New("unknown layout preset")

// PresetNames returns the names of all layout presets, in definition order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// PresetByName returns the layout preset with the given name.
func PresetByName(name string) (Layout, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Layout{}, errors.Wrapf(ErrUnknownLayout, "%q", name)
}

// selectPreset resolves the layout for one document: the named preset, or a
// uniformly random one if name is empty.
func selectPreset(rng *rand.Rand, name string) (Layout, error) {
	if name == "" {
		return presets[rng.Intn(len(presets))], nil
	}
	return PresetByName(name)
}
