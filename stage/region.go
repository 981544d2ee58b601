package stage

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// RegionType tags the kind of a region.
type RegionType string

// Region kinds understood by the template consumer.
const (
	TextRegion      RegionType = "text"
	ImageRegion     RegionType = "image"
	CompositeRegion RegionType = "composite"
)

// Position places a region by a pair of symbolic coordinate expressions.
type Position struct {
	X Expr `json:"x"`
	Y Expr `json:"y"`
}

// RegionLayout carries optional per-region rendering hints.
type RegionLayout struct {
	Alignment string `json:"alignment,omitempty"`
	Wrap      bool   `json:"wrap,omitempty"`
	Width     int    `json:"width,omitempty"`
}

// Content is the payload of a text region. Exactly one of the three
// concrete kinds below is set on any text region.
type Content interface {
	contentKind() string
}

// StaticContent is a literal string, optionally transformed by the
// consumer when rendering.
type StaticContent struct {
	Text      string
	Transform string // "" or "uppercase"
}

// GeneratedContent defers the text to the document's own text generator.
type GeneratedContent struct {
	Generator string
	WordCount int
	Prefix    string
	Suffix    string
}

// RepeatContent repeats a single glyph, used for horizontal rules.
type RepeatContent struct {
	Glyph string
	Count int
}

func (StaticContent) contentKind() string    { return "static" }
func (GeneratedContent) contentKind() string { return "generated" }
func (RepeatContent) contentKind() string    { return "repeat" }

// MarshalJSON emits {"static": ..., "transform": ...?}. An unset transform
// is omitted; older writers emitted an explicit null there.
func (c StaticContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Static    string `json:"static"`
		Transform string `json:"transform,omitempty"`
	}{c.Text, c.Transform})
}

// MarshalJSON emits {"generator": ..., "wordCount": ..., "prefix"?, "suffix"?}.
func (c GeneratedContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Generator string `json:"generator"`
		WordCount int    `json:"wordCount"`
		Prefix    string `json:"prefix,omitempty"`
		Suffix    string `json:"suffix,omitempty"`
	}{c.Generator, c.WordCount, c.Prefix, c.Suffix})
}

// MarshalJSON emits {"repeat": ..., "count": ...}.
func (c RepeatContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Repeat string `json:"repeat"`
		Count  int    `json:"count"`
	}{c.Glyph, c.Count})
}

func unmarshalContent(b []byte) (Content, error) {
	var probe struct {
		Static    *string `json:"static"`
		Transform string  `json:"transform"`
		Generator *string `json:"generator"`
		WordCount int     `json:"wordCount"`
		Prefix    string  `json:"prefix"`
		Suffix    string  `json:"suffix"`
		Repeat    *string `json:"repeat"`
		Count     int     `json:"count"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil, err
	}
	switch {
	case probe.Static != nil:
		return StaticContent{Text: *probe.Static, Transform: probe.Transform}, nil
	case probe.Generator != nil:
		return GeneratedContent{
			Generator: *probe.Generator,
			WordCount: probe.WordCount,
			Prefix:    probe.Prefix,
			Suffix:    probe.Suffix,
		}, nil
	case probe.Repeat != nil:
		return RepeatContent{Glyph: *probe.Repeat, Count: probe.Count}, nil
	}
	return nil, errors.New("region content has no recognized kind")
}

// Region is one positioned element of a stage template. Only the fields
// appropriate for its type are set; validate enforces that.
type Region struct {
	ID         string
	Type       RegionType
	Position   Position
	Source     string        // image regions: name of the parameter holding the URL
	Content    Content       // text regions
	Layout     *RegionLayout // optional rendering hints
	Components []Region      // composite regions: ordered children
}

// regionWire fixes the key order of serialized regions.
type regionWire struct {
	ID         string        `json:"id"`
	Type       RegionType    `json:"type"`
	Position   Position      `json:"position"`
	Source     string        `json:"source,omitempty"`
	Content    Content       `json:"content,omitempty"`
	Layout     *RegionLayout `json:"layout,omitempty"`
	Components []Region      `json:"components,omitempty"`
}

func (r Region) MarshalJSON() ([]byte, error) {
	return json.Marshal(regionWire{
		ID:         r.ID,
		Type:       r.Type,
		Position:   r.Position,
		Source:     r.Source,
		Content:    r.Content,
		Layout:     r.Layout,
		Components: r.Components,
	})
}

func (r *Region) UnmarshalJSON(b []byte) error {
	var w struct {
		ID         string          `json:"id"`
		Type       RegionType      `json:"type"`
		Position   Position        `json:"position"`
		Source     string          `json:"source"`
		Content    json.RawMessage `json:"content"`
		Layout     *RegionLayout   `json:"layout"`
		Components []Region        `json:"components"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*r = Region{
		ID:         w.ID,
		Type:       w.Type,
		Position:   w.Position,
		Source:     w.Source,
		Layout:     w.Layout,
		Components: w.Components,
	}
	if len(w.Content) > 0 && !bytes.Equal(w.Content, []byte("null")) {
		c, err := unmarshalContent(w.Content)
		if err != nil {
			return errors.Wrapf(err, "region %q", w.ID)
		}
		r.Content = c
	}
	return nil
}

// validate checks that the region carries exactly the fields its type
// requires. Children of composites are checked recursively.
func (r Region) validate() error {
	if r.ID == "" {
		return errors.New("region has an empty id")
	}
	switch r.Type {
	case TextRegion:
		if r.Content == nil {
			return errors.Errorf("text region %q has no content", r.ID)
		}
		if r.Source != "" {
			return errors.Errorf("text region %q has an image source", r.ID)
		}
		if len(r.Components) > 0 {
			return errors.Errorf("text region %q has components", r.ID)
		}
	case ImageRegion:
		if r.Source == "" {
			return errors.Errorf("image region %q has no source", r.ID)
		}
		if r.Content != nil {
			return errors.Errorf("image region %q has text content", r.ID)
		}
		if len(r.Components) > 0 {
			return errors.Errorf("image region %q has components", r.ID)
		}
	case CompositeRegion:
		if len(r.Components) == 0 {
			return errors.Errorf("composite region %q has no components", r.ID)
		}
		if r.Content != nil || r.Source != "" {
			return errors.Errorf("composite region %q has direct content", r.ID)
		}
		for _, c := range r.Components {
			if err := c.validate(); err != nil {
				return errors.Wrapf(err, "in composite %q", r.ID)
			}
		}
	default:
		return errors.Errorf("region %q has unknown type %q", r.ID, r.Type)
	}
	return nil
}
