package stage

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

func TestPresetByName(t *testing.T) {
	tests := []struct {
		name          string
		wantWidth     int
		wantTitleGap  int
		wantFooterGap int
	}{
		{"poster", 40, 2, 3},
		{"card", 30, 1, 2},
		{"banner", 80, 1, 2},
		{"postcard", 35, 2, 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := PresetByName(test.name)
			if err != nil {
				t.Fatalf("PresetByName(%q): %v", test.name, err)
			}
			if p.ImageWidth != test.wantWidth {
				t.Errorf("ImageWidth = %d; want %d", p.ImageWidth, test.wantWidth)
			}
			if p.Spacing.TitleAboveImage != test.wantTitleGap {
				t.Errorf("TitleAboveImage = %d; want %d", p.Spacing.TitleAboveImage, test.wantTitleGap)
			}
			if p.Spacing.FooterBelowCaption != test.wantFooterGap {
				t.Errorf("FooterBelowCaption = %d; want %d", p.Spacing.FooterBelowCaption, test.wantFooterGap)
			}
		})
	}
}

func TestPresetByNameUnknown(t *testing.T) {
	_, err := PresetByName("billboard")
	if err == nil {
		t.Fatal("PresetByName(billboard) succeeded; want error")
	}
	if !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("error %v is not ErrUnknownLayout", err)
	}
}

func TestPresetNames(t *testing.T) {
	want := []string{"poster", "card", "banner", "postcard"}
	got := PresetNames()
	if len(got) != len(want) {
		t.Fatalf("PresetNames() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PresetNames()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestSelectPresetRandomCoversAll(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		p, err := selectPreset(rng, "")
		if err != nil {
			t.Fatalf("selectPreset: %v", err)
		}
		seen[p.Name] = true
	}
	for _, name := range PresetNames() {
		if !seen[name] {
			t.Errorf("random selection never produced %q", name)
		}
	}
}
