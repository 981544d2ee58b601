package web

import (
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"

	"badc0de.net/pkg/go-nara/sheet"
	"badc0de.net/pkg/go-nara/stage"
)

// testRouter builds a router over fresh template and sprite directories,
// seeded with one document ("demo-card") and one sprite ("hero", facing
// south).
func testRouter(t *testing.T) *mux.Router {
	t.Helper()
	templatesDir := t.TempDir()
	spritesDir := t.TempDir()

	rng := rand.New(rand.NewSource(1))
	doc, err := stage.Generate(rng, stage.Options{Name: "demo-card", Layout: "card"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := doc.WriteFile(filepath.Join(templatesDir, doc.Name+stage.Extension)); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 8, 10))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.NRGBA{R: 0xff, A: 0xff}}, image.Point{}, draw.Src)
	f, err := os.Create(filepath.Join(spritesDir, "hero_south.png"))
	if err != nil {
		t.Fatalf("creating sprite: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding sprite: %v", err)
	}
	f.Close()

	r := mux.NewRouter()
	NewHandler(templatesDir, spritesDir).RegisterRoutes(r)
	return r
}

func get(t *testing.T, r *mux.Router, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestListTemplates(t *testing.T) {
	r := testRouter(t)
	rec := get(t, r, "/templates", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var names []string
	if err := json.Unmarshal(rec.Body.Bytes(), &names); err != nil {
		t.Fatalf("response is not a JSON list: %v", err)
	}
	if len(names) != 1 || names[0] != "demo-card" {
		t.Errorf("names = %v; want [demo-card]", names)
	}
}

func TestGetTemplate(t *testing.T) {
	r := testRouter(t)
	rec := get(t, r, "/template/demo-card", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	doc, err := stage.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Name != "demo-card" {
		t.Errorf("name = %q; want demo-card", doc.Name)
	}

	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("no ETag on template response")
	}
	rec2 := get(t, r, "/template/demo-card", http.Header{"If-None-Match": {etag}})
	if rec2.Code != http.StatusNotModified {
		t.Errorf("conditional status = %d; want 304", rec2.Code)
	}
}

func TestGetTemplateMissing(t *testing.T) {
	r := testRouter(t)
	rec := get(t, r, "/template/no-such", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", rec.Code)
	}
}

func TestRandomTemplate(t *testing.T) {
	r := testRouter(t)
	rec := get(t, r, "/random?seed=5&layout=card&sidebar=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	doc, err := stage.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("random document does not validate: %v", err)
	}
	if doc.Layout.ImageWidth != 30 {
		t.Errorf("ImageWidth = %d; want 30 for card", doc.Layout.ImageWidth)
	}
	sidebar := false
	for _, reg := range doc.Regions {
		if reg.ID == "sidebar" {
			sidebar = true
		}
	}
	if !sidebar {
		t.Error("forced sidebar missing from random document")
	}

	// Same seed, same document.
	rec2 := get(t, r, "/random?seed=5&layout=card&sidebar=1", nil)
	recAgain := get(t, r, "/random?seed=5&layout=card&sidebar=1", nil)
	if rec2.Body.String() != recAgain.Body.String() {
		t.Error("same seed produced different documents")
	}
}

func TestRandomTemplateUnknownLayout(t *testing.T) {
	r := testRouter(t)
	rec := get(t, r, "/random?layout=billboard", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestSheetPNG(t *testing.T) {
	r := testRouter(t)
	for _, path := range []string{"/sheet/hero_walk.png", "/sheet/hero_idle.png"} {
		rec := get(t, r, path, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d; want 200", path, rec.Code)
		}
		img, err := png.Decode(rec.Body)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if b := img.Bounds(); b.Dx() != sheet.SheetWidth || b.Dy() != sheet.SheetHeight {
			t.Errorf("%s is %dx%d; want %dx%d", path, b.Dx(), b.Dy(), sheet.SheetWidth, sheet.SheetHeight)
		}
	}

	rec := get(t, r, "/sheet/hero_walk.png", nil)
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("no ETag on sheet response")
	}
	rec2 := get(t, r, "/sheet/hero_walk.png", http.Header{"If-None-Match": {etag}})
	if rec2.Code != http.StatusNotModified {
		t.Errorf("conditional status = %d; want 304", rec2.Code)
	}
}

func TestTurnaroundGIF(t *testing.T) {
	r := testRouter(t)
	rec := get(t, r, "/sheet/hero_turnaround.gif", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	g, err := gif.DecodeAll(rec.Body)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(g.Image) != len(sheet.Directions) {
		t.Errorf("gif has %d frames; want %d", len(g.Image), len(sheet.Directions))
	}
}
