// Package web serves generated stage templates and sprite sheets over HTTP
// for quick inspection. Documents and sheets are produced on the fly from
// the same packages the command line tools use; nothing here renders a
// stage.
package web

import (
	"encoding/json"
	"fmt"
	"image/gif"
	"image/png"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-nara/sheet"
	"badc0de.net/pkg/go-nara/stage"
)

type Handler struct {
	templatesDir string
	spritesDir   string
}

// NewHandler constructs a web handler serving .nara documents from
// templatesDir and compositing sheets from the sprites in spritesDir.
func NewHandler(templatesDir, spritesDir string) *Handler {
	return &Handler{
		templatesDir: templatesDir,
		spritesDir:   spritesDir,
	}
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "naraweb endpoints:")
	fmt.Fprintln(w, "  /templates")
	fmt.Fprintln(w, "  /template/{name}")
	fmt.Fprintln(w, "  /random?layout=&sidebar=&footer=&caption=&labels=&seed=&name=")
	fmt.Fprintln(w, "  /sheet/{prefix}_walk.png, /sheet/{prefix}_idle.png")
	fmt.Fprintln(w, "  /sheet/{prefix}_turnaround.gif")
}

func (h *Handler) listHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(h.templatesDir)
	if err != nil && !os.IsNotExist(err) {
		http.Error(w, "failed to list templates", http.StatusInternalServerError)
		glog.Errorf("error listing %s: %v", h.templatesDir, err)
		return
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), stage.Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), stage.Extension))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(names)
}

func (h *Handler) templateHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	path := filepath.Join(h.templatesDir, vars["name"]+stage.Extension)

	s, err := os.Stat(path)
	if os.IsNotExist(err) {
		http.Error(w, "no such template", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to stat template", http.StatusInternalServerError)
		glog.Errorf("error statting %s: %v", path, err)
		return
	}

	generation := 1 // bump if the way we serve it changes
	mime := "application/json"
	etag := fmt.Sprintf(`W/"template:%d:%s:%d:%s"`, generation, vars["name"], s.ModTime().UnixNano(), mime)
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=60")
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		http.Error(w, "failed to open template", http.StatusInternalServerError)
		glog.Errorf("error opening %s: %v", path, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=60")
	w.Header().Set("ETag", etag)
	w.Header().Set("Last-Modified", s.ModTime().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	io.Copy(w, f)
}

// queryBool reads a boolean query parameter into a forced-flag pointer.
// Absent or unparsable values stay nil, meaning "let the dice decide".
func queryBool(r *http.Request, key string) *bool {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		// ignore invalid values
		return nil
	}
	return &b
}

func (h *Handler) randomHandler(w http.ResponseWriter, r *http.Request) {
	seed := time.Now().UnixNano()
	if s := r.URL.Query().Get("seed"); s != "" {
		if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = parsed
		}
		// ignore invalid seed
	}
	rng := rand.New(rand.NewSource(seed))

	opts := stage.Options{
		Name:    r.URL.Query().Get("name"),
		Layout:  r.URL.Query().Get("layout"),
		Sidebar: queryBool(r, "sidebar"),
		Footer:  queryBool(r, "footer"),
		Caption: queryBool(r, "caption"),
		Labels:  queryBool(r, "labels"),
	}

	doc, err := stage.Generate(rng, opts)
	if errors.Is(err, stage.ErrUnknownLayout) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "failed to generate template", http.StatusInternalServerError)
		glog.Errorf("error generating template: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	doc.Encode(w)
}

// sheetStamp returns the newest modification time across the sprite
// sources for prefix. Missing sources contribute nothing; a prefix with no
// sources at all yields the zero time, which still makes a usable ETag.
func (h *Handler) sheetStamp(c sheet.Compositor, prefix string) time.Time {
	var newest time.Time
	for _, d := range sheet.Directions {
		if s, err := os.Stat(c.SpritePath(prefix, d)); err == nil {
			if s.ModTime().After(newest) {
				newest = s.ModTime()
			}
		}
	}
	return newest
}

func (h *Handler) sheetHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	prefix := vars["prefix"]
	anim := vars["anim"]

	c := sheet.Compositor{SpritesDir: h.spritesDir}
	stamp := h.sheetStamp(c, prefix)

	generation := 1 // bump if the way we generate it changes
	mime := "image/png"
	etag := fmt.Sprintf(`W/"sheet:%d:%s:%s:%d:%s"`, generation, prefix, anim, stamp.UnixNano(), mime)
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=3600")
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	frames, err := c.Frames(prefix)
	if err != nil {
		http.Error(w, "failed to load sprites", http.StatusInternalServerError)
		glog.Errorf("error loading sprites for %q: %v", prefix, err)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	if !stamp.IsZero() {
		w.Header().Set("Last-Modified", stamp.Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)
	png.Encode(w, sheet.Sheet(frames))
}

func (h *Handler) sheetGIFHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	prefix := vars["prefix"]

	c := sheet.Compositor{SpritesDir: h.spritesDir}
	stamp := h.sheetStamp(c, prefix)

	generation := 1 // bump if the way we generate it changes
	mime := "image/gif"
	etag := fmt.Sprintf(`W/"turnaround:%d:%s:%d:%s"`, generation, prefix, stamp.UnixNano(), mime)
	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=3600")
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	frames, err := c.Frames(prefix)
	if err != nil {
		http.Error(w, "failed to load sprites", http.StatusInternalServerError)
		glog.Errorf("error loading sprites for %q: %v", prefix, err)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	if !stamp.IsZero() {
		w.Header().Set("Last-Modified", stamp.Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)
	gif.EncodeAll(w, sheet.Turnaround(frames))
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/templates", h.listHandler)
	r.HandleFunc("/template/{name:[A-Za-z0-9_-]+}", h.templateHandler)
	r.HandleFunc("/random", h.randomHandler)
	r.HandleFunc("/sheet/{prefix:[A-Za-z0-9_-]+}_{anim:walk|idle}.png", h.sheetHandler)
	r.HandleFunc("/sheet/{prefix:[A-Za-z0-9_-]+}_turnaround.gif", h.sheetGIFHandler)
}
