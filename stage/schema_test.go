package stage

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestGeneratedDocumentsMatchSchema(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		doc, err := Generate(rng, Options{})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		var buf bytes.Buffer
		if err := doc.Encode(&buf); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if err := CheckSchema(buf.Bytes()); err != nil {
			t.Errorf("seed %d: %v", seed, err)
		}
	}
}

func TestCheckSchemaRejectsBrokenDocuments(t *testing.T) {
	doc := fullDoc(t, 8)

	t.Run("wrong type tag", func(t *testing.T) {
		broken := *doc
		broken.Type = "poster"
		var buf bytes.Buffer
		if err := broken.Encode(&buf); err != nil {
			t.Fatal(err)
		}
		if err := CheckSchema(buf.Bytes()); err == nil {
			t.Error("schema accepted a non-stage type tag")
		}
	})
	t.Run("truncated document", func(t *testing.T) {
		if err := CheckSchema([]byte(`{"version": "1.0.0"}`)); err == nil {
			t.Error("schema accepted a document with missing keys")
		}
	})
	t.Run("not json", func(t *testing.T) {
		if err := CheckSchema([]byte("not a document")); err == nil {
			t.Error("schema accepted non-JSON input")
		}
	})
}
