package stage

import (
	"fmt"
	"math/rand"
	"os"
)

// ExampleGenerate builds one reproducible document and writes it to stdout.
func ExampleGenerate() {
	rng := rand.New(rand.NewSource(1))
	doc, err := Generate(rng, Options{Name: "demo-card", Layout: "card"})
	if err != nil {
		fmt.Printf("failed to generate: %s", err)
		return
	}
	if err := doc.Encode(os.Stdout); err != nil {
		fmt.Printf("failed to encode: %s", err)
	}
}

func ExamplePresetNames() {
	for _, name := range PresetNames() {
		fmt.Println(name)
	}
	// Output:
	// poster
	// card
	// banner
	// postcard
}

func ExampleParseExpr() {
	e, err := ParseExpr("startY + imageHeight + -5")
	if err != nil {
		fmt.Printf("failed to parse: %s", err)
		return
	}
	fmt.Println(e)
	// Output:
	// startY + imageHeight - 5
}
