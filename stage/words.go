package stage

import (
	"math/rand"
	"strings"
)

// Word banks that titles, template names and generator dictionaries draw
// from. Runtime body text is not produced here: documents only carry a
// dictionary, and the consumer's own text generator works from that.
var (
	adjectives = []string{
		"quantum", "neural", "cosmic", "synthetic", "ethereal", "digital",
		"organic", "crystalline", "ambient", "fractal", "temporal", "spatial",
		"kinetic", "radiant", "sublime", "arcane", "prismatic", "infinite",
	}
	nouns = []string{
		"matrix", "topology", "manifold", "field", "lattice", "network",
		"system", "architecture", "framework", "structure", "membrane", "grid",
		"interface", "protocol", "substrate", "apparatus", "mechanism", "circuit",
	}
	verbs = []string{
		"transform", "synthesize", "modulate", "cascade", "oscillate",
		"resonate", "propagate", "converge", "emerge", "iterate", "evolve",
		"compose", "distribute", "aggregate", "encode", "decode", "transmit",
		"reflect",
	}
	techWords = []string{
		"algorithm", "protocol", "bandwidth", "latency", "throughput",
		"entropy", "coherence", "interference", "resonance", "coupling",
		"gradient", "flux", "tensor", "vector", "scalar", "eigen", "fourier",
		"laplace", "kernel",
	}
)

// randRange returns a uniform random int in [lo, hi]. Both bounds are
// inclusive.
func randRange(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// pick returns a uniformly chosen element of words.
func pick(rng *rand.Rand, words []string) string {
	return words[rng.Intn(len(words))]
}

// RandomTitle builds an n-word upper-case title. Each word independently
// comes from either the adjective or the noun bank.
func RandomTitle(rng *rand.Rand, n int) string {
	words := make([]string, n)
	for i := range words {
		if rng.Intn(2) == 0 {
			words[i] = pick(rng, adjectives)
		} else {
			words[i] = pick(rng, nouns)
		}
	}
	return strings.ToUpper(strings.Join(words, " "))
}

// RandomName returns a default template name of the form "adjective-noun".
func RandomName(rng *rand.Rand) string {
	return pick(rng, adjectives) + "-" + pick(rng, nouns)
}

// Dictionary samples n distinct words across all four banks. The banks
// overlap ("protocol" is both a noun and a tech word), so the combined pool
// is deduplicated first; the result is a word set, not a bag. n is clamped
// to the pool size.
func Dictionary(rng *rand.Rand, n int) []string {
	seen := make(map[string]bool)
	var pool []string
	for _, bank := range [][]string{adjectives, nouns, verbs, techWords} {
		for _, w := range bank {
			if !seen[w] {
				seen[w] = true
				pool = append(pool, w)
			}
		}
	}
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, n)
	for i, idx := range rng.Perm(len(pool))[:n] {
		out[i] = pool[idx]
	}
	return out
}
