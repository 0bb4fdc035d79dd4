package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_IdenticalStrings(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("kubernetes", "kubernetes"))
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestSimilarity_EmptyString(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("go", ""))
	assert.Equal(t, 0.0, Similarity("", "go"))
}

func TestSimilarity_KnownDistance(t *testing.T) {
	// levenshtein(kitten, sitting) = 3, longest = 7.
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 1e-9)

	// One deletion out of ten runes.
	assert.InDelta(t, 0.9, Similarity("kubernetes", "kuberntes"), 1e-9)
}

func TestSimilarity_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"go", "rust"},
		{"postgresql", "mongodb"},
		{"a", "zzzzzzzz"},
		{"résumé", "resume"},
	}
	for _, p := range pairs {
		sim := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, sim, 0.0, "%q vs %q", p[0], p[1])
		assert.LessOrEqual(t, sim, 1.0, "%q vs %q", p[0], p[1])
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	assert.Equal(t, Similarity("terraform", "terraforms"), Similarity("terraforms", "terraform"))
}
