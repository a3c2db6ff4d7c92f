package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical", "tornillo", "tornillo", 0},
		{"empty vs empty", "", "", 0},
		{"empty vs word", "", "abc", 3},
		{"word vs empty", "abc", "", 3},
		{"single substitution", "cable", "cably", 1},
		{"insertion", "tuerca", "tuercas", 1},
		{"deletion", "arandela", "arandel", 1},
		{"unrelated", "abc", "xyz", 3},
		{"unicode runes", "caña", "cana", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "cemento gris", "cemento gris", 1.0},
		{"both empty", "", "", 1.0},
		{"completely different", "abc", "xyz", 0.0},
		{"one edit in eight", "tornillo", "tornilla", 0.875},
		{"half overlap", "ab", "ax", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"tornillo m8", "tornillo m10"},
		{"", "cemento"},
		{"café molido", "cafe molido"},
		{"a", "abcdefgh"},
	}

	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]),
			"similarity(%q,%q) must be symmetric", p[0], p[1])
	}
}

func TestSimilarity_Range(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"x", "yyyyyyyyyy"},
		{"saco cemento 25kg", "saco de cemento 25 kg"},
		{"", ""},
	}

	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"  Cemento   Gris ", "cemento gris"},
		{"Café Molido", "cafe molido"},
		{"TORNILLO M8", "tornillo m8"},
		{"Señalización", "senalizacion"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
