package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugifyDeterministic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Indoor Plants", "indoor-plants"},
		{"indoor plants", "indoor-plants"},
		{"  INDOOR   PLANTS  ", "indoor-plants"},
		{"Succulents & Cacti", "succulents-cacti"},
		{"pots_and_planters", "pots-and-planters"},
		{"--weird--", "weird"},
		{"", ""},
		{"   ", ""},
		{"日本語", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyCaseVariantsCollide(t *testing.T) {
	// the extraction job relies on case-variant labels mapping to one slug
	assert.Equal(t, Slugify("Ferns"), Slugify("ferns"))
	assert.Equal(t, Slugify("Air Plants"), Slugify("air  plants"))
}

func TestIsPlaceholderImage(t *testing.T) {
	assert.True(t, IsPlaceholderImage(""))
	assert.True(t, IsPlaceholderImage("   "))
	assert.True(t, IsPlaceholderImage("https://cdn.example.com/placeholder.png"))
	assert.True(t, IsPlaceholderImage("https://cdn.example.com/no-image.jpg"))
	assert.False(t, IsPlaceholderImage("https://cdn.example.com/ferns.jpg"))
}
