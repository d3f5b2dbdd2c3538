package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for Registry:
// - First reservation returns the base name
// - Collisions get _2, _3, ... suffixes in order
// - A suffixed name that is itself taken keeps counting
// - Reservation order is deterministic

func TestRegistry_Reserve(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	assert.Equal(t, "light_level", r.Reserve("light_level"))
	assert.Equal(t, "light_level_2", r.Reserve("light_level"))
	assert.Equal(t, "light_level_3", r.Reserve("light_level"))
	assert.Equal(t, 3, r.Len())
}

func TestRegistry_SuffixCollision(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	// Reserve the suffixed form first; the later base collision must skip it.
	assert.Equal(t, "name_2", r.Reserve("name_2"))
	assert.Equal(t, "name", r.Reserve("name"))
	assert.Equal(t, "name_3", r.Reserve("name"))
}
