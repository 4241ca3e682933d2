//go:build unit

package patch_test

import (
	"testing"

	"signup-engine/internal/pkg/patch"
	"signup-engine/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3, patch.Coalesce(ptr.Of(3), 7))
	assert.Equal(t, 0, patch.Coalesce(ptr.Of(0), 7), "explicit zero is kept")
	assert.Equal(t, 7, patch.Coalesce[int](nil, 7))
}

func TestCoalesceIf(t *testing.T) {
	assert.Equal(t, 3, patch.CoalesceIf(true, ptr.Of(3), 7))
	assert.Equal(t, 7, patch.CoalesceIf(false, ptr.Of(3), 7))
	assert.Equal(t, 7, patch.CoalesceIf[int](true, nil, 7))
}

func TestChanged(t *testing.T) {
	assert.False(t, patch.Changed[string](nil, "a"))
	assert.False(t, patch.Changed(ptr.Of("a"), "a"))
	assert.True(t, patch.Changed(ptr.Of("b"), "a"))
}
