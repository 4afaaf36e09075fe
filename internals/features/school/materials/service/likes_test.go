// file: internals/features/school/materials/service/likes_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleLike(t *testing.T) {
	likes, liked := ToggleLike(nil, "u1")
	assert.True(t, liked)
	assert.Equal(t, []string{"u1"}, likes)

	likes, liked = ToggleLike(likes, "u2")
	assert.True(t, liked)
	assert.Equal(t, []string{"u1", "u2"}, likes)

	// toggling again removes
	likes, liked = ToggleLike(likes, "u1")
	assert.False(t, liked)
	assert.Equal(t, []string{"u2"}, likes)
}

func TestToggleLikeDoesNotMutateInput(t *testing.T) {
	orig := []string{"u1", "u2", "u3"}
	out, liked := ToggleLike(orig, "u2")
	assert.False(t, liked)
	assert.Equal(t, []string{"u1", "u2", "u3"}, orig)
	assert.Equal(t, []string{"u1", "u3"}, out)
}
