package lessons

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"clear", "triangle", "vertex-buffer", "index-buffer", "uniforms", "buffers"},
		Names(),
	)
}

func TestByName(t *testing.T) {
	lesson, err := ByName("uniforms")
	require.NoError(t, err)
	assert.Equal(t, "uniforms", lesson.Name())

	_, err = ByName("textures")
	assert.True(t, errors.Is(err, ErrUnknownLesson))
}

func TestByNameReturnsNewInstance(t *testing.T) {
	first, err := ByName("buffers")
	require.NoError(t, err)

	second, err := ByName("buffers")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestByIndex(t *testing.T) {
	lesson, err := ByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, "clear", lesson.Name())

	_, err = ByIndex(-1)
	assert.ErrorIs(t, err, ErrUnknownLesson)

	_, err = ByIndex(len(All()))
	assert.ErrorIs(t, err, ErrUnknownLesson)
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 0, IndexOf("clear"))
	assert.Equal(t, 1, IndexOf("triangle"))
	assert.Equal(t, -1, IndexOf("nope"))
}

func TestClearColors(t *testing.T) {
	r, g, b, a := NewClear().ClearColor().Components()
	assert.InDelta(t, 0.9, r, 1e-6)
	assert.InDelta(t, 0.1, g, 1e-6)
	assert.InDelta(t, 0.2, b, 1e-6)
	assert.InDelta(t, 1.0, a, 1e-6)

	assert.Equal(t, NewClear().ClearColor(), NewTriangle().ClearColor())
}
