package learn

import (
	"testing"

	"github.com/oliverbestmann/learnwebgpu/glimpse"
	"github.com/stretchr/testify/assert"
)

func justPressed(keys ...glimpse.Key) glimpse.InputState {
	state := glimpse.InputState{}
	state.Keys.JustPressed = map[glimpse.Key]bool{}

	for _, key := range keys {
		state.Keys.JustPressed[key] = true
	}

	return state
}

func TestLessonIndexForInput(t *testing.T) {
	idx, ok := lessonIndexForInput(justPressed(glimpse.KeyRight), 1, 6)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	idx, ok = lessonIndexForInput(justPressed(glimpse.KeyRight), 5, 6)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = lessonIndexForInput(justPressed(glimpse.KeyLeft), 0, 6)
	assert.True(t, ok)
	assert.Equal(t, 5, idx)

	idx, ok = lessonIndexForInput(justPressed(glimpse.KeyDigit3), 0, 6)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	// the caller checks that the index exists
	idx, ok = lessonIndexForInput(justPressed(glimpse.KeyDigit9), 0, 6)
	assert.True(t, ok)
	assert.Equal(t, 8, idx)
}

func TestLessonIndexForInputNothingPressed(t *testing.T) {
	_, ok := lessonIndexForInput(justPressed(), 0, 6)
	assert.False(t, ok)

	_, ok = lessonIndexForInput(justPressed(glimpse.KeySpace), 0, 6)
	assert.False(t, ok)

	_, ok = lessonIndexForInput(justPressed(glimpse.KeyRight), 0, 0)
	assert.False(t, ok)
}
