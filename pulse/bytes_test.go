package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	assert.Equal(t, uint64(0), AlignUp(0, 4))
	assert.Equal(t, uint64(4), AlignUp(1, 4))
	assert.Equal(t, uint64(4), AlignUp(4, 4))
	assert.Equal(t, uint64(32), AlignUp(20, 16))
	assert.Equal(t, uint64(32), AlignUp(32, 16))
}

func TestPadTo4(t *testing.T) {
	aligned := []byte{1, 2, 3, 4}
	assert.Equal(t, aligned, PadTo4(aligned))

	padded := PadTo4([]byte{1, 2, 3, 4, 5, 6})
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 0, 0}, padded)

	assert.Empty(t, PadTo4(nil))
}

func TestSliceBytes(t *testing.T) {
	values := []uint16{0x0201, 0x0403, 0x0605}

	data := SliceBytes(values)
	require.Len(t, data, 6)

	// three uint16 indices need two bytes of padding
	assert.Len(t, PadTo4(data), 8)

	assert.Nil(t, SliceBytes[uint32](nil))
}

func TestAsByteSlice(t *testing.T) {
	value := struct {
		A float32
		B float32
	}{1, 2}

	assert.Len(t, AsByteSlice(&value), 8)
}
