package pulse

import "unsafe"

// CopyBufferAlignment is the alignment required for the size of
// buffer writes and buffer to buffer copies.
const CopyBufferAlignment = 4

func AsByteSlice[T any](value *T) []byte {
	var zeroT T

	n := unsafe.Sizeof(zeroT)
	ptr := (*byte)(unsafe.Pointer(value))

	return unsafe.Slice(ptr, n)
}

// SliceBytes returns the memory backing values as a byte slice.
func SliceBytes[T any](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	var zeroT T

	n := int(unsafe.Sizeof(zeroT)) * len(values)
	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(values)))

	return unsafe.Slice(ptr, n)
}

// AlignUp rounds n up to the next multiple of alignment.
// The alignment must be a power of two.
func AlignUp(n, alignment uint64) uint64 {
	return (n + alignment - 1) &^ (alignment - 1)
}

// PadTo4 returns data padded with zero bytes to a multiple of
// CopyBufferAlignment. data is returned as is if it is already aligned.
func PadTo4(data []byte) []byte {
	size := AlignUp(uint64(len(data)), CopyBufferAlignment)
	if size == uint64(len(data)) {
		return data
	}

	padded := make([]byte, size)
	copy(padded, data)
	return padded
}
