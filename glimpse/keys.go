package glimpse

import "strconv"

type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyLeft
	KeyRight
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9
)

var keyNames = [...]string{
	KeyUnknown: "Unknown",
	KeyEscape:  "Escape",
	KeySpace:   "Space",
	KeyLeft:    "Left",
	KeyRight:   "Right",
	KeyDigit1:  "1",
	KeyDigit2:  "2",
	KeyDigit3:  "3",
	KeyDigit4:  "4",
	KeyDigit5:  "5",
	KeyDigit6:  "6",
	KeyDigit7:  "7",
	KeyDigit8:  "8",
	KeyDigit9:  "9",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}

	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// Digit returns the number printed on a digit key, starting at 1.
func (k Key) Digit() (int, bool) {
	if k < KeyDigit1 || k > KeyDigit9 {
		return 0, false
	}

	return int(k-KeyDigit1) + 1, true
}

// DigitKeys lists KeyDigit1 to KeyDigit9 in ascending order.
func DigitKeys() []Key {
	var keys []Key
	for key := KeyDigit1; key <= KeyDigit9; key++ {
		keys = append(keys, key)
	}

	return keys
}
