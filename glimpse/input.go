package glimpse

import "log/slog"

type KeysState struct {
	// the keys that are currently marked as "pressed"
	Pressed map[Key]bool

	// keys that where just pressed after the last call to nextTick()
	JustPressed map[Key]bool

	// keys that were just released after the last call to nextTick()
	JustReleased map[Key]bool
}

func (k *KeysState) press(key Key) {
	slog.Debug("Key just pressed", slog.String("key", key.String()))

	setTrue(&k.Pressed, key)
	setTrue(&k.JustPressed, key)
}

func (k *KeysState) release(key Key) {
	setFalse(&k.Pressed, key)
	setTrue(&k.JustReleased, key)
}

func (k *KeysState) nextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
}

func (k *KeysState) clone() KeysState {
	return KeysState{
		Pressed:      cloneMap(k.Pressed),
		JustPressed:  cloneMap(k.JustPressed),
		JustReleased: cloneMap(k.JustReleased),
	}
}

// InputState is a snapshot of the input of a single frame.
type InputState struct {
	Keys KeysState
}

// IsKeyJustPressed returns true if the key went down since the previous frame.
func (s InputState) IsKeyJustPressed(key Key) bool {
	return s.Keys.JustPressed[key]
}

func (s InputState) IsKeyPressed(key Key) bool {
	return s.Keys.Pressed[key]
}

func (s *InputState) nextTick() {
	s.Keys.nextTick()
}

func (s *InputState) snapshot() InputState {
	return InputState{Keys: s.Keys.clone()}
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = true
}

func setFalse[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = false
}

func cloneMap[K comparable](m map[K]bool) map[K]bool {
	if len(m) == 0 {
		return nil
	}

	result := make(map[K]bool, len(m))
	for key, value := range m {
		result[key] = value
	}

	return result
}
