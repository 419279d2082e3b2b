package pulse

type Releaser interface {
	Release()
}

// ReleaseGuard releases a handle when a function returns early,
// unless ownership was passed on by calling Keep.
type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}

// ReleaseStack collects handles and releases them in reverse order.
type ReleaseStack struct {
	handles []Releaser
}

// Push records a handle and returns it for convenience.
func Push[T Releaser](stack *ReleaseStack, handle T) T {
	stack.handles = append(stack.handles, handle)
	return handle
}

func (s *ReleaseStack) Len() int {
	return len(s.handles)
}

// Release releases all handles, the last one pushed first.
func (s *ReleaseStack) Release() {
	for idx := len(s.handles) - 1; idx >= 0; idx-- {
		s.handles[idx].Release()
	}

	s.handles = nil
}
