package pulse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePass struct {
	ended  int
	endErr error
}

func (p *fakePass) End() error {
	p.ended++
	return p.endErr
}

var errDraw = errors.New("draw failed")
var errEnd = errors.New("end failed")

func TestEndPass(t *testing.T) {
	pass := &fakePass{}
	require.NoError(t, endPass(pass, nil))
	assert.Equal(t, 1, pass.ended)
}

func TestEndPassAfterDrawError(t *testing.T) {
	pass := &fakePass{}

	err := endPass(pass, errDraw)
	assert.ErrorIs(t, err, errDraw)
	assert.Equal(t, 1, pass.ended)
}

func TestEndPassKeepsBothErrors(t *testing.T) {
	pass := &fakePass{endErr: errEnd}

	err := endPass(pass, errDraw)
	assert.ErrorIs(t, err, errDraw)
	assert.ErrorIs(t, err, errEnd)
}

func TestEndPassError(t *testing.T) {
	pass := &fakePass{endErr: errEnd}

	err := endPass(pass, nil)
	assert.ErrorIs(t, err, errEnd)
}
