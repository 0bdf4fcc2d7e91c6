package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_PublishesRetBeforeDone(t *testing.T) {
	var s State
	assert.False(t, s.Complete())

	s.finish(7)
	assert.True(t, s.Complete())
	assert.Equal(t, int64(7), s.Ret())
}

func TestState_Reset(t *testing.T) {
	var s State
	s.finish(-1)
	s.Reset()
	assert.False(t, s.Complete())
	assert.Equal(t, int64(0), s.Ret())
}
