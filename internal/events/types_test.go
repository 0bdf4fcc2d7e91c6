package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Builders(t *testing.T) {
	e := NewEvent(WorkerRetired, "p").
		WithWorker("p_1").
		WithPayload(3).
		WithError(errors.New("boom"))

	assert.Equal(t, WorkerRetired, e.Type)
	assert.Equal(t, "p", e.Pool)
	assert.Equal(t, "p_1", e.Worker)
	assert.Equal(t, 3, e.Payload)
	assert.Equal(t, "boom", e.Error)
}

func TestEvent_WithErrorNil(t *testing.T) {
	e := NewEvent(PoolStarted, "p").WithError(nil)
	assert.Empty(t, e.Error)
}

func TestEvent_IsFailure(t *testing.T) {
	assert.True(t, NewEvent(WorkerFailed, "p").IsFailure())
	assert.False(t, NewEvent(WorkerCreated, "p").IsFailure())
}

func TestEvent_String(t *testing.T) {
	e := NewEvent(WorkerCreated, "p").WithWorker("p_0")
	assert.Equal(t, "[worker.created] p worker=p_0", e.String())
}
