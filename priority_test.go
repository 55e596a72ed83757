package uthread

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriority_Valid(t *testing.T) {
	assert.True(t, PriorityLow.valid())
	assert.True(t, PriorityMedium.valid())
	assert.True(t, PriorityHigh.valid())
	assert.False(t, priorityUndefined.valid())
	assert.False(t, Priority(99).valid())
	assert.False(t, Priority(-1).valid())
}

func TestPriority_ScanOrderIsHighToLow(t *testing.T) {
	assert.Equal(t, [3]Priority{PriorityHigh, PriorityMedium, PriorityLow}, priorityScanOrder)
}

func TestPriority_String(t *testing.T) {
	assert.Equal(t, "low", PriorityLow.String())
	assert.Equal(t, "medium", PriorityMedium.String())
	assert.Equal(t, "high", PriorityHigh.String())
	assert.Equal(t, "undefined", priorityUndefined.String())
	assert.Equal(t, "unknown", Priority(42).String())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ready", StatusReady.String())
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "blocked", StatusBlocked.String())
	assert.Equal(t, "unknown", Status(0).String())
}
