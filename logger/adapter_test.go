package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testLogger struct {
	reparented  int
	resolutions int
	messages    []string
}

func (l *testLogger) Reparent() Reparent {
	return func(child, from, to string) {
		l.reparented++
	}
}

func (l *testLogger) Resolution() Resolution {
	return func(key, matched string, steps int) {
		l.resolutions++
	}
}

func (l *testLogger) Log() Log {
	return func(message string, args ...interface{}) {
		l.messages = append(l.messages, message)
	}
}

func TestAdapter(t *testing.T) {
	aLogger := &testLogger{}
	adapter := NewLogger(aLogger)
	adapter.Reparent("Integer", "Object", "Number")
	adapter.Resolution("Long", "Number", 1)
	adapter.Log("built %v nodes", 3)
	assert.EqualValues(t, 1, aLogger.reparented)
	assert.EqualValues(t, 1, aLogger.resolutions)
	assert.EqualValues(t, []string{"built %v nodes"}, aLogger.messages)
}

func TestAdapter_NilSafe(t *testing.T) {
	var adapter *Adapter
	adapter.Reparent("a", "b", "c")
	adapter.Resolution("a", "b", 1)
	adapter.Log("message")

	adapter = NewLogger(nil)
	adapter.Reparent("a", "b", "c")
	adapter.Resolution("a", "b", 1)
	adapter.Log("message")
}

func TestCounterAdapter_NilSafe(t *testing.T) {
	var adapter *CounterAdapter
	onDone := adapter.Begin(time.Now())
	assert.EqualValues(t, 0, onDone(time.Now()))
	assert.EqualValues(t, 0, adapter.IncrementValue("hit"))
	assert.EqualValues(t, 0, adapter.DecrementValue("hit"))

	adapter = NewCounter(nil)
	onDone = adapter.Begin(time.Now())
	assert.EqualValues(t, 0, onDone(time.Now()))
	assert.EqualValues(t, 0, adapter.IncrementValue("miss"))
}
