package logger

import (
	"time"

	"github.com/viant/gmetric/counter"
)

//Counter represents operation metric contract
type Counter interface {
	Begin(started time.Time) counter.OnDone
	IncrementValue(value interface{}) int64
	DecrementValue(value interface{}) int64
}

//CounterAdapter represents nil safe counter adapter
type CounterAdapter struct {
	counter Counter
}

//Begin starts an operation
func (c *CounterAdapter) Begin(started time.Time) counter.OnDone {
	if c == nil || c.counter == nil {
		return nopOnDone
	}
	return c.counter.Begin(started)
}

//IncrementValue increments metric value
func (c *CounterAdapter) IncrementValue(value interface{}) int64 {
	if c == nil || c.counter == nil {
		return 0
	}
	return c.counter.IncrementValue(value)
}

//DecrementValue decrements metric value
func (c *CounterAdapter) DecrementValue(value interface{}) int64 {
	if c == nil || c.counter == nil {
		return 0
	}
	return c.counter.DecrementValue(value)
}

//NewCounter creates a counter adapter
func NewCounter(counter Counter) *CounterAdapter {
	return &CounterAdapter{counter: counter}
}

func nopOnDone(_ time.Time, _ ...interface{}) int64 {
	return 0
}
