package logger

import (
	"os"
)

//Adapter represents nil safe logger adapter
type Adapter struct {
	reparent   Reparent
	resolution Resolution
	log        Log
}

//Reparent notifies about node reparenting
func (l *Adapter) Reparent(child, from, to string) {
	if l == nil || l.reparent == nil {
		return
	}
	l.reparent(child, from, to)
}

//Resolution notifies about ancestor resolution
func (l *Adapter) Resolution(key, matched string, steps int) {
	if l == nil || l.resolution == nil {
		return
	}
	l.resolution(key, matched, steps)
}

//Log logs free form message
func (l *Adapter) Log(message string, args ...interface{}) {
	if l == nil || l.log == nil {
		return
	}
	l.log(message, args...)
}

//NewLogger creates an adapter for supplied logger
func NewLogger(logger Logger) *Adapter {
	if logger == nil {
		return &Adapter{}
	}
	return &Adapter{
		reparent:   logger.Reparent(),
		resolution: logger.Resolution(),
		log:        logger.Log(),
	}
}

//Default returns debug logger adapter when TYPLY_DEBUG is set, nop adapter otherwise
func Default() *Adapter {
	if os.Getenv("TYPLY_DEBUG") == "" {
		return NewLogger(nil)
	}
	return NewLogger(&defaultLogger{})
}
