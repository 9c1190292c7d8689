package logger

import (
	"fmt"

	"github.com/viant/toolbox"
)

type defaultLogger struct {
}

func (d *defaultLogger) Reparent() Reparent {
	return func(child, from, to string) {
		fmt.Printf("[LOGGER] reparented %v: %v -> %v \n", child, from, to)
	}
}

func (d *defaultLogger) Resolution() Resolution {
	return func(key, matched string, steps int) {
		fmt.Printf("[LOGGER] resolved %v via %v, steps: %v \n", key, matched, steps)
	}
}

func (d *defaultLogger) Log() Log {
	return func(message string, args ...interface{}) {
		for i := range args {
			args[i] = toolbox.AsString(args[i])
		}
		fmt.Printf("[LOGGER] "+message+" \n", args...)
	}
}
