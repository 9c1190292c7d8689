package hierarchy

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/viant/gmetric/provider"
	"github.com/viant/typly/logger"
)

const (
	//Hit represents resolved lookup metric value
	Hit = "hit"
	//Miss represents unresolved lookup metric value
	Miss = "miss"
)

type metricLocation struct {
}

func location() string {
	return reflect.TypeOf(metricLocation{}).PkgPath()
}

func newOperationCounter(options *options) *logger.CounterAdapter {
	if options.metrics == nil {
		return logger.NewCounter(nil)
	}
	name := options.name
	if name == "" {
		name = uuid.New().String()
	}
	var cnt logger.Counter
	if operation := options.metrics.LookupOperation(name); operation != nil {
		cnt = operation
	} else {
		cnt = options.metrics.MultiOperationCounter(location(), name, name+" lookup performance", time.Millisecond, time.Minute, 2, provider.NewBasic())
	}
	return logger.NewCounter(cnt)
}
