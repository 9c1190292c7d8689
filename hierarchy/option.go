package hierarchy

import (
	"github.com/viant/gmetric"
	"github.com/viant/typly/generic"
	"github.com/viant/typly/logger"
	"github.com/viant/typly/xtype"
)

type options struct {
	autobox          bool
	insertionOrdered bool
	flat             bool
	store            generic.Store
	autoExpand       bool
	metrics          *gmetric.Service
	name             string
	bumped           []*xtype.Type
	logger           *logger.Adapter
}

func newOptions(opts ...Option) *options {
	result := &options{}
	for _, opt := range opts {
		opt(result)
	}
	if result.logger == nil {
		result.logger = logger.Default()
	}
	return result
}

//Option customizes a builder
type Option func(o *options)

//WithAutobox enables or disables primitive wrapper equivalence on lookup
func WithAutobox(enabled bool) Option {
	return func(o *options) {
		o.autobox = enabled
	}
}

//WithInsertionOrder orders siblings by insertion time instead of specificity,
//lookup returns the first match, register frequently queried types first
func WithInsertionOrder() Option {
	return func(o *options) {
		o.insertionOrdered = true
	}
}

//WithFlat builds a flat multi-pass index over supplied backing store instead of
//the graph structured one, nil store defaults to an ordered store sorted with
//the specificity comparator
func WithFlat(store generic.Store) Option {
	return func(o *options) {
		o.flat = true
		o.store = store
	}
}

//WithAutoExpand caches climb resolved pairs back into the flat backing store
func WithAutoExpand() Option {
	return func(o *options) {
		o.autoExpand = true
	}
}

//WithMetrics enables gmetric lookup operation counters, empty name defaults to
//a generated one
func WithMetrics(metrics *gmetric.Service, name string) Option {
	return func(o *options) {
		o.metrics = metrics
		o.name = name
	}
}

//WithBumped forces supplied types to sort first in the specificity order
func WithBumped(types ...*xtype.Type) Option {
	return func(o *options) {
		o.bumped = types
	}
}

//WithLogger sets build and query tracing adapter
func WithLogger(adapter *logger.Adapter) Option {
	return func(o *options) {
		o.logger = adapter
	}
}
