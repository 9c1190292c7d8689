package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/gmetric"
	"github.com/viant/typly/xtype"
)

func TestWithMetrics(t *testing.T) {
	registry := xtype.New()
	metrics := gmetric.New()

	builder := NewBuilder(registry, WithMetrics(metrics, "types"))
	assert.Nil(t, builder.Put(registry.Number(), "N"))
	index, err := builder.Build()
	assert.Nil(t, err)

	_, ok := index.Lookup(registry.Lookup("Integer"))
	assert.True(t, ok)
	_, ok = index.Lookup(registry.Lookup("boolean"))
	assert.False(t, ok)

	assert.NotNil(t, metrics.LookupOperation("types"))

	//a second index with the same name reuses the registered operation
	other := NewBuilder(registry, WithMetrics(metrics, "types"))
	assert.Nil(t, other.Put(registry.Top(), "O"))
	_, err = other.Build()
	assert.Nil(t, err)
}

func TestWithMetrics_GeneratedName(t *testing.T) {
	registry := xtype.New()
	metrics := gmetric.New()
	builder := NewBuilder(registry, WithMetrics(metrics, ""))
	assert.Nil(t, builder.Put(registry.Top(), "O"))
	index, err := builder.Build()
	assert.Nil(t, err)
	_, ok := index.Lookup(registry.Number())
	assert.True(t, ok)
}
