package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/typly/generic"
	"github.com/viant/typly/xtype"
)

//countingIntrospector counts ancestor climb calls to observe auto expansion
type countingIntrospector struct {
	Introspector
	climbs generic.Ints
}

func (c *countingIntrospector) Superclass(t *xtype.Type) *xtype.Type {
	c.climbs.Append(1)
	return c.Introspector.Superclass(t)
}

func (c *countingIntrospector) Interfaces(t *xtype.Type) []*xtype.Type {
	c.climbs.Append(1)
	return c.Introspector.Interfaces(t)
}

func TestFlatMap_NearestAncestor(t *testing.T) {
	registry := xtype.New()
	_, err := registry.Class("String")
	assert.Nil(t, err)

	builder := NewBuilder(registry, WithFlat(nil))
	assert.Nil(t, builder.Put(registry.Number(), "N"))
	assert.Nil(t, builder.Put(registry.Lookup("Integer"), "I"))
	assert.Nil(t, builder.Put(registry.Top(), "O"))
	index, err := builder.Build()
	assert.Nil(t, err)

	var useCases = []struct {
		description string
		key         string
		expect      interface{}
	}{
		{description: "exact hit", key: "Integer", expect: "I"},
		{description: "superclass climb", key: "Long", expect: "N"},
		{description: "top fallback", key: "String", expect: "O"},
	}

	for _, useCase := range useCases {
		actual, ok := index.Lookup(registry.Lookup(useCase.key))
		assert.True(t, ok, useCase.description)
		assert.EqualValues(t, useCase.expect, actual, useCase.description)
	}
	assert.True(t, index.Has(registry.Lookup("Double")))
}

func TestFlatMap_InterfaceClimb(t *testing.T) {
	registry := xtype.New()
	closeable, _ := registry.Interface("Closeable")
	channel, _ := registry.Interface("Channel", closeable)
	byteChannel, _ := registry.Interface("ByteChannel", channel)
	socket, _ := registry.Class("Socket", xtype.WithImplements(byteChannel))

	builder := NewBuilder(registry, WithFlat(nil))
	assert.Nil(t, builder.Put(closeable, "C"))
	index, err := builder.Build()
	assert.Nil(t, err)

	//interface query climbs transitive superinterfaces depth first
	value, ok := index.Lookup(byteChannel)
	assert.True(t, ok)
	assert.EqualValues(t, "C", value)

	//class query exhausts the superclass chain, then per ancestor interfaces
	value, ok = index.Lookup(socket)
	assert.True(t, ok)
	assert.EqualValues(t, "C", value)
}

func TestFlatMap_AutoExpand(t *testing.T) {
	registry := xtype.New()
	long := registry.Lookup("Long")

	counting := &countingIntrospector{Introspector: registry}
	builder := NewBuilder(counting, WithFlat(generic.NewHashStore()), WithAutoExpand())
	assert.Nil(t, builder.Put(registry.Number(), "N"))
	index, err := builder.Build()
	assert.Nil(t, err)
	assert.EqualValues(t, 1, index.Size())

	value, ok := index.Lookup(long)
	assert.True(t, ok)
	assert.EqualValues(t, "N", value)
	climbed := counting.climbs.Size()
	assert.True(t, climbed > 0)

	//the resolved pair was cached, a repeat query is a single exact store hit
	value, ok = index.Lookup(long)
	assert.True(t, ok)
	assert.EqualValues(t, "N", value)
	assert.EqualValues(t, climbed, counting.climbs.Size())

	assert.EqualValues(t, 2, index.Size())
	assert.EqualValues(t, []*xtype.Type{registry.Number(), long}, index.Keys())
}

func TestFlatMap_AutoExpandDisabled(t *testing.T) {
	registry := xtype.New()
	counting := &countingIntrospector{Introspector: registry}
	builder := NewBuilder(counting, WithFlat(generic.NewHashStore()))
	assert.Nil(t, builder.Put(registry.Number(), "N"))
	index, err := builder.Build()
	assert.Nil(t, err)

	_, _ = index.Lookup(registry.Lookup("Long"))
	climbed := counting.climbs.Size()
	_, _ = index.Lookup(registry.Lookup("Long"))
	assert.True(t, counting.climbs.Size() > climbed)
	assert.EqualValues(t, 1, index.Size())
}

func TestFlatMap_Boxing(t *testing.T) {
	registry := xtype.New()
	integer := registry.Lookup("Integer")
	intPrimitive := registry.Lookup("int")

	var useCases = []struct {
		description string
		autobox     bool
		register    *xtype.Type
		query       *xtype.Type
		expect      interface{}
		found       bool
	}{
		{description: "primitive resolves via wrapper", autobox: true, register: integer, query: intPrimitive, expect: "I", found: true},
		{description: "wrapper resolves via primitive", autobox: true, register: intPrimitive, query: integer, expect: "I", found: true},
		{description: "boxing disabled", autobox: false, register: integer, query: intPrimitive, found: false},
	}

	for _, useCase := range useCases {
		builder := NewBuilder(registry, WithFlat(nil), WithAutobox(useCase.autobox))
		assert.Nil(t, builder.Put(useCase.register, "I"), useCase.description)
		index, err := builder.Build()
		if !assert.Nil(t, err, useCase.description) {
			continue
		}
		actual, ok := index.Lookup(useCase.query)
		assert.EqualValues(t, useCase.found, ok, useCase.description)
		if useCase.found {
			assert.EqualValues(t, useCase.expect, actual, useCase.description)
		}
	}
}

func TestFlatMap_NumericCatchAll(t *testing.T) {
	registry := xtype.New()
	builder := NewBuilder(registry, WithFlat(nil))
	assert.Nil(t, builder.Put(registry.Number(), "N"))
	index, err := builder.Build()
	assert.Nil(t, err)

	value, ok := index.Lookup(registry.Lookup("double"))
	assert.True(t, ok)
	assert.EqualValues(t, "N", value)
	_, ok = index.Lookup(registry.Lookup("char"))
	assert.False(t, ok)
}

func TestFlatMap_Arrays(t *testing.T) {
	registry := xtype.New()
	builder := NewBuilder(registry, WithFlat(nil), WithAutoExpand())
	assert.Nil(t, builder.Put(registry.ArrayOf(registry.Number()), "N[]"))
	index, err := builder.Build()
	assert.Nil(t, err)

	query := registry.ArrayOf(registry.Lookup("Integer"))
	value, ok := index.Lookup(query)
	assert.True(t, ok)
	assert.EqualValues(t, "N[]", value)
	//re-wrapped resolution is cached like any other
	assert.True(t, index.Has(query))
	assert.EqualValues(t, 2, index.Size())
}

func TestFlatMap_OrderedStoreDefault(t *testing.T) {
	registry := xtype.New()
	builder := NewBuilder(registry, WithFlat(nil))
	assert.Nil(t, builder.Put(registry.Top(), "O"))
	assert.Nil(t, builder.Put(registry.Number(), "N"))
	assert.Nil(t, builder.Put(registry.Lookup("Integer"), "I"))
	index, err := builder.Build()
	assert.Nil(t, err)

	//the default backing store keeps keys in specificity order, top last
	assert.EqualValues(t, []*xtype.Type{registry.Lookup("Integer"), registry.Number(), registry.Top()}, index.Keys())
	assert.EqualValues(t, []interface{}{"I", "N", "O"}, index.Values())
	assert.True(t, index.HasValue("O"))
	assert.False(t, index.HasValue("X"))
}
