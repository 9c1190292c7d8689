package xtype

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/xreflect"
)

type testEntity struct {
	ID   int
	Name string
}

func TestRegistry_Bind(t *testing.T) {
	registry := New()
	entity, _ := registry.Class("Entity")
	rType := reflect.TypeOf(testEntity{})
	err := registry.Bind(entity, rType)
	assert.Nil(t, err)
	assert.EqualValues(t, rType, entity.GoType())
	assert.EqualValues(t, entity, registry.ByGoType(rType))
	assert.NotNil(t, registry.GoTypes().Lookup("Entity"))

	err = registry.Bind(entity, rType)
	assert.NotNil(t, err)
	err = registry.Bind(nil, rType)
	assert.NotNil(t, err)
}

func TestRegistry_BindNamed(t *testing.T) {
	registry := New()
	entity, _ := registry.Class("Record")
	err := registry.BindNamed(entity, "Record", xreflect.WithReflectType(reflect.TypeOf(testEntity{})))
	assert.Nil(t, err)
	assert.NotNil(t, entity.GoType())
	assert.EqualValues(t, entity, registry.ByGoType(reflect.TypeOf(testEntity{})))
}
