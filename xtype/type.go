package xtype

import (
	"reflect"
)

//Type represents a nominal type descriptor, descriptors are interned by a Registry
//and compared by identity
type Type struct {
	name       string
	kind       Kind
	abstract   bool
	numeric    bool
	super      *Type
	interfaces []*Type
	component  *Type
	boxed      *Type
	unboxed    *Type
	ordinal    int
	rType      reflect.Type
}

//Name returns type name
func (t *Type) Name() string {
	return t.name
}

//Kind returns type kind
func (t *Type) Kind() Kind {
	return t.kind
}

//IsInterface returns true if type is an interface
func (t *Type) IsInterface() bool {
	return t.kind == KindInterface
}

//IsPrimitive returns true if type is a primitive
func (t *Type) IsPrimitive() bool {
	return t.kind == KindPrimitive
}

//IsEnum returns true if type is an enum
func (t *Type) IsEnum() bool {
	return t.kind == KindEnum
}

//IsArray returns true if type is an array
func (t *Type) IsArray() bool {
	return t.kind == KindArray
}

//IsAbstract returns true if type is an abstract class
func (t *Type) IsAbstract() bool {
	return t.abstract
}

//IsWrapper returns true if type is a primitive wrapper class
func (t *Type) IsWrapper() bool {
	return t.unboxed != nil
}

//Super returns direct superclass or nil
func (t *Type) Super() *Type {
	return t.super
}

//Interfaces returns directly declared interfaces
func (t *Type) Interfaces() []*Type {
	return t.interfaces
}

//Component returns array component type or nil
func (t *Type) Component() *Type {
	return t.component
}

//Ordinal returns registration ordinal
func (t *Type) Ordinal() int {
	return t.ordinal
}

//GoType returns bound Go runtime type or nil
func (t *Type) GoType() reflect.Type {
	return t.rType
}

func (t *Type) String() string {
	return t.name
}
