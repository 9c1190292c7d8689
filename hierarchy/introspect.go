package hierarchy

import (
	"github.com/viant/typly/xtype"
)

//Introspector exposes the type metadata the indexes consume, *xtype.Registry
//implements it. Category predicates (IsInterface, IsPrimitive, IsArray, IsEnum,
//IsAbstract) live on *xtype.Type itself, descriptors are self describing.
type Introspector interface {
	//Top returns the universal top type
	Top() *xtype.Type
	//Number returns the numeric catch-all anchor type
	Number() *xtype.Type
	//Superclass returns direct superclass or nil
	Superclass(t *xtype.Type) *xtype.Type
	//Interfaces returns directly declared interfaces
	Interfaces(t *xtype.Type) []*xtype.Type
	//IsSubtype returns true if candidate is ancestor or its subtype
	IsSubtype(candidate, ancestor *xtype.Type) bool
	//ComponentType returns array component type or nil
	ComponentType(t *xtype.Type) *xtype.Type
	//ArrayOf returns array type for supplied component
	ArrayOf(component *xtype.Type) *xtype.Type
	//Box returns wrapper class for a primitive or nil
	Box(t *xtype.Type) *xtype.Type
	//Unbox returns primitive for a wrapper class or nil
	Unbox(t *xtype.Type) *xtype.Type
	//IsNumeric returns true for numeric types
	IsNumeric(t *xtype.Type) bool
}
