package xtype

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/viant/x"
	"github.com/viant/xreflect"
)

//Registry represents a nominal type registry, it interns type descriptors and
//exposes the introspection surface the hierarchy indexes consume. The top type,
//primitives with their wrapper classes and the Number catch-all anchor are
//pre-registered.
type Registry struct {
	mux     sync.RWMutex
	types   map[string]*Type
	arrays  map[*Type]*Type
	byGo    map[string]*Type
	ordinal int
	top     *Type
	number  *Type
	goTypes *x.Registry
	lookup  *xreflect.Types
}

//New creates a type registry with builtin types
func New() *Registry {
	result := &Registry{
		types:   make(map[string]*Type),
		arrays:  make(map[*Type]*Type),
		byGo:    make(map[string]*Type),
		goTypes: x.NewRegistry(),
		lookup:  xreflect.NewTypes(),
	}
	result.registerBuiltins()
	return result
}

func (r *Registry) registerBuiltins() {
	r.top = r.define("Object", KindClass)
	r.number = r.define("Number", KindClass, WithExtends(r.top), WithAbstract())
	r.definePrimitive("boolean", "Boolean", r.top, false)
	r.definePrimitive("char", "Character", r.top, false)
	r.definePrimitive("byte", "Byte", r.number, true)
	r.definePrimitive("short", "Short", r.number, true)
	r.definePrimitive("int", "Integer", r.number, true)
	r.definePrimitive("long", "Long", r.number, true)
	r.definePrimitive("float", "Float", r.number, true)
	r.definePrimitive("double", "Double", r.number, true)
}

func (r *Registry) define(name string, kind Kind, options ...Option) *Type {
	result := &Type{name: name, kind: kind, ordinal: r.ordinal}
	r.ordinal++
	for _, option := range options {
		option(result)
	}
	r.types[name] = result
	return result
}

func (r *Registry) definePrimitive(name, wrapperName string, super *Type, numeric bool) {
	primitive := r.define(name, KindPrimitive)
	primitive.numeric = numeric
	wrapper := r.define(wrapperName, KindClass, WithExtends(super))
	wrapper.numeric = numeric
	primitive.boxed = wrapper
	wrapper.unboxed = primitive
}

//Class registers a class type, with no WithExtends option the superclass defaults
//to the top type
func (r *Registry) Class(name string, options ...Option) (*Type, error) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if err := r.checkName(name); err != nil {
		return nil, err
	}
	result := r.define(name, KindClass, options...)
	if result.super == nil {
		result.super = r.top
	}
	if !r.isClassLike(result.super) {
		return nil, r.undefine(result, errors.Errorf("superclass of %v has to be a class, but had: %v", name, result.super.kind))
	}
	if err := r.checkInterfaces(name, result.interfaces); err != nil {
		return nil, r.undefine(result, err)
	}
	return result, nil
}

//Interface registers an interface type extending supplied interfaces
func (r *Registry) Interface(name string, extends ...*Type) (*Type, error) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if err := r.checkName(name); err != nil {
		return nil, err
	}
	if err := r.checkInterfaces(name, extends); err != nil {
		return nil, err
	}
	return r.define(name, KindInterface, WithImplements(extends...)), nil
}

//Enum registers an enum type implementing supplied interfaces
func (r *Registry) Enum(name string, implements ...*Type) (*Type, error) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if err := r.checkName(name); err != nil {
		return nil, err
	}
	if err := r.checkInterfaces(name, implements); err != nil {
		return nil, err
	}
	return r.define(name, KindEnum, WithExtends(r.top), WithImplements(implements...)), nil
}

//checkName rejects duplicates and the [] suffix reserved for synthesized array
//names, a user type named like an array would shadow the interned descriptor
func (r *Registry) checkName(name string) error {
	if name == "" {
		return errors.New("type name was empty")
	}
	if strings.Contains(name, "[]") {
		return errors.Errorf("type name %v is invalid, [] is reserved for array types", name)
	}
	if _, ok := r.types[name]; ok {
		return errors.Errorf("type %v is already defined", name)
	}
	return nil
}

func (r *Registry) isClassLike(t *Type) bool {
	return t != nil && (t.kind == KindClass || t.kind == KindEnum)
}

func (r *Registry) checkInterfaces(name string, interfaces []*Type) error {
	for _, item := range interfaces {
		if item == nil || item.kind != KindInterface {
			return errors.Errorf("type %v can only extend or implement interfaces, but had: %v", name, item)
		}
	}
	return nil
}

func (r *Registry) undefine(t *Type, err error) error {
	delete(r.types, t.name)
	return err
}

//ArrayOf returns interned array type for supplied component
func (r *Registry) ArrayOf(component *Type) *Type {
	r.mux.Lock()
	defer r.mux.Unlock()
	if result, ok := r.arrays[component]; ok {
		return result
	}
	result := r.define(component.name+"[]", KindArray)
	result.component = component
	r.arrays[component] = result
	return result
}

//Lookup returns a type for supplied name or nil
func (r *Registry) Lookup(name string) *Type {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.types[name]
}

//Top returns the universal top type
func (r *Registry) Top() *Type {
	return r.top
}

//Number returns the numeric catch-all anchor type
func (r *Registry) Number() *Type {
	return r.number
}

//Superclass returns direct superclass of supplied type or nil
func (r *Registry) Superclass(t *Type) *Type {
	if t == nil || t == r.top {
		return nil
	}
	return t.super
}

//Interfaces returns directly declared interfaces of supplied type
func (r *Registry) Interfaces(t *Type) []*Type {
	if t == nil {
		return nil
	}
	return t.interfaces
}

//ComponentType returns array component type or nil
func (r *Registry) ComponentType(t *Type) *Type {
	if t == nil {
		return nil
	}
	return t.component
}

//Box returns wrapper class for a primitive or nil
func (r *Registry) Box(t *Type) *Type {
	if t == nil {
		return nil
	}
	return t.boxed
}

//Unbox returns primitive for a wrapper class or nil
func (r *Registry) Unbox(t *Type) *Type {
	if t == nil {
		return nil
	}
	return t.unboxed
}

//IsNumeric returns true for numeric primitives, their wrappers and Number subtypes
func (r *Registry) IsNumeric(t *Type) bool {
	if t == nil {
		return false
	}
	if t.numeric {
		return true
	}
	if t.kind == KindPrimitive {
		return false
	}
	return r.IsSubtype(t, r.number)
}

//IsSubtype returns true if candidate is the same type as ancestor or its subtype
func (r *Registry) IsSubtype(candidate, ancestor *Type) bool {
	if candidate == nil || ancestor == nil {
		return false
	}
	if candidate == ancestor {
		return true
	}
	if ancestor == r.top {
		return candidate.kind != KindPrimitive
	}
	if candidate == r.top {
		return false
	}
	if candidate.kind == KindArray || ancestor.kind == KindArray {
		if candidate.kind != ancestor.kind {
			return false
		}
		//arrays are covariant on reference component types, primitive arrays only match themselves
		if candidate.component.kind == KindPrimitive || ancestor.component.kind == KindPrimitive {
			return false
		}
		return r.IsSubtype(candidate.component, ancestor.component)
	}
	if candidate.kind == KindPrimitive || ancestor.kind == KindPrimitive {
		return false
	}
	visited := map[*Type]bool{}
	return r.reaches(candidate, ancestor, visited)
}

func (r *Registry) reaches(node, target *Type, visited map[*Type]bool) bool {
	if node == nil || visited[node] {
		return false
	}
	if node == target {
		return true
	}
	visited[node] = true
	if r.reaches(node.super, target, visited) {
		return true
	}
	for _, item := range node.interfaces {
		if r.reaches(item, target, visited) {
			return true
		}
	}
	return false
}
