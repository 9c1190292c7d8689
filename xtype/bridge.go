package xtype

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/viant/x"
	"github.com/viant/xreflect"
)

//Bind associates a Go runtime type with a descriptor, the Go type is interned
//in the shared x registry so it stays discoverable by key
func (r *Registry) Bind(t *Type, rType reflect.Type) error {
	if t == nil || rType == nil {
		return errors.New("both type and Go type were required")
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if t.rType != nil {
		return errors.Errorf("type %v is already bound to %v", t.name, t.rType)
	}
	t.rType = rType
	r.goTypes.Register(x.NewType(rType, x.WithName(t.name)))
	r.byGo[rType.String()] = t
	return nil
}

//BindNamed resolves a Go type by name with xreflect and binds it to the descriptor
func (r *Registry) BindNamed(t *Type, typeName string, options ...xreflect.Option) error {
	if err := r.lookup.Register(typeName, options...); err != nil {
		return errors.Wrapf(err, "failed to register Go type %v", typeName)
	}
	rType, err := r.lookup.Lookup(typeName)
	if err != nil {
		return errors.Wrapf(err, "failed to lookup Go type %v", typeName)
	}
	return r.Bind(t, rType)
}

//ByGoType returns a descriptor bound to supplied Go type or nil
func (r *Registry) ByGoType(rType reflect.Type) *Type {
	if rType == nil {
		return nil
	}
	r.mux.RLock()
	defer r.mux.RUnlock()
	return r.byGo[rType.String()]
}

//GoTypes returns the shared Go type registry with all bound types
func (r *Registry) GoTypes() *x.Registry {
	return r.goTypes
}
