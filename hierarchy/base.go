package hierarchy

import (
	"reflect"

	"github.com/viant/typly/logger"
	"github.com/viant/typly/xtype"
)

//base carries state shared by both index engines
type base struct {
	introspector Introspector
	autobox      bool
	logger       *logger.Adapter
	counter      *logger.CounterAdapter
}

func newBase(introspector Introspector, options *options) base {
	return base{
		introspector: introspector,
		autobox:      options.autobox,
		logger:       options.logger,
		counter:      newOperationCounter(options),
	}
}

func (b *base) count(resolved bool) {
	if resolved {
		b.counter.IncrementValue(Hit)
		return
	}
	b.counter.IncrementValue(Miss)
}

//fallback applies the shared resolution tail: boxing equivalent retry, numeric
//catch-all, then top type value. The retry resolver must not fall back itself.
func (b *base) fallback(key *xtype.Type, unboxRetry bool, retry, exact func(*xtype.Type) (interface{}, bool)) (interface{}, bool) {
	if b.autobox {
		if key.IsPrimitive() {
			if wrapper := b.introspector.Box(key); wrapper != nil {
				if value, ok := retry(wrapper); ok {
					return value, true
				}
			}
		} else if unboxRetry && key.IsWrapper() {
			if primitive := b.introspector.Unbox(key); primitive != nil {
				if value, ok := retry(primitive); ok {
					return value, true
				}
			}
		}
	}
	if b.introspector.IsNumeric(key) {
		if value, ok := exact(b.introspector.Number()); ok {
			return value, true
		}
	}
	return exact(b.introspector.Top())
}

//arrayOfAncestor resolves an array type by walking the component ancestor chain
//re-wrapped as array of ancestor, array types have no superclass chain of their own
func (b *base) arrayOfAncestor(key *xtype.Type, exact func(*xtype.Type) (interface{}, bool)) (interface{}, bool) {
	component := b.introspector.ComponentType(key)
	if component == nil {
		return nil, false
	}
	for _, ancestor := range b.componentAncestors(component) {
		if value, ok := exact(b.introspector.ArrayOf(ancestor)); ok {
			return value, true
		}
	}
	return nil, false
}

//componentAncestors returns proper ancestors of an array component: the
//superclass chain first, then interface closures nearest class first
func (b *base) componentAncestors(component *xtype.Type) []*xtype.Type {
	var result []*xtype.Type
	seen := map[*xtype.Type]bool{component: true}
	if component.IsInterface() {
		b.appendInterfaces(component, &result, seen)
		return result
	}
	for class := b.introspector.Superclass(component); class != nil; class = b.introspector.Superclass(class) {
		if seen[class] {
			continue
		}
		seen[class] = true
		result = append(result, class)
	}
	for class := component; class != nil; class = b.introspector.Superclass(class) {
		b.appendInterfaces(class, &result, seen)
	}
	return result
}

func (b *base) appendInterfaces(t *xtype.Type, result *[]*xtype.Type, seen map[*xtype.Type]bool) {
	for _, item := range b.introspector.Interfaces(t) {
		if seen[item] {
			continue
		}
		seen[item] = true
		*result = append(*result, item)
		b.appendInterfaces(item, result, seen)
	}
}

func sameValue(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}
