package hierarchy

import (
	"time"

	"github.com/viant/typly/generic"
	"github.com/viant/typly/xtype"
)

//flatMap represents the flat multi-pass index, the backing store holds exactly
//the registered entries plus auto expanded ones, resolution climbs the queried
//type ancestor chain. With auto expansion enabled Lookup and Has write to the
//store, callers enumerating snapshot views concurrently have to serialize
//externally unless the store is internally synchronized.
type flatMap struct {
	base
	store      generic.Store
	autoExpand bool
}

//Lookup returns value for supplied type or its nearest registered ancestor
func (m *flatMap) Lookup(key *xtype.Type) (interface{}, bool) {
	onDone := m.counter.Begin(time.Now())
	value, ok := m.get(key)
	m.count(ok)
	onDone(time.Now())
	return value, ok
}

//Value behaves like Lookup but fails on absence
func (m *flatMap) Value(key *xtype.Type) (interface{}, error) {
	if key == nil {
		return nil, NewUnsupportedTypeError(key)
	}
	if value, ok := m.Lookup(key); ok {
		return value, nil
	}
	return nil, NewUnsupportedTypeError(key)
}

//Has mirrors Lookup resolution including the auto expansion side effect
func (m *flatMap) Has(key *xtype.Type) bool {
	_, ok := m.Lookup(key)
	return ok
}

func (m *flatMap) get(key *xtype.Type) (interface{}, bool) {
	if key == nil {
		panic("typly: lookup key was nil")
	}
	if value, ok := m.store.Get(key); ok {
		return value, true
	}
	value, ok := m.resolve(key)
	if !ok {
		retry := func(t *xtype.Type) (interface{}, bool) {
			if value, found := m.store.Get(t); found {
				return value, true
			}
			return m.resolve(t)
		}
		value, ok = m.fallback(key, true, retry, m.exact)
	}
	//cached pairs are definitionally identical to what the climb would always
	//return, an explicitly registered entry is never overwritten
	if ok && m.autoExpand && !m.store.Has(key) {
		m.store.Put(key, value)
	}
	return value, ok
}

func (m *flatMap) exact(key *xtype.Type) (interface{}, bool) {
	return m.store.Get(key)
}

//resolve climbs the ancestor chain checking the backing store at each step
func (m *flatMap) resolve(key *xtype.Type) (interface{}, bool) {
	if key.IsArray() {
		return m.arrayOfAncestor(key, m.exact)
	}
	steps := 0
	if key.IsInterface() {
		return m.climbDeclared(key, key, &steps)
	}
	top := m.introspector.Top()
	for class := m.introspector.Superclass(key); class != nil && class != top; class = m.introspector.Superclass(class) {
		steps++
		if value, ok := m.store.Get(class); ok {
			m.logger.Resolution(key.Name(), class.Name(), steps)
			return value, true
		}
	}
	for class := key; class != nil; class = m.introspector.Superclass(class) {
		if value, ok := m.climbDeclared(key, class, &steps); ok {
			return value, true
		}
	}
	return nil, false
}

//climbDeclared depth-first climbs directly declared interfaces of the owner
func (m *flatMap) climbDeclared(key, owner *xtype.Type, steps *int) (interface{}, bool) {
	for _, item := range m.introspector.Interfaces(owner) {
		if value, ok := m.climbInterface(key, item, steps); ok {
			return value, true
		}
	}
	return nil, false
}

func (m *flatMap) climbInterface(key, node *xtype.Type, steps *int) (interface{}, bool) {
	*steps++
	if value, ok := m.store.Get(node); ok {
		m.logger.Resolution(key.Name(), node.Name(), *steps)
		return value, true
	}
	return m.climbDeclared(key, node, steps)
}

//HasValue returns true if any entry holds supplied value
func (m *flatMap) HasValue(value interface{}) bool {
	for _, candidate := range m.store.Values() {
		if sameValue(candidate, value) {
			return true
		}
	}
	return false
}

//Keys returns a key snapshot in store order, auto expanded entries included
func (m *flatMap) Keys() []*xtype.Type {
	return m.store.Keys()
}

//Values returns a value snapshot in store order
func (m *flatMap) Values() []interface{} {
	return m.store.Values()
}

//Entries returns an entry snapshot in store order
func (m *flatMap) Entries() []Entry {
	keys := m.store.Keys()
	var result = make([]Entry, 0, len(keys))
	for _, key := range keys {
		value, _ := m.store.Get(key)
		result = append(result, Entry{Key: key, Value: value})
	}
	return result
}

//Size returns entry count, auto expanded entries included
func (m *flatMap) Size() int {
	return m.store.Size()
}

//IsEmpty returns true on no entries
func (m *flatMap) IsEmpty() bool {
	return m.store.Size() == 0
}
