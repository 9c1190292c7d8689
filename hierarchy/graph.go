package hierarchy

import (
	"time"

	"github.com/viant/typly/xtype"
)

//graphMap represents the frozen graph structured index, it resolves queries by
//top down descent over the node tree and is safe for unsynchronized concurrent
//reads
type graphMap struct {
	base
	root             *Node
	entries          []Entry
	index            map[*xtype.Type]interface{}
	comparator       *Comparator
	insertionOrdered bool
}

//Lookup returns value for supplied type or its nearest registered ancestor
func (m *graphMap) Lookup(key *xtype.Type) (interface{}, bool) {
	onDone := m.counter.Begin(time.Now())
	value, ok := m.get(key, false)
	m.count(ok)
	onDone(time.Now())
	return value, ok
}

//Value behaves like Lookup but fails on absence
func (m *graphMap) Value(key *xtype.Type) (interface{}, error) {
	if key == nil {
		return nil, NewUnsupportedTypeError(key)
	}
	if value, ok := m.Lookup(key); ok {
		return value, nil
	}
	return nil, NewUnsupportedTypeError(key)
}

//Has returns true on any registered ancestor match, unlike Lookup it does not
//need the most specific one, with a top type entry registered it answers
//immediately
func (m *graphMap) Has(key *xtype.Type) bool {
	onDone := m.counter.Begin(time.Now())
	_, ok := m.get(key, true)
	m.count(ok)
	onDone(time.Now())
	return ok
}

func (m *graphMap) get(key *xtype.Type, anyMatch bool) (interface{}, bool) {
	if key == nil {
		panic("typly: lookup key was nil")
	}
	if value, ok := m.index[key]; ok {
		return value, true
	}
	if key.IsArray() {
		if value, ok := m.arrayOfAncestor(key, m.exact); ok {
			return value, true
		}
		return m.fallback(key, false, m.exact, m.exact)
	}
	if value, ok := m.descend(key, anyMatch); ok {
		return value, true
	}
	retry := func(t *xtype.Type) (interface{}, bool) {
		if value, ok := m.index[t]; ok {
			return value, true
		}
		return m.descend(t, anyMatch)
	}
	return m.fallback(key, false, retry, m.exact)
}

func (m *graphMap) exact(key *xtype.Type) (interface{}, bool) {
	value, ok := m.index[key]
	return value, ok
}

//descend walks the tree from the root returning the most specific matching
//node value, with anyMatch it settles for the first value carrying ancestor
func (m *graphMap) descend(key *xtype.Type, anyMatch bool) (interface{}, bool) {
	var best *Node
	if !key.IsInterface() && !key.IsPrimitive() && m.root.hasValue {
		if anyMatch {
			return m.root.value, true
		}
		best = m.root
	}
	steps := 0
	best = m.match(m.root, key, best, anyMatch, &steps)
	if best == nil {
		return nil, false
	}
	if anyMatch {
		return best.value, true
	}
	m.logger.Resolution(key.Name(), best.key.Name(), steps)
	return best.value, true
}

//match scans every matching child branch, a type implementing several
//registered interfaces may have its most specific registered ancestor in a
//branch other than the first matching one. Interfaces can only match interface
//nodes, classes scan the class partition first. With anyMatch the scan stops
//on the first value carrying ancestor.
func (m *graphMap) match(node *Node, key *xtype.Type, best *Node, anyMatch bool, steps *int) *Node {
	if !key.IsInterface() {
		for _, child := range node.subclasses {
			best = m.matchBranch(child, key, best, anyMatch, steps)
			if anyMatch && best != nil {
				return best
			}
		}
	}
	for _, child := range node.subinterfaces {
		best = m.matchBranch(child, key, best, anyMatch, steps)
		if anyMatch && best != nil {
			return best
		}
	}
	return best
}

func (m *graphMap) matchBranch(child *Node, key *xtype.Type, best *Node, anyMatch bool, steps *int) *Node {
	if !m.introspector.IsSubtype(key, child.key) {
		return best
	}
	*steps++
	best = m.better(child, best)
	if anyMatch && best != nil {
		return best
	}
	return m.match(child, key, best, anyMatch, steps)
}

//better keeps the more specific of two value carrying candidates, incomparable
//ties fall to the specificity comparator, or to the earlier encountered node
//on an insertion ordered index
func (m *graphMap) better(candidate, best *Node) *Node {
	if !candidate.hasValue {
		return best
	}
	if best == nil || !best.hasValue {
		return candidate
	}
	if m.introspector.IsSubtype(candidate.key, best.key) {
		return candidate
	}
	if m.introspector.IsSubtype(best.key, candidate.key) {
		return best
	}
	if !m.insertionOrdered && m.comparator.Compare(candidate.key, best.key) < 0 {
		return candidate
	}
	return best
}

//HasValue returns true if any entry holds supplied value
func (m *graphMap) HasValue(value interface{}) bool {
	for _, entry := range m.entries {
		if sameValue(entry.Value, value) {
			return true
		}
	}
	return false
}

//Keys returns registered keys in registration order
func (m *graphMap) Keys() []*xtype.Type {
	var result = make([]*xtype.Type, 0, len(m.entries))
	for _, entry := range m.entries {
		result = append(result, entry.Key)
	}
	return result
}

//Values returns registered values in registration order
func (m *graphMap) Values() []interface{} {
	var result = make([]interface{}, 0, len(m.entries))
	for _, entry := range m.entries {
		result = append(result, entry.Value)
	}
	return result
}

//Entries returns registered entries in registration order
func (m *graphMap) Entries() []Entry {
	result := make([]Entry, len(m.entries))
	copy(result, m.entries)
	return result
}

//Size returns entry count
func (m *graphMap) Size() int {
	return len(m.entries)
}

//IsEmpty returns true on no entries
func (m *graphMap) IsEmpty() bool {
	return len(m.entries) == 0
}

//Root returns the tree root for diagnostics
func (m *graphMap) Root() *Node {
	return m.root
}
