package generic

import (
	"sort"

	"github.com/viant/typly/xtype"
)

//Compare orders two types, negative result sorts first
type Compare func(a, b *xtype.Type) int

//OrderedStore represents a store keeping keys sorted with supplied comparator,
//lookups stay O(1), key iteration follows the comparator order
type OrderedStore struct {
	values  map[*xtype.Type]interface{}
	keys    []*xtype.Type
	compare Compare
}

//Get returns value for supplied key
func (s *OrderedStore) Get(key *xtype.Type) (interface{}, bool) {
	value, ok := s.values[key]
	return value, ok
}

//Put sets value for supplied key keeping key order
func (s *OrderedStore) Put(key *xtype.Type, value interface{}) {
	if _, ok := s.values[key]; !ok {
		at := sort.Search(len(s.keys), func(i int) bool {
			return s.compare(s.keys[i], key) >= 0
		})
		s.keys = append(s.keys, nil)
		copy(s.keys[at+1:], s.keys[at:])
		s.keys[at] = key
	}
	s.values[key] = value
}

//Has returns true if key is present
func (s *OrderedStore) Has(key *xtype.Type) bool {
	_, ok := s.values[key]
	return ok
}

//Delete removes supplied key
func (s *OrderedStore) Delete(key *xtype.Type) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	for i, candidate := range s.keys {
		if candidate == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

//Keys returns all keys in comparator order
func (s *OrderedStore) Keys() []*xtype.Type {
	result := make([]*xtype.Type, len(s.keys))
	copy(result, s.keys)
	return result
}

//Values returns all values in comparator key order
func (s *OrderedStore) Values() []interface{} {
	var result = make([]interface{}, 0, len(s.keys))
	for _, key := range s.keys {
		result = append(result, s.values[key])
	}
	return result
}

//Size returns entry count
func (s *OrderedStore) Size() int {
	return len(s.values)
}

//NewOrderedStore creates an ordered store with supplied comparator
func NewOrderedStore(compare Compare) *OrderedStore {
	return &OrderedStore{values: make(map[*xtype.Type]interface{}), compare: compare}
}
