package generic

import (
	"github.com/viant/typly/xtype"
)

//HashStore represents a map backed store, keys iterate in insertion order
type HashStore struct {
	values map[*xtype.Type]interface{}
	keys   []*xtype.Type
}

//Get returns value for supplied key
func (s *HashStore) Get(key *xtype.Type) (interface{}, bool) {
	value, ok := s.values[key]
	return value, ok
}

//Put sets value for supplied key
func (s *HashStore) Put(key *xtype.Type, value interface{}) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

//Has returns true if key is present
func (s *HashStore) Has(key *xtype.Type) bool {
	_, ok := s.values[key]
	return ok
}

//Delete removes supplied key
func (s *HashStore) Delete(key *xtype.Type) {
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

//Keys returns all keys in insertion order
func (s *HashStore) Keys() []*xtype.Type {
	result := make([]*xtype.Type, len(s.keys))
	copy(result, s.keys)
	return result
}

//Values returns all values in insertion order
func (s *HashStore) Values() []interface{} {
	var result = make([]interface{}, 0, len(s.keys))
	for _, key := range s.keys {
		result = append(result, s.values[key])
	}
	return result
}

//Size returns entry count
func (s *HashStore) Size() int {
	return len(s.values)
}

//NewHashStore creates a hash store
func NewHashStore() *HashStore {
	return &HashStore{values: make(map[*xtype.Type]interface{})}
}
