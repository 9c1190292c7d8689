package generic

import (
	"github.com/viant/typly/xtype"
)

//Set represents an immutable array backed set of types
type Set struct {
	items []*xtype.Type
}

//Has returns true if supplied type belongs to the set
func (s *Set) Has(t *xtype.Type) bool {
	if s == nil {
		return false
	}
	for _, item := range s.items {
		if item == t {
			return true
		}
	}
	return false
}

//Size returns set size
func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

//Items returns set items
func (s *Set) Items() []*xtype.Type {
	if s == nil {
		return nil
	}
	result := make([]*xtype.Type, len(s.items))
	copy(result, s.items)
	return result
}

//NewSet creates a set, duplicates are dropped, first occurrence order is kept
func NewSet(items ...*xtype.Type) *Set {
	result := &Set{items: make([]*xtype.Type, 0, len(items))}
	for _, item := range items {
		if item == nil || result.Has(item) {
			continue
		}
		result.items = append(result.items, item)
	}
	return result
}
