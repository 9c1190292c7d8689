package generic

import (
	"github.com/viant/typly/xtype"
)

//Store represents a plain key value store over type descriptors, it carries no
//hierarchy semantics, resolution order is owned by the index using it
type Store interface {
	//Get returns value for supplied key
	Get(key *xtype.Type) (interface{}, bool)
	//Put sets value for supplied key
	Put(key *xtype.Type, value interface{})
	//Has returns true if key is present
	Has(key *xtype.Type) bool
	//Delete removes supplied key
	Delete(key *xtype.Type)
	//Keys returns all keys
	Keys() []*xtype.Type
	//Values returns all values
	Values() []interface{}
	//Size returns entry count
	Size() int
}
