package hierarchy

import (
	"github.com/viant/typly/xtype"
)

//Entry represents a registered or cached pair
type Entry struct {
	Key   *xtype.Type
	Value interface{}
}

//Map represents a frozen type hierarchy indexed associative container. A query
//for an unregistered type resolves to the value attached to its nearest
//registered ancestor. Nil keys are programmer errors: Value returns an error,
//Lookup and Has panic.
type Map interface {
	//Lookup returns value for supplied type or its nearest registered ancestor
	Lookup(key *xtype.Type) (interface{}, bool)
	//Value behaves like Lookup but fails with *UnsupportedTypeError on absence
	Value(key *xtype.Type) (interface{}, error)
	//Has returns true if any registered ancestor matches, it may settle for a
	//less specific ancestor than Lookup would resolve
	Has(key *xtype.Type) bool
	//HasValue returns true if any entry holds supplied value
	HasValue(value interface{}) bool
	//Keys returns a key snapshot
	Keys() []*xtype.Type
	//Values returns a value snapshot
	Values() []interface{}
	//Entries returns an entry snapshot
	Entries() []Entry
	//Size returns entry count
	Size() int
	//IsEmpty returns true on no entries
	IsEmpty() bool
}
