package hierarchy

import (
	"github.com/viant/typly/xtype"
)

//Node represents a lattice node, a parent owns its children exclusively, the
//children partitions hold the immediately registered descendants only
type Node struct {
	key           *xtype.Type
	value         interface{}
	hasValue      bool
	subclasses    []*Node
	subinterfaces []*Node
}

//Key returns node type
func (n *Node) Key() *xtype.Type {
	return n.key
}

//Value returns attached value, the flag is false only on a placeholder root
func (n *Node) Value() (interface{}, bool) {
	return n.value, n.hasValue
}

//Subclasses returns class children
func (n *Node) Subclasses() []*Node {
	return n.subclasses
}

//Subinterfaces returns interface children
func (n *Node) Subinterfaces() []*Node {
	return n.subinterfaces
}

func (n *Node) partition(ofInterface bool) *[]*Node {
	if ofInterface {
		return &n.subinterfaces
	}
	return &n.subclasses
}

func newNode(key *xtype.Type, value interface{}) *Node {
	return &Node{key: key, value: value, hasValue: true}
}

func newRoot(top *xtype.Type) *Node {
	return &Node{key: top}
}
