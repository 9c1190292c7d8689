package hierarchy

import (
	"strings"

	"github.com/viant/typly/generic"
	"github.com/viant/typly/xtype"
)

const (
	rankPrimitive = iota
	rankWrapper
	rankEnum
	rankArray
	rankInterface
	rankClass
	rankTop
)

//Comparator represents a total order over types, most specific first.
//Category rank: primitive, wrapper, enum, array, interface, class, top.
//Interfaces with more transitive superinterfaces sort first, classes with a
//longer superclass chain sort first with transitive interface count as a tie
//break, arrays compare by component. The final tie break is lexicographic by
//type name, names are unique per registry so the order is stable across runs.
type Comparator struct {
	introspector Introspector
	bumped       *generic.Set
}

//Compare orders a and b, negative result sorts a first
func (c *Comparator) Compare(a, b *xtype.Type) int {
	if a == b {
		return 0
	}
	if c.bumped.Has(a) != c.bumped.Has(b) {
		if c.bumped.Has(a) {
			return -1
		}
		return 1
	}
	top := c.introspector.Top()
	if a == top {
		return 1
	}
	if b == top {
		return -1
	}
	rankA, rankB := c.rank(a), c.rank(b)
	if rankA != rankB {
		return rankA - rankB
	}
	switch rankA {
	case rankInterface:
		if result := c.superinterfaceCount(b) - c.superinterfaceCount(a); result != 0 {
			return result
		}
	case rankWrapper, rankEnum, rankClass:
		if result := c.classDepth(b) - c.classDepth(a); result != 0 {
			return result
		}
		if result := c.interfaceCount(b) - c.interfaceCount(a); result != 0 {
			return result
		}
	case rankArray:
		if result := c.Compare(a.Component(), b.Component()); result != 0 {
			return result
		}
	}
	return strings.Compare(a.Name(), b.Name())
}

func (c *Comparator) rank(t *xtype.Type) int {
	if t == c.introspector.Top() {
		return rankTop
	}
	switch t.Kind() {
	case xtype.KindPrimitive:
		return rankPrimitive
	case xtype.KindEnum:
		return rankEnum
	case xtype.KindArray:
		return rankArray
	case xtype.KindInterface:
		return rankInterface
	}
	if t.IsWrapper() {
		return rankWrapper
	}
	return rankClass
}

//superinterfaceCount returns transitive superinterface count, larger means narrower
func (c *Comparator) superinterfaceCount(t *xtype.Type) int {
	seen := map[*xtype.Type]bool{}
	c.collectInterfaces(t, seen)
	return len(seen)
}

//classDepth returns proper superclass chain length
func (c *Comparator) classDepth(t *xtype.Type) int {
	result := 0
	for class := c.introspector.Superclass(t); class != nil; class = c.introspector.Superclass(class) {
		result++
	}
	return result
}

//interfaceCount returns transitive interface count over the whole class chain
func (c *Comparator) interfaceCount(t *xtype.Type) int {
	seen := map[*xtype.Type]bool{}
	for class := t; class != nil; class = c.introspector.Superclass(class) {
		c.collectInterfaces(class, seen)
	}
	return len(seen)
}

func (c *Comparator) collectInterfaces(t *xtype.Type, seen map[*xtype.Type]bool) {
	for _, item := range c.introspector.Interfaces(t) {
		if seen[item] {
			continue
		}
		seen[item] = true
		c.collectInterfaces(item, seen)
	}
}

//NewComparator creates a comparator, bumped types sort first regardless of the
//specificity rules, use them to bias which registered ancestor wins in
//ambiguous multi inheritance cases
func NewComparator(introspector Introspector, bumped ...*xtype.Type) *Comparator {
	return &Comparator{introspector: introspector, bumped: generic.NewSet(bumped...)}
}
