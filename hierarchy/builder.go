package hierarchy

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/viant/typly/generic"
	"github.com/viant/typly/xtype"
)

//Builder assembles an immutable type hierarchy indexed map, it is a one shot,
//single threaded construction object, not safe for concurrent use
type Builder struct {
	introspector Introspector
	options      *options
	comparator   *Comparator
	root         *Node
	registered   map[*xtype.Type]bool
	entries      []Entry
	frozen       bool
}

//Put registers a value under supplied type, each type can be registered at most
//once across the whole structure, the top type included
func (b *Builder) Put(key *xtype.Type, value interface{}) error {
	if b.frozen {
		return ErrFrozen
	}
	if key == nil {
		return errors.New("key was empty")
	}
	if value == nil {
		return errors.New("value was empty")
	}
	if b.registered[key] {
		return NewDuplicateKeyError(key)
	}
	if key == b.introspector.Top() {
		b.root.value = value
		b.root.hasValue = true
	} else if !b.options.flat {
		b.insert(b.root, newNode(key, value))
	}
	b.registered[key] = true
	b.entries = append(b.entries, Entry{Key: key, Value: value})
	return nil
}

//PutAll registers the same value under all supplied types
func (b *Builder) PutAll(value interface{}, keys ...*xtype.Type) error {
	for _, key := range keys {
		if err := b.Put(key, value); err != nil {
			return err
		}
	}
	return nil
}

//insert places a node into the parent subtree: delegate deeper when a sibling
//is a supertype, otherwise absorb siblings that are subtypes and join the level
func (b *Builder) insert(parent *Node, node *Node) {
	for _, sibling := range parent.subclasses {
		if b.introspector.IsSubtype(node.key, sibling.key) {
			b.insert(sibling, node)
			return
		}
	}
	for _, sibling := range parent.subinterfaces {
		if b.introspector.IsSubtype(node.key, sibling.key) {
			b.insert(sibling, node)
			return
		}
	}
	b.absorb(parent, &parent.subclasses, node)
	b.absorb(parent, &parent.subinterfaces, node)
	b.place(parent.partition(node.key.IsInterface()), node)
}

//absorb reparents all siblings that newly fall under the node, a new node may
//absorb more than one sibling
func (b *Builder) absorb(parent *Node, siblings *[]*Node, node *Node) {
	var kept []*Node
	for _, sibling := range *siblings {
		if b.introspector.IsSubtype(sibling.key, node.key) {
			b.place(node.partition(sibling.key.IsInterface()), sibling)
			b.options.logger.Reparent(sibling.key.Name(), parent.key.Name(), node.key.Name())
			continue
		}
		kept = append(kept, sibling)
	}
	*siblings = kept
}

//place inserts a node within a partition per the sibling ordering policy
func (b *Builder) place(siblings *[]*Node, node *Node) {
	if b.options.insertionOrdered {
		*siblings = append(*siblings, node)
		return
	}
	at := sort.Search(len(*siblings), func(i int) bool {
		return b.comparator.Compare((*siblings)[i].key, node.key) >= 0
	})
	*siblings = append(*siblings, nil)
	copy((*siblings)[at+1:], (*siblings)[at:])
	(*siblings)[at] = node
}

//Build freezes the builder and returns an immutable index, the builder must not
//be reused afterwards
func (b *Builder) Build() (Map, error) {
	if b.frozen {
		return nil, ErrFrozen
	}
	b.frozen = true
	b.options.logger.Log("frozen index with %v entries", len(b.entries))
	result := newBase(b.introspector, b.options)
	if b.options.flat {
		store := b.options.store
		if store == nil {
			store = generic.NewOrderedStore(b.comparator.Compare)
		}
		for _, entry := range b.entries {
			store.Put(entry.Key, entry.Value)
		}
		return &flatMap{base: result, store: store, autoExpand: b.options.autoExpand}, nil
	}
	index := make(map[*xtype.Type]interface{}, len(b.entries))
	entries := make([]Entry, len(b.entries))
	copy(entries, b.entries)
	for _, entry := range entries {
		index[entry.Key] = entry.Value
	}
	return &graphMap{
		base:             result,
		root:             b.root,
		entries:          entries,
		index:            index,
		comparator:       b.comparator,
		insertionOrdered: b.options.insertionOrdered,
	}, nil
}

//NewBuilder creates a builder over supplied introspector
func NewBuilder(introspector Introspector, opts ...Option) *Builder {
	options := newOptions(opts...)
	return &Builder{
		introspector: introspector,
		options:      options,
		comparator:   NewComparator(introspector, options.bumped...),
		root:         newRoot(introspector.Top()),
		registered:   make(map[*xtype.Type]bool),
	}
}
