package xtype

//Option customizes a registered type
type Option func(t *Type)

//WithExtends sets direct superclass
func WithExtends(super *Type) Option {
	return func(t *Type) {
		t.super = super
	}
}

//WithImplements appends directly declared interfaces
func WithImplements(interfaces ...*Type) Option {
	return func(t *Type) {
		t.interfaces = append(t.interfaces, interfaces...)
	}
}

//WithAbstract marks class as abstract
func WithAbstract() Option {
	return func(t *Type) {
		t.abstract = true
	}
}
