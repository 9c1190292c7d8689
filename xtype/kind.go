package xtype

//Kind represents a nominal type category
type Kind int

const (
	//KindClass represents a concrete or abstract class type
	KindClass Kind = iota
	//KindInterface represents an interface type
	KindInterface
	//KindPrimitive represents a primitive value type
	KindPrimitive
	//KindEnum represents an enumeration type
	KindEnum
	//KindArray represents an array type with a component type
	KindArray
)

//String returns kind name
func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindPrimitive:
		return "primitive"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	}
	return "unknown"
}
