package hierarchy

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/viant/typly/xtype"
)

//ErrFrozen is returned on any builder use after Build
var ErrFrozen = errors.New("builder was already frozen")

//DuplicateKeyError represents duplicate type registration failure
type DuplicateKeyError struct {
	Key *xtype.Type
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %v", e.Key)
}

//NewDuplicateKeyError creates a duplicate key error
func NewDuplicateKeyError(key *xtype.Type) error {
	return &DuplicateKeyError{Key: key}
}

//IsDuplicateKey returns true if error represents duplicate registration
func IsDuplicateKey(err error) bool {
	target := &DuplicateKeyError{}
	return errors.As(err, &target)
}

//UnsupportedTypeError represents a lookup failure with no registered ancestor
//and no configured fallback
type UnsupportedTypeError struct {
	Key *xtype.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type: %v", e.Key)
}

//NewUnsupportedTypeError creates an unsupported type error
func NewUnsupportedTypeError(key *xtype.Type) error {
	return &UnsupportedTypeError{Key: key}
}

//IsUnsupportedType returns true if error represents an unsupported lookup type
func IsUnsupportedType(err error) bool {
	target := &UnsupportedTypeError{}
	return errors.As(err, &target)
}
