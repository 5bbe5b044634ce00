package gate

import (
	"reflect"

	"github.com/iov-one/gate/errors"
)

// assign copies the value pointed by src into dst. Both must hold the same
// type, src may be either a value or a pointer.
func assign(src, dst interface{}) error {
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Ptr || dv.IsNil() {
		return errors.Wrap(errors.ErrHuman, "destination must be a non nil pointer")
	}
	sv := reflect.ValueOf(src)
	if sv.Kind() == reflect.Ptr {
		if sv.IsNil() {
			return errors.Wrap(errors.ErrMsg, "nil message")
		}
		sv = sv.Elem()
	}
	if sv.Type() != dv.Elem().Type() {
		return errors.WithType(errors.ErrType, src)
	}
	dv.Elem().Set(sv)
	return nil
}
