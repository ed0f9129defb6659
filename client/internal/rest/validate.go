package rest

import (
	"reflect"
)

// Validator is implemented by response types that can check their own shape.
type Validator interface {
	Validate() error
}

// check runs the post-decode validation on out, a pointer to the decoded value.
// Slices and arrays of composite elements are checked element by element;
// struct fields are not walked, so nested checks belong in Validate methods.
func (p *Pipeline) check(out any) error {
	return p.checkValue(reflect.ValueOf(out))
}

func (p *Pipeline) checkValue(v reflect.Value) error {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		if err := selfValidate(v); err != nil {
			return err
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if p.Validate != nil {
			return p.Validate.Struct(v.Interface())
		}
	case reflect.Slice, reflect.Array:
		if !walkable(v.Type().Elem().Kind()) {
			return nil
		}
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if elem.CanAddr() {
				elem = elem.Addr()
			}
			if err := p.checkValue(elem); err != nil {
				return err
			}
		}
	}
	return nil
}

// selfValidate calls Validate when the pointer (or interface) v implements it.
func selfValidate(v reflect.Value) error {
	if !v.CanInterface() {
		return nil
	}
	if val, ok := v.Interface().(Validator); ok {
		return val.Validate()
	}
	return nil
}

// walkable reports whether elements of kind k can carry validation. Scalar
// slices such as json.RawMessage are skipped.
func walkable(k reflect.Kind) bool {
	switch k {
	case reflect.Struct, reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Array:
		return true
	}
	return false
}
