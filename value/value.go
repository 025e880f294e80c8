package value

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// listSeparator joins sequence elements and flattened map entries.
const listSeparator = " "

// Define returns the value's text form, with nil mapped to the empty
// string. It is the value-or-empty guard used throughout the library.
func Define(v any) string {
	if v == nil {
		return ""
	}
	return Stringify(v)
}

// Stringify renders v as display text. Scalars keep their natural text
// form, sequences join their elements with a single space, maps flatten
// to alternating key/value entries sorted by key, and pointers are
// followed until a concrete value is reached. Anything unrecognized
// falls back to fmt.Sprint. Stringify never fails.
func Stringify(v any) string {
	if isNilPointer(v) {
		return ""
	}

	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case error:
		return s.Error()
	case fmt.Stringer:
		return s.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
		return Stringify(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		return joinSequence(rv)
	case reflect.Map:
		return joinMap(rv)
	}

	return scalar(v)
}

// joinSequence joins sequence elements with the list separator.
// Elements keep their raw scalar form; nested containers are not
// rendered recursively.
func joinSequence(rv reflect.Value) string {
	var b strings.Builder
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			b.WriteString(listSeparator)
		}
		b.WriteString(scalar(rv.Index(i).Interface()))
	}
	return b.String()
}

// joinMap flattens a map to alternating key/value entries, keys sorted
// by their rendered form, joined like a sequence.
func joinMap(rv reflect.Value) string {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return scalar(keys[i].Interface()) < scalar(keys[j].Interface())
	})

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(listSeparator)
		}
		b.WriteString(scalar(k.Interface()))
		b.WriteString(listSeparator)
		b.WriteString(scalar(rv.MapIndex(k).Interface()))
	}
	return b.String()
}

// scalar renders a single value in its direct text form.
func scalar(v any) string {
	if isNilPointer(v) {
		return ""
	}

	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case error:
		return s.Error()
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

// isNilPointer reports whether v holds a typed nil pointer. Such a
// value can still satisfy error or fmt.Stringer, and calling those
// methods through it would dereference nil.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
