package calladapter

import (
	"reflect"
	"strings"
)

// Well-known raw type names.
const (
	// CallName is the raw name of a netcall.Call.
	CallName = "netcall.Call"

	// ResultName is the raw name of a netresult.Result.
	ResultName = "netresult.Result"
)

// Shape describes a possibly parameterized type.
type Shape struct {
	// Name is the raw type name.
	Name string

	// Args contains the type arguments.
	Args []Shape
}

// Named returns the Shape with the given name and arguments.
func Named(name string, args ...Shape) Shape {
	return Shape{Name: name, Args: args}
}

// ShapeOf returns the Shape of the Go type T.
func ShapeOf[T any]() Shape {
	return Named(reflect.TypeOf((*T)(nil)).Elem().String())
}

// ResultOf returns the Shape of a netresult.Result of inner.
func ResultOf(inner Shape) Shape {
	return Named(ResultName, inner)
}

// CallOf returns the Shape of a netcall.Call of inner.
func CallOf(inner Shape) Shape {
	return Named(CallName, inner)
}

// IsParameterized returns whether s has type arguments.
func (s Shape) IsParameterized() bool {
	return len(s.Args) > 0
}

// Equal returns whether s and other describe the same type.
func (s Shape) Equal(other Shape) bool {
	if s.Name != other.Name || len(s.Args) != len(other.Args) {
		return false
	}
	for idx := range s.Args {
		if !s.Args[idx].Equal(other.Args[idx]) {
			return false
		}
	}
	return true
}

// String returns the shape in Go syntax (e.g. "netcall.Call[netresult.Result[int]]").
func (s Shape) String() string {
	if !s.IsParameterized() {
		return s.Name
	}
	args := make([]string, 0, len(s.Args))
	for _, arg := range s.Args {
		args = append(args, arg.String())
	}
	return s.Name + "[" + strings.Join(args, ", ") + "]"
}

// Annotation qualifies a Declaration.
type Annotation string

// Suspend marks an endpoint using the suspending calling convention.
const Suspend = Annotation("suspend")

// Declaration is the declared signature of an endpoint.
type Declaration struct {
	// Returns is the declared return type.
	Returns Shape

	// Annotations contains the OPTIONAL annotations.
	Annotations []Annotation
}

// Has returns whether d carries the given annotation.
func (d Declaration) Has(annotation Annotation) bool {
	for _, a := range d.Annotations {
		if a == annotation {
			return true
		}
	}
	return false
}

// Direct returns the Declaration of an endpoint returning a Result[T]
// using the blocking calling convention.
func Direct[T any]() Declaration {
	return Declaration{Returns: ResultOf(ShapeOf[T]())}
}

// Suspending returns the Declaration of an endpoint returning a Result[T]
// using the suspending calling convention.
func Suspending[T any]() Declaration {
	return Declaration{Returns: CallOf(ResultOf(ShapeOf[T]()))}
}
