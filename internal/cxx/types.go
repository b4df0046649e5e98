// Package cxx translates prop type annotations into C++ source fragments:
// type names, default value expressions, enum and struct identifiers and
// includes.
package cxx

import (
	"fmt"

	"github.com/koskimas/propgen/internal/model"
)

const (
	typeBool   = "bool"
	typeString = "std::string"
	typeInt32  = "int"
	typeDouble = "double"
	typeFloat  = "Float"

	typeSharedColor = "SharedColor"
	typePoint       = "Point"
	typeImageSource = "ImageSource"
)

// CppType maps one of the five scalar type annotations to its C++ type name.
// Every other annotation is an error.
func CppType(t model.TypeAnnotation) (string, error) {
	switch t.(type) {
	case model.Boolean:
		return typeBool, nil
	case model.String:
		return typeString, nil
	case model.Int32:
		return typeInt32, nil
	case model.Double:
		return typeDouble, nil
	case model.Float:
		return typeFloat, nil
	}

	return "", unsupported("scalar type annotation", kindOf(t))
}

// NativeType returns the C++ member type of `prop`. `nameParts` holds the
// names of the object props enclosing `prop`, outermost first, and is used
// to name nested structs.
func NativeType(componentName string, nameParts []string, prop model.Prop) (string, error) {
	return nativeType(componentName, nameParts, prop.Name, prop.Type)
}

func nativeType(componentName string, nameParts []string, propName string, t model.TypeAnnotation) (string, error) {
	switch t := t.(type) {
	case model.Boolean, model.String, model.Int32, model.Double, model.Float:
		return CppType(t)
	case model.NativePrimitive:
		return primitiveType(t.Name)
	case model.StringEnum:
		return EnumName(componentName, propName), nil
	case model.Object:
		return GenerateStructName(componentName, append(clonedParts(nameParts), propName)...), nil
	case model.Array:
		if _, ok := t.ElementType.(model.StringEnum); ok {
			return EnumMaskName(EnumName(componentName, propName)), nil
		}

		elem, err := nativeType(componentName, nameParts, propName, t.ElementType)
		if err != nil {
			return "", fmt.Errorf("array element of %s: %w", propName, err)
		}

		return fmt.Sprintf("std::vector<%s>", elem), nil
	}

	return "", unsupported("type annotation", kindOf(t))
}

func primitiveType(name model.PrimitiveName) (string, error) {
	switch name {
	case model.PrimitiveColor:
		return typeSharedColor, nil
	case model.PrimitivePoint:
		return typePoint, nil
	case model.PrimitiveImageSource:
		return typeImageSource, nil
	}

	return "", unsupported("native primitive", name)
}

func kindOf(t model.TypeAnnotation) string {
	if t == nil {
		return "<nil>"
	}

	return string(t.Kind())
}

// clonedParts copies `parts` so that appending to it never writes into the
// caller's backing array.
func clonedParts(parts []string) []string {
	return append(make([]string, 0, len(parts)+1), parts...)
}
