package cxx

import (
	"fmt"
	"math"
	"strconv"

	"github.com/koskimas/propgen/internal/model"
)

// ConvertDefaultTypeToString renders the C++ expression for the default value
// of `prop`. An empty string means the prop has no inline default.
func ConvertDefaultTypeToString(componentName string, prop model.Prop) (string, error) {
	switch t := prop.Type.(type) {
	case model.Boolean:
		return strconv.FormatBool(t.Default), nil
	case model.String:
		if t.Default == nil {
			return "", nil
		}
		return `"` + *t.Default + `"`, nil
	case model.Int32:
		return strconv.FormatInt(int64(t.Default), 10), nil
	case model.Double:
		return formatFloat(t.Default)
	case model.Float:
		return formatFloat(t.Default)
	case model.NativePrimitive:
		if _, err := primitiveType(t.Name); err != nil {
			return "", err
		}
		return "", nil
	case model.Array:
		e, ok := t.ElementType.(model.StringEnum)
		if !ok {
			return "", nil
		}

		if e.Default == nil {
			return "", &MissingDefaultError{Prop: prop.Name}
		}

		enumName := EnumName(componentName, prop.Name)
		return fmt.Sprintf(
			"static_cast<%s>(%s::%s)",
			EnumMaskName(enumName),
			enumName,
			ToSafeCppString(*e.Default),
		), nil
	case model.Object:
		return "", nil
	case model.StringEnum:
		if t.Default == nil {
			return "", &MissingDefaultError{Prop: prop.Name}
		}
		return EnumName(componentName, prop.Name) + "::" + ToSafeCppString(*t.Default), nil
	}

	return "", unsupported("type annotation", kindOf(prop.Type))
}

// Whole numbers at or above this magnitude are written in exponent form
// instead of being expanded digit by digit.
const maxFixedFloat = 1e21

// Fractions below this magnitude are written in exponent form.
const minFixedFloat = 1e-6

// formatFloat always gives whole numbers a decimal point so they read as
// floating point literals.
func formatFloat(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", unsupported("floating point default", v)
	}

	if math.Trunc(v) != v {
		if math.Abs(v) < minFixedFloat {
			return strconv.FormatFloat(v, 'g', -1, 64), nil
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}

	if math.Abs(v) >= maxFixedFloat {
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}

	return strconv.FormatFloat(v, 'f', 1, 64), nil
}
