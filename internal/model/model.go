package model

type Kind string

const (
	KindBoolean         Kind = "BooleanTypeAnnotation"
	KindString          Kind = "StringTypeAnnotation"
	KindInt32           Kind = "Int32TypeAnnotation"
	KindDouble          Kind = "DoubleTypeAnnotation"
	KindFloat           Kind = "FloatTypeAnnotation"
	KindNativePrimitive Kind = "ReservedPropTypeAnnotation"
	KindStringEnum      Kind = "StringEnumTypeAnnotation"
	KindArray           Kind = "ArrayTypeAnnotation"
	KindObject          Kind = "ObjectTypeAnnotation"
)

type PrimitiveName string

const (
	PrimitiveColor       PrimitiveName = "ColorPrimitive"
	PrimitivePoint       PrimitiveName = "PointPrimitive"
	PrimitiveImageSource PrimitiveName = "ImageSourcePrimitive"
)

// TypeAnnotation is the closed set of prop types. Only the variants declared
// in this file implement it.
type TypeAnnotation interface {
	Kind() Kind
	typeAnnotation()
}

type Boolean struct {
	Default bool
}

type String struct {
	Default *string
}

type Int32 struct {
	Default int32
}

type Double struct {
	Default float64
}

type Float struct {
	Default float64
}

type NativePrimitive struct {
	Name PrimitiveName
}

type StringEnum struct {
	Default *string
	Options []string
}

type Array struct {
	ElementType TypeAnnotation
}

type Object struct {
	Properties []Prop
}

func (Boolean) Kind() Kind         { return KindBoolean }
func (String) Kind() Kind          { return KindString }
func (Int32) Kind() Kind           { return KindInt32 }
func (Double) Kind() Kind          { return KindDouble }
func (Float) Kind() Kind           { return KindFloat }
func (NativePrimitive) Kind() Kind { return KindNativePrimitive }
func (StringEnum) Kind() Kind      { return KindStringEnum }
func (Array) Kind() Kind           { return KindArray }
func (Object) Kind() Kind          { return KindObject }

func (Boolean) typeAnnotation()         {}
func (String) typeAnnotation()          {}
func (Int32) typeAnnotation()           {}
func (Double) typeAnnotation()          {}
func (Float) typeAnnotation()           {}
func (NativePrimitive) typeAnnotation() {}
func (StringEnum) typeAnnotation()      {}
func (Array) typeAnnotation()           {}
func (Object) typeAnnotation()          {}

// Prop is a single named property of a component or of a nested object.
type Prop struct {
	Name string
	Type TypeAnnotation
}

type Component struct {
	Name  string
	Props []Prop
}
