package cxx

import (
	"errors"
	"math"
	"testing"

	"github.com/koskimas/propgen/internal/model"
	"github.com/koskimas/propgen/internal/ptr"
	assert "github.com/stretchr/testify/require"
)

func TestConvertDefaultTypeToString(t *testing.T) {
	tests := []struct {
		name string
		prop model.Prop
		want string
	}{
		{"bool true", model.Prop{Name: "enabled", Type: model.Boolean{Default: true}}, "true"},
		{"bool false", model.Prop{Name: "enabled", Type: model.Boolean{}}, "false"},
		{"string nil", model.Prop{Name: "label", Type: model.String{}}, ""},
		{"string", model.Prop{Name: "label", Type: model.String{Default: ptr.V("hello")}}, `"hello"`},
		{"string empty", model.Prop{Name: "label", Type: model.String{Default: ptr.V("")}}, `""`},
		{"int", model.Prop{Name: "count", Type: model.Int32{Default: 42}}, "42"},
		{"negative int", model.Prop{Name: "count", Type: model.Int32{Default: -7}}, "-7"},
		{"double whole", model.Prop{Name: "scale", Type: model.Double{Default: 5}}, "5.0"},
		{"double fraction", model.Prop{Name: "scale", Type: model.Double{Default: 5.25}}, "5.25"},
		{"float whole", model.Prop{Name: "opacity", Type: model.Float{Default: 1}}, "1.0"},
		{"float fraction", model.Prop{Name: "opacity", Type: model.Float{Default: 0.5}}, "0.5"},
		{"color", model.Prop{Name: "tint", Type: model.NativePrimitive{Name: model.PrimitiveColor}}, ""},
		{"point", model.Prop{Name: "origin", Type: model.NativePrimitive{Name: model.PrimitivePoint}}, ""},
		{"image", model.Prop{Name: "source", Type: model.NativePrimitive{Name: model.PrimitiveImageSource}}, ""},
		{"object", model.Prop{Name: "style", Type: model.Object{Properties: []model.Prop{
			{Name: "width", Type: model.Double{Default: 3}},
		}}}, ""},
		{"enum", model.Prop{Name: "resizeMode", Type: model.StringEnum{Default: ptr.V("auto")}}, "FooResizeMode::Auto"},
		{"enum hyphenated", model.Prop{Name: "resize-mode", Type: model.StringEnum{Default: ptr.V("fit-center")}}, "FooResizeMode::FitCenter"},
		{
			"enum array",
			model.Prop{Name: "resizeMode", Type: model.Array{ElementType: model.StringEnum{Default: ptr.V("cover")}}},
			"static_cast<FooResizeModeMask>(FooResizeMode::Cover)",
		},
		{"int array", model.Prop{Name: "sizes", Type: model.Array{ElementType: model.Int32{Default: 3}}}, ""},
		{"object array", model.Prop{Name: "items", Type: model.Array{ElementType: model.Object{}}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertDefaultTypeToString("Foo", tt.prop)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := ConvertDefaultTypeToString("Foo", tt.prop)
			assert.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestConvertDefaultFloatEdgeCases(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{-3, "-3.0"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{1e20, "100000000000000000000.0"},
		{1e21, "1e+21"},
		{-1e21, "-1e+21"},
		{9007199254740993, "9007199254740992.0"},
		{123456789.125, "123456789.125"},
		{1e-7, "1e-07"},
		{1.5e-7, "1.5e-07"},
		{-1.5e-7, "-1.5e-07"},
		{0.000001, "0.000001"},
	}

	for _, tt := range tests {
		got, err := ConvertDefaultTypeToString("Foo", model.Prop{Name: "v", Type: model.Double{Default: tt.in}})
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, "rendering %v", tt.in)
	}
}

func TestConvertDefaultEnumMultiByte(t *testing.T) {
	got, err := ConvertDefaultTypeToString("Foo", model.Prop{Name: "mode", Type: model.StringEnum{Default: ptr.V("über")}})
	assert.NoError(t, err)
	assert.Equal(t, "FooMode::Über", got)
}

func TestConvertDefaultNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ConvertDefaultTypeToString("Foo", model.Prop{Name: "v", Type: model.Float{Default: v}})

		var unsupportedErr *UnsupportedError
		assert.True(t, errors.As(err, &unsupportedErr), "expected error for %v", v)
	}
}

func TestConvertDefaultMissingEnumDefault(t *testing.T) {
	_, err := ConvertDefaultTypeToString("Foo", model.Prop{
		Name: "resizeMode",
		Type: model.Array{ElementType: model.StringEnum{Options: []string{"cover", "contain"}}},
	})

	var missingErr *MissingDefaultError
	assert.True(t, errors.As(err, &missingErr))
	assert.Equal(t, "resizeMode", missingErr.Prop)
	assert.EqualError(t, err, `a default value is required for enum prop "resizeMode"`)

	_, err = ConvertDefaultTypeToString("Foo", model.Prop{Name: "mode", Type: model.StringEnum{}})
	assert.True(t, errors.As(err, &missingErr))
}

func TestConvertDefaultUnsupported(t *testing.T) {
	_, err := ConvertDefaultTypeToString("Foo", model.Prop{Name: "x"})
	assert.EqualError(t, err, `unsupported type annotation "<nil>"`)

	_, err = ConvertDefaultTypeToString("Foo", model.Prop{Name: "x", Type: model.NativePrimitive{Name: "Unknown"}})
	assert.EqualError(t, err, `unsupported native primitive "Unknown"`)
}
