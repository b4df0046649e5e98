package cxx

import (
	"slices"

	"github.com/koskimas/propgen/internal/model"
)

const importImageConversions = "#include <react/renderer/components/image/conversions.h>"

// GetImports returns the `#include` lines needed by the native primitives used
// in `props`, including those nested in objects. Each line appears once, in
// the order it was first needed.
func GetImports(props []model.Prop) ([]string, error) {
	imports := make([]string, 0)

	if err := collectImports(props, &imports); err != nil {
		return nil, err
	}

	return imports, nil
}

func collectImports(props []model.Prop, imports *[]string) error {
	for _, p := range props {
		switch t := p.Type.(type) {
		case model.NativePrimitive:
			if err := addPrimitiveImport(t.Name, imports); err != nil {
				return err
			}
		case model.Array:
			if e, ok := t.ElementType.(model.NativePrimitive); ok {
				if err := addPrimitiveImport(e.Name, imports); err != nil {
					return err
				}
			}
		case model.Object:
			if err := collectImports(t.Properties, imports); err != nil {
				return err
			}
		}
	}

	return nil
}

func addPrimitiveImport(name model.PrimitiveName, imports *[]string) error {
	var imp string

	switch name {
	case model.PrimitiveColor, model.PrimitivePoint:
		return nil
	case model.PrimitiveImageSource:
		imp = importImageConversions
	default:
		return unsupported("native primitive", name)
	}

	if !slices.Contains(*imports, imp) {
		*imports = append(*imports, imp)
	}

	return nil
}
