package schema

import (
	"fmt"
	"os"
	"sort"

	"github.com/koskimas/propgen/internal/model"
	"github.com/koskimas/propgen/internal/ptr"
	"gopkg.in/yaml.v3"
)

const moduleTypeComponent = "Component"

const (
	tagNull  = "!!null"
	tagStr   = "!!str"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
)

// File is the codegen schema layout. JSON schemas decode through the same
// types since JSON is valid YAML.
type File struct {
	Modules map[string]Module `yaml:"modules"`
}

type Module struct {
	Type       string               `yaml:"type"`
	Components map[string]Component `yaml:"components"`
}

type Component struct {
	Props []Prop `yaml:"props"`
}

type Prop struct {
	Name           string         `yaml:"name"`
	TypeAnnotation TypeAnnotation `yaml:"typeAnnotation"`
}

type TypeAnnotation struct {
	Type        string          `yaml:"type"`
	Name        string          `yaml:"name"`
	Default     yaml.Node       `yaml:"default"`
	Options     []string        `yaml:"options"`
	ElementType *TypeAnnotation `yaml:"elementType"`
	Properties  []Prop          `yaml:"properties"`
}

type AbsoluteFilePath = string

// ReadComponents reads every component of every `Component` module in the
// given schema files. Files are read in the given order and the components of
// each file are sorted by module name and then by component name. Props keep
// their declaration order.
func ReadComponents(filePaths []AbsoluteFilePath) ([]model.Component, error) {
	components := make([]model.Component, 0)
	seen := make(map[string]AbsoluteFilePath)

	for _, p := range filePaths {
		fileComponents, err := readFile(p)
		if err != nil {
			return nil, err
		}

		for _, c := range fileComponents {
			if other, ok := seen[c.Name]; ok {
				return nil, fmt.Errorf(`component "%s" is declared in both "%s" and "%s"`, c.Name, other, p)
			}

			seen[c.Name] = p
			components = append(components, c)
		}
	}

	return components, nil
}

func readFile(filePath AbsoluteFilePath) ([]model.Component, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read schema file "%s": %w`, filePath, err)
	}

	components, err := Parse(fileData)
	if err != nil {
		return nil, fmt.Errorf(`in schema file "%s": %w`, filePath, err)
	}

	return components, nil
}

// Parse decodes a single schema document.
func Parse(data []byte) ([]model.Component, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	components := make([]model.Component, 0)

	for _, moduleName := range sortedKeys(file.Modules) {
		module := file.Modules[moduleName]
		if module.Type != moduleTypeComponent {
			continue
		}

		for _, componentName := range sortedKeys(module.Components) {
			props, err := resolveProps(module.Components[componentName].Props)
			if err != nil {
				return nil, fmt.Errorf(`component "%s": %w`, componentName, err)
			}

			components = append(components, model.Component{
				Name:  componentName,
				Props: props,
			})
		}
	}

	return components, nil
}

func resolveProps(props []Prop) ([]model.Prop, error) {
	out := make([]model.Prop, 0, len(props))

	for _, p := range props {
		t, err := resolveType(p.TypeAnnotation)
		if err != nil {
			return nil, fmt.Errorf(`prop "%s": %w`, p.Name, err)
		}

		out = append(out, model.Prop{
			Name: p.Name,
			Type: t,
		})
	}

	return out, nil
}

func resolveType(t TypeAnnotation) (model.TypeAnnotation, error) {
	switch model.Kind(t.Type) {
	case model.KindBoolean:
		var v bool
		if err := decodeDefault(t.Default, &v, tagBool); err != nil {
			return nil, err
		}
		return model.Boolean{Default: v}, nil
	case model.KindString:
		var v *string
		if hasDefault(t.Default) {
			var s string
			if err := decodeDefault(t.Default, &s, tagStr); err != nil {
				return nil, err
			}
			v = ptr.V(s)
		}
		return model.String{Default: v}, nil
	case model.KindInt32:
		var v int32
		if err := decodeDefault(t.Default, &v, tagInt); err != nil {
			return nil, err
		}
		return model.Int32{Default: v}, nil
	case model.KindDouble:
		var v float64
		if err := decodeDefault(t.Default, &v, tagInt, tagFloat); err != nil {
			return nil, err
		}
		return model.Double{Default: v}, nil
	case model.KindFloat:
		var v float64
		if err := decodeDefault(t.Default, &v, tagInt, tagFloat); err != nil {
			return nil, err
		}
		return model.Float{Default: v}, nil
	case model.KindNativePrimitive:
		return model.NativePrimitive{Name: model.PrimitiveName(t.Name)}, nil
	case model.KindStringEnum:
		var v *string
		if hasDefault(t.Default) {
			var s string
			if err := decodeDefault(t.Default, &s, tagStr); err != nil {
				return nil, err
			}
			v = ptr.V(s)
		}
		return model.StringEnum{Default: v, Options: t.Options}, nil
	case model.KindArray:
		if t.ElementType == nil {
			return nil, fmt.Errorf("array type annotation is missing elementType")
		}

		elem, err := resolveType(*t.ElementType)
		if err != nil {
			return nil, fmt.Errorf("array element: %w", err)
		}
		return model.Array{ElementType: elem}, nil
	case model.KindObject:
		props, err := resolveProps(t.Properties)
		if err != nil {
			return nil, err
		}
		return model.Object{Properties: props}, nil
	}

	return nil, fmt.Errorf(`unsupported type annotation "%s"`, t.Type)
}

func hasDefault(n yaml.Node) bool {
	return n.Kind != 0 && n.ShortTag() != tagNull
}

// decodeDefault decodes `n` into `out` if it's present. The node's tag must be
// one of `tags`.
func decodeDefault(n yaml.Node, out any, tags ...string) error {
	if !hasDefault(n) {
		return nil
	}

	tag := n.ShortTag()
	for _, t := range tags {
		if t == tag {
			if err := n.Decode(out); err != nil {
				return fmt.Errorf(`invalid default "%s": %w`, n.Value, err)
			}
			return nil
		}
	}

	return fmt.Errorf(`invalid default "%s": expected %v, got %s`, n.Value, tags, tag)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}
