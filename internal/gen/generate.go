package gen

import (
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/koskimas/propgen/internal/config"
	"github.com/koskimas/propgen/internal/cxx"
	"github.com/koskimas/propgen/internal/model"
	"gopkg.in/yaml.v3"
)

// Manifest holds the C++ fragments computed for a set of components. It is
// the input of the templates that render the final headers.
type Manifest struct {
	Components []Component `yaml:"components"`
}

type Component struct {
	Name    string   `yaml:"name"`
	Imports []string `yaml:"imports,omitempty"`
	Props   []Prop   `yaml:"props"`
	// Structs are the nested object types. A struct always comes before the
	// structs that use it.
	Structs []Struct `yaml:"structs,omitempty"`
}

type Struct struct {
	Name  string `yaml:"name"`
	Props []Prop `yaml:"props"`
}

type Prop struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Default     string   `yaml:"default,omitempty"`
	Enum        string   `yaml:"enum,omitempty"`
	EnumMask    string   `yaml:"enumMask,omitempty"`
	EnumMembers []string `yaml:"enumMembers,omitempty"`
}

func GenerateManifest(cfg config.Config, workingDir string, components []model.Component) error {
	m, err := BuildManifest(components)
	if err != nil {
		return err
	}

	return writeManifestToFile(m, cfg, workingDir)
}

func BuildManifest(components []model.Component) (*Manifest, error) {
	m := &Manifest{
		Components: make([]Component, 0, len(components)),
	}

	for _, c := range components {
		cf, err := buildComponent(c)
		if err != nil {
			return nil, fmt.Errorf(`component "%s": %w`, c.Name, err)
		}

		m.Components = append(m.Components, *cf)
	}

	return m, nil
}

func buildComponent(c model.Component) (*Component, error) {
	imports, err := cxx.GetImports(c.Props)
	if err != nil {
		return nil, err
	}

	st := &componentState{
		structs: make([]Struct, 0),
		enums:   make(map[string][]string),
	}

	props, err := buildProps(c.Name, nil, c.Props, st)
	if err != nil {
		return nil, err
	}

	return &Component{
		Name:    c.Name,
		Imports: imports,
		Props:   props,
		Structs: st.structs,
	}, nil
}

// componentState collects what is shared by all props of a component,
// however deeply nested.
type componentState struct {
	structs []Struct
	// enums maps enum names to their options. Enum names don't include the
	// object path, so a nested enum can clash with another one.
	enums map[string][]string
}

// buildProps renders `props`, which belong to the object at `nameParts`, and
// appends every struct found below them to `st`.
func buildProps(componentName string, nameParts []string, props []model.Prop, st *componentState) ([]Prop, error) {
	out := make([]Prop, 0, len(props))

	for _, p := range props {
		pf, err := buildProp(componentName, nameParts, p, st)
		if err != nil {
			return nil, fmt.Errorf(`prop "%s": %w`, p.Name, err)
		}

		out = append(out, *pf)
	}

	return out, nil
}

func buildProp(componentName string, nameParts []string, p model.Prop, st *componentState) (*Prop, error) {
	if err := checkIdentifier(p.Name); err != nil {
		return nil, err
	}

	if err := checkEnumNames(p.Type); err != nil {
		return nil, err
	}

	if err := genStructs(componentName, nameParts, p.Name, p.Type, st); err != nil {
		return nil, err
	}

	typ, err := cxx.NativeType(componentName, nameParts, p)
	if err != nil {
		return nil, err
	}

	def, err := cxx.ConvertDefaultTypeToString(componentName, p)
	if err != nil {
		return nil, err
	}

	pf := &Prop{
		Name:    p.Name,
		Type:    typ,
		Default: def,
	}

	if e, isArray, ok := enumOf(p.Type); ok {
		pf.Enum = cxx.EnumName(componentName, p.Name)
		pf.EnumMembers = enumMembers(e)

		if options, ok := st.enums[pf.Enum]; ok && !slices.Equal(options, e.Options) {
			return nil, fmt.Errorf(`enum "%s" is already declared with options %v`, pf.Enum, options)
		}
		st.enums[pf.Enum] = e.Options

		if isArray {
			pf.EnumMask = cxx.EnumMaskName(pf.Enum)
		}
	}

	return pf, nil
}

// genStructs appends the struct of an object typed prop, or of the objects in
// an array typed prop, after the structs nested inside it.
func genStructs(componentName string, nameParts []string, propName string, t model.TypeAnnotation, st *componentState) error {
	switch t := t.(type) {
	case model.Array:
		return genStructs(componentName, nameParts, propName, t.ElementType, st)
	case model.Object:
		parts := append(append(make([]string, 0, len(nameParts)+1), nameParts...), propName)

		props, err := buildProps(componentName, parts, t.Properties, st)
		if err != nil {
			return err
		}

		st.structs = append(st.structs, Struct{
			Name:  cxx.GenerateStructName(componentName, parts...),
			Props: props,
		})
	}

	return nil
}

func enumOf(t model.TypeAnnotation) (e model.StringEnum, isArray bool, ok bool) {
	switch t := t.(type) {
	case model.StringEnum:
		return t, false, true
	case model.Array:
		if e, ok := t.ElementType.(model.StringEnum); ok {
			return e, true, true
		}
	}

	return model.StringEnum{}, false, false
}

func enumMembers(e model.StringEnum) []string {
	if len(e.Options) == 0 {
		return nil
	}

	members := make([]string, len(e.Options))

	for i, o := range e.Options {
		members[i] = cxx.ToSafeCppString(o)
	}

	return members
}

func checkEnumNames(t model.TypeAnnotation) error {
	e, _, ok := enumOf(t)
	if !ok {
		return nil
	}

	if e.Default != nil {
		if err := checkIdentifier(*e.Default); err != nil {
			return fmt.Errorf("enum default: %w", err)
		}
	}

	for _, o := range e.Options {
		if err := checkIdentifier(o); err != nil {
			return fmt.Errorf("enum option: %w", err)
		}
	}

	return nil
}

// checkIdentifier makes sure `name` can be passed to `cxx.ToSafeCppString`.
func checkIdentifier(name string) error {
	for _, s := range strings.Split(name, "-") {
		if s == "" {
			return fmt.Errorf(`"%s" is not a valid identifier`, name)
		}
	}

	return nil
}

func writeManifestToFile(m *Manifest, cfg config.Config, workingDir string) error {
	filePath := path.Join(workingDir, cfg.Output.Path)

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.MkdirAll(path.Dir(filePath), 0700); err != nil {
		return err
	}

	return os.WriteFile(filePath, data, 0600)
}
