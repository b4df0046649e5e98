package test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/koskimas/propgen/internal/cmd"
	"github.com/koskimas/propgen/internal/cxx"
	"github.com/koskimas/propgen/internal/gen"
	assert "github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func readManifest(t *testing.T, path string) gen.Manifest {
	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	var m gen.Manifest
	assert.NoError(t, yaml.Unmarshal(data, &m))
	return m
}

func TestPropgen(t *testing.T) {
	wd := copyProject(t, "00001_image")

	err := cmd.Run(cmd.Settings{
		WorkingDir: wd,
		Logger:     zap.NewNop(),
	})
	assert.NoError(t, err)

	m := readManifest(t, filepath.Join(wd, "out", "fragments.yaml"))

	assert.Equal(t, gen.Manifest{
		Components: []gen.Component{
			{
				Name:    "Image",
				Imports: []string{"#include <react/renderer/components/image/conversions.h>"},
				Props: []gen.Prop{
					{Name: "source", Type: "ImageSource"},
					{Name: "tintColor", Type: "SharedColor"},
					{Name: "blurRadius", Type: "Float", Default: "0.0"},
					{
						Name:        "resizeMode",
						Type:        "ImageResizeMode",
						Default:     "ImageResizeMode::Cover",
						Enum:        "ImageResizeMode",
						EnumMembers: []string{"Cover", "Contain", "Stretch"},
					},
					{Name: "capInsets", Type: "ImageCapInsetsStruct"},
				},
				Structs: []gen.Struct{
					{
						Name: "ImageCapInsetsStruct",
						Props: []gen.Prop{
							{Name: "top", Type: "double", Default: "0.5"},
							{Name: "placeholder", Type: "ImageSource"},
						},
					},
				},
			},
			{
				Name: "Switch",
				Props: []gen.Prop{
					{Name: "disabled", Type: "bool", Default: "false"},
					{Name: "value", Type: "bool", Default: "true"},
					{
						Name:        "accessibilityStates",
						Type:        "SwitchAccessibilityStatesMask",
						Default:     "static_cast<SwitchAccessibilityStatesMask>(SwitchAccessibilityStates::Enabled)",
						Enum:        "SwitchAccessibilityStates",
						EnumMask:    "SwitchAccessibilityStatesMask",
						EnumMembers: []string{"Enabled", "Checked", "ReadOnly"},
					},
				},
			},
		},
	}, m)
}

func TestPropgenIsStable(t *testing.T) {
	wd := copyProject(t, "00001_image")
	out := filepath.Join(wd, "out", "fragments.yaml")

	assert.NoError(t, cmd.Run(cmd.Settings{WorkingDir: wd}))
	first, err := os.ReadFile(out)
	assert.NoError(t, err)

	assert.NoError(t, cmd.Run(cmd.Settings{WorkingDir: wd}))
	second, err := os.ReadFile(out)
	assert.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestPropgenUnknownPrimitive(t *testing.T) {
	wd := copyProject(t, "00002_unknown_type")

	err := cmd.Run(cmd.Settings{WorkingDir: wd})

	var unsupportedErr *cxx.UnsupportedError
	assert.True(t, errors.As(err, &unsupportedErr))
	assert.EqualError(t, err, `component "Slider": unsupported native primitive "EdgeInsetsPrimitive"`)

	_, err = os.Stat(filepath.Join(wd, "out", "fragments.yaml"))
	assert.True(t, os.IsNotExist(err))
}
