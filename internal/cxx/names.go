package cxx

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	structSuffix   = "Struct"
	enumMaskSuffix = "Mask"
)

// ToSafeCppString turns a hyphenated name like `resize-mode` into `ResizeMode`.
// Every segment must be non-empty.
func ToSafeCppString(input string) string {
	segments := strings.Split(input, "-")

	var b strings.Builder
	for _, s := range segments {
		if s == "" {
			panic(fmt.Sprintf(`empty segment in name "%s"`, input))
		}

		r, size := utf8.DecodeRuneInString(s)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(s[size:])
	}

	return b.String()
}

func GenerateStructName(componentName string, parts ...string) string {
	var b strings.Builder
	b.WriteString(componentName)

	for _, p := range parts {
		b.WriteString(ToSafeCppString(p))
	}

	b.WriteString(structSuffix)
	return b.String()
}

func EnumName(componentName string, propName string) string {
	return componentName + ToSafeCppString(propName)
}

// EnumMaskName returns the bitmask type name used for arrays of enums.
func EnumMaskName(enumName string) string {
	return enumName + enumMaskSuffix
}
