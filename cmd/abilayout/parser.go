// abidec: Ethereum ABI calldata decoder and annotator
// Copyright 2026 abidec Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"go/types"
	"reflect"
	"strings"
)

// structLayout pairs a struct type name with its derived layout string.
type structLayout struct {
	name   string
	layout string
}

// parsePackage derives the layout string for each requested struct type in
// the package, or for every named struct in the package scope if no names
// are given.
func parsePackage(pkg *types.Package, names []string) ([]structLayout, error) {
	explicit := len(names) > 0
	if !explicit {
		names = pkg.Scope().Names()
	}
	var layouts []structLayout
	for _, name := range names {
		str, err := lookupStruct(pkg.Scope(), name)
		if err != nil {
			if explicit {
				return nil, err
			}
			continue
		}
		layout, err := layoutOfStruct(str)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		layouts = append(layouts, structLayout{name: name, layout: layout})
	}
	return layouts, nil
}

func lookupStruct(scope *types.Scope, name string) (*types.Struct, error) {
	obj := scope.Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("identifier not found: %s", name)
	}
	typ, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("identifier not a type: %s", name)
	}
	named, ok := typ.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("identifier not a named type: %s", name)
	}
	str, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("identifier not a named struct: %s", name)
	}
	return str, nil
}

// layoutOfStruct maps the exported fields of a struct to a comma separated
// layout string. An `abi:"..."` tag overrides the derived descriptor for a
// field, `abi:"-"` skips it.
func layoutOfStruct(str *types.Struct) (string, error) {
	var descs []string
	for i := 0; i < str.NumFields(); i++ {
		field := str.Field(i)
		if !field.Exported() {
			continue
		}
		tag := reflect.StructTag(str.Tag(i)).Get("abi")
		if tag == "-" {
			continue
		}
		desc, err := descriptorForType(field.Type(), tag)
		if err != nil {
			return "", fmt.Errorf("field %s: %w", field.Name(), err)
		}
		descs = append(descs, desc)
	}
	return strings.Join(descs, ","), nil
}

// descriptorForType maps a Go type to its ABI type descriptor. Only shapes
// the decoder can walk are supported: fixed-size arrays other than byte
// blobs up to 32 bytes have no descriptor and abort the derivation.
func descriptorForType(typ types.Type, tag string) (string, error) {
	if tag != "" {
		return tag, nil
	}
	switch t := typ.(type) {
	case *types.Pointer:
		return descriptorForType(t.Elem(), "")

	case *types.Named:
		if obj := t.Obj(); obj.Pkg() != nil {
			switch obj.Pkg().Path() + "." + obj.Name() {
			case "github.com/holiman/uint256.Int", "math/big.Int":
				return "uint256", nil
			}
		}
		return descriptorForType(t.Underlying(), "")

	case *types.Basic:
		switch t.Kind() {
		case types.Bool:
			return "bool", nil
		case types.Uint8:
			return "uint8", nil
		case types.Uint16:
			return "uint16", nil
		case types.Uint32:
			return "uint32", nil
		case types.Uint64:
			return "uint64", nil
		case types.Int8:
			return "int8", nil
		case types.Int16:
			return "int16", nil
		case types.Int32:
			return "int32", nil
		case types.Int64:
			return "int64", nil
		case types.String:
			return "string", nil
		}
		return "", fmt.Errorf("unsupported basic type: %s", t)

	case *types.Array:
		if isByteType(t.Elem()) {
			switch {
			case t.Len() == 20:
				return "address", nil
			case t.Len() >= 1 && t.Len() <= 32:
				return fmt.Sprintf("bytes%d", t.Len()), nil
			}
		}
		return "", fmt.Errorf("unsupported array type: %s", t)

	case *types.Slice:
		if isByteType(t.Elem()) {
			return "bytes", nil
		}
		elem, err := descriptorForType(t.Elem(), "")
		if err != nil {
			return "", err
		}
		return elem + "[]", nil

	case *types.Struct:
		layout, err := layoutOfStruct(t)
		if err != nil {
			return "", err
		}
		return "(" + layout + ")", nil
	}
	return "", fmt.Errorf("unsupported type: %s", typ)
}

func isByteType(typ types.Type) bool {
	basic, ok := typ.Underlying().(*types.Basic)
	return ok && basic.Kind() == types.Uint8
}
