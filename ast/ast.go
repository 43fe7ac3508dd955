// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a dynamic value tree for JSON data, and a decoder
// that constructs trees from JSON source. It serves the case where the
// shape of the input is not known ahead of time; when the shape is known,
// the static decoders of the decode package apply.
package ast

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jparse"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON renders the value as compact JSON text.
	JSON() string
}

// An Object is an unordered collection of key-value members.
type Object map[string]Value

// JSON satisfies the Value interface. Members are rendered in sorted order
// by key.
func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range slices.Sorted(maps.Keys(o)) {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(jparse.Quote(key))
		sb.WriteByte(':')
		sb.WriteString(o[key].JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// An Array is a sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A String is a string value.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return jparse.Quote(string(s)) }

// A Number is a numeric value. All numbers are represented as float64.
type Number float64

// JSON satisfies the Value interface.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }
