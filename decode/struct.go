// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package decode

import (
	"github.com/creachadair/jparse"
	"github.com/creachadair/mds/mapset"
)

// A Field binds one object property to part of a record of type T. Use
// Bind to construct fields and Struct to combine them into a decoder.
type Field[T any] struct {
	name   string
	decode func(*jparse.Parser, *T) error
}

// Bind binds the object property named name to a record of type T: dec
// decodes the property value, and set stores the result into the record
// under construction.
func Bind[T, F any](name string, dec jparse.Decoder[F], set func(*T, F)) Field[T] {
	return Field[T]{name: name, decode: func(p *jparse.Parser, out *T) error {
		v, err := dec(p)
		if err != nil {
			return err
		}
		set(out, v)
		return nil
	}}
}

// Struct returns a decoder for an object with the fixed set of properties
// given by fields. It is the static analogue of Map: the object's keys are
// known in advance, each with a decoder for its own value type.
//
// Every bound property is required. After the closing brace, the first
// bound property (in the order given to Struct) that did not appear in the
// object is reported as a MissingProperty error anchored at the opening
// brace. A key that is not bound is an UnknownProperty error anchored at
// the key, reported before its value is examined. A duplicate key is
// decoded again and silently overwrites the earlier result.
//
// Records nest by binding one Struct decoder inside another:
//
//	type Door struct{ W, H int }
//	type House struct{ Front Door }
//
//	door := decode.Struct(
//		decode.Bind("width", decode.Int[int], func(d *Door, v int) { d.W = v }),
//		decode.Bind("height", decode.Int[int], func(d *Door, v int) { d.H = v }),
//	)
//	house := decode.Struct(
//		decode.Bind("front", door, func(h *House, d Door) { h.Front = d }),
//	)
func Struct[T any](fields ...Field[T]) jparse.Decoder[T] {
	index := make(map[string]Field[T], len(fields))
	for _, f := range fields {
		index[f.name] = f
	}
	return func(p *jparse.Parser) (T, error) {
		var zero T

		open, err := p.Consume(jparse.LBrace)
		if err != nil {
			return zero, err
		}

		out := zero
		seen := mapset.New[string]()
		if err := commaList(p, jparse.RBrace, func() error {
			key, err := p.Advance()
			if err != nil {
				return err
			}
			if key.Kind != jparse.String {
				return p.FailAt(jparse.UnexpectedToken, key)
			}
			if _, err := p.Consume(jparse.Colon); err != nil {
				return err
			}
			f, ok := index[key.Value]
			if !ok {
				return p.FailAt(jparse.UnknownProperty, key)
			}
			if err := f.decode(p, &out); err != nil {
				return err
			}
			seen.Add(key.Value)
			return nil
		}); err != nil {
			return zero, err
		}

		for _, f := range fields {
			if !seen.Has(f.name) {
				e := p.FailAt(jparse.MissingProperty, open)
				e.Property = f.name
				return zero, e
			}
		}
		return out, nil
	}
}
