// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jparse implements a strict JSON scanner and a cursor-based
// parser, on which typed decoders are built.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON. Construct a
// scanner from an input string and call its Next method to iterate over
// the tokens. Next returns the next token, or reports an error:
//
//	s := jparse.NewScanner(input)
//	for {
//	   tok, err := s.Next()
//	   if err != nil {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok.Kind)
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other
// error is a lexical error of concrete type *jparse.Error.
//
// # Parsing
//
// The Parser type is a cursor over the token stream of one input. It
// exposes a single token of lookahead (Peek, Check), consumes tokens one
// at a time (Advance, Consume), and retains the most recently consumed
// token (Previous) so that errors can be anchored to the offending text.
//
// A Decoder is a function that consumes tokens from the cursor and
// produces a value of its type parameter. The Parse function ties the
// pieces together: it scans src, applies a decoder to the cursor, and
// requires that the decoder consume the input completely:
//
//	v, err := jparse.Parse(`[1, 2, 3]`, decode.Slice(decode.Int[int64]))
//
// If any stage fails, Parse reports an error of concrete type
// *jparse.Error recording the kind of failure and the line and text at
// which it was detected. Errors are reported for the first defect found,
// and parsing does not resume after them.
//
// # Decoding
//
// The decode subpackage provides decoders for the standard shapes of JSON
// data along with combinators that compose them, including a Struct
// builder that binds the members of a JSON object to the fields of a Go
// struct. The ast subpackage decodes values of unknown shape into a
// dynamic value tree. Both are ordinary Decoder implementations with no
// special standing: decoders for new types can be written against the
// Parser methods directly and combined with the provided ones.
//
// # Limits
//
// The input to a parse is a single in-memory string, and values nest on
// the call stack: the depth of a decoded structure is limited only by the
// stack available to the goroutine that invokes Parse.
package jparse
