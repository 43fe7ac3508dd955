// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a JSON string literal: the contents are escaped and
// double quotation marks are added. The result can be scanned back to a
// String token whose value is src.
func Quote(src string) string {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')

	rest := mem.S(src)
	for rest.Len() > 0 {
		r, n := mem.DecodeRune(rest)
		rest = rest.SliceFrom(n)

		if r < utf8.RuneSelf {
			if r < ' ' {
				if b := controlEsc[r]; b != 0 {
					buf = append(buf, '\\', b)
				} else {
					buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
				}
			} else if r == '"' || r == '\\' {
				buf = append(buf, '\\', byte(r))
			} else {
				buf = append(buf, byte(r))
			}
			continue
		}

		switch r {
		case '�', ' ', ' ':
			// Escape the replacement rune and the line and paragraph
			// separators, so the output stays plain and line-safe.
			buf = append(buf, '\\', 'u',
				hexDigit[r>>12&15], hexDigit[r>>8&15], hexDigit[r>>4&15], hexDigit[r&15])
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return string(append(buf, '"'))
}
