// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package decode_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jparse"
	"github.com/creachadair/jparse/decode"
	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ""},
		{`"hello"`, "hello"},
		{`"a\tb\nc"`, "a\tb\nc"},
		{`"© 2025"`, "© 2025"},
		{`"smile 😀"`, "smile 😀"},
	}
	for _, test := range tests {
		got, err := jparse.Parse(test.input, decode.String)
		if err != nil {
			t.Errorf("Input: %#q: unexpected error: %v", test.input, err)
		} else if got != test.want {
			t.Errorf("Input: %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestBool(t *testing.T) {
	if got, err := jparse.Parse("true", decode.Bool); err != nil || got != true {
		t.Errorf("Parse true: got %v, %v; want true, nil", got, err)
	}
	if got, err := jparse.Parse("false", decode.Bool); err != nil || got != false {
		t.Errorf("Parse false: got %v, %v; want false, nil", got, err)
	}
	_, err := jparse.Parse("null", decode.Bool)
	checkError(t, err, &jparse.Error{Kind: jparse.UnexpectedToken, Line: 1, Lexeme: "null"})
}

func TestInt(t *testing.T) {
	tests := []struct {
		input string
		want  int64
		fail  bool
	}{
		{"0", 0, false},
		{"15", 15, false},
		{"-5", -5, false},
		{"9223372036854775807", 9223372036854775807, false},
		{"-9223372036854775808", -9223372036854775808, false},

		{"9223372036854775808", 0, true},  // out of range
		{"-9223372036854775809", 0, true}, // out of range
		{"1.5", 0, true},                  // fraction
		{"2.0", 0, true},                  // fraction, even if integral
		{"5e2", 0, true},                  // exponent form
		{"-0.001E-100", 0, true},
	}
	for _, test := range tests {
		got, err := jparse.Parse(test.input, decode.Int[int64])
		if test.fail {
			checkError(t, err, &jparse.Error{
				Kind: jparse.InvalidNumber, Line: 1, Lexeme: test.input,
			})
		} else if err != nil {
			t.Errorf("Input: %#q: unexpected error: %v", test.input, err)
		} else if got != test.want {
			t.Errorf("Input: %#q: got %d, want %d", test.input, got, test.want)
		}
	}
}

func TestIntNarrow(t *testing.T) {
	if got, err := jparse.Parse("-128", decode.Int[int8]); err != nil || got != -128 {
		t.Errorf("Parse -128: got %v, %v; want -128, nil", got, err)
	}
	for _, bad := range []string{"128", "-129", "1000"} {
		_, err := jparse.Parse(bad, decode.Int[int8])
		checkError(t, err, &jparse.Error{Kind: jparse.InvalidNumber, Line: 1, Lexeme: bad})
	}
}

func TestUint(t *testing.T) {
	tests := []struct {
		input string
		want  uint32
		fail  bool
	}{
		{"0", 0, false},
		{"32", 32, false},
		{"4294967295", 4294967295, false},

		{"4294967296", 0, true}, // out of range for uint32
		{"-5", 0, true},         // negative
		{"-0", 0, true},
		{"3.5", 0, true},
		{"5e2", 0, true},
	}
	for _, test := range tests {
		got, err := jparse.Parse(test.input, decode.Uint[uint32])
		if test.fail {
			checkError(t, err, &jparse.Error{
				Kind: jparse.InvalidNumber, Line: 1, Lexeme: test.input,
			})
		} else if err != nil {
			t.Errorf("Input: %#q: unexpected error: %v", test.input, err)
		} else if got != test.want {
			t.Errorf("Input: %#q: got %d, want %d", test.input, got, test.want)
		}
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"-1", -1},
		{"2.5", 2.5},
		{"5e2", 500},
		{"3.6E+4", 36000},
		{"-0.001e-2", -0.00001},
	}
	for _, test := range tests {
		got, err := jparse.Parse(test.input, decode.Float[float64])
		if err != nil {
			t.Errorf("Input: %#q: unexpected error: %v", test.input, err)
		} else if got != test.want {
			t.Errorf("Input: %#q: got %v, want %v", test.input, got, test.want)
		}
	}

	t.Run("NotANumber", func(t *testing.T) {
		_, err := jparse.Parse(`"1.5"`, decode.Float[float64])
		checkError(t, err, &jparse.Error{
			Kind: jparse.UnexpectedToken, Line: 1, Lexeme: `"1.5"`,
		})
	})
}

func TestNullable(t *testing.T) {
	dec := decode.Nullable(decode.Int[int64])

	t.Run("Null", func(t *testing.T) {
		got, err := jparse.Parse("null", dec)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got != nil {
			t.Errorf("Parse null: got %v, want nil", *got)
		}
	})
	t.Run("Present", func(t *testing.T) {
		got, err := jparse.Parse("42", dec)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got == nil || *got != 42 {
			t.Errorf("Parse 42: got %v, want 42", got)
		}
	})
	t.Run("Nested", func(t *testing.T) {
		// Null resolves at the outermost level: both pointers are nil, and
		// the inner decoder never runs.
		got, err := jparse.Parse("null", decode.Nullable(dec))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got != nil {
			t.Errorf("Parse null: got %v, want nil", got)
		}
	})
	t.Run("WrongType", func(t *testing.T) {
		_, err := jparse.Parse("true", dec)
		checkError(t, err, &jparse.Error{
			Kind: jparse.UnexpectedToken, Line: 1, Lexeme: "true",
		})
	})
}

func TestSlice(t *testing.T) {
	dec := decode.Slice(decode.Int[int64])
	tests := []struct {
		input string
		want  []int64
	}{
		{"[]", []int64{}},
		{"[ ]", []int64{}},
		{"[1]", []int64{1}},
		{"[1, 2, 3]", []int64{1, 2, 3}},
		{"[ 1 ,\n  2 ]", []int64{1, 2}},
	}
	for _, test := range tests {
		got, err := jparse.Parse(test.input, dec)
		if err != nil {
			t.Errorf("Input: %#q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q: (-want, +got)\n%s", test.input, diff)
		}
	}

	t.Run("Nested", func(t *testing.T) {
		got, err := jparse.Parse("[[1], [], [2, 3]]", decode.Slice(dec))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		want := [][]int64{{1}, {}, {2, 3}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Value: (-want, +got)\n%s", diff)
		}
	})
}

func TestSliceErrors(t *testing.T) {
	dec := decode.Slice(decode.Int[int64])
	tests := []struct {
		input string
		want  *jparse.Error
	}{
		{"[1, 2,]", &jparse.Error{Kind: jparse.UnexpectedToken, Line: 1, Lexeme: ","}},
		{"[1,]", &jparse.Error{Kind: jparse.UnexpectedToken, Line: 1, Lexeme: ","}},
		{"[,]", &jparse.Error{Kind: jparse.UnexpectedToken, Line: 1, Lexeme: ","}},
		{"[1 2]", &jparse.Error{Kind: jparse.ExpectedToken, Line: 1, Lexeme: "2", Want: jparse.RSquare}},
		{"[1", &jparse.Error{Kind: jparse.UnexpectedEndOfSource, Line: 1, Lexeme: "1"}},
		{"[", &jparse.Error{Kind: jparse.UnexpectedEndOfSource, Line: 1, Lexeme: "["}},
		{"[true]", &jparse.Error{Kind: jparse.UnexpectedToken, Line: 1, Lexeme: "true"}},
		{"{}", &jparse.Error{Kind: jparse.ExpectedToken, Line: 1, Lexeme: "{", Want: jparse.LSquare}},
	}
	for _, test := range tests {
		_, err := jparse.Parse(test.input, dec)
		if err == nil {
			t.Errorf("Input: %#q: parse unexpectedly succeeded", test.input)
			continue
		}
		checkErrorf(t, test.input, err, test.want)
	}
}

func TestMap(t *testing.T) {
	dec := decode.Map(decode.String)
	tests := []struct {
		input string
		want  map[string]string
	}{
		{"{}", map[string]string{}},
		{`{"a": "x"}`, map[string]string{"a": "x"}},
		{`{"a": "x", "b": "y"}`, map[string]string{"a": "x", "b": "y"}},
		{`{"a": "x", "a": "y"}`, map[string]string{"a": "y"}}, // last write wins
		{`{"": "empty key"}`, map[string]string{"": "empty key"}},
	}
	for _, test := range tests {
		got, err := jparse.Parse(test.input, dec)
		if err != nil {
			t.Errorf("Input: %#q: unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestMapErrors(t *testing.T) {
	dec := decode.Map(decode.Int[int64])
	tests := []struct {
		input string
		want  *jparse.Error
	}{
		{`{"a": 1,}`, &jparse.Error{Kind: jparse.UnexpectedToken, Line: 1, Lexeme: ","}},
		{`{"a" 1}`, &jparse.Error{Kind: jparse.ExpectedToken, Line: 1, Lexeme: "1", Want: jparse.Colon}},
		{`{"a": }`, &jparse.Error{Kind: jparse.UnexpectedToken, Line: 1, Lexeme: "}"}},
		{`{15: 1}`, &jparse.Error{Kind: jparse.UnexpectedToken, Line: 1, Lexeme: "15"}},
		{`{true: 1}`, &jparse.Error{Kind: jparse.UnexpectedToken, Line: 1, Lexeme: "true"}},
		{`{"a": 1`, &jparse.Error{Kind: jparse.UnexpectedEndOfSource, Line: 1, Lexeme: "1"}},
		{`{`, &jparse.Error{Kind: jparse.UnexpectedEndOfSource, Line: 1, Lexeme: "{"}},
		{`[]`, &jparse.Error{Kind: jparse.ExpectedToken, Line: 1, Lexeme: "[", Want: jparse.LBrace}},
	}
	for _, test := range tests {
		_, err := jparse.Parse(test.input, dec)
		if err == nil {
			t.Errorf("Input: %#q: parse unexpectedly succeeded", test.input)
			continue
		}
		checkErrorf(t, test.input, err, test.want)
	}
}

func TestCompound(t *testing.T) {
	dec := decode.Map(decode.Slice(decode.Nullable(decode.Int[int64])))
	got, err := jparse.Parse(`{
  "evens": [2, 4, 6],
  "odds": [1, null, 3],
  "none": []
}`, dec)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	p := func(v int64) *int64 { return &v }
	want := map[string][]*int64{
		"evens": {p(2), p(4), p(6)},
		"odds":  {p(1), nil, p(3)},
		"none":  {},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Value: (-want, +got)\n%s", diff)
	}
}

// checkError verifies that err is a *jparse.Error matching want.
func checkError(t *testing.T, err error, want *jparse.Error) {
	t.Helper()
	if err == nil {
		t.Fatal("Parse unexpectedly succeeded")
	}
	var got *jparse.Error
	if !errors.As(err, &got) {
		t.Fatalf("Error is %T, want *jparse.Error", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Error: (-want, +got)\n%s", diff)
	}
}

// checkErrorf is checkError with the input attached to the diagnostics.
func checkErrorf(t *testing.T, input string, err error, want *jparse.Error) {
	t.Helper()
	var got *jparse.Error
	if !errors.As(err, &got) {
		t.Errorf("Input: %#q: error is %T, want *jparse.Error", input, err)
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Input: %#q\nError: (-want, +got)\n%s", input, diff)
	}
}
