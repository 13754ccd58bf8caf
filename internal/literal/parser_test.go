package literal

import (
	"errors"
	"testing"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, v Value)
	}{
		{
			name:  "string",
			input: `"TargaFormat"`,
			check: func(t *testing.T, v Value) {
				if v.Kind() != KindString || v.Text() != "TargaFormat" {
					t.Fatalf("got %v %q", v.Kind(), v.Text())
				}
			},
		},
		{
			name:  "integer",
			input: `42`,
			check: func(t *testing.T, v Value) {
				if v.Kind() != KindInteger || v.Int() != 42 {
					t.Fatalf("got %v %d", v.Kind(), v.Int())
				}
			},
		},
		{
			name:  "negative integer",
			input: `-7`,
			check: func(t *testing.T, v Value) {
				if v.Kind() != KindInteger || v.Int() != -7 {
					t.Fatalf("got %v %d", v.Kind(), v.Int())
				}
			},
		},
		{
			name:  "float with decimal point",
			input: `0.5`,
			check: func(t *testing.T, v Value) {
				if v.Kind() != KindFloat || v.Float() != 0.5 {
					t.Fatalf("got %v %f", v.Kind(), v.Float())
				}
			},
		},
		{
			name:  "float with exponent",
			input: `-1e3`,
			check: func(t *testing.T, v Value) {
				if v.Kind() != KindFloat || v.Float() != -1000 {
					t.Fatalf("got %v %f", v.Kind(), v.Float())
				}
			},
		},
		{
			name:  "bool true",
			input: `true`,
			check: func(t *testing.T, v Value) {
				if v.Kind() != KindBool || !v.Bool() {
					t.Fatalf("got %v %v", v.Kind(), v.Bool())
				}
			},
		},
		{
			name:  "bool false",
			input: `false`,
			check: func(t *testing.T, v Value) {
				if v.Kind() != KindBool || v.Bool() {
					t.Fatalf("got %v %v", v.Kind(), v.Bool())
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			tc.check(t, v)
		})
	}
}

func TestParseTableOrderingAndKeys(t *testing.T) {
	v, err := Parse(`{ Width = 1920, Height = 1080, ["Clip.Start"] = 1001, Loop = false }`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	table := v.Table()
	if table == nil {
		t.Fatal("expected table")
	}

	keys := table.Keys()
	want := []string{"Width", "Height", "Clip.Start", "Loop"}
	if len(keys) != len(want) {
		t.Fatalf("key count: got %d, want %d", len(keys), len(want))
	}
	for i, key := range want {
		if keys[i] != key {
			t.Fatalf("key %d: got %q, want %q", i, keys[i], key)
		}
	}

	start, ok := table.Get("Clip.Start")
	if !ok || start.Int() != 1001 {
		t.Fatalf("Clip.Start: got %v, %v", start, ok)
	}
}

func TestParseConstructorTaggedTables(t *testing.T) {
	v, err := Parse(`Saver { Inputs = { OutputFormat = Input { Value = FuID { "TargaFormat" }, }, } }`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	saver := v.Table()
	if saver == nil || saver.Name() != "Saver" {
		t.Fatalf("expected Saver table, got %#v", saver)
	}

	inputs, ok := saver.Get("Inputs")
	if !ok || inputs.Kind() != KindTable {
		t.Fatal("expected Inputs table")
	}
	format, ok := inputs.Table().Get("OutputFormat")
	if !ok || format.Table().Name() != "Input" {
		t.Fatal("expected Input-tagged OutputFormat")
	}
	fuid, ok := format.Table().Get("Value")
	if !ok || fuid.Table().Name() != "FuID" {
		t.Fatal("expected FuID-tagged Value")
	}
	items := fuid.Table().Items()
	if len(items) != 1 || items[0].Text() != "TargaFormat" {
		t.Fatalf("positional item: got %#v", items)
	}
}

func TestParseMinifiedAndPrettyEquivalent(t *testing.T) {
	minified := `{A=1,B={C="x",},D=true}`
	pretty := "{\n\tA = 1,\n\tB = {\n\t\tC = \"x\", -- inner\n\t},\n\tD = true,\n}\n"

	for _, input := range []string{minified, pretty} {
		v, err := Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		table := v.Table()
		if a, _ := table.Get("A"); a.Int() != 1 {
			t.Fatalf("A: got %v", a)
		}
		b, _ := table.Get("B")
		if c, _ := b.Table().Get("C"); c.Text() != "x" {
			t.Fatalf("C: got %v", c)
		}
		if d, _ := table.Get("D"); !d.Bool() {
			t.Fatalf("D: got %v", d)
		}
	}
}

func TestParseStripsComments(t *testing.T) {
	v, err := Parse("{ -- leading note\n Value = 3, -- trailing note\n }")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, _ := v.Table().Get("Value"); got.Int() != 3 {
		t.Fatalf("Value: got %v", got)
	}
}

func TestParseCommentMarkerInsideString(t *testing.T) {
	v, err := Parse(`{ Note = "a -- b" }`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, _ := v.Table().Get("Note"); got.Text() != "a -- b" {
		t.Fatalf("Note: got %q", got.Text())
	}
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated string", `{ Name = "oops }`},
		{"unbalanced braces", `{ A = { B = 1 }`},
		{"key without assign", `{ A 1 }`},
		{"bad value", `{ A = ] }`},
		{"missing separator", `{ A = 1 B = 2 }`},
		{"empty input", ``},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.input); !errors.Is(err, ErrMalformedLiteral) {
				t.Fatalf("expected malformed literal error, got %v", err)
			}
		})
	}
}

func TestParseUnbalancedIsDistinct(t *testing.T) {
	_, err := Parse(`{ A = { B = 1 }`)
	if !errors.Is(err, ErrUnbalancedBraces) {
		t.Fatalf("expected unbalanced braces, got %v", err)
	}
	if !errors.Is(err, ErrMalformedLiteral) {
		t.Fatal("unbalanced braces should remain a malformed-literal error")
	}
}

func TestExtractBalancedBlock(t *testing.T) {
	text := `noise Saver { Inputs = { Depth = { "full", } } } trailing`
	open := 12
	if text[open] != '{' {
		t.Fatalf("fixture drift: byte at %d is %q", open, text[open])
	}

	block, err := ExtractBalancedBlock(text, open)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := `{ Inputs = { Depth = { "full", } } }`
	if block != want {
		t.Fatalf("block: got %q, want %q", block, want)
	}
}

func TestExtractBalancedBlockIgnoresBracesInStrings(t *testing.T) {
	text := `{ Note = "open { not counted", Nested = { } }`
	block, err := ExtractBalancedBlock(text, 0)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if block != text {
		t.Fatalf("block: got %q", block)
	}
}

func TestExtractBalancedBlockUnbalanced(t *testing.T) {
	_, err := ExtractBalancedBlock(`{ A = { B = 1 }`, 0)
	if !errors.Is(err, ErrUnbalancedBraces) {
		t.Fatalf("expected unbalanced braces, got %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	table := NewTable("Saver")
	inputs := NewTable("")
	fuid := NewTable("FuID")
	fuid.Append(StringValue("OpenEXRFormat"))
	wrapper := NewTable("Input")
	wrapper.Set("Value", TableValue(fuid))
	inputs.Set("OutputFormat", TableValue(wrapper))
	inputs.Set("OpenEXRFormat.Depth", IntegerValue(1))
	table.Set("Inputs", TableValue(inputs))

	reparsed, err := Parse(TableValue(table).Encode())
	if err != nil {
		t.Fatalf("reparse encoded table: %v", err)
	}
	got := reparsed.Table()
	if got.Name() != "Saver" {
		t.Fatalf("name: got %q", got.Name())
	}
	in, _ := got.Get("Inputs")
	depth, ok := in.Table().Get("OpenEXRFormat.Depth")
	if !ok || depth.Int() != 1 {
		t.Fatalf("depth: got %v, %v", depth, ok)
	}
}
