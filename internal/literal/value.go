package literal

import (
	"strconv"
	"strings"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the scalar and table forms the grammar
// can produce. The zero Value is an empty string.
type Value struct {
	kind    Kind
	text    string
	integer int64
	float   float64
	boolean bool
	table   *Table
}

// StringValue wraps text as a string value.
func StringValue(text string) Value {
	return Value{kind: KindString, text: text}
}

// IntegerValue wraps n as an integer value.
func IntegerValue(n int64) Value {
	return Value{kind: KindInteger, integer: n}
}

// FloatValue wraps f as a float value.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// BoolValue wraps b as a boolean value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// TableValue wraps t as a table value. A nil table is replaced with an
// empty one so accessors never observe nil.
func TableValue(t *Table) Value {
	if t == nil {
		t = NewTable("")
	}
	return Value{kind: KindTable, table: t}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// Text returns the string payload. Valid only for KindString.
func (v Value) Text() string { return v.text }

// Int returns the integer payload. Valid only for KindInteger.
func (v Value) Int() int64 { return v.integer }

// Float returns the float payload. Valid only for KindFloat.
func (v Value) Float() float64 { return v.float }

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool { return v.boolean }

// Table returns the table payload, or nil for scalar values.
func (v Value) Table() *Table {
	if v.kind != KindTable {
		return nil
	}
	return v.table
}

// IsScalar reports whether the value is one of the non-table variants.
func (v Value) IsScalar() bool { return v.kind != KindTable }

// Encode renders the value back into literal-grammar text. Tables are
// rendered minified on one line; Parse accepts the result.
func (v Value) Encode() string {
	var sb strings.Builder
	v.encode(&sb)
	return sb.String()
}

func (v Value) encode(sb *strings.Builder) {
	switch v.kind {
	case KindString:
		sb.WriteByte('"')
		sb.WriteString(v.text)
		sb.WriteByte('"')
	case KindInteger:
		sb.WriteString(strconv.FormatInt(v.integer, 10))
	case KindFloat:
		formatted := strconv.FormatFloat(v.float, 'g', -1, 64)
		if !strings.ContainsAny(formatted, ".eE") {
			formatted += ".0"
		}
		sb.WriteString(formatted)
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.boolean))
	case KindTable:
		v.table.encode(sb)
	}
}

// Table is an ordered collection of keyed fields plus positional items,
// optionally carrying the constructor tag it was written with.
type Table struct {
	name   string
	keys   []string
	fields map[string]Value
	items  []Value
}

// NewTable creates an empty table with the given constructor tag. The
// tag may be empty for plain brace tables.
func NewTable(name string) *Table {
	return &Table{name: name, fields: make(map[string]Value)}
}

// Name returns the constructor tag, e.g. "Input" for Input { ... }.
func (t *Table) Name() string { return t.name }

// Set assigns a keyed field, preserving first-seen ordering.
func (t *Table) Set(key string, value Value) {
	if _, exists := t.fields[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.fields[key] = value
}

// Get looks up a keyed field.
func (t *Table) Get(key string) (Value, bool) {
	value, ok := t.fields[key]
	return value, ok
}

// Append adds a positional item.
func (t *Table) Append(value Value) {
	t.items = append(t.items, value)
}

// Keys returns the field keys in insertion order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Items returns the positional items in source order.
func (t *Table) Items() []Value {
	out := make([]Value, len(t.items))
	copy(out, t.items)
	return out
}

// Len reports the total entry count, keyed plus positional.
func (t *Table) Len() int {
	return len(t.keys) + len(t.items)
}

func (t *Table) encode(sb *strings.Builder) {
	if t.name != "" {
		sb.WriteString(t.name)
		sb.WriteByte(' ')
	}
	sb.WriteString("{ ")
	for _, item := range t.items {
		item.encode(sb)
		sb.WriteString(", ")
	}
	for _, key := range t.keys {
		if isBareKey(key) {
			sb.WriteString(key)
		} else {
			sb.WriteString(`["`)
			sb.WriteString(key)
			sb.WriteString(`"]`)
		}
		sb.WriteString(" = ")
		t.fields[key].encode(sb)
		sb.WriteString(", ")
	}
	sb.WriteByte('}')
}

func isBareKey(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
