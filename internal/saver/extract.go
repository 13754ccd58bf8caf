package saver

import (
	"regexp"
	"strings"

	"renderpub/internal/literal"
)

// saverMarker identifies a render-output node declaration in pasted
// text. Without it the text is treated as unrelated clipboard content.
var saverMarker = regexp.MustCompile(`\bSaver\s*\{`)

// formatFragment locates the output-format declaration when full-table
// parsing is not possible. The FuID wrapper is optional because dumps
// minified by other tools sometimes collapse it.
var formatFragment = regexp.MustCompile(`OutputFormat\s*=\s*Input\s*\{\s*Value\s*=\s*(?:FuID\s*\{\s*)?"([^"]+)"`)

// propertyFragment locates individual bracketed property assignments,
// e.g. ["TargaFormat.Compression"] = Input { Value = 1, }.
var propertyFragment = regexp.MustCompile(`\[\s*"([A-Za-z_][A-Za-z0-9_]*\.[^"]+)"\s*\]\s*=\s*Input\s*\{\s*Value\s*=\s*("[^"]*"|-?[0-9][^,}\s]*|true|false)`)

// Extract pulls a render-output configuration out of raw pasted text.
// The second return is false on a miss: no Saver marker, no
// discoverable output format, or a format outside the closed table.
// Misses are expected (the user pasted the wrong thing) and are never
// errors.
func Extract(raw string) (*Config, bool) {
	loc := saverMarker.FindStringIndex(raw)
	if loc == nil {
		return nil, false
	}
	openIndex := loc[1] - 1 // marker always ends at the opening brace

	format, properties, ok := extractParsed(raw, openIndex)
	if !ok {
		// The dump may be a fragment with surrounding decoration the
		// grammar cannot swallow; fall back to locating declarations
		// independently.
		format, properties, ok = extractFragments(raw)
	}
	if !ok || !KnownFormat(format) {
		return nil, false
	}

	filtered := literal.NewTable("")
	prefix := format + "."
	for _, key := range properties.Keys() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if value, exists := properties.Get(key); exists {
			filtered.Set(key, value)
		}
	}

	sequence, _ := FormatIsSequence(format)
	return &Config{
		Format:        format,
		Properties:    filtered,
		ImageSequence: sequence,
		Destination:   DestinationProjectExport,
	}, true
}

func extractParsed(raw string, openIndex int) (string, *literal.Table, bool) {
	block, err := literal.ExtractBalancedBlock(raw, openIndex)
	if err != nil {
		return "", nil, false
	}
	parsed, err := literal.Parse(block)
	if err != nil {
		return "", nil, false
	}
	root := parsed.Table()
	if root == nil {
		return "", nil, false
	}

	format, ok := findFormat(root)
	if !ok {
		return "", nil, false
	}

	properties := literal.NewTable("")
	collectPrefixed(root, format+".", properties)
	return format, properties, true
}

// findFormat searches the tree for an OutputFormat entry whose value
// unwraps to a string.
func findFormat(table *literal.Table) (string, bool) {
	if raw, ok := table.Get("OutputFormat"); ok {
		if scalar, ok := unwrapScalar(raw); ok && scalar.Kind() == literal.KindString {
			return scalar.Text(), true
		}
	}
	for _, key := range table.Keys() {
		value, _ := table.Get(key)
		if nested := value.Table(); nested != nil {
			if format, ok := findFormat(nested); ok {
				return format, true
			}
		}
	}
	for _, item := range table.Items() {
		if nested := item.Table(); nested != nil {
			if format, ok := findFormat(nested); ok {
				return format, true
			}
		}
	}
	return "", false
}

// collectPrefixed gathers every key under the format prefix anywhere in
// the tree, coercing doubly wrapped values to their inner scalar.
func collectPrefixed(table *literal.Table, prefix string, out *literal.Table) {
	for _, key := range table.Keys() {
		value, _ := table.Get(key)
		if strings.HasPrefix(key, prefix) {
			if scalar, ok := unwrapScalar(value); ok {
				out.Set(key, scalar)
				continue
			}
		}
		if nested := value.Table(); nested != nil {
			collectPrefixed(nested, prefix, out)
		}
	}
	for _, item := range table.Items() {
		if nested := item.Table(); nested != nil {
			collectPrefixed(nested, prefix, out)
		}
	}
}

// unwrapScalar descends through wrapper tables until a scalar remains.
// A wrapper is a table with a single entry, or an Input-style table
// whose payload sits under a Value field.
func unwrapScalar(value literal.Value) (literal.Value, bool) {
	for i := 0; i < 8; i++ { // wrapper nesting is shallow; bound the descent
		if value.IsScalar() {
			return value, true
		}
		table := value.Table()
		switch {
		case table == nil:
			return literal.Value{}, false
		case len(table.Items()) == 1 && len(table.Keys()) == 0:
			value = table.Items()[0]
		default:
			inner, ok := table.Get("Value")
			if !ok {
				keys := table.Keys()
				if len(keys) != 1 || len(table.Items()) != 0 {
					return literal.Value{}, false
				}
				inner, _ = table.Get(keys[0])
			}
			value = inner
		}
	}
	return literal.Value{}, false
}

func extractFragments(raw string) (string, *literal.Table, bool) {
	match := formatFragment.FindStringSubmatch(raw)
	if match == nil {
		return "", nil, false
	}
	format := match[1]

	properties := literal.NewTable("")
	for _, prop := range propertyFragment.FindAllStringSubmatch(raw, -1) {
		key, rawValue := prop[1], prop[2]
		value, err := literal.Parse(rawValue)
		if err != nil || !value.IsScalar() {
			continue
		}
		properties.Set(key, value)
	}
	return format, properties, true
}
