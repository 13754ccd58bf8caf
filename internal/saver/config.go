package saver

import (
	"renderpub/internal/literal"
)

// Destination selects where resolved output paths land.
type Destination string

const (
	// DestinationProjectExport writes under the project-wide export root.
	DestinationProjectExport Destination = "project_export"
	// DestinationStepPublished delegates to the database-governed
	// versioned publish location for the step.
	DestinationStepPublished Destination = "step_published"
)

// Config is the typed render-output configuration recovered from a
// node dump. It is immutable once extracted; a later extraction
// replaces it wholesale.
type Config struct {
	// Format is the recognized output format identifier, never empty.
	Format string
	// Properties holds only keys prefixed with Format + ".", in
	// source order. Values are coerced literal scalars.
	Properties *literal.Table
	// ImageSequence is derived from the format table, not the dump.
	ImageSequence bool
	// Destination defaults to the project export root unless the
	// caller overrides it.
	Destination Destination
}

// PropertyKeys returns the property keys in source order.
func (c *Config) PropertyKeys() []string {
	if c == nil || c.Properties == nil {
		return nil
	}
	return c.Properties.Keys()
}

// Property looks up a property value by its fully prefixed key.
func (c *Config) Property(key string) (literal.Value, bool) {
	if c == nil || c.Properties == nil {
		return literal.Value{}, false
	}
	return c.Properties.Get(key)
}

// EncodeLiteral renders the config back into node-dump literal text.
// Extract on the result recovers an equivalent format and property
// set, which is how step configuration persists saver settings.
func (c *Config) EncodeLiteral() string {
	inputs := literal.NewTable("")

	fuid := literal.NewTable("FuID")
	fuid.Append(literal.StringValue(c.Format))
	formatInput := literal.NewTable("Input")
	formatInput.Set("Value", literal.TableValue(fuid))
	inputs.Set("OutputFormat", literal.TableValue(formatInput))

	if c.Properties != nil {
		for _, key := range c.Properties.Keys() {
			value, _ := c.Properties.Get(key)
			wrapper := literal.NewTable("Input")
			wrapper.Set("Value", value)
			inputs.Set(key, literal.TableValue(wrapper))
		}
	}

	node := literal.NewTable("Saver")
	node.Set("Inputs", literal.TableValue(inputs))
	return literal.TableValue(node).Encode()
}
