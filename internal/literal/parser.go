package literal

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a single literal value from text and requires the whole
// input to be consumed. The value may be a plain scalar, a brace table,
// or a constructor-tagged table such as Saver { ... }.
func Parse(text string) (Value, error) {
	p := &parser{scan: newScanner(text)}
	value, err := p.parseValue()
	if err != nil {
		return Value{}, err
	}
	tok, err := p.next()
	if err != nil {
		return Value{}, err
	}
	if tok.kind != tokenEOF {
		return Value{}, fmt.Errorf("%w: trailing %s at offset %d", ErrMalformedLiteral, tok.kind, tok.offset)
	}
	return value, nil
}

type parser struct {
	scan    *scanner
	pending *token
}

func (p *parser) next() (token, error) {
	if p.pending != nil {
		tok := *p.pending
		p.pending = nil
		return tok, nil
	}
	return p.scan.next()
}

func (p *parser) peek() (token, error) {
	if p.pending == nil {
		tok, err := p.scan.next()
		if err != nil {
			return token{}, err
		}
		p.pending = &tok
	}
	return *p.pending, nil
}

func (p *parser) parseValue() (Value, error) {
	tok, err := p.next()
	if err != nil {
		return Value{}, err
	}
	switch tok.kind {
	case tokenOpenBrace:
		return p.parseTable("")
	case tokenString:
		return StringValue(tok.text), nil
	case tokenNumber:
		return parseNumber(tok)
	case tokenIdent:
		switch tok.text {
		case "true":
			return BoolValue(true), nil
		case "false":
			return BoolValue(false), nil
		}
		open, err := p.next()
		if err != nil {
			return Value{}, err
		}
		if open.kind != tokenOpenBrace {
			return Value{}, fmt.Errorf("%w: identifier %q without table body at offset %d", ErrMalformedLiteral, tok.text, tok.offset)
		}
		return p.parseTable(tok.text)
	default:
		return Value{}, fmt.Errorf("%w: unexpected %s in value position at offset %d", ErrMalformedLiteral, tok.kind, tok.offset)
	}
}

// parseTable parses entries after the opening brace has been consumed.
// Entries are either keyed (key = value) or positional values; commas
// are optional after the final entry.
func (p *parser) parseTable(name string) (Value, error) {
	table := NewTable(name)
	for {
		tok, err := p.next()
		if err != nil {
			return Value{}, err
		}
		switch tok.kind {
		case tokenCloseBrace:
			return TableValue(table), nil
		case tokenEOF:
			return Value{}, ErrUnbalancedBraces
		case tokenBracketKey:
			if err := p.parseKeyedEntry(table, tok.text, tok.offset); err != nil {
				return Value{}, err
			}
		case tokenIdent:
			if tok.text == "true" || tok.text == "false" {
				table.Append(BoolValue(tok.text == "true"))
				break
			}
			following, err := p.peek()
			if err != nil {
				return Value{}, err
			}
			switch following.kind {
			case tokenAssign:
				p.pending = nil
				if err := p.parseEntryValue(table, tok.text); err != nil {
					return Value{}, err
				}
			case tokenOpenBrace:
				p.pending = nil
				value, err := p.parseTable(tok.text)
				if err != nil {
					return Value{}, err
				}
				table.Append(value)
			default:
				return Value{}, fmt.Errorf("%w: key %q without '=' at offset %d", ErrMalformedLiteral, tok.text, tok.offset)
			}
		case tokenString:
			table.Append(StringValue(tok.text))
		case tokenNumber:
			value, err := parseNumber(tok)
			if err != nil {
				return Value{}, err
			}
			table.Append(value)
		case tokenOpenBrace:
			value, err := p.parseTable("")
			if err != nil {
				return Value{}, err
			}
			table.Append(value)
		default:
			return Value{}, fmt.Errorf("%w: unexpected %s in table at offset %d", ErrMalformedLiteral, tok.kind, tok.offset)
		}

		sep, err := p.peek()
		if err != nil {
			return Value{}, err
		}
		switch sep.kind {
		case tokenComma:
			p.pending = nil
		case tokenCloseBrace, tokenEOF:
			// Close (or the unbalanced-brace report) handled on the
			// next loop iteration.
		default:
			return Value{}, fmt.Errorf("%w: expected ',' or '}' but found %s at offset %d", ErrMalformedLiteral, sep.kind, sep.offset)
		}
	}
}

func (p *parser) parseKeyedEntry(table *Table, key string, offset int) error {
	assign, err := p.next()
	if err != nil {
		return err
	}
	if assign.kind != tokenAssign {
		return fmt.Errorf("%w: key %q without '=' at offset %d", ErrMalformedLiteral, key, offset)
	}
	value, err := p.parseValue()
	if err != nil {
		return err
	}
	table.Set(key, value)
	return nil
}

func (p *parser) parseEntryValue(table *Table, key string) error {
	value, err := p.parseValue()
	if err != nil {
		return err
	}
	table.Set(key, value)
	return nil
}

// parseNumber types the literal: float iff it carries a decimal point
// or exponent, integer otherwise.
func parseNumber(tok token) (Value, error) {
	if strings.ContainsAny(tok.text, ".eE") {
		f, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: invalid float %q at offset %d", ErrMalformedLiteral, tok.text, tok.offset)
		}
		return FloatValue(f), nil
	}
	n, err := strconv.ParseInt(tok.text, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: invalid integer %q at offset %d", ErrMalformedLiteral, tok.text, tok.offset)
	}
	return IntegerValue(n), nil
}
