package literal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLiteral reports any grammar violation encountered while
// tokenizing or parsing.
var ErrMalformedLiteral = errors.New("malformed literal")

// ErrUnbalancedBraces is a malformed-literal error kept distinct because
// it usually pinpoints a truncated or partially copied dump.
var ErrUnbalancedBraces = fmt.Errorf("%w: unbalanced braces", ErrMalformedLiteral)

// ExtractBalancedBlock returns the substring of text running from the
// opening brace at openIndex through its matching closing brace,
// counting nested braces and ignoring braces inside double-quoted
// strings.
func ExtractBalancedBlock(text string, openIndex int) (string, error) {
	if openIndex < 0 || openIndex >= len(text) || text[openIndex] != '{' {
		return "", fmt.Errorf("%w: no opening brace at offset %d", ErrMalformedLiteral, openIndex)
	}
	depth := 0
	inString := false
	for i := openIndex; i < len(text); i++ {
		c := text[i]
		if inString {
			if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[openIndex : i+1], nil
			}
		}
	}
	return "", ErrUnbalancedBraces
}

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenBracketKey
	tokenString
	tokenNumber
	tokenAssign
	tokenComma
	tokenOpenBrace
	tokenCloseBrace
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenIdent:
		return "identifier"
	case tokenBracketKey:
		return "bracketed key"
	case tokenString:
		return "string"
	case tokenNumber:
		return "number"
	case tokenAssign:
		return `"="`
	case tokenComma:
		return `","`
	case tokenOpenBrace:
		return `"{"`
	case tokenCloseBrace:
		return `"}"`
	default:
		return "unknown token"
	}
}

type token struct {
	kind   tokenKind
	text   string
	offset int
}

// scanner walks the input byte-wise. The grammar is pure ASCII at the
// structural level; string payloads pass through untouched, so UTF-8
// content inside quotes is preserved.
type scanner struct {
	input string
	pos   int
}

func newScanner(input string) *scanner {
	return &scanner{input: input}
}

func (s *scanner) next() (token, error) {
	s.skipInsignificant()
	start := s.pos
	if s.pos >= len(s.input) {
		return token{kind: tokenEOF, offset: start}, nil
	}

	switch c := s.input[s.pos]; {
	case c == '{':
		s.pos++
		return token{kind: tokenOpenBrace, text: "{", offset: start}, nil
	case c == '}':
		s.pos++
		return token{kind: tokenCloseBrace, text: "}", offset: start}, nil
	case c == '=':
		s.pos++
		return token{kind: tokenAssign, text: "=", offset: start}, nil
	case c == ',':
		s.pos++
		return token{kind: tokenComma, text: ",", offset: start}, nil
	case c == '"':
		return s.scanString()
	case c == '[':
		return s.scanBracketKey()
	case c == '-' || c >= '0' && c <= '9':
		return s.scanNumber()
	case isIdentStart(c):
		return s.scanIdent()
	default:
		return token{}, fmt.Errorf("%w: unexpected character %q at offset %d", ErrMalformedLiteral, string(c), start)
	}
}

// skipInsignificant consumes whitespace and "--" line comments. A lone
// "-" is left in place for the number scanner.
func (s *scanner) skipInsignificant() {
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.pos++
		case c == '-' && s.pos+1 < len(s.input) && s.input[s.pos+1] == '-':
			if idx := strings.IndexByte(s.input[s.pos:], '\n'); idx >= 0 {
				s.pos += idx + 1
			} else {
				s.pos = len(s.input)
			}
		default:
			return
		}
	}
}

func (s *scanner) scanString() (token, error) {
	start := s.pos
	s.pos++ // opening quote
	end := strings.IndexByte(s.input[s.pos:], '"')
	if end < 0 {
		return token{}, fmt.Errorf("%w: unterminated string at offset %d", ErrMalformedLiteral, start)
	}
	text := s.input[s.pos : s.pos+end]
	s.pos += end + 1
	return token{kind: tokenString, text: text, offset: start}, nil
}

// scanBracketKey handles the quoted bracketed key form ["Key.Sub"],
// normalizing it to the plain key text.
func (s *scanner) scanBracketKey() (token, error) {
	start := s.pos
	s.pos++ // '['
	s.skipInsignificant()
	if s.pos >= len(s.input) || s.input[s.pos] != '"' {
		return token{}, fmt.Errorf("%w: expected quoted key after '[' at offset %d", ErrMalformedLiteral, start)
	}
	str, err := s.scanString()
	if err != nil {
		return token{}, err
	}
	s.skipInsignificant()
	if s.pos >= len(s.input) || s.input[s.pos] != ']' {
		return token{}, fmt.Errorf("%w: expected ']' to close key at offset %d", ErrMalformedLiteral, start)
	}
	s.pos++
	return token{kind: tokenBracketKey, text: str.text, offset: start}, nil
}

func (s *scanner) scanNumber() (token, error) {
	start := s.pos
	if s.input[s.pos] == '-' {
		s.pos++
	}
	digits := 0
	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		s.pos++
		digits++
	}
	if s.pos < len(s.input) && s.input[s.pos] == '.' {
		s.pos++
		for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
			s.pos++
			digits++
		}
	}
	if digits == 0 {
		return token{}, fmt.Errorf("%w: malformed number at offset %d", ErrMalformedLiteral, start)
	}
	if s.pos < len(s.input) && (s.input[s.pos] == 'e' || s.input[s.pos] == 'E') {
		mark := s.pos
		s.pos++
		if s.pos < len(s.input) && (s.input[s.pos] == '+' || s.input[s.pos] == '-') {
			s.pos++
		}
		expDigits := 0
		for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
			s.pos++
			expDigits++
		}
		if expDigits == 0 {
			// Not an exponent after all; leave the 'e' for the
			// next token.
			s.pos = mark
		}
	}
	return token{kind: tokenNumber, text: s.input[start:s.pos], offset: start}, nil
}

func (s *scanner) scanIdent() (token, error) {
	start := s.pos
	for s.pos < len(s.input) && isIdentPart(s.input[s.pos]) {
		s.pos++
	}
	return token{kind: tokenIdent, text: s.input[start:s.pos], offset: start}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '.'
}
