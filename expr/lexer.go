package expr

import (
	"strconv"
)

// tokenKind classifies a lexeme.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPow // "^" or "**"
	tokLParen
	tokRParen
	tokComma
)

// token is one lexeme with its byte offset in the source.
type token struct {
	kind tokenKind
	text string
	num  float64 // valid for tokNumber
	pos  int
}

// describe renders a token for error messages.
func (t token) describe() string {
	if t.kind == tokEOF {
		return "end of input"
	}

	return strconv.Quote(t.text)
}

// lex splits src into tokens, always terminated by a tokEOF.
// Complexity: O(len(src)).
func lex(src string) ([]token, error) {
	toks := make([]token, 0, len(src)/2+1)
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			end := scanNumber(src, i)
			v, err := strconv.ParseFloat(src[i:end], 64)
			if err != nil {
				// overflow, e.g. "1e999"
				return nil, syntaxErrorf(ErrInvalidToken, i, "number %q out of range", src[i:end])
			}
			toks = append(toks, token{kind: tokNumber, text: src[i:end], num: v, pos: i})
			i = end
		case isIdentStart(c):
			end := i + 1
			for end < len(src) && isIdentPart(src[end]) {
				end++
			}
			toks = append(toks, token{kind: tokIdent, text: src[i:end], pos: i})
			i = end
		case c == '*' && i+1 < len(src) && src[i+1] == '*':
			toks = append(toks, token{kind: tokPow, text: "**", pos: i})
			i += 2
		default:
			kind, ok := singleCharTokens[c]
			if !ok {
				return nil, syntaxErrorf(ErrInvalidToken, i, "%q", string(rune(c)))
			}
			toks = append(toks, token{kind: kind, text: string(c), pos: i})
			i++
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(src)})

	return toks, nil
}

var singleCharTokens = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'^': tokPow,
	'(': tokLParen,
	')': tokRParen,
	',': tokComma,
}

// scanNumber returns the end offset of the numeric literal starting at i.
// An exponent marker is consumed only when digits follow it, so "2e" lexes
// as the number 2 followed by the identifier e.
func scanNumber(src string, i int) int {
	j := i
	for j < len(src) && isDigit(src[j]) {
		j++
	}
	if j < len(src) && src[j] == '.' {
		j++
		for j < len(src) && isDigit(src[j]) {
			j++
		}
	}
	if j < len(src) && (src[j] == 'e' || src[j] == 'E') {
		k := j + 1
		if k < len(src) && (src[k] == '+' || src[k] == '-') {
			k++
		}
		if k < len(src) && isDigit(src[k]) {
			for k < len(src) && isDigit(src[k]) {
				k++
			}
			j = k
		}
	}

	return j
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }
