package expr

import "strings"

// Parse tokenizes and parses text into an expression tree without compiling it.
//
// Grammar (low → high precedence):
//
//	expr    := term   { ("+" | "-") term }
//	term    := unary  { ("*" | "/") unary }
//	unary   := ("+" | "-") unary | power
//	power   := primary [ ("^" | "**") unary ]
//	primary := number | ident | ident "(" args ")" | "(" expr ")"
//	args    := expr { "," expr }
//
// Errors:
//   - every failure matches errors.Is(err, ErrParse); the concrete kind is one
//     of ErrEmptyExpression, ErrInvalidToken, ErrUnbalancedParens,
//     ErrUnexpectedToken, ErrUnexpectedEnd, ErrUnknownIdentifier,
//     ErrUnknownFunction or ErrArity.
//
// Complexity: O(len(text)) time, recursion depth bounded by nesting depth.
func Parse(text string, opts ...Option) (Node, error) {
	cfg := gatherOptions(opts...)

	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	if toks[0].kind == tokEOF {
		return nil, syntaxErrorf(ErrEmptyExpression, 0, "%q", strings.TrimSpace(text))
	}

	p := &parser{toks: toks, cfg: cfg}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	// Anything left over is either a stray ")" or two operands in a row.
	if t := p.peek(); t.kind != tokEOF {
		if t.kind == tokRParen {
			return nil, syntaxErrorf(ErrUnbalancedParens, t.pos, "unmatched %s", t.describe())
		}
		return nil, syntaxErrorf(ErrUnexpectedToken, t.pos, "%s after complete expression", t.describe())
	}

	return root, nil
}

// parser is a single-use recursive-descent parser over a token slice.
type parser struct {
	toks []token
	pos  int
	cfg  options
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokPlus && t.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: t.text[0], Left: left, Right: right}
	}
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokStar && t.kind != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: t.text[0], Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	t := p.peek()
	if t.kind == tokPlus || t.kind == tokMinus {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: t.text[0], Operand: operand}, nil
	}

	return p.parsePower()
}

func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	p.next()
	// The exponent goes through parseUnary, which recurses back into
	// parsePower: right associativity and signed exponents both fall out.
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &BinaryOp{Op: '^', Left: base, Right: exp}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return &Number{Value: t.num}, nil

	case tokIdent:
		if p.peek().kind == tokLParen {
			return p.parseCall(t)
		}
		if t.text == p.cfg.variable {
			return &Variable{Name: t.text}, nil
		}
		if v, ok := constants[t.text]; ok {
			return &Number{Value: v, Name: t.text}, nil
		}
		if _, ok := builtins[t.text]; ok {
			return nil, syntaxErrorf(ErrUnexpectedToken, t.pos, "function %q used without arguments", t.text)
		}
		return nil, syntaxErrorf(ErrUnknownIdentifier, t.pos, "%q", t.text)

	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, syntaxErrorf(ErrUnbalancedParens, t.pos, "\"(\" not closed, found %s", closing.describe())
		}
		return inner, nil

	case tokEOF:
		return nil, syntaxErrorf(ErrUnexpectedEnd, t.pos, "operand expected")

	default:
		return nil, syntaxErrorf(ErrUnexpectedToken, t.pos, "%s where an operand was expected", t.describe())
	}
}

// parseCall parses "name(args)"; name has been consumed, the "(" has not.
func (p *parser) parseCall(name token) (Node, error) {
	fn, ok := builtins[name.text]
	if !ok {
		return nil, syntaxErrorf(ErrUnknownFunction, name.pos, "%q", name.text)
	}
	open := p.next()

	var args []Node
	if p.peek().kind != tokRParen {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if closing := p.next(); closing.kind != tokRParen {
		return nil, syntaxErrorf(ErrUnbalancedParens, open.pos, "%s( not closed, found %s", name.text, closing.describe())
	}
	if !fn.accepts(len(args)) {
		return nil, syntaxErrorf(ErrArity, name.pos, "%s takes %s, got %d", name.text, fn.arityText(), len(args))
	}

	return &Call{Name: name.text, Args: args}, nil
}
