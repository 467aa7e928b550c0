package taglog

import "fmt"

// parser builds a pattern AST by recursive descent with one token of
// lookahead. Grammar, precedence low to high:
//
//	Expression := Term (("+" | "|" | "-") Term)*
//	Term       := Factor (("*" | "&") Factor)*
//	Factor     := "!" Factor | "(" Expression ")" | Tag
//
// "+" and "|" are OR, "-" is AND-NOT (left-associative, not commutative),
// "*" and "&" are AND, "!" is unary NOT. Parentheses override precedence.
type parser struct {
	lex     *lexer
	current token
}

// parsePattern parses the input and returns the AST root.
// It fails on an empty token stream, an operator where an operand is
// expected, an unmatched parenthesis, or trailing tokens after a complete
// expression — never returning a partial tree.
func parsePattern(input string) (node, error) {
	p := &parser{lex: newLexer(input)}
	p.advance()
	root, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.current.typ != tokenEOF {
		return nil, fmt.Errorf("%w: unexpected %q after complete expression", ErrMalformedPattern, p.current.val)
	}
	return root, nil
}

func (p *parser) advance() {
	p.current = p.lex.nextToken()
}

// parseExpression handles OR and AND-NOT (lowest precedence, left-associative).
func (p *parser) parseExpression() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		var op binaryOp
		switch p.current.typ {
		case tokenPlus, tokenPipe:
			op = opOr
		case tokenMinus:
			op = opAndNot
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryExpr{op: op, left: left, right: right}
	}
}

// parseTerm handles AND.
func (p *parser) parseTerm() (node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.current.typ == tokenStar || p.current.typ == tokenAmp {
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = binaryExpr{op: opAnd, left: left, right: right}
	}

	return left, nil
}

// parseFactor handles NOT, parentheses, and tag leaves.
func (p *parser) parseFactor() (node, error) {
	switch p.current.typ {
	case tokenBang:
		p.advance()
		expr, err := p.parseFactor() // NOT is right-associative
		if err != nil {
			return nil, err
		}
		return notExpr{expr: expr}, nil

	case tokenLParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.current.typ != tokenRParen {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrMalformedPattern)
		}
		p.advance()
		return expr, nil

	case tokenTag:
		name := p.current.val
		p.advance()
		return tagExpr{name: name}, nil

	case tokenEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrMalformedPattern)

	default:
		return nil, fmt.Errorf("%w: unexpected %q where a tag was expected", ErrMalformedPattern, p.current.val)
	}
}
