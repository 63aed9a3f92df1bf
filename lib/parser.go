package lib

// Parse lexes input and checks it against
//
//	Expr   := Term (('+' | '-') Term)*
//	Term   := Factor (('*' | '/') Factor)*
//	Factor := '(' Expr ')' | '-' Factor | Integer
//
// returning the infix node sequence in the order tokens were consumed.
func Parse(input string) (Expression, error) {
	stream, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return parseTokens(stream)
}

func parseTokens(reader tokenReader) (Expression, error) {
	p := parser{reader: reader, expr: Expression{}}

	err := p.scanExpr()
	if err != nil {
		return nil, err
	}

	// A stray ')' or anything else left over after a complete expression.
	next := p.reader.Peek()
	if next.Kind != TokenEndOfStream {
		if next.isSymbol(")") {
			return nil, &Error{Kind: UnbalancedParens, Token: next}
		}
		return nil, &Error{Kind: ExpectedOperator, Token: next}
	}

	return p.expr, nil
}

type parser struct {
	reader tokenReader
	expr   Expression
}

func (p *parser) add(n MathNode) {
	p.expr = append(p.expr, n)
}

// Expr := Term (('+' | '-') Term)*
func (p *parser) scanExpr() error {
	err := p.scanTerm()
	if err != nil {
		return err
	}

	for {
		opToken := p.reader.Peek()
		if !opToken.isSymbol("+") && !opToken.isSymbol("-") {
			break
		}
		p.reader.Next()
		p.add(operatorNode(opToken.Lexeme[0], PrecedenceAdd, AssocLeft))

		err = p.scanTerm()
		if err != nil {
			return err
		}
	}

	return nil
}

// Term := Factor (('*' | '/') Factor)*
func (p *parser) scanTerm() error {
	err := p.scanFactor()
	if err != nil {
		return err
	}

	for {
		opToken := p.reader.Peek()
		if opToken.isSymbol("*") || opToken.isSymbol("/") {
			p.reader.Next()
			p.add(operatorNode(opToken.Lexeme[0], PrecedenceMultiply, AssocLeft))

			err = p.scanFactor()
			if err != nil {
				return err
			}
			continue
		}

		if !endsTerm(opToken) {
			return &Error{Kind: ExpectedOperator, Token: opToken}
		}
		return nil
	}
}

// endsTerm reports whether tok may legally follow a complete term.
func endsTerm(tok Token) bool {
	return tok.Kind == TokenEndOfStream ||
		tok.isSymbol("+") ||
		tok.isSymbol("-") ||
		tok.isSymbol(")")
}

// Factor := '(' Expr ')' | '-' Factor | Integer
func (p *parser) scanFactor() error {
	tok := p.reader.Peek()

	// Parentheticals
	if tok.isSymbol("(") {
		p.reader.Next()
		p.add(operatorNode('(', PrecedenceGroup, AssocLeft))

		err := p.scanExpr()
		if err != nil {
			return err
		}

		_, err = p.requireSymbol(")", UnbalancedParens)
		if err != nil {
			return err
		}
		p.add(operatorNode(')', PrecedenceGroup, AssocLeft))
		return nil
	}

	// Unary minus
	if tok.isSymbol("-") {
		p.reader.Next()
		p.add(operatorNode('-', PrecedenceUnary, AssocRight))
		return p.scanFactor()
	}

	operand, err := p.requireToken(TokenInteger, ExpectedOperand)
	if err != nil {
		return err
	}
	p.add(operandNode(operand.Value))
	return nil
}

// requireToken consumes the next token if it has the wanted kind. Otherwise
// nothing is consumed and failure is returned.
func (p *parser) requireToken(kind TokenKind, failure ErrorKind) (Token, error) {
	next := p.reader.Peek()
	if next.Kind != kind {
		return Token{}, &Error{Kind: failure, Token: next}
	}
	return p.reader.Next(), nil
}

func (p *parser) requireSymbol(sym string, failure ErrorKind) (Token, error) {
	next := p.reader.Peek()
	if !next.isSymbol(sym) {
		return Token{}, &Error{Kind: failure, Token: next}
	}
	return p.reader.Next(), nil
}
