package taglog

import "unicode"

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenTag
	tokenPlus   // +
	tokenMinus  // -
	tokenStar   // *
	tokenAmp    // &
	tokenPipe   // |
	tokenBang   // !
	tokenLParen // (
	tokenRParen // )
)

// token is a lexical token of the tag expression grammar.
type token struct {
	typ tokenType
	val string
}

// lexer tokenizes a tag expression left to right. Whitespace separates
// tokens and is never part of a tag name; each operator character is a
// single-character token; any maximal run of other non-whitespace
// characters is one tag token. There is no escape syntax, so a tag name
// containing an operator character cannot be expressed literally.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// nextToken returns the next token from the input.
func (l *lexer) nextToken() token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return token{typ: tokenEOF}
	}

	ch := l.input[l.pos]
	if typ, ok := operatorTokens[ch]; ok {
		l.pos++
		return token{typ: typ, val: string(ch)}
	}

	return l.readTag()
}

var operatorTokens = map[byte]tokenType{
	'+': tokenPlus,
	'-': tokenMinus,
	'*': tokenStar,
	'&': tokenAmp,
	'|': tokenPipe,
	'!': tokenBang,
	'(': tokenLParen,
	')': tokenRParen,
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(rune(l.input[l.pos])) {
		l.pos++
	}
}

func (l *lexer) readTag() token {
	start := l.pos
	for l.pos < len(l.input) && isTagChar(l.input[l.pos]) {
		l.pos++
	}
	return token{typ: tokenTag, val: l.input[start:l.pos]}
}

func isTagChar(ch byte) bool {
	if unicode.IsSpace(rune(ch)) {
		return false
	}
	_, op := operatorTokens[ch]
	return !op
}
