package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextToken_Punctuation(t *testing.T) {
	input := `=+(){},;[]:`

	expected := []Token{
		{ASSIGN, "="},
		{PLUS, "+"},
		{LPAREN, "("},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RBRACE, "}"},
		{COMMA, ","},
		{SEMICOLON, ";"},
		{LBRACKET, "["},
		{RBRACKET, "]"},
		{COLON, ":"},
		{EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		got := l.Next()
		assert.Equalf(t, want, got, "token %d", i)
	}
}

func TestNextToken_Program(t *testing.T) {
	input := `
let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
"foobar"
"foo bar"
["a", "b"]
{"a": 1}
`

	expected := []Token{
		{LET, "let"}, {IDENT, "five"}, {ASSIGN, "="}, {INT, "5"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "ten"}, {ASSIGN, "="}, {INT, "10"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "add"}, {ASSIGN, "="}, {FUNCTION, "fn"}, {LPAREN, "("},
		{IDENT, "x"}, {COMMA, ","}, {IDENT, "y"}, {RPAREN, ")"}, {LBRACE, "{"},
		{IDENT, "x"}, {PLUS, "+"}, {IDENT, "y"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {SEMICOLON, ";"},
		{LET, "let"}, {IDENT, "result"}, {ASSIGN, "="}, {IDENT, "add"}, {LPAREN, "("},
		{IDENT, "five"}, {COMMA, ","}, {IDENT, "ten"}, {RPAREN, ")"}, {SEMICOLON, ";"},
		{BANG, "!"}, {MINUS, "-"}, {SLASH, "/"}, {ASTERISK, "*"}, {INT, "5"}, {SEMICOLON, ";"},
		{INT, "5"}, {LT, "<"}, {INT, "10"}, {GT, ">"}, {INT, "5"}, {SEMICOLON, ";"},
		{IF, "if"}, {LPAREN, "("}, {INT, "5"}, {LT, "<"}, {INT, "10"}, {RPAREN, ")"}, {LBRACE, "{"},
		{RETURN, "return"}, {TRUE, "true"}, {SEMICOLON, ";"},
		{RBRACE, "}"}, {ELSE, "else"}, {LBRACE, "{"},
		{RETURN, "return"}, {FALSE, "false"}, {SEMICOLON, ";"},
		{RBRACE, "}"},
		{INT, "10"}, {EQ, "=="}, {INT, "10"}, {SEMICOLON, ";"},
		{INT, "10"}, {NOT_EQ, "!="}, {INT, "9"}, {SEMICOLON, ";"},
		{STRING, "foobar"},
		{STRING, "foo bar"},
		{LBRACKET, "["}, {STRING, "a"}, {COMMA, ","}, {STRING, "b"}, {RBRACKET, "]"},
		{LBRACE, "{"}, {STRING, "a"}, {COLON, ":"}, {INT, "1"}, {RBRACE, "}"},
		{EOF, ""},
	}

	l := New(input)
	for i, want := range expected {
		got := l.Next()
		assert.Equalf(t, want, got, "token %d", i)
	}
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New(`"abc`)
	assert.Equal(t, Token{STRING, "abc"}, l.Next())
	assert.Equal(t, Token{EOF, ""}, l.Next())
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	l := New(`@`)
	assert.Equal(t, Token{ILLEGAL, "@"}, l.Next())
}

func TestNextToken_EOFIsSticky(t *testing.T) {
	l := New(``)
	for i := 0; i < 3; i++ {
		assert.Equal(t, Token{EOF, ""}, l.Next())
	}
}

func TestNextToken_UnderscoreIdentifier(t *testing.T) {
	l := New(`_foo _bar`)
	assert.Equal(t, Token{IDENT, "_foo"}, l.Next())
	assert.Equal(t, Token{IDENT, "_bar"}, l.Next())
}

// Digits are not part of the identifier character class, so a
// digit-starting word lexes as an integer followed by a separate identifier.
func TestNextToken_DigitStartingWordIsIntThenIdent(t *testing.T) {
	l := New(`12abc`)
	assert.Equal(t, Token{INT, "12"}, l.Next())
	assert.Equal(t, Token{IDENT, "abc"}, l.Next())
}
