package lexer

import (
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `fn add(a, b) {
  return a + b;
}

if x >= 10 {
  x = x - 1;
} else {
  x = 0;
}
`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_FN, "fn"},
		{TOKEN_IDENT, "add"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "a"},
		{TOKEN_COMMA, ","},
		{TOKEN_IDENT, "b"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_RETURN, "return"},
		{TOKEN_IDENT, "a"},
		{TOKEN_PLUS, "+"},
		{TOKEN_IDENT, "b"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_IF, "if"},
		{TOKEN_IDENT, "x"},
		{TOKEN_GTE, ">="},
		{TOKEN_NUMBER, "10"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_IDENT, "x"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_IDENT, "x"},
		{TOKEN_MINUS, "-"},
		{TOKEN_NUMBER, "1"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_ELSE, "else"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_IDENT, "x"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_NUMBER, "0"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_EOF, ""},
	}

	l := New(input, "test.zed")

	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected lex error: %v", i, err)
		}

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := "+-*/==!=<><=>=&&||"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_PLUS, "+"},
		{TOKEN_MINUS, "-"},
		{TOKEN_STAR, "*"},
		{TOKEN_SLASH, "/"},
		{TOKEN_EQ, "=="},
		{TOKEN_NEQ, "!="},
		{TOKEN_LT, "<"},
		{TOKEN_GT, ">"},
		{TOKEN_LTE, "<="},
		{TOKEN_GTE, ">="},
		{TOKEN_AND, "&&"},
		{TOKEN_OR, "||"},
		{TOKEN_EOF, ""},
	}

	l := New(input, "test.zed")

	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected lex error: %v", i, err)
		}

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s", i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	input := "x = 10;\ny = 2;"

	tests := []struct {
		expectedType TokenType
		line, column int
	}{
		{TOKEN_IDENT, 1, 1},
		{TOKEN_ASSIGN, 1, 3},
		{TOKEN_NUMBER, 1, 5},
		{TOKEN_SEMICOLON, 1, 7},
		{TOKEN_IDENT, 2, 1},
		{TOKEN_ASSIGN, 2, 3},
		{TOKEN_NUMBER, 2, 5},
		{TOKEN_SEMICOLON, 2, 6},
		{TOKEN_EOF, 2, 7},
	}

	l := New(input, "test.zed")

	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected lex error: %v", i, err)
		}

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s", i, tt.expectedType, tok.Type)
		}

		if tok.Line != tt.line || tok.Column != tt.column {
			t.Fatalf("tests[%d] - position wrong. expected=%d:%d, got=%d:%d",
				i, tt.line, tt.column, tok.Line, tok.Column)
		}
	}
}

func TestNumberOverflow(t *testing.T) {
	l := New("99999999999999999999", "test.zed")

	_, err := l.NextToken()
	if err == nil {
		t.Fatalf("expected an overflow error, got none")
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\nb\tc\\d\"e"`, "test.zed")

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}

	want := "a\nb\tc\\d\"e"
	if tok.Literal != want {
		t.Fatalf("literal wrong. expected=%q, got=%q", want, tok.Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"abc`, "test.zed")

	_, err := l.NextToken()
	if err == nil {
		t.Fatalf("expected an unterminated-string error, got none")
	}
}

func TestUnknownDirective(t *testing.T) {
	l := New("@bogus", "test.zed")

	_, err := l.NextToken()
	if err == nil {
		t.Fatalf("expected an unknown-directive error, got none")
	}
}

func TestIncludeDirective(t *testing.T) {
	l := New(`@include "std/io.zed";`, "test.zed")

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}

	if tok.Type != TOKEN_INCLUDE {
		t.Fatalf("expected TOKEN_INCLUDE, got %s", tok.Type)
	}
}

func TestCommentsAndLoneSlash(t *testing.T) {
	input := `// a comment
/* block
   comment */
a / b`

	l := New(input, "test.zed")

	want := []TokenType{TOKEN_IDENT, TOKEN_SLASH, TOKEN_IDENT, TOKEN_EOF}
	for i, wt := range want {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected lex error: %v", i, err)
		}

		if tok.Type != wt {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s", i, wt, tok.Type)
		}
	}
}
