package scanner

// Token is a lexical token of the Quill language.
type Token int

// These are all the tokens of the Quill language.
const (
	// EOF is reserved for future use; the scanner reports end of input
	// through the second return value of Scan instead of emitting it.
	EOF Token = iota
	COMMENT

	literalBeg
	// IDENT and the following are Quill literal tokens.
	IDENT  // main
	NUMBER // 12345 or 12345.67
	STRING // "abc", reserved: no scanning rule produces it yet
	literalEnd

	operatorBeg
	// ADD and the following are Quill operators.
	ADD // +
	SUB // -
	MUL // *
	DIV // /
	MOD // %
	AND // &
	OR  // |
	NOT // !

	GT  // >
	GTE // >=
	EQ  // ==
	NEQ // !=
	LT  // <
	LTE // <=
	operatorEnd

	SEMICOLON // ;
	COLON     // :
	COMMA     // ,
	ASSIGN    // =
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // {
	RBRACKET  // }
	LSBRACKET // [
	RSBRACKET // ]

	keywordBeg
	// LET and the following are Quill keywords.
	LET
	FN
	VOID
	TRUE
	FALSE
	IF
	ELSE
	WHILE
	RETURN
	BREAK
	keywordEnd
)

var tokens = [...]string{
	EOF:     "EOF",
	COMMENT: "COMMENT",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	ADD: "+",
	SUB: "-",
	MUL: "*",
	DIV: "/",
	MOD: "%",
	AND: "&",
	OR:  "|",
	NOT: "!",

	GT:  ">",
	GTE: ">=",
	EQ:  "==",
	NEQ: "!=",
	LT:  "<",
	LTE: "<=",

	SEMICOLON: ";",
	COLON:     ":",
	COMMA:     ",",
	ASSIGN:    "=",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "{",
	RBRACKET:  "}",
	LSBRACKET: "[",
	RSBRACKET: "]",

	LET:    "let",
	FN:     "fn",
	VOID:   "void",
	TRUE:   "true",
	FALSE:  "false",
	IF:     "if",
	ELSE:   "else",
	WHILE:  "while",
	RETURN: "return",
	BREAK:  "break",
}

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token)
	for tok := keywordBeg + 1; tok < keywordEnd; tok++ {
		keywords[tokens[tok]] = tok
	}
}

// String returns the string representation of the token.
func (tok Token) String() string {
	if tok >= 0 && tok < Token(len(tokens)) {
		return tokens[tok]
	}
	return ""
}

// IsLiteral returns true for literal tokens.
func (tok Token) IsLiteral() bool { return tok > literalBeg && tok < literalEnd }

// IsOperator returns true for operator tokens.
func (tok Token) IsOperator() bool { return tok > operatorBeg && tok < operatorEnd }

// IsKeyword returns true for keyword tokens.
func (tok Token) IsKeyword() bool { return tok > keywordBeg && tok < keywordEnd }

// Tokstr returns a literal if provided, otherwise returns the token string.
func Tokstr(tok Token, lit string) string {
	if lit != "" {
		return lit
	}
	return tok.String()
}

// Lookup returns the token associated with a given string.
// Quill keywords are case sensitive: "let" is a keyword, "Let" an identifier.
func Lookup(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// AllKeywords returns all defined tokens corresponding to keywords.
func AllKeywords() []Token {
	toks := make([]Token, 0, len(keywords))
	for _, tok := range keywords {
		toks = append(toks, tok)
	}
	return toks
}

// TokenInfo holds information about a token.
type TokenInfo struct {
	Tok Token
	Lit string
}
