// Package token defines the token stream contract the parser consumes (§6).
// The scanner itself is an external collaborator per spec; internal/lexer
// ships a concrete reference implementation so the CLI and tests are
// runnable end to end.
package token

import "github.com/orcinuscc/orcinus/internal/location"

// ID identifies a token kind.
type ID int

const (
	Error ID = iota
	EndFile

	// Layout
	NewLine
	Indent
	Undent

	// Literals and identifiers
	Name
	Number
	String

	// Keywords
	Def
	Class
	Struct
	Pass
	Return
	If
	Elif
	Else
	While
	From
	Import
	As

	// Punctuation
	Colon
	Comma
	Dot
	Equals
	Arrow
	LeftParenthesis
	RightParenthesis
	LeftSquare
	RightSquare
	Ellipsis

	// Operators
	Plus
	Minus
	Star
	Slash
	DoubleSlash
	DoubleStar
	Tilde
)

var names = map[ID]string{
	Error:             "Error",
	EndFile:           "EndFile",
	NewLine:           "NewLine",
	Indent:            "Indent",
	Undent:            "Undent",
	Name:              "Name",
	Number:            "Number",
	String:            "String",
	Def:               "Def",
	Class:             "Class",
	Struct:            "Struct",
	Pass:              "Pass",
	Return:            "Return",
	If:                "If",
	Elif:              "Elif",
	Else:              "Else",
	While:             "While",
	From:              "From",
	Import:            "Import",
	As:                "As",
	Colon:             "Colon",
	Comma:             "Comma",
	Dot:               "Dot",
	Equals:            "Equals",
	Arrow:             "Arrow",
	LeftParenthesis:   "LeftParenthesis",
	RightParenthesis:  "RightParenthesis",
	LeftSquare:        "LeftSquare",
	RightSquare:       "RightSquare",
	Ellipsis:          "Ellipsis",
	Plus:              "Plus",
	Minus:             "Minus",
	Star:              "Star",
	Slash:             "Slash",
	DoubleSlash:       "DoubleSlash",
	DoubleStar:        "DoubleStar",
	Tilde:             "Tilde",
}

// String renders an ID the way diagnostics display it: camel-case split to
// lower words ("LeftSquare" -> "left square"), matching the teacher's
// get_error_message convention (see original_source/orcinus/language/parser.py).
func (id ID) String() string {
	name, ok := names[id]
	if !ok {
		return "unknown"
	}

	var out []byte
	for i := 0; i < len(name); i++ {
		c := name[i]
		if i > 0 && c >= 'A' && c <= 'Z' {
			out = append(out, ' ')
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

// Keywords maps reserved words to their token id. Anything not in this map
// lexes as Name; the analyzer, not the scanner, special-cases True/False/
// void/bool/int/str (§4.6).
var Keywords = map[string]ID{
	"def":    Def,
	"class":  Class,
	"struct": Struct,
	"pass":   Pass,
	"return": Return,
	"if":     If,
	"elif":   Elif,
	"else":   Else,
	"while":  While,
	"from":   From,
	"import": Import,
	"as":     As,
}

// Token is a single lexeme with its location (§6).
type Token struct {
	ID       ID
	Lexeme   string
	Location location.Location
}
