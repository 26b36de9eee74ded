package predict

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. For tokens produced from a grammar's
// terminals the token type is the column of the terminal in the parse table.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals of a grammar.
//
// An example would be the atomic terminal 'id' of a character grammar:
//
//    TokType = 5           // column of terminal 'id' in the parse table
//    Lexeme  = "id"        // lexeme as it appeared in the input stream
//    Span    = 3…5         // occured from position 3 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes a token covers.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the empty span (0…0).
func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
