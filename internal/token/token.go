package token

import (
	"fmt"
	"strconv"
)

type Type int

const (
	EOF Type = iota
	KEYWORD
	STRING
	INT
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case KEYWORD:
		return "KEYWORD"
	case STRING:
		return "STRING"
	case INT:
		return "INT"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type and literal value.
// Keywords carry their upper-cased text; INT tokens also carry the parsed Int.
type Token struct {
	Type  Type
	Value string
	Int   int64
}

func Keyword(v string) Token {
	return Token{Type: KEYWORD, Value: v}
}

func String(v string) Token {
	return Token{Type: STRING, Value: v}
}

func Int(v int64) Token {
	return Token{Type: INT, Value: strconv.FormatInt(v, 10), Int: v}
}

func (t Token) Is(typ Type, value string) bool {
	return t.Type == typ && t.Value == value
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case STRING:
		return fmt.Sprintf("%s(%q)", t.Type, t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
}
