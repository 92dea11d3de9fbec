package domain

import "strconv"

type KeyKind int

const (
	KeyInt KeyKind = iota
	KeyText
)

func (k KeyKind) String() string {
	switch k {
	case KeyInt:
		return "number"
	case KeyText:
		return "text"
	default:
		return "unknown"
	}
}

// Key is the tagged union carried by an action command. Whether the kind fits the
// method is checked by each cipher operation, not by the parser.
type Key struct {
	Kind KeyKind
	Int  int64
	Text string
}

func IntKey(v int64) Key {
	return Key{Kind: KeyInt, Int: v}
}

func TextKey(v string) Key {
	return Key{Kind: KeyText, Text: v}
}

func (k Key) String() string {
	if k.Kind == KeyInt {
		return strconv.FormatInt(k.Int, 10)
	}
	return strconv.Quote(k.Text)
}
