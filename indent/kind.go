package indent

import (
	"fmt"
	"strings"
)

// Kind is the character an indentation unit is built from.
type Kind uint8

const (
	Space Kind = iota + 1
	Tab
)

// Char returns the canonical single character of k.
func (k Kind) Char() byte {
	switch k {
	case Space:
		return ' '
	case Tab:
		return '\t'
	}
	panic(fmt.Sprintf("indent: invalid kind %d", uint8(k)))
}

// Repeat returns n copies of the kind's character. n <= 0 yields "".
func (k Kind) Repeat(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(k.Char()), n)
}

func (k Kind) String() string {
	switch k {
	case Space:
		return "space"
	case Tab:
		return "tab"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func kindOf(ch byte) (Kind, bool) {
	switch ch {
	case ' ':
		return Space, true
	case '\t':
		return Tab, true
	}
	return 0, false
}
