package formula

import (
	"strconv"
	"strings"
)

// serialize renders f in the canonical surface syntax: fully
// parenthesised, no redundant whitespace, fresh variables as fN.
//
// This is where the reference implementation's known serializer bug
// is fixed: IsImpliedBy renders with '<', never '+'.
func serialize(f *Node) string {
	var b strings.Builder
	writeNode(&b, f)
	return b.String()
}

func writeNode(b *strings.Builder, f *Node) {
	switch f.Kind {
	case KindVariable:
		writeVar(b, f.Var)
	case KindTrue:
		b.WriteByte('T')
	case KindFalse:
		b.WriteByte('F')
	case KindNot:
		b.WriteByte('-')
		writeNode(b, f.Children[0])
	case KindAnd:
		writeChain(b, f.Children, '+')
	case KindOr:
		writeChain(b, f.Children, '*')
	case KindXor:
		writeBinary(b, f.Children[0], '%', f.Children[1])
	case KindIff:
		writeBinary(b, f.Children[0], '=', f.Children[1])
	case KindImplies:
		writeBinary(b, f.Children[0], '>', f.Children[1])
	case KindIsImpliedBy:
		// Fixed rendering: '<', not the reference's buggy '+'.
		writeBinary(b, f.Children[0], '<', f.Children[1])
	case KindExists:
		b.WriteByte('E')
		writeVar(b, f.Var)
		b.WriteByte('.')
		writeNode(b, f.Children[0])
	case KindForEach:
		b.WriteByte('A')
		writeVar(b, f.Var)
		b.WriteByte('.')
		writeNode(b, f.Children[0])
	}
}

func writeVar(b *strings.Builder, id int) {
	if id < 0 {
		b.WriteByte('f')
		b.WriteString(strconv.Itoa(-id))
		return
	}
	b.WriteString(strconv.Itoa(id))
}

func writeChain(b *strings.Builder, children []*Node, op byte) {
	b.WriteByte('(')
	for i, c := range children {
		if i > 0 {
			b.WriteByte(op)
		}
		writeNode(b, c)
	}
	b.WriteByte(')')
}

func writeBinary(b *strings.Builder, left *Node, op byte, right *Node) {
	b.WriteByte('(')
	writeNode(b, left)
	b.WriteByte(op)
	writeNode(b, right)
	b.WriteByte(')')
}
