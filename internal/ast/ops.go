package ast

// Binding power of binary operators, higher binds tighter.
const (
	PrecBitOr = iota + 1
	PrecBitXor
	PrecBitAnd
	PrecShift
	PrecArith
	PrecTerm
	PrecPower
)

// BinaryPrec returns the binding power of a binary operator, 0 if op is not
// one.
func BinaryPrec(op string) int {
	switch op {
	case "|":
		return PrecBitOr
	case "^":
		return PrecBitXor
	case "&":
		return PrecBitAnd
	case "<<", ">>":
		return PrecShift
	case "+", "-":
		return PrecArith
	case "*", "/", "//", "%":
		return PrecTerm
	case "**":
		return PrecPower
	}
	return 0
}
