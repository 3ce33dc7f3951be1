// Package ast is the syntax tree of a Vyper module.
//
// The tree is a plain pointer tree: every node owns its children and there are
// no back references. Comments and blank-line runs are stored as children of
// the node they annotate (Leading, Trailing, Dangling), so a rewrite moves
// them together with their anchor. Trees are built once by the parser and only
// read afterwards.
package ast
