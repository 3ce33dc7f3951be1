// Package compare is the safety gate of the formatter: it decides whether two
// sources have the same syntax tree once layout is ignored.
//
// Both sides are parsed and projected to a Key tree. The projection drops
// comments, blank lines, redundant parentheses, tuple parenthesization and
// inline-vs-block bodies; it keeps node kinds, operators, names, literal
// values and the order of everything.
package compare
