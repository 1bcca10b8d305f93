// Package dataset turns flat (actor, title) records into the two inverted
// indexes used to build the co-appearance graph.
//
// Records arrive in input order, and that order is preserved everywhere:
// Names() and Titles() list keys by first appearance, and each posting list
// keeps duplicates in the order they were added. Downstream traversal
// tie-breaks depend on it.
//
// Input format (ReadTSV):
//
//	Kevin Bacon (I)<TAB>Footloose (1984)
//	Lori Singer<TAB>Footloose (1984)
package dataset
