// Package order contains the Order aggregate: the open order of a table,
// its lines, and the status state machine derived from per-line delivery
// progress. The aggregate owns the merge semantics (repeat submissions for
// a table fold into the open order) and the payment preconditions.
package order
