/*
Package purefuncseq provides an immutable sequence type with a single
primitive operation: the right fold.

# Overview

A sequence is built from exactly two constructors:

	Node(value, rest)  // one value and the remainder of the sequence
	End                // the empty terminator

and Fold is nothing more than constructor replacement. Given a rule for
Node and a value for End, Fold walks the structure and substitutes:

	Node(1, Node(2, Node(3, End)))
	   c (1,    c (2,    c (3, b )))   // Fold(c, b, s)

With c = add and b = 0 the substitution reads c(1, c(2, c(3, 0))) = 6.
With c = Node and b = End the substitution rebuilds the sequence
unchanged. Every other operation in this package is one Fold call with a
different pair of replacement rules.

# Deriving Map, Filter and friends

Map keeps every Node and rewrites the value inside it:

	Map(f, s) = Fold((x, rest) -> Node(f(x), rest), End, s)

Filter decides per value whether to rebuild the Node or to drop it,
passing the folded remainder through untouched:

	Filter(keep, s) = Fold((x, rest) -> keep(x) ? Node(x, rest) : rest, End, s)

Concat folds one sequence with Node itself as the rule, using the second
sequence in place of End. Len, Any, All and Contains are folds whose
results are counts and booleans rather than sequences.

# Threading state: Reverse without mutation

Fold hands each rule the already-folded remainder, so information flows
right to left. Reverse needs the opposite flow, and gets it by folding
into a function: each step returns a closure that prepends its value to
an accumulator and passes the grown accumulator inward:

	prepend := Fold(
	    (x, rest) -> acc -> rest(Node(x, acc)),
	    acc -> acc,
	    s)
	Reverse(s) = prepend(End)

Applying the folded function runs the closures left to right, so the
first value ends up deepest in the accumulator. No variable is ever
assigned twice; the "state" lives in function arguments. FoldLeft and
Take are the same trick with an accumulator and a countdown respectively.

# Fusion

A pipeline like

	Fold(add, 0, Filter(isOdd, Map(double, s)))

traverses three times and allocates two intermediate sequences. Because
each stage is itself a fold, the stages can be fused by rewriting rules
instead of sequences:

	Fold(MapRule(double, FilterRule(isOdd, add)), 0, s)

computes the same result in a single traversal with no intermediate
structure. MapRule and FilterRule are ordinary functions; fusion here is
something the caller opts into, not a transformation the compiler
performs behind your back. The laws the rules satisfy are checked in
this package's tests:

	Fold(MapRule(f, c), b, s)     == Fold(c, b, Map(f, s))
	Fold(FilterRule(p, c), b, s)  == Fold(c, b, Filter(p, s))

# Immutability and sharing

Sequences are never mutated after construction. Node(0, s) shares all of
s rather than copying it, and Concat(a, b) copies only a's spine. This
is safe for exactly one reason: no operation writes to a node, ever.
The zero value of Seq is End, so a Seq field or variable is usable
without initialization.

Sequences are assumed acyclic and finite. Fold does not detect cycles;
its behavior on a malformed spine is undefined.

# Package Import

	import seq "github.com/Pure-Company/purefuncseq"

	s := seq.New(1, 2, 3)
	total := seq.Fold(func(x, sum int) int { return x + sum }, 0, s)
*/
package purefuncseq
