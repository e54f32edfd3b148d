package purefuncseq

import (
	"fmt"
	"iter"
	"strings"
)

// ============================================================================
// Sequence Type
// ============================================================================

// Seq is an immutable singly-linked sequence of values of type T.
//
// A sequence is one of two things: a Node holding a value and the remainder
// of the sequence, or End, the empty terminator. The zero value of Seq is
// End, so sequences are useful without initialization.
//
// Sequences are never mutated after construction. Every transformation
// returns a new sequence, and remainders are shared structurally between
// old and new sequences, which is safe precisely because nothing ever
// writes to a node.
//
// Example:
//
//	s := purefuncseq.New(1, 2, 3)          // (1 2 3)
//	t := purefuncseq.Node(0, s)            // (0 1 2 3), shares s
//	fmt.Println(s, t)
type Seq[T any] struct {
	spine *node[T]
}

type node[T any] struct {
	value T
	rest  *node[T]
}

// End returns the empty sequence. All End values of the same element type
// are interchangeable; End is also the zero value of Seq.
func End[T any]() Seq[T] {
	return Seq[T]{}
}

// Node returns a new sequence holding value followed by rest.
func Node[T any](value T, rest Seq[T]) Seq[T] {
	return Seq[T]{&node[T]{value: value, rest: rest.spine}}
}

// New builds a sequence from values in order, so New(1, 2, 3) is
// Node(1, Node(2, Node(3, End))).
func New[T any](values ...T) Seq[T] {
	s := End[T]()
	for i := len(values) - 1; i >= 0; i-- {
		s = Node(values[i], s)
	}
	return s
}

// IsEnd reports whether the sequence is empty.
func (s Seq[T]) IsEnd() bool {
	return s.spine == nil
}

// First returns the first value in the sequence, or the zero value of T
// when the sequence is End.
func (s Seq[T]) First() T {
	if s.spine == nil {
		var zero T
		return zero
	}
	return s.spine.value
}

// Rest returns the sequence after the first value. The Rest of End is End.
func (s Seq[T]) Rest() Seq[T] {
	if s.spine == nil {
		return s
	}
	return Seq[T]{s.spine.rest}
}

// Len returns the number of values in the sequence. It is a counting fold.
func (s Seq[T]) Len() int {
	return Fold(func(_ T, n int) int { return n + 1 }, 0, s)
}

// Slice returns the values of the sequence as a slice, in sequence order.
func (s Seq[T]) Slice() []T {
	var out []T
	for n := s.spine; n != nil; n = n.rest {
		out = append(out, n.value)
	}
	return out
}

// String implements fmt.Stringer, rendering the sequence as "(1 2 3)".
func (s Seq[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for n := s.spine; n != nil; n = n.rest {
		if n != s.spine {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.value)
	}
	b.WriteByte(')')
	return b.String()
}

// Equal reports whether two sequences hold equal values in the same order.
func Equal[T comparable](a, b Seq[T]) bool {
	x, y := a.spine, b.spine
	for x != nil && y != nil {
		if x.value != y.value {
			return false
		}
		x, y = x.rest, y.rest
	}
	return x == nil && y == nil
}

// ============================================================================
// Fold Primitive
// ============================================================================

// Fold replaces every constructor of the sequence with a user rule: combine
// is substituted for each Node, receiving the node's value and the already
// folded remainder, and base is substituted for End. The remainder is folded
// before combine sees it, so values are combined right to left:
//
//	Fold(c, b, Node(1, Node(2, Node(3, End))))
//	  == c(1, c(2, c(3, b)))
//
// Fold is total over well-formed sequences and has no error path. It neither
// requires nor enforces purity of combine, but every derived operation in
// this package assumes it. Behavior on a cyclic spine is undefined.
//
// All other transformations in this package are single Fold calls; Fold is
// the only function that inspects the spine recursively.
func Fold[T, R any](combine func(T, R) R, base R, s Seq[T]) R {
	return foldSpine(combine, base, s.spine)
}

func foldSpine[T, R any](combine func(T, R) R, base R, n *node[T]) R {
	if n == nil {
		return base
	}
	return combine(n.value, foldSpine(combine, base, n.rest))
}

// ============================================================================
// Derived Operations
// ============================================================================

// Map returns the sequence of f applied to each value. The rule keeps every
// Node and rewrites its value:
//
//	Fold((x, rest) -> Node(f(x), rest), End, s)
func Map[T, R any](f func(T) R, s Seq[T]) Seq[R] {
	return Fold(func(x T, rest Seq[R]) Seq[R] {
		return Node(f(x), rest)
	}, End[R](), s)
}

// Filter returns the sequence of values for which keep reports true. The
// rule either rebuilds the Node or drops it, yielding the folded remainder
// unchanged.
func Filter[T any](keep func(T) bool, s Seq[T]) Seq[T] {
	return Fold(func(x T, rest Seq[T]) Seq[T] {
		if keep(x) {
			return Node(x, rest)
		}
		return rest
	}, End[T](), s)
}

// Reverse returns the sequence with values in opposite order.
//
// The fold does not build the result directly. Its rule produces a function
// from accumulator to sequence: each step returns a closure that prepends
// its value to the accumulator and hands the extended accumulator to the
// remainder's closure. Applying the folded function to End runs the chain,
// prepending values in left-to-right order. This threads state through a
// fold with no mutable variable anywhere.
func Reverse[T any](s Seq[T]) Seq[T] {
	prepend := Fold(func(x T, rest func(Seq[T]) Seq[T]) func(Seq[T]) Seq[T] {
		return func(acc Seq[T]) Seq[T] {
			return rest(Node(x, acc))
		}
	}, func(acc Seq[T]) Seq[T] { return acc }, s)
	return prepend(End[T]())
}

// FoldLeft combines values left to right. It is derived from Fold by the
// same accumulator-threading trick as Reverse: the fold builds a function
// from accumulator to result, with the identity function substituted for
// End.
func FoldLeft[T, R any](combine func(R, T) R, base R, s Seq[T]) R {
	run := Fold(func(x T, rest func(R) R) func(R) R {
		return func(acc R) R {
			return rest(combine(acc, x))
		}
	}, func(acc R) R { return acc }, s)
	return run(base)
}

// Concat returns a followed by b. Folding a with Node rebuilds its spine on
// top of b; b itself is shared, not copied.
func Concat[T any](a, b Seq[T]) Seq[T] {
	return Fold(Node[T], b, a)
}

// Any reports whether pred holds for at least one value.
func Any[T any](pred func(T) bool, s Seq[T]) bool {
	return Fold(func(x T, rest bool) bool { return pred(x) || rest }, false, s)
}

// All reports whether pred holds for every value. All is true on End.
func All[T any](pred func(T) bool, s Seq[T]) bool {
	return Fold(func(x T, rest bool) bool { return pred(x) && rest }, true, s)
}

// Contains reports whether the sequence holds value.
func Contains[T comparable](value T, s Seq[T]) bool {
	return Any(Eq(value), s)
}

// TakeWhile returns the longest prefix of values for which keep reports
// true. The rule truncates at the first rejected value by substituting End
// for the remainder.
func TakeWhile[T any](keep func(T) bool, s Seq[T]) Seq[T] {
	return Fold(func(x T, rest Seq[T]) Seq[T] {
		if keep(x) {
			return Node(x, rest)
		}
		return End[T]()
	}, End[T](), s)
}

// Take returns the first n values, or the whole sequence when it is shorter
// than n. Like Reverse, the fold produces a function, here from remaining
// count to sequence, so the position index is threaded through the fold
// without a counter variable.
func Take[T any](n int, s Seq[T]) Seq[T] {
	take := Fold(func(x T, rest func(int) Seq[T]) func(int) Seq[T] {
		return func(left int) Seq[T] {
			if left <= 0 {
				return End[T]()
			}
			return Node(x, rest(left-1))
		}
	}, func(int) Seq[T] { return End[T]() }, s)
	return take(n)
}

// ============================================================================
// Monoid Operations
// ============================================================================

// Empty returns End (Monoid identity for concatenation).
func (s Seq[T]) Empty() Seq[T] {
	return End[T]()
}

// Compose returns this sequence followed by other (Monoid operation).
func (s Seq[T]) Compose(other Seq[T]) Seq[T] {
	return Concat(s, other)
}

// Map returns the sequence of f applied to each value. For a transform that
// changes the element type, use the package-level Map.
func (s Seq[T]) Map(f func(T) T) Seq[T] {
	return Map(f, s)
}

// Filter returns the sequence of values for which keep reports true.
func (s Seq[T]) Filter(keep func(T) bool) Seq[T] {
	return Filter(keep, s)
}

// Reverse returns the sequence with values in opposite order.
func (s Seq[T]) Reverse() Seq[T] {
	return Reverse(s)
}

// Take returns the first n values.
func (s Seq[T]) Take(n int) Seq[T] {
	return Take(n, s)
}

// ============================================================================
// Fusion Rules
// ============================================================================

// MapRule fuses a Map stage into a fold rule. Instead of building the
// intermediate sequence Map(f, s) and folding it, fold s once with the
// rewritten rule:
//
//	Fold(MapRule(f, combine), base, s) == Fold(combine, base, Map(f, s))
//
// Rules compose, so a whole Map/Filter pipeline can collapse into a single
// traversal:
//
//	sum := Fold(MapRule(double, FilterRule(isOdd, add)), 0, s)
func MapRule[T, U, R any](f func(T) U, combine func(U, R) R) func(T, R) R {
	return func(x T, rest R) R {
		return combine(f(x), rest)
	}
}

// FilterRule fuses a Filter stage into a fold rule:
//
//	Fold(FilterRule(keep, combine), base, s) == Fold(combine, base, Filter(keep, s))
func FilterRule[T, R any](keep func(T) bool, combine func(T, R) R) func(T, R) R {
	return func(x T, rest R) R {
		if keep(x) {
			return combine(x, rest)
		}
		return rest
	}
}

// ============================================================================
// Iteration
// ============================================================================

// Values returns an iterator over the sequence's values in order, for use
// with range-over-func:
//
//	for v := range s.Values() {
//	    fmt.Println(v)
//	}
func (s Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.spine; n != nil; n = n.rest {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Collect gathers an iterator into a sequence, preserving order.
func Collect[T any](values iter.Seq[T]) Seq[T] {
	var buf []T
	for v := range values {
		buf = append(buf, v)
	}
	return New(buf...)
}

// ============================================================================
// Function Combinators
// ============================================================================

// Identity returns its argument unchanged. It is the unit of function
// composition and the do-nothing transform for Map.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that ignores its argument and always returns
// v. Constant[int](true) is the always-true predicate over int.
func Constant[A, B any](v B) func(A) B {
	return func(A) B {
		return v
	}
}

// Eq returns a predicate reporting equality with v.
func Eq[T comparable](v T) func(T) bool {
	return func(x T) bool {
		return x == v
	}
}
