package purefuncseq_test

import (
	"fmt"

	seq "github.com/Pure-Company/purefuncseq"
)

// ============================================================================
// Example 1: FOLD IS CONSTRUCTOR SUBSTITUTION
// ============================================================================

// Example_foldAsSubstitution shows the whole idea of the package: Fold
// replaces Node with a rule and End with a value, nothing more.
func Example_foldAsSubstitution() {
	s := seq.Node(1, seq.Node(2, seq.Node(3, seq.End[int]())))

	// Substitute add for Node and 0 for End: 1 + (2 + (3 + 0)).
	sum := seq.Fold(func(x, rest int) int { return x + rest }, 0, s)
	fmt.Println("sum:", sum)

	// Substitute the constructors for themselves and the sequence
	// comes back unchanged.
	rebuilt := seq.Fold(seq.Node[int], seq.End[int](), s)
	fmt.Println("rebuilt:", rebuilt)

	// Output:
	// sum: 6
	// rebuilt: (1 2 3)
}

// ============================================================================
// Example 2: DERIVING MAP AND FILTER
// ============================================================================

// Example_derivingMapAndFilter writes Map and Filter by hand as folds,
// then shows the package-level operations agree.
func Example_derivingMapAndFilter() {
	s := seq.New(1, 2, 3)
	double := func(x int) int { return x * 2 }
	isOdd := func(x int) bool { return x%2 == 1 }

	// Map keeps every Node and rewrites the value inside it.
	mapped := seq.Fold(func(x int, rest seq.Seq[int]) seq.Seq[int] {
		return seq.Node(double(x), rest)
	}, seq.End[int](), s)

	// Filter rebuilds the Node or drops it.
	filtered := seq.Fold(func(x int, rest seq.Seq[int]) seq.Seq[int] {
		if isOdd(x) {
			return seq.Node(x, rest)
		}
		return rest
	}, seq.End[int](), s)

	fmt.Println("by hand: ", mapped, filtered)
	fmt.Println("packaged:", seq.Map(double, s), seq.Filter(isOdd, s))

	// Output:
	// by hand:  (2 4 6) (1 3)
	// packaged: (2 4 6) (1 3)
}

// ============================================================================
// Example 3: STATE THREADING - REVERSE WITHOUT MUTATION
// ============================================================================

// Example_reverseWithContinuations folds the sequence into a function from
// accumulator to sequence. Each step prepends its value and passes the
// grown accumulator inward, so applying the folded function to End yields
// the reversal with no variable ever assigned twice.
func Example_reverseWithContinuations() {
	s := seq.New(1, 2, 3)

	prepend := seq.Fold(func(x int, rest func(seq.Seq[int]) seq.Seq[int]) func(seq.Seq[int]) seq.Seq[int] {
		return func(acc seq.Seq[int]) seq.Seq[int] {
			return rest(seq.Node(x, acc))
		}
	}, func(acc seq.Seq[int]) seq.Seq[int] { return acc }, s)

	fmt.Println("by hand: ", prepend(seq.End[int]()))
	fmt.Println("packaged:", seq.Reverse(s))

	// Output:
	// by hand:  (3 2 1)
	// packaged: (3 2 1)
}

// ============================================================================
// Example 4: FUSION - ONE TRAVERSAL INSTEAD OF THREE
// ============================================================================

// Example_fusion collapses a filter/map/sum pipeline into a single fold by
// rewriting rules instead of sequences. No intermediate sequence is built,
// and the transform only runs on values the filter keeps.
func Example_fusion() {
	s := seq.New(1, 2, 3, 4, 5)
	double := func(x int) int { return x * 2 }
	isOdd := func(x int) bool { return x%2 == 1 }
	add := func(x, sum int) int { return x + sum }

	chained := seq.Fold(add, 0, seq.Map(double, seq.Filter(isOdd, s)))
	fused := seq.Fold(seq.FilterRule(isOdd, seq.MapRule(double, add)), 0, s)

	fmt.Println("chained:", chained)
	fmt.Println("fused:  ", fused)

	// Output:
	// chained: 18
	// fused:   18
}

// ============================================================================
// Example 5: MONOID COMPOSITION AND CHAINING
// ============================================================================

// Example_monoidComposition concatenates sequences with the Empty/Compose
// convention and chains the endomorphic combinators.
func Example_monoidComposition() {
	a := seq.New(1, 2)
	b := seq.New(3, 4)

	fmt.Println(a.Compose(b))
	fmt.Println(a.Compose(a.Empty()))

	result := seq.New(1, 2, 3, 4, 5).
		Filter(func(x int) bool { return x%2 == 1 }).
		Map(func(x int) int { return x * 10 }).
		Reverse()
	fmt.Println(result)

	// Output:
	// (1 2 3 4)
	// (1 2)
	// (50 30 10)
}

// ============================================================================
// Example 6: ITERATION BRIDGE
// ============================================================================

// Example_iteration ranges over a sequence and collects an iterator back
// into one.
func Example_iteration() {
	s := seq.New("fold", "map", "filter")

	for v := range s.Values() {
		fmt.Println(v)
	}

	round := seq.Collect(s.Values())
	fmt.Println(round)

	// Output:
	// fold
	// map
	// filter
	// (fold map filter)
}
