// Package counting implements the combinatorics behind the counting-theory
// lessons: overflow-aware factorials, permutations and combinations,
// Pascal's triangle, and bounded example enumeration.
//
// Results are reported as a Count rather than a bare integer so callers can
// tell apart three outcomes:
//
//	Exact     the value fits in an int64
//	Overflow  the inputs are valid but the value exceeds math.MaxInt64
//	Undefined the inputs are outside the domain (k > n, negative n, ...)
//
// None of the functions in this package return errors for bad numeric
// input. Invalid input degrades to an Undefined Count or a Result carrying a
// descriptive message.
//
// Quick example:
//
//	counting.Combinations(5, 2)  // 10
//	counting.Permutations(5, 2)  // 20
//	counting.Factorial(21)       // too large
package counting
