package counting

// Factorial returns n!. It is Undefined for negative n and reports Overflow
// as soon as a partial product leaves the int64 range.
func Factorial(n int) Count {
	if n < 0 {
		return NotDefined()
	}
	if n == 0 || n == 1 {
		return Of(1)
	}

	result := int64(1)
	for i := 2; i <= n; i++ {
		var ok bool
		result, ok = mulInt64(result, int64(i))
		if !ok {
			return TooLarge()
		}
	}
	return Of(result)
}

// Permutations returns P(n,k) = n·(n-1)·…·(n-k+1), the number of ordered
// selections of k out of n distinct elements. The falling factorial is
// multiplied out directly so it overflows later than n!/(n-k)! would.
func Permutations(n, k int) Count {
	if n < 0 || k < 0 || k > n {
		return NotDefined()
	}

	result := int64(1)
	for i := 0; i < k; i++ {
		var ok bool
		result, ok = mulInt64(result, int64(n-i))
		if !ok {
			return TooLarge()
		}
	}
	return Of(result)
}

// Combinations returns C(n,k), the number of k-element subsets of an
// n-element set, as P(n,k)/k! with the smaller of k and n-k. When either
// P(n,k) or k! overflows the result is Overflow, even if C(n,k) would fit.
func Combinations(n, k int) Count {
	if n < 0 || k < 0 || k > n {
		return NotDefined()
	}
	if k > n-k {
		k = n - k
	}

	p := Permutations(n, k)
	if !p.IsExact() {
		return p
	}
	f := Factorial(k)
	if !f.IsExact() {
		return f
	}
	return Of(p.Value / f.Value)
}

// VariationsWithRepetition returns n^r, the number of ordered selections of
// r items from n kinds when kinds may repeat.
func VariationsWithRepetition(n, r int) Count {
	if n < 0 || r < 0 {
		return NotDefined()
	}
	switch {
	case r == 0 || n == 1:
		return Of(1)
	case n == 0:
		return Of(0)
	}

	result := int64(1)
	for i := 0; i < r; i++ {
		var ok bool
		result, ok = mulInt64(result, int64(n))
		if !ok {
			return TooLarge()
		}
	}
	return Of(result)
}

// CombinationsWithRepetition returns CR(n,r) = C(n+r-1, r), the number of
// multisets of size r drawn from n kinds (stars and bars).
func CombinationsWithRepetition(n, r int) Count {
	if n <= 0 || r < 0 {
		return NotDefined()
	}
	return Combinations(n+r-1, r)
}

// MultisetPermutations returns n!/(r1!·r2!·…·rk!), the number of distinct
// arrangements of n items where item j repeats reps[j] times. reps must sum
// to n.
//
// The multinomial is built as a product of binomials so words longer than
// 20 letters can still come out exact.
func MultisetPermutations(n int, reps []int) Count {
	if n < 0 || len(reps) == 0 {
		return NotDefined()
	}

	sum := 0
	for _, r := range reps {
		if r < 0 {
			return NotDefined()
		}
		sum += r
	}
	if sum != n {
		return NotDefined()
	}

	result := Of(1)
	placed := 0
	for _, r := range reps {
		placed += r
		result = result.Mul(Combinations(placed, r))
		if !result.IsExact() {
			return result
		}
	}
	return result
}

// FundamentalPrinciple multiplies the number of options available at each
// independent stage.
func FundamentalPrinciple(stages []int) Count {
	if len(stages) == 0 {
		return NotDefined()
	}

	result := Of(1)
	for _, options := range stages {
		if options < 0 {
			return NotDefined()
		}
		result = result.Mul(Of(int64(options)))
	}
	return result
}
