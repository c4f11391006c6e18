// Package primes generates prime numbers with an incremental sieve of
// Eratosthenes. Sequences are lazy and carry no state between calls.
package primes

import "iter"

// All returns an unbounded, strictly increasing sequence of primes starting
// at 2. Each call starts a fresh sieve.
func All() iter.Seq[int] {
	return sieve(0, false)
}

// UpTo returns the primes p with 2 <= p <= max. It is empty when max < 2.
func UpTo(max int) iter.Seq[int] {
	return sieve(max, true)
}

// Set materializes UpTo(max) for repeated membership tests.
func Set(max int) map[int]struct{} {
	set := make(map[int]struct{})
	for p := range UpTo(max) {
		set[p] = struct{}{}
	}
	return set
}

// IsPrime reports whether n is prime by trial division. It does not use the
// sieve, so it can be used to check it.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for f := 3; f*f <= n; f += 2 {
		if n%f == 0 {
			return false
		}
	}
	return true
}

func sieve(max int, bounded bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		if bounded && max < 2 {
			return
		}
		if !yield(2) {
			return
		}

		// next composite to rule out -> step (twice its smallest prime factor)
		composites := make(map[int]int)
		for q := 3; ; q += 2 {
			if bounded && q > max {
				return
			}
			step, ok := composites[q]
			if !ok {
				if !yield(q) {
					return
				}
				composites[q*q] = 2 * q
				continue
			}
			delete(composites, q)
			x := q + step
			for {
				if _, taken := composites[x]; !taken {
					break
				}
				x += step
			}
			composites[x] = step
		}
	}
}
