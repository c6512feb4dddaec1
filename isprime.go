package primes

// IsPrime reports whether n is prime. It never grows the sieve: indices the
// sieve already covers are a direct lookup, and anything beyond is answered
// by trial division against the known primes with a 6k±1 wheel fallback. The
// method gets faster as the sieve grows.
//
// Every comparison against sqrt(n) is done in division form, so the answer is
// exact for all uint64 n, including 0 and 1 (both non prime).
func (s *Sieve) IsPrime(n uint64) bool {
	if s.Len() > n {
		return !s.composite[n]
	}

	if n%2 == 0 || n%3 == 0 {
		return false
	}

	for _, p := range s.primes {
		// p > n/p is p*p > n without the squaring overflow.
		if p > n/p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}

	// The known primes ran out below sqrt(n). Continue on the 6k±1 wheel,
	// rejoining it at the residue of the last known prime. New sieves hold
	// [2 3], and the prime list never shrinks, so last always exists.
	last := s.primes[len(s.primes)-1]
	var c uint64
	switch last % 6 {
	case 1:
		c = last - 1
	case 5:
		c = last + 1
	default:
		// last is 3, the wheel has not started yet.
		c = 6
	}

	for ; c-1 <= n/(c-1); c += 6 {
		if n%(c-1) == 0 || n%(c+1) == 0 {
			return false
		}
	}
	return true
}
