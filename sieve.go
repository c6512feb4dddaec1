package primes

// Sieve is a growable sieve of Eratosthenes. It keeps a flat composite map
// for every index it covers together with the ordered list of primes found so
// far. Both only ever grow; the resolved prefix is never revisited.
type Sieve struct {
	// composite[i] is true when i is known to be non prime. The length is
	// always a power of two and at least 4.
	composite []bool
	primes    []uint64
}

// New returns a sieve resolved up to and including 3.
func New() *Sieve {
	return &Sieve{
		composite: []bool{true, true, false, false},
		primes:    []uint64{2, 3},
	}
}

// Len returns the number of resolved indices. Every index below Len is
// answered exactly by the composite map.
func (s *Sieve) Len() uint64 { return uint64(len(s.composite)) }

// Composite returns the underlying composite map. Composite()[i] is true when
// i is not prime. The slice is shared with the sieve and must not be written
// by the caller.
func (s *Sieve) Composite() []bool { return s.composite }

// Primes returns every prime discovered so far in increasing order. The slice
// is shared with the sieve and must not be written by the caller.
func (s *Sieve) Primes() []uint64 { return s.primes }

// ExtendTo grows the sieve so that it covers n, sizing to the smallest power
// of two strictly greater than n. A no-op when n is already covered.
func (s *Sieve) ExtendTo(n uint64) {
	if s.Len() > n {
		return
	}

	newLen := NextPow2(n + 1)
	if newLen <= n {
		// n+1 or the power of two above it wrapped uint64.
		panic("primes: sieve bound overflows uint64")
	}

	oldLen := s.Len()
	grown := make([]bool, newLen)
	copy(grown, s.composite)
	s.composite = grown

	// Strike the multiples of every prime already known through the new
	// range, picking each one up at its first multiple at or after oldLen.
	// This must complete before the discovery scan below: it is what allows
	// the scan to start marking at p*p rather than 2p.
	for _, p := range s.primes {
		for m := (oldLen + p - 1) / p * p; m < newLen; m += p {
			s.composite[m] = true
		}
	}

	// Discover new primes in the extended range. An index still unmarked
	// here has no factor below itself at all, so it is prime. Its multiples
	// below p*p were already struck by the smaller primes, by this loop or
	// the one above.
	for p := oldLen; p < newLen; p++ {
		if s.composite[p] {
			continue
		}
		// p <= (newLen-1)/p is p*p < newLen without the squaring overflow.
		if p <= (newLen-1)/p {
			for m := p * p; m < newLen; m += p {
				s.composite[m] = true
			}
		}
		s.primes = append(s.primes, p)
	}
}

// ExtendByCount grows the sieve until at least amount+1 primes are known, by
// doubling the covered range until the count is satisfied.
func (s *Sieve) ExtendByCount(amount uint64) {
	for uint64(len(s.primes)) <= amount {
		s.ExtendTo(s.Len())
	}
}
