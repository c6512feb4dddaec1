package primes

import "iter"

// Iter enumerates primes in increasing order, without end. Each Next grows
// the underlying sieve just far enough to resolve one more prime, so the cost
// is amortized across the sequence.
//
// Next mutates the sieve on every call. An Iter therefore needs exclusive use
// of its sieve for as long as it is being consumed.
type Iter struct {
	sieve *Sieve
	index uint64
}

// NewIter returns an enumerator that takes over s, grown or fresh. The
// enumerator owns the sieve from here on; the caller must not use s again.
func NewIter(s *Sieve) *Iter {
	return &Iter{sieve: s}
}

// Iter returns an enumerator borrowing s. Primes it discovers remain
// available through s after enumeration stops.
func (s *Sieve) Iter() *Iter {
	return &Iter{sieve: s}
}

// Next returns the next prime, starting from 2 on a fresh enumerator. The
// sequence never ends; callers bound consumption themselves.
func (it *Iter) Next() uint64 {
	it.index++
	it.sieve.ExtendByCount(it.index)
	return it.sieve.primes[it.index-1]
}

// All returns the primes of s as an unbounded range-over-func sequence.
// Iteration mutates s on every step, the same as Iter.
func (s *Sieve) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for it := s.Iter(); yield(it.Next()); {
		}
	}
}
