/*

# Growable sieve of Eratosthenes

This package answers "is n prime?" and "what are the first k primes?"
incrementally: the sieve only ever grows, and work done for one query is
reused by every later one.

The state is two co-indexed structures:

  - composite: a flat []bool where composite[i] reports that i is known to be
    non prime. The length is always a power of two and never less than 4.
  - primes: the ordered list of every prime below the sieve length, seeded
    with [2 3] at construction and strictly append only.

## Growth

ExtendTo(n) sizes the sieve to the smallest power of two above n, so repeated
growth amortizes the same way an appending slice does. The newly exposed range
is resolved in two passes, and the order of the passes is load bearing:

 1. Every previously known prime strikes its multiples through the new range,
    starting from its first multiple at or after the old length.
 2. The new range is scanned left to right. An index still unmarked at this
    point has no factor below itself at all, so it is prime, and its striking
    can begin at its square.

Pass 2 is only allowed to start at p*p because pass 1 has already applied
every smaller prime to the whole new range. Running the scan first would let a
composite index with only small factors be misread as prime.

## Queries

IsPrime never grows the sieve. Covered indices are a direct lookup. Beyond the
covered range it trial divides by the known primes and then falls back to a
6k±1 wheel, so answers stay exact for any uint64 without mutating state. All
square comparisons are done in division form to avoid overflow near the top of
the range.

## Enumeration

Iter walks the primes in increasing order without end, growing the sieve one
prime at a time on demand. It comes in an owning form (NewIter) and a
borrowing form (Sieve.Iter); the borrowing form mutates the shared sieve on
every step, so the caller must not touch the sieve from elsewhere while
consuming it. All exposes the same sequence for range-over-func consumers.

Nothing in this package is safe for concurrent use; callers sharing a Sieve
across goroutines must serialize access themselves.

*/
package primes
