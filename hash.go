package hashtable

import "github.com/cespare/xxhash/v2"

// Default polynomial bases. Both exceed the 7-bit ASCII alphabet.
const (
	DefaultPrimeA uint64 = 151
	DefaultPrimeB uint64 = 177
)

// Hasher produces the two bucket hashes used for double hashing. Both results
// must lie in [0, buckets).
type Hasher interface {
	Hash(key string, buckets int) (a, b int)
}

// PolynomialHasher hashes a key as sum(s[i] * base^(len-i-1)) mod buckets,
// once per base.
type PolynomialHasher struct {
	PrimeA uint64
	PrimeB uint64
}

func (h PolynomialHasher) Hash(key string, buckets int) (int, int) {
	m := uint64(buckets)
	return int(hashString(key, h.PrimeA, m)), int(hashString(key, h.PrimeB, m))
}

// XXHasher splits a single 64-bit xxHash digest into two 32-bit halves.
type XXHasher struct{}

func (XXHasher) Hash(key string, buckets int) (int, int) {
	sum := xxhash.Sum64String(key)
	m := uint64(buckets)
	return int((sum & 0xFFFFFFFF) % m), int((sum >> 32) % m)
}

// hashString evaluates the polynomial with Horner's rule, reducing mod m after
// every byte so the accumulator stays below m*(base+1).
func hashString(s string, base, m uint64) uint64 {
	var hash uint64
	for i := 0; i < len(s); i++ {
		hash = (hash*base + uint64(s[i])) % m
	}
	return hash
}

// probeIndex returns the bucket for the given attempt. The step is kept in
// [1, m-1] so it is coprime with a prime m.
func probeIndex(hashA, hashB, attempt, m int) int {
	if m == 1 {
		return 0
	}
	step := 1 + hashB%(m-1)
	return int((uint64(hashA) + uint64(attempt)*uint64(step)) % uint64(m))
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
