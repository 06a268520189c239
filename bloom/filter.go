// Package bloom de-duplicates candidate URLs with a Bloom filter.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultFalsePositiveRate keeps accidental drops negligible for the short
// candidate lists a keyword produces.
const DefaultFalsePositiveRate = 0.0001

// Set is a probabilistic set of seen keys. A key reported as seen may, with
// the configured false positive rate, never have been added; a key reported
// as new was definitely not added before.
type Set struct {
	f *bloom.BloomFilter
}

// NewSet returns a Set sized for n keys at fpRate. Sizes below 1 are
// treated as 1; a non-positive fpRate uses DefaultFalsePositiveRate.
func NewSet(n int, fpRate float64) *Set {
	if n < 1 {
		n = 1
	}
	if fpRate <= 0 || fpRate >= 1 {
		fpRate = DefaultFalsePositiveRate
	}
	return &Set{f: bloom.NewWithEstimates(uint(n), fpRate)}
}

// Seen reports whether key was probably added before, then adds it.
func (s *Set) Seen(key string) bool {
	return s.f.TestAndAddString(key)
}

// Len returns the approximate number of distinct keys added.
func (s *Set) Len() int {
	return int(s.f.ApproximatedSize())
}
