// Package bloom tracks which URLs a capture session has already archived,
// using a Bloom filter so membership stays cheap however many pages pile up.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for capture deduplication. A positive test
// may rarely be wrong (a page silently skipped); a negative test never is,
// so no page is archived twice because of the filter.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a URL as captured.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might already have been captured.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
