package lib

import "fmt"
import "sort"
import "strconv"
import "strings"

// HistogramInt64 accumulate int64 samples into fixed width buckets
// between [from, till). Samples below `from` are counted under "-" and
// samples at or above `till` are counted under "+".
type HistogramInt64 struct {
	n      int64
	minval int64
	maxval int64
	sum    int64

	from    int64
	till    int64
	width   int64
	below   int64
	above   int64
	buckets []int64
}

// NewHistogramInt64 return a new histogram, `from` and `till` are
// aligned down to `width`.
func NewHistogramInt64(from, till, width int64) *HistogramInt64 {
	if width <= 0 {
		panic(fmt.Errorf("histogram width(%v) must be positive", width))
	}
	from, till = (from/width)*width, (till/width)*width
	if till < from {
		panic(fmt.Errorf("histogram till(%v) < from(%v)", till, from))
	}
	h := &HistogramInt64{from: from, till: till, width: width}
	h.buckets = make([]int64, (till-from)/width)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	if h.n == 0 || sample < h.minval {
		h.minval = sample
	}
	if h.n == 0 || sample > h.maxval {
		h.maxval = sample
	}
	h.n++
	h.sum += sample

	switch {
	case sample < h.from:
		h.below++
	case sample >= h.till:
		h.above++
	default:
		h.buckets[(sample-h.from)/h.width]++
	}
}

// Min return minimum value from sample.
func (h *HistogramInt64) Min() int64 {
	return h.minval
}

// Max return maximum value from sample.
func (h *HistogramInt64) Max() int64 {
	return h.maxval
}

// Samples return total number of samples in the set.
func (h *HistogramInt64) Samples() int64 {
	return h.n
}

// Sum return the sum of all sample values.
func (h *HistogramInt64) Sum() int64 {
	return h.sum
}

// Mean return the average value of all samples.
func (h *HistogramInt64) Mean() int64 {
	if h.n == 0 {
		return 0
	}
	return h.Sum() / h.n
}

// Stats return non-empty buckets, keyed by the bucket's lower bound.
func (h *HistogramInt64) Stats() map[string]int64 {
	m := make(map[string]int64)
	if h.below > 0 {
		m["-"] = h.below
	}
	for i, count := range h.buckets {
		if count > 0 {
			key := strconv.Itoa(int(h.from + int64(i)*h.width))
			m[key] = count
		}
	}
	if h.above > 0 {
		m["+"] = h.above
	}
	return m
}

// Fullstats include samples, min, max, sum and mean along with Stats().
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	return map[string]interface{}{
		"samples":   h.Samples(),
		"sum":       h.Sum(),
		"min":       h.Min(),
		"max":       h.Max(),
		"mean":      h.Mean(),
		"histogram": h.Stats(),
	}
}

// Logstring return Fullstats as a loggable string, buckets sorted.
func (h *HistogramInt64) Logstring() string {
	stats := h.Stats()
	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bucketorder(keys[i]) < bucketorder(keys[j])
	})
	ss := make([]string, 0, len(keys))
	for _, key := range keys {
		ss = append(ss, fmt.Sprintf(`"%v": %v`, key, stats[key]))
	}
	fmsg := `{"samples": %v, "min": %v, "max": %v, "mean": %v, ` +
		`"histogram": {%v}}`
	hs := strings.Join(ss, ",")
	return fmt.Sprintf(fmsg, h.n, h.minval, h.maxval, h.Mean(), hs)
}

func bucketorder(key string) int64 {
	switch key {
	case "-":
		return -1 << 62
	case "+":
		return 1 << 62
	}
	n, _ := strconv.ParseInt(key, 10, 64)
	return n
}
