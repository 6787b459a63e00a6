package lib

import "testing"
import "reflect"

func TestHistogramInt(t *testing.T) {
	h := NewHistogramInt64(3, 97, 3)
	for i := 1; i <= 100; i++ {
		h.Add(int64(i))
	}

	if x, y := int64(1), h.Min(); x != y {
		t.Errorf("Min() expected %v, got %v", x, y)
	} else if x, y := int64(100), h.Max(); x != y {
		t.Errorf("Max() expected %v, got %v", x, y)
	} else if x, y := int64(100), h.Samples(); x != y {
		t.Errorf("Samples() expected %v, got %v", x, y)
	} else if x, y := int64(100*101)/2, h.Sum(); x != y {
		t.Errorf("Sum() expected %v, got %v", x, y)
	} else if x, y := h.Sum()/h.Samples(), h.Mean(); x != y {
		t.Errorf("Mean() expected %v, got %v", x, y)
	}

	samples := []int64{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	ref := map[string]int64{"-": 6, "6": 2, "9": 3, "12": 3, "+": 3}
	h = NewHistogramInt64(6, 15, 3)
	for _, sample := range samples {
		h.Add(sample)
	}
	if data := h.Stats(); !reflect.DeepEqual(ref, data) {
		t.Errorf("expected %v, got %v", ref, data)
	}

	// from and till are aligned down to 0 and 12.
	ref = map[string]int64{"0": 3, "3": 3, "6": 2, "9": 3, "+": 4}
	h = NewHistogramInt64(2, 14, 3)
	h.Add(0)
	h.Add(1)
	for _, sample := range samples[2:15] {
		h.Add(sample)
	}
	if data := h.Stats(); !reflect.DeepEqual(ref, data) {
		t.Errorf("expected %v, got %v", ref, data)
	}
}

func TestHistogramEmpty(t *testing.T) {
	h := NewHistogramInt64(1, 10, 1)
	if h.Mean() != 0 {
		t.Errorf("unexpected %v", h.Mean())
	} else if len(h.Stats()) != 0 {
		t.Errorf("unexpected %v", h.Stats())
	}
	ref := `{"samples": 0, "min": 0, "max": 0, "mean": 0, "histogram": {}}`
	if s := h.Logstring(); s != ref {
		t.Errorf("expected %v, got %v", ref, s)
	}
}

func TestHistogramFullstats(t *testing.T) {
	h := NewHistogramInt64(1, 10, 1)
	for _, sample := range []int64{2, 4, 6} {
		h.Add(sample)
	}
	stats := h.Fullstats()
	if x := stats["sum"].(int64); x != 12 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["mean"].(int64); x != 4 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["samples"].(int64); x != 3 {
		t.Errorf("unexpected %v", x)
	}
}

func TestHistogramLogstring(t *testing.T) {
	h := NewHistogramInt64(2, 4, 1)
	for _, sample := range []int64{1, 2, 3, 3, 10} {
		h.Add(sample)
	}
	ref := `{"samples": 5, "min": 1, "max": 10, "mean": 3, ` +
		`"histogram": {"-": 1,"2": 1,"3": 2,"+": 1}}`
	if s := h.Logstring(); s != ref {
		t.Errorf("expected %v, got %v", ref, s)
	}
}

func BenchmarkHtgintAdd(b *testing.B) {
	htg := NewHistogramInt64(1, int64(b.N), 5)
	for i := 0; i <= b.N; i++ {
		htg.Add(int64(i))
	}
}
