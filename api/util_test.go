package api

import "testing"

func TestAscending(t *testing.T) {
	if Ascending(10, 20) != true {
		t.Fatalf("unexpected return")
	} else if Ascending(20, 10) != false {
		t.Fatalf("unexpected return")
	} else if Ascending(10, 10) != false {
		t.Fatalf("unexpected return")
	} else if Ascending("abcd", "abce") != true {
		t.Fatalf("unexpected return")
	}
}

func TestDescending(t *testing.T) {
	if Descending(10, 20) != false {
		t.Fatalf("unexpected return")
	} else if Descending(20, 10) != true {
		t.Fatalf("unexpected return")
	} else if Descending(10, 10) != false {
		t.Fatalf("unexpected return")
	}
}

func TestEquivalent(t *testing.T) {
	// compare only the tens digit.
	less := Less[int](func(a, b int) bool { return a/10 < b/10 })
	if Equivalent(less, 11, 19) != true {
		t.Fatalf("unexpected return")
	} else if Equivalent(less, 11, 21) != false {
		t.Fatalf("unexpected return")
	} else if Equivalent(Ascending[int], 5, 5) != true {
		t.Fatalf("unexpected return")
	}
}
