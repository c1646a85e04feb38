package main

import "testing"

func TestBucketsPartitionModulus(t *testing.T) {
	for _, c := range []struct{ m, buckets uint64 }{{10, 10}, {10, 3}, {7, 2}, {^uint64(0), 32}, {1, 1}} {
		total := uint64(0)
		for k := uint64(0); k < c.buckets; k++ {
			total += ceilDiv(k+1, c.m, c.buckets) - ceilDiv(k, c.m, c.buckets)
		}
		if total != c.m {
			t.Fatalf("m=%d buckets=%d: sizes sum to %d", c.m, c.buckets, total)
		}
		if b := bucketOf(c.m-1, c.m, c.buckets); b != c.buckets-1 {
			t.Fatalf("m=%d buckets=%d: last value in bucket %d", c.m, c.buckets, b)
		}
		if b := bucketOf(0, c.m, c.buckets); b != 0 {
			t.Fatalf("zero in bucket %d", b)
		}
	}
	// Bucket membership agrees with the size formula.
	m, buckets := uint64(10), uint64(3)
	counts := make([]uint64, buckets)
	for v := uint64(0); v < m; v++ {
		counts[bucketOf(v, m, buckets)]++
	}
	for k := range counts {
		if want := ceilDiv(uint64(k)+1, m, buckets) - ceilDiv(uint64(k), m, buckets); counts[k] != want {
			t.Fatalf("bucket %d holds %d values, want %d", k, counts[k], want)
		}
	}
}

func TestStreamKeyDistinct(t *testing.T) {
	a, b, c := streamKey("x", 1), streamKey("x", 1), streamKey("x", 2)
	if string(a) != string(b) || string(a) == string(c) || len(a) != 32 {
		t.Fatal("stream keys not deterministic per (label, seed)")
	}
}

func TestCheckRun(t *testing.T) {
	cases := []struct {
		m, buckets uint64
		draws      int
		want       uint64
		ok         bool
	}{
		{10, 0, 100, 10, true},
		{1000, 0, 100, 32, true},
		{10, 4, 1, 4, true},
		{10, 0, 0, 0, false},
		{10, 0, -5, 0, false},
		{10, 11, 100, 0, false},
	}
	for _, c := range cases {
		got, err := checkRun(c.m, c.buckets, c.draws)
		if (err == nil) != c.ok || got != c.want {
			t.Fatalf("checkRun(%d, %d, %d) = %d, %v", c.m, c.buckets, c.draws, got, err)
		}
	}
}

func TestChiSquare(t *testing.T) {
	expected, chi2 := chiSquare([]int{4, 3, 3}, 10, 10)
	if expected[0] != 4 || expected[1] != 3 || expected[2] != 3 || chi2 != 0 {
		t.Fatalf("expected %v chi2 %v", expected, chi2)
	}
	if _, chi2 := chiSquare([]int{10, 0}, 2, 10); chi2 != 10 {
		t.Fatalf("chi2 = %v, want 10", chi2)
	}
}
