package filter

import "testing"

func TestBoxRowConstant(t *testing.T) {
	src := []int32{100, 100, 100, 100, 100}
	dst := make([]int32, len(src))

	BoxRow(dst, src, 2, 5)
	for i, v := range dst {
		if v != 100 {
			t.Errorf("dst[%d] = %d, want 100", i, v)
		}
	}
}

func TestBoxRowWraps(t *testing.T) {
	src := []int32{300, 0, 0, 0, 0, 0}
	dst := make([]int32, len(src))

	BoxRow(dst, src, 1, 3)
	want := []int32{100, 100, 0, 0, 0, 100}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestBoxRowMatchesNaiveSum(t *testing.T) {
	src := make([]int32, 37)
	for i := range src {
		src[i] = int32((i * 997) % 4097)
	}

	for _, r := range []int{0, 1, 3, 10, 40} {
		dst := make([]int32, len(src))
		BoxRow(dst, src, r, 1)
		for x := range src {
			var want int32
			for k := -r; k <= r; k++ {
				want += src[wrap(x+k, len(src))]
			}
			if dst[x] != want {
				t.Fatalf("r=%d: dst[%d] = %d, want %d", r, x, dst[x], want)
			}
		}
	}
}

func TestAccumulate(t *testing.T) {
	sum := []int32{1, 2, 3}
	Accumulate(sum, []int32{9, 8, 7, 6})

	want := []int32{10, 10, 10}
	for i := range want {
		if sum[i] != want[i] {
			t.Errorf("sum[%d] = %d, want %d", i, sum[i], want[i])
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 5, 0},
		{5, 5, 0},
		{-1, 5, 4},
		{-11, 5, 4},
		{12, 5, 2},
	}
	for _, tt := range tests {
		if got := wrap(tt.i, tt.n); got != tt.want {
			t.Errorf("wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
