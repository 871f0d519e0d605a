package filter

// Accumulate adds src into sum element-wise.
func Accumulate(sum, src []int32) {
	src = src[:len(sum)]
	for i := range sum {
		sum[i] += src[i]
	}
}

// BoxRow writes into dst the sliding sum of src over a window of 2r+1
// elements centred on each index, divided by div. Indices outside the row
// wrap around. dst and src must not overlap.
func BoxRow(dst, src []int32, r int, div int32) {
	w := len(src)
	if w == 0 {
		return
	}
	dst = dst[:w]
	if div <= 0 {
		div = 1
	}

	var sum int64
	for k := -r; k <= r; k++ {
		sum += int64(src[wrap(k, w)])
	}
	for x := 0; x < w; x++ {
		dst[x] = int32(sum / int64(div))
		sum += int64(src[wrap(x+r+1, w)]) - int64(src[wrap(x-r, w)])
	}
}

// wrap reduces i into [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
