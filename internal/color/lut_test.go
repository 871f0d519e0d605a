package color

import (
	"math"
	"testing"
)

func TestBrightnessIdentity(t *testing.T) {
	table := Brightness(1.0)
	for i := range table {
		if int(table[i]) != i {
			t.Fatalf("Brightness(1.0)[%d] = %d, want %d", i, table[i], i)
		}
	}
}

func TestBrightnessCurve(t *testing.T) {
	table := Brightness(0.8)
	if table[0] != 0 || table[255] != 255 {
		t.Errorf("endpoints = (%d, %d), want (0, 255)", table[0], table[255])
	}
	for i := 1; i < 255; i++ {
		if table[i] < uint8(i) {
			t.Fatalf("exponent < 1 must brighten: t[%d] = %d", i, table[i])
		}
		want := uint8(math.Round(255 * math.Pow(float64(i)/255, 0.8)))
		if table[i] != want {
			t.Fatalf("t[%d] = %d, want %d", i, table[i], want)
		}
	}
}

func TestBrightnessShared(t *testing.T) {
	if Brightness(0.7) != Brightness(0.7) {
		t.Error("tables for the same exponent should be shared")
	}
}

func TestBrightnessInvalidFallsBack(t *testing.T) {
	for _, b := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		table := Brightness(b)
		if table[100] != 100 {
			t.Errorf("Brightness(%v)[100] = %d, want identity", b, table[100])
		}
	}
}
