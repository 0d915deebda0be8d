package baseline

import (
	"math"
	"testing"
)

func TestShift(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	shifted := Shift(values, 2)

	if shifted[0] != nil || shifted[1] != nil {
		t.Error("first lag positions should be nil")
	}
	if shifted[2] == nil || *shifted[2] != 10 {
		t.Errorf("index 2 = %v, want 10", shifted[2])
	}
	if shifted[3] == nil || *shifted[3] != 20 {
		t.Errorf("index 3 = %v, want 20", shifted[3])
	}
}

func TestShift_SeriesShorterThanLag(t *testing.T) {
	shifted := Shift([]float64{1, 2}, 13)
	for i, v := range shifted {
		if v != nil {
			t.Errorf("index %d = %v, want nil", i, v)
		}
	}
}

func TestPctChange(t *testing.T) {
	baseline := 100.0
	got := PctChange(80, &baseline, 1e-9)
	if got == nil || math.Abs(*got-(-20)) > 1e-6 {
		t.Errorf("PctChange(80, 100) = %v, want -20", got)
	}

	if got := PctChange(80, nil, 1e-9); got != nil {
		t.Errorf("PctChange with nil baseline = %v, want nil", got)
	}
}

func TestPrefixMean(t *testing.T) {
	values := []float64{10, 20, 30, 40}

	if got := PrefixMean(values, 2); got != 15 {
		t.Errorf("PrefixMean(.., 2) = %f, want 15", got)
	}
	// n longer than the series falls back to the full mean.
	if got := PrefixMean(values, 10); got != 25 {
		t.Errorf("PrefixMean(.., 10) = %f, want 25", got)
	}
	if got := PrefixMean(nil, 5); got != 0 {
		t.Errorf("PrefixMean(nil) = %f, want 0", got)
	}
}

func TestGroupMeans(t *testing.T) {
	keys := []string{"Toys", "Treats", "Toys"}
	values := []float64{10, 5, 30}

	means := GroupMeans(keys, values)
	if means["Toys"] != 20 {
		t.Errorf("Toys mean = %f, want 20", means["Toys"])
	}
	if means["Treats"] != 5 {
		t.Errorf("Treats mean = %f, want 5", means["Treats"])
	}
	if _, ok := means["Grooming"]; ok {
		t.Error("absent key should be absent from result")
	}
}
