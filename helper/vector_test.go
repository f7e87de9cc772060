package helper

import (
	"math"
	"testing"
)

func TestEuclideanDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
		wantErr  bool
	}{
		{"self match", []float64{0.1, 0.2, 0.3}, []float64{0.1, 0.2, 0.3}, 0, false},
		{"unit apart", []float64{0, 0}, []float64{1, 0}, 1, false},
		{"pythagoras", []float64{0, 0}, []float64{3, 4}, 5, false},
		{"dimension mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0, true},
		{"empty vectors", []float64{}, []float64{}, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dist, err := EuclideanDistance(tc.a, tc.b)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("EuclideanDistance(%v, %v) expected error, got %f", tc.a, tc.b, dist)
				}
				return
			}
			if err != nil {
				t.Fatalf("EuclideanDistance(%v, %v) unexpected error: %v", tc.a, tc.b, err)
			}
			if math.Abs(dist-tc.expected) > 1e-9 {
				t.Errorf("EuclideanDistance(%v, %v) = %f; want %f", tc.a, tc.b, dist, tc.expected)
			}
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"identical", []float64{0.5, 0.5, 0.5}, []float64{0.5, 0.5, 0.5}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"scaled copy", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"zero magnitude", []float64{0, 0}, []float64{1, 1}, 0},
		{"dimension mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0},
		{"opposite clamped to zero", []float64{1, 0}, []float64{-1, 0}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := CosineSimilarity(tc.a, tc.b)
			if math.Abs(sim-tc.expected) > 1e-9 {
				t.Errorf("CosineSimilarity(%v, %v) = %f; want %f", tc.a, tc.b, sim, tc.expected)
			}
		})
	}
}

func TestSimilarityFromDistance(t *testing.T) {
	tests := []struct {
		distance float64
		expected float64
	}{
		{0, 1},
		{0.3, 0.7},
		{1, 0},
		{1.5, 0}, // jarak besar tidak boleh jadi similarity negatif
	}

	for _, tc := range tests {
		sim := SimilarityFromDistance(tc.distance)
		if math.Abs(sim-tc.expected) > 1e-9 {
			t.Errorf("SimilarityFromDistance(%f) = %f; want %f", tc.distance, sim, tc.expected)
		}
	}
}
