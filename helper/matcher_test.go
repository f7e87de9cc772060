package helper

import (
	"math"
	"testing"
)

func TestMatchBestEmptyPool(t *testing.T) {
	result := MatchBest([]float64{1, 2, 3}, nil)
	if result.Found {
		t.Error("pool kosong tidak boleh menghasilkan match")
	}
	if result.TotalCompared != 0 {
		t.Errorf("TotalCompared = %d; want 0", result.TotalCompared)
	}
}

func TestMatchBestSelfMatch(t *testing.T) {
	probe := []float64{0.1, 0.2, 0.3}
	result := MatchBest(probe, []CandidateFaces{
		{KaryawanId: 7, Nama: "Budi", Embeddings: [][]float64{{0.1, 0.2, 0.3}}},
	})

	if !result.Found {
		t.Fatal("expected match")
	}
	if result.Best.KaryawanId != 7 {
		t.Errorf("Best.KaryawanId = %d; want 7", result.Best.KaryawanId)
	}
	if result.Best.Distance != 0 {
		t.Errorf("Best.Distance = %f; want 0", result.Best.Distance)
	}
	if result.Best.Similarity != 1 {
		t.Errorf("Best.Similarity = %f; want 1", result.Best.Similarity)
	}
}

func TestMatchBestOfN(t *testing.T) {
	// User punya dua angle: satu jauh (0.9), satu dekat (0.1).
	// Yang dipakai harus yang terdekat.
	probe := []float64{0, 0}
	result := MatchBest(probe, []CandidateFaces{
		{KaryawanId: 1, Nama: "Ani", Embeddings: [][]float64{{0.9, 0}, {0.1, 0}}},
	})

	if !result.Found {
		t.Fatal("expected match")
	}
	if math.Abs(result.Best.Distance-0.1) > 1e-9 {
		t.Errorf("Best.Distance = %f; want 0.1", result.Best.Distance)
	}
	if result.Best.SampleCount != 2 {
		t.Errorf("SampleCount = %d; want 2", result.Best.SampleCount)
	}
}

func TestMatchBestAcrossCandidates(t *testing.T) {
	probe := []float64{0, 0}
	result := MatchBest(probe, []CandidateFaces{
		{KaryawanId: 1, Nama: "Ani", Embeddings: [][]float64{{0.5, 0}}},
		{KaryawanId: 2, Nama: "Budi", Embeddings: [][]float64{{0.2, 0}}},
		{KaryawanId: 3, Nama: "Citra", Embeddings: [][]float64{{0.8, 0}}},
	})

	if result.Best.KaryawanId != 2 {
		t.Errorf("Best.KaryawanId = %d; want 2", result.Best.KaryawanId)
	}
	if len(result.Ranking) != 3 {
		t.Fatalf("len(Ranking) = %d; want 3", len(result.Ranking))
	}
	// Ranking harus urut jarak naik
	for i := 1; i < len(result.Ranking); i++ {
		if result.Ranking[i-1].Distance > result.Ranking[i].Distance {
			t.Errorf("ranking tidak urut pada index %d", i)
		}
	}
}

func TestMatchBestSkipsMismatchedDimensions(t *testing.T) {
	// Satu sampel beda dimensi tidak boleh menggagalkan sampel lain,
	// apalagi kandidat lain.
	probe := []float64{0, 0}
	result := MatchBest(probe, []CandidateFaces{
		{KaryawanId: 1, Nama: "Ani", Embeddings: [][]float64{{1, 2, 3}, {0.3, 0}}},
		{KaryawanId: 2, Nama: "Budi", Embeddings: [][]float64{{0.5, 0}}},
	})

	if !result.Found {
		t.Fatal("expected match")
	}
	if result.Best.KaryawanId != 1 {
		t.Errorf("Best.KaryawanId = %d; want 1", result.Best.KaryawanId)
	}
	if result.Best.SampleCount != 1 {
		t.Errorf("SampleCount = %d; want 1 (sampel beda dimensi di-skip)", result.Best.SampleCount)
	}
	if result.TotalCompared != 2 {
		t.Errorf("TotalCompared = %d; want 2", result.TotalCompared)
	}
}

func TestMatchBestSkipsUnusableCandidate(t *testing.T) {
	probe := []float64{0, 0}
	result := MatchBest(probe, []CandidateFaces{
		{KaryawanId: 1, Nama: "Ani"}, // tidak punya sampel sama sekali
		{KaryawanId: 2, Nama: "Budi", Embeddings: [][]float64{{1, 2, 3}}}, // semua beda dimensi
		{KaryawanId: 3, Nama: "Citra", Embeddings: [][]float64{{0.4, 0}}},
	})

	if !result.Found {
		t.Fatal("expected match")
	}
	if result.Best.KaryawanId != 3 {
		t.Errorf("Best.KaryawanId = %d; want 3", result.Best.KaryawanId)
	}
	if len(result.Ranking) != 1 {
		t.Errorf("len(Ranking) = %d; want 1", len(result.Ranking))
	}
	// Kandidat yang di-skip tetap terhitung di pool
	if result.TotalCompared != 3 {
		t.Errorf("TotalCompared = %d; want 3", result.TotalCompared)
	}
}

func TestMatchBestAllUnusable(t *testing.T) {
	result := MatchBest([]float64{0, 0}, []CandidateFaces{
		{KaryawanId: 1, Nama: "Ani", Embeddings: [][]float64{{1, 2, 3}}},
	})
	if result.Found {
		t.Error("semua sampel tidak terpakai harus jadi no-match, bukan error")
	}
	if result.TotalCompared != 1 {
		t.Errorf("TotalCompared = %d; want 1", result.TotalCompared)
	}
}

func TestWithinThresholdBoundary(t *testing.T) {
	tests := []struct {
		name      string
		distance  float64
		threshold float64
		expected  bool
	}{
		{"jauh di bawah", 0.2, 0.7, true},
		{"persis di ambang", 0.7, 0.7, true},
		{"sedikit di atas", 0.7 + 1e-9, 0.7, false},
		{"jauh di atas", 1.5, 0.7, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WithinThreshold(tc.distance, tc.threshold); got != tc.expected {
				t.Errorf("WithinThreshold(%f, %f) = %v; want %v", tc.distance, tc.threshold, got, tc.expected)
			}
		})
	}
}

func TestMatchBestTieBreakLowestId(t *testing.T) {
	// Dua kandidat jaraknya persis sama: menang id terkecil,
	// apapun urutan masuknya.
	probe := []float64{0, 0}
	result := MatchBest(probe, []CandidateFaces{
		{KaryawanId: 9, Nama: "Zul", Embeddings: [][]float64{{0.5, 0}}},
		{KaryawanId: 4, Nama: "Ani", Embeddings: [][]float64{{0, 0.5}}},
	})

	if result.Best.KaryawanId != 4 {
		t.Errorf("Best.KaryawanId = %d; want 4 (id terkecil menang saat seri)", result.Best.KaryawanId)
	}
}
