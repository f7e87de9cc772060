package helper

import (
	"math"
	"testing"
)

func TestFindSimilarFacesSelf(t *testing.T) {
	probe := []float64{0.2, 0.4, 0.6}
	matches := FindSimilarFaces(probe, []CandidateFaces{
		{KaryawanId: 1, Nama: "Ani", Embeddings: [][]float64{{0.2, 0.4, 0.6}}},
	})

	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d; want 1", len(matches))
	}
	if math.Abs(matches[0].SimilarityPercent-100) > 1e-9 {
		t.Errorf("SimilarityPercent = %f; want 100", matches[0].SimilarityPercent)
	}
}

func TestFindSimilarFacesOrthogonal(t *testing.T) {
	matches := FindSimilarFaces([]float64{1, 0}, []CandidateFaces{
		{KaryawanId: 1, Nama: "Ani", Embeddings: [][]float64{{0, 1}}},
	})
	if len(matches) != 0 {
		t.Errorf("vektor ortogonal (similarity 0) tidak boleh dianggap duplikat")
	}
}

func TestFindSimilarFacesThreshold(t *testing.T) {
	// cos(sudut kecil) > 0.8 -> duplikat; cos(sudut besar) < 0.8 -> bukan
	probe := []float64{1, 0}
	matches := FindSimilarFaces(probe, []CandidateFaces{
		{KaryawanId: 1, Nama: "Mirip", Embeddings: [][]float64{{1, 0.2}}},    // ~0.98
		{KaryawanId: 2, Nama: "Beda", Embeddings: [][]float64{{1, 1.5}}},     // ~0.55
		{KaryawanId: 3, Nama: "Mirip2", Embeddings: [][]float64{{1, 0.5}}},   // ~0.89
	})

	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d; want 2", len(matches))
	}
	// Urut dari yang paling mirip
	if matches[0].KaryawanId != 1 || matches[1].KaryawanId != 3 {
		t.Errorf("urutan salah: %+v", matches)
	}
	if matches[0].SimilarityPercent < matches[1].SimilarityPercent {
		t.Error("hasil harus urut menurun")
	}
}

func TestFindSimilarFacesBestSamplePerUser(t *testing.T) {
	// Satu user dengan beberapa sampel: yang dilaporkan skor tertingginya.
	probe := []float64{1, 0}
	matches := FindSimilarFaces(probe, []CandidateFaces{
		{KaryawanId: 1, Nama: "Ani", Embeddings: [][]float64{{0, 1}, {1, 0}}},
	})

	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d; want 1", len(matches))
	}
	if math.Abs(matches[0].SimilarityPercent-100) > 1e-9 {
		t.Errorf("SimilarityPercent = %f; want 100", matches[0].SimilarityPercent)
	}
}
