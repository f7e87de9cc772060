package helper

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

var ErrDimensionMismatch = errors.New("dimensi vektor tidak sama")

// EuclideanDistance menghitung jarak L2 antara dua vektor embedding.
// Makin kecil makin mirip. Panjang vektor harus sama; kalau beda, comparison
// ini saja yang gagal, scan terhadap kandidat lain tetap jalan.
func EuclideanDistance(a, b []float64) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	return floats.Distance(a, b, 2), nil
}

// CosineSimilarity menghitung kemiripan arah dua vektor, hasil 0..1.
// Dipakai untuk deteksi duplikat saat review registrasi, BUKAN untuk
// keputusan absensi (itu pakai jarak Euclidean). Vektor kosong, panjang
// beda, atau magnitude nol semuanya dianggap 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := floats.Dot(a, b) / (normA * normB)

	// Jaga-jaga pembulatan floating point
	if sim > 1 {
		sim = 1
	}
	if sim < 0 {
		sim = 0
	}
	return sim
}

// SimilarityFromDistance mengubah jarak menjadi skor 0..1 untuk ditampilkan
// ke user. Murni transformasi presentasi, keputusan match tetap pakai jarak.
func SimilarityFromDistance(distance float64) float64 {
	sim := 1 - distance
	if sim < 0 {
		return 0
	}
	return sim
}
