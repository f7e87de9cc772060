package helper

import "sort"

// Ambang kemiripan cosine untuk dianggap duplikat saat review registrasi.
const DuplicateThreshold = 0.80

// DuplicateMatch adalah kandidat yang wajahnya terlalu mirip dengan
// registrasi baru; diputuskan manusia, bukan sistem.
type DuplicateMatch struct {
	KaryawanId        int64   `json:"karyawan_id"`
	Nama              string  `json:"nama"`
	SimilarityPercent float64 `json:"similarity_percent"`
}

// FindSimilarFaces membandingkan embedding registrasi baru dengan semua user
// approved memakai cosine similarity. Semua yang >= 80% dikembalikan (bukan
// cuma yang terbaik), urut dari yang paling mirip, supaya reviewer bisa
// memutuskan sendiri. Per kandidat diambil skor tertinggi dari semua sampel.
func FindSimilarFaces(probe []float64, pool []CandidateFaces) []DuplicateMatch {
	var matches []DuplicateMatch

	for _, cand := range pool {
		best := 0.0
		for _, emb := range cand.Embeddings {
			if sim := CosineSimilarity(probe, emb); sim > best {
				best = sim
			}
		}

		if best >= DuplicateThreshold {
			matches = append(matches, DuplicateMatch{
				KaryawanId:        cand.KaryawanId,
				Nama:              cand.Nama,
				SimilarityPercent: best * 100,
			})
		}
	}

	return SortDuplicates(matches)
}

// SortDuplicates mengurutkan hasil deteksi duplikat dari yang paling mirip.
func SortDuplicates(matches []DuplicateMatch) []DuplicateMatch {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SimilarityPercent > matches[j].SimilarityPercent
	})
	return matches
}
