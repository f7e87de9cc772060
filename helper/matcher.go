package helper

import "sort"

// CandidateFaces adalah satu kandidat beserta semua sampel wajahnya
// (multi-angle). Embedding dibaca sekaligus dari DB sebelum scan supaya
// tidak kelihatan setengah ter-update di tengah perbandingan.
type CandidateFaces struct {
	KaryawanId int64
	Nama       string
	Embeddings [][]float64
}

// RankEntry adalah hasil perbandingan satu kandidat (jarak terbaiknya).
type RankEntry struct {
	KaryawanId  int64   `json:"karyawan_id"`
	Nama        string  `json:"nama"`
	Distance    float64 `json:"distance"`
	Similarity  float64 `json:"similarity"`
	SampleCount int     `json:"sample_count"`
}

type MatchResult struct {
	Found bool
	Best  RankEntry
	// Ranking berisi semua kandidat yang punya minimal satu jarak valid,
	// diurutkan dari jarak terkecil. Disimpan utuh ke audit log.
	Ranking []RankEntry
	// TotalCompared = jumlah kandidat di pool saat scan, termasuk yang
	// dilewati karena embeddingnya tidak terpakai.
	TotalCompared int
}

// MatchBest mencari kandidat dengan jarak Euclidean terkecil terhadap probe.
// Per kandidat diambil jarak MINIMUM dari semua sampelnya (best-of-N), baru
// dibandingkan lintas kandidat. Sampel yang rusak atau beda dimensi di-skip
// satu per satu; kandidat tanpa satu pun sampel valid di-skip seluruhnya.
// Kalau dua kandidat jaraknya persis sama, yang menang id terkecil.
func MatchBest(probe []float64, candidates []CandidateFaces) MatchResult {
	result := MatchResult{TotalCompared: len(candidates)}

	for _, cand := range candidates {
		bestDist := -1.0
		usable := 0

		for _, emb := range cand.Embeddings {
			dist, err := EuclideanDistance(probe, emb)
			if err != nil {
				continue // sampel ini saja yang gagal, lanjut ke berikutnya
			}
			usable++
			if bestDist < 0 || dist < bestDist {
				bestDist = dist
			}
		}

		if usable == 0 {
			continue
		}

		result.Ranking = append(result.Ranking, RankEntry{
			KaryawanId:  cand.KaryawanId,
			Nama:        cand.Nama,
			Distance:    bestDist,
			Similarity:  SimilarityFromDistance(bestDist),
			SampleCount: usable,
		})
	}

	sort.SliceStable(result.Ranking, func(i, j int) bool {
		if result.Ranking[i].Distance != result.Ranking[j].Distance {
			return result.Ranking[i].Distance < result.Ranking[j].Distance
		}
		return result.Ranking[i].KaryawanId < result.Ranking[j].KaryawanId
	})

	if len(result.Ranking) > 0 {
		result.Found = true
		result.Best = result.Ranking[0]
	}
	return result
}

// WithinThreshold memutuskan identitas diterima atau tidak. Batas ambang
// inklusif: jarak persis sama dengan threshold tetap diterima.
func WithinThreshold(distance, threshold float64) bool {
	return distance <= threshold
}
