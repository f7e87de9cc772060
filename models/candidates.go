package models

import (
	"encoding/json"

	"PRESENSI/helper"

	"gorm.io/gorm"
)

// LoadCandidateFaces mengambil populasi kandidat pencocokan: semua karyawan
// aktif beserta SEMUA sampel wajahnya. Baris karyawan (kolom legacy) dan
// user_faces dibaca dalam SATU transaksi: proses ganti-wajah yang commit di
// tengah-tengah tidak boleh terlihat sebagai gabungan set lama + set baru.
// Urut id ascending; itu juga yang menentukan pemenang kalau ada dua jarak
// persis sama.
func LoadCandidateFaces(db *gorm.DB) ([]helper.CandidateFaces, error) {
	var users []Karyawan
	var faces []UserFace

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("is_active = ?", true).Order("id asc").Find(&users).Error; err != nil {
			return err
		}
		return tx.Order("karyawan_id asc, id asc").Find(&faces).Error
	})
	if err != nil {
		return nil, err
	}

	byUser := map[int64][][]float64{}
	for _, face := range faces {
		var vector []float64
		// Skip baris dengan JSON rusak, jangan gagalkan seluruh scan
		if err := json.Unmarshal(face.Embedding, &vector); err != nil {
			continue
		}
		byUser[face.KaryawanId] = append(byUser[face.KaryawanId], vector)
	}

	candidates := make([]helper.CandidateFaces, 0, len(users))
	for _, user := range users {
		embeddings := byUser[user.Id]

		// Embedding tunggal versi lama ikut dibandingkan kalau ada
		if len(user.LegacyEmbedding) > 0 {
			var legacy []float64
			if err := json.Unmarshal(user.LegacyEmbedding, &legacy); err == nil && len(legacy) > 0 {
				embeddings = append(embeddings, legacy)
			}
		}

		candidates = append(candidates, helper.CandidateFaces{
			KaryawanId: user.Id,
			Nama:       user.Nama,
			Embeddings: embeddings,
		})
	}
	return candidates, nil
}

// CandidateFacesForUser memuat sampel wajah milik satu karyawan saja
// (dipakai alur verify yang sudah login). Baris karyawan dibaca ULANG di
// transaksi yang sama dengan user_faces: row bawaan middleware auth bisa
// sudah basi kalau admin baru saja mengganti wajah user ini.
func CandidateFacesForUser(db *gorm.DB, user Karyawan) ([]helper.CandidateFaces, error) {
	var fresh Karyawan
	var faces []UserFace

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&fresh, user.Id).Error; err != nil {
			return err
		}
		return tx.Where("karyawan_id = ?", user.Id).Order("id asc").Find(&faces).Error
	})
	if err != nil {
		return nil, err
	}

	var embeddings [][]float64
	for _, face := range faces {
		var vector []float64
		if err := json.Unmarshal(face.Embedding, &vector); err != nil {
			continue
		}
		embeddings = append(embeddings, vector)
	}

	if len(fresh.LegacyEmbedding) > 0 {
		var legacy []float64
		if err := json.Unmarshal(fresh.LegacyEmbedding, &legacy); err == nil && len(legacy) > 0 {
			embeddings = append(embeddings, legacy)
		}
	}

	return []helper.CandidateFaces{{
		KaryawanId: fresh.Id,
		Nama:       fresh.Nama,
		Embeddings: embeddings,
	}}, nil
}
