package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"PRESENSI/config"
)

// Error domain: gambar tidak bisa diolah jadi vektor wajah.
// Kegagalan service ML tidak boleh bikin server crash, cukup jadi error ini.
var ErrExtractFailed = errors.New("gagal mengekstrak data wajah dari gambar")

type extractRequest struct {
	Image string `json:"image"` // base64
}

type extractResponse struct {
	Embedding []float64 `json:"embedding"`
	Error     string    `json:"error"`
}

var httpClient = &http.Client{}

// ExtractEmbedding mengirim gambar base64 ke service ML (Python) dan menerima
// vektor wajahnya. Timeout diambil dari config; satu inferensi bisa makan
// belasan detik di hardware kecil.
func ExtractEmbedding(ctx context.Context, imageBase64 string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, config.ML_TIMEOUT)
	defer cancel()

	payload, err := json.Marshal(extractRequest{Image: imageBase64})
	if err != nil {
		return nil, ErrExtractFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		config.ML_SERVICE_URL+"/extract", bytes.NewReader(payload))
	if err != nil {
		return nil, ErrExtractFailed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: service ML status %d", ErrExtractFailed, resp.StatusCode)
	}

	var result extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, ErrExtractFailed
	}
	if result.Error != "" || len(result.Embedding) == 0 {
		return nil, ErrExtractFailed
	}

	return result.Embedding, nil
}
