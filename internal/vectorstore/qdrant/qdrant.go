// Package qdrant is a minimal REST client for a Qdrant collection.
package qdrant

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Tajaar/Rag-chat/internal/domain"
)

// Store talks to one named Qdrant collection over REST using cosine
// distance. Qdrant's HNSW search is approximate: near-ties may reorder
// across backend versions, which callers must not treat as an invariant.
type Store struct {
	url        string
	apiKey     string
	collection string
	client     *http.Client
}

type Config struct {
	URL        string
	APIKey     string
	Collection string
	Timeout    time.Duration
}

func NewStore(cfg Config) *Store {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	collection := cfg.Collection
	if collection == "" {
		collection = "document_chunks"
	}
	return &Store{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		collection: collection,
		client:     &http.Client{Timeout: timeout},
	}
}

func (s *Store) EnsureCollection(dimension int) (bool, error) {
	if dimension <= 0 {
		return false, errors.New("qdrant: invalid dimension")
	}
	status, err := s.do(http.MethodGet, s.collectionURL(), nil, nil)
	if err != nil {
		return false, err
	}
	if status == http.StatusOK {
		return false, nil
	}
	// only a confirmed missing collection justifies creating one; a
	// backend fault must not be papered over with a PUT
	if status != http.StatusNotFound {
		return false, fmt.Errorf("qdrant: collection check failed: status %d", status)
	}
	body := map[string]any{
		"vectors": map[string]any{
			"size":     dimension,
			"distance": "Cosine",
		},
	}
	status, err = s.do(http.MethodPut, s.collectionURL(), body, nil)
	if err != nil {
		return false, err
	}
	if status >= 300 {
		return false, fmt.Errorf("qdrant: create collection failed: status %d", status)
	}
	return true, nil
}

func (s *Store) DropCollection() error {
	status, err := s.do(http.MethodDelete, s.collectionURL(), nil, nil)
	if err != nil {
		return err
	}
	if status >= 300 && status != http.StatusNotFound {
		return fmt.Errorf("qdrant: delete collection failed: status %d", status)
	}
	return nil
}

func (s *Store) Add(chunks []domain.Chunk, vectors [][]float64) error {
	if len(chunks) != len(vectors) {
		return errors.New("qdrant: chunks and vectors length mismatch")
	}
	if len(chunks) == 0 {
		return nil
	}
	points := make([]map[string]any, len(chunks))
	for i, ch := range chunks {
		points[i] = map[string]any{
			"id":     ch.ID,
			"vector": vectors[i],
			"payload": map[string]any{
				"text":     ch.Text,
				"metadata": ch.Metadata,
			},
		}
	}
	url := s.collectionURL() + "/points?wait=true"
	status, err := s.do(http.MethodPut, url, map[string]any{"points": points}, nil)
	if err != nil {
		return err
	}
	if status >= 300 {
		return fmt.Errorf("qdrant: upsert failed: status %d", status)
	}
	return nil
}

func (s *Store) Query(vector []float64, topK int) ([]domain.ScoredChunk, error) {
	if topK <= 0 {
		return nil, nil
	}
	req := map[string]any{
		"vector":       vector,
		"limit":        topK,
		"with_payload": true,
	}
	var resp struct {
		Result []struct {
			Score   float64 `json:"score"`
			Payload struct {
				Text     string            `json:"text"`
				Metadata map[string]string `json:"metadata"`
			} `json:"payload"`
		} `json:"result"`
	}
	status, err := s.do(http.MethodPost, s.collectionURL()+"/points/search", req, &resp)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		// collection has not been created yet
		return nil, nil
	}
	if status >= 300 {
		return nil, fmt.Errorf("qdrant: search failed: status %d", status)
	}
	out := make([]domain.ScoredChunk, 0, len(resp.Result))
	for _, r := range resp.Result {
		out = append(out, domain.ScoredChunk{
			Text:     r.Payload.Text,
			Metadata: r.Payload.Metadata,
			Score:    r.Score,
		})
	}
	return out, nil
}

func (s *Store) collectionURL() string {
	return fmt.Sprintf("%s/collections/%s", s.url, s.collection)
}

func (s *Store) do(method, url string, body, out any) (int, error) {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}
