// Package app assembles the pipeline components from configuration.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Tajaar/Rag-chat/internal/chunker"
	"github.com/Tajaar/Rag-chat/internal/config"
	"github.com/Tajaar/Rag-chat/internal/domain"
	embollama "github.com/Tajaar/Rag-chat/internal/embedding/ollama"
	"github.com/Tajaar/Rag-chat/internal/embedding/tfidf"
	genollama "github.com/Tajaar/Rag-chat/internal/generator/ollama"
	"github.com/Tajaar/Rag-chat/internal/index"
	"github.com/Tajaar/Rag-chat/internal/service"
	"github.com/Tajaar/Rag-chat/internal/session"
	"github.com/Tajaar/Rag-chat/internal/summarizer"
	"github.com/Tajaar/Rag-chat/internal/vectorstore"
	"github.com/Tajaar/Rag-chat/internal/vectorstore/memory"
	"github.com/Tajaar/Rag-chat/internal/vectorstore/qdrant"
)

// NewService builds the orchestrator from config.
func NewService(cfg *config.AppConfig) (*service.Service, error) {
	emb, err := newEmbedder(cfg)
	if err != nil {
		return nil, err
	}
	ch, err := newChunker(cfg)
	if err != nil {
		return nil, err
	}
	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}
	gen := genollama.NewClient(genollama.Config{
		BaseURL: cfg.Generator.BaseURL,
		Model:   cfg.Generator.Model,
		Timeout: time.Duration(cfg.Generator.TimeoutSecs) * time.Second,
	})
	sum := summarizer.NewFrequency(cfg.Summarizer.MaxSentences)
	return service.New(ch, index.New(store, emb), gen, sum, cfg.Retrieval.TopK), nil
}

// NewSessionStore builds the transcript store, defaulting to a per-user
// data directory.
func NewSessionStore(cfg *config.AppConfig) (*session.Store, error) {
	dir := cfg.Sessions.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".config", "ragchat", "sessions")
	}
	return session.NewStore(dir)
}

func newEmbedder(cfg *config.AppConfig) (domain.Embedder, error) {
	switch cfg.Embedder.Type {
	case "tfidf", "":
		return tfidf.NewEmbedder(), nil
	case "ollama":
		var oc config.OllamaEmbedderConfig
		if cfg.Embedder.Ollama != nil {
			oc = *cfg.Embedder.Ollama
		}
		return embollama.NewClient(embollama.Config{
			BaseURL:   oc.BaseURL,
			APIKeyEnv: oc.APIKeyEnv,
			Model:     oc.Model,
			Timeout:   time.Duration(oc.TimeoutSecs) * time.Second,
		})
	default:
		return nil, fmt.Errorf("unknown embedder: %s", cfg.Embedder.Type)
	}
}

func newChunker(cfg *config.AppConfig) (domain.Chunker, error) {
	switch cfg.Chunker.Type {
	case "words", "":
		return chunker.NewWords(cfg.Chunker.ChunkSize, "uploaded"), nil
	case "recursive":
		return chunker.NewRecursive(cfg.Chunker.ChunkSize, cfg.Chunker.ChunkOverlap), nil
	case "sentence":
		return chunker.NewSentences(cfg.Chunker.SentencesPerChunk, cfg.Chunker.OverlapSentences), nil
	default:
		return nil, fmt.Errorf("unknown chunker: %s", cfg.Chunker.Type)
	}
}

func newStore(cfg *config.AppConfig) (vectorstore.Store, error) {
	switch cfg.VectorStore.Type {
	case "memory", "":
		return memory.NewStore(), nil
	case "qdrant":
		if cfg.VectorStore.Qdrant == nil {
			return nil, fmt.Errorf("qdrant config missing")
		}
		qc := cfg.VectorStore.Qdrant
		return qdrant.NewStore(qdrant.Config{
			URL:        qc.URL,
			APIKey:     qc.APIKey,
			Collection: qc.Collection,
			Timeout:    time.Duration(qc.TimeoutSecs) * time.Second,
		}), nil
	default:
		return nil, fmt.Errorf("unknown vector store: %s", cfg.VectorStore.Type)
	}
}
