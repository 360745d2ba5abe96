package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "tfidf", cfg.Embedder.Type)
	assert.Equal(t, "words", cfg.Chunker.Type)
	assert.Equal(t, 300, cfg.Chunker.ChunkSize)
	assert.Equal(t, "memory", cfg.VectorStore.Type)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
	assert.Equal(t, "llama3", cfg.Generator.Model)
}

func TestLoad_AppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
chunker:
  type: recursive
vector_store:
  type: qdrant
  qdrant:
    url: http://localhost:6333
    collection: document_chunks
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "recursive", cfg.Chunker.Type)
	assert.Equal(t, 500, cfg.Chunker.ChunkSize)
	assert.Equal(t, 50, cfg.Chunker.ChunkOverlap)
	assert.Equal(t, "qdrant", cfg.VectorStore.Type)
	assert.Equal(t, "document_chunks", cfg.VectorStore.Qdrant.Collection)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := defaultConfig()
	cfg.Retrieval.TopK = 7
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Retrieval.TopK)
}
