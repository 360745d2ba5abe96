package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tajaar/Rag-chat/internal/domain"
)

func TestLoadWarning(t *testing.T) {
	warning, ok := loadWarning(nil)
	require.True(t, ok)
	assert.Empty(t, warning)

	partial := &domain.PartialAddError{Added: 64, Total: 128, Err: errors.New("store unavailable")}
	warning, ok = loadWarning(partial)
	require.True(t, ok, "a partially populated index is still usable")
	assert.Contains(t, warning, "only part of the document was indexed")

	_, ok = loadWarning(domain.ErrEmptyDocument)
	assert.False(t, ok)
}
