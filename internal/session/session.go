// Package session persists chat transcripts, one JSON array of
// role/content records per named session file. The retrieval core never
// reads or writes this format; it only produces the message pairs.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Tajaar/Rag-chat/internal/domain"
)

const fileExt = ".json"

// Store keeps transcripts under one directory. Rename is a file rename,
// delete is a file removal.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the transcript for the named session, replacing any
// previous content.
func (s *Store) Save(name string, messages []domain.Message) error {
	if err := validName(name); err != nil {
		return err
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name), data, 0o644)
}

// Load reads the named session's transcript.
func (s *Store) Load(name string) ([]domain.Message, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, err
	}
	var messages []domain.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("session %s: %w", name, err)
	}
	return messages, nil
}

// List returns the stored session names, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}

// Rename moves a session to a new name.
func (s *Store) Rename(oldName, newName string) error {
	if err := validName(oldName); err != nil {
		return err
	}
	if err := validName(newName); err != nil {
		return err
	}
	return os.Rename(s.path(oldName), s.path(newName))
}

// Delete removes the named session.
func (s *Store) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	return os.Remove(s.path(name))
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}

func validName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid session name %q", name)
	}
	return nil
}
