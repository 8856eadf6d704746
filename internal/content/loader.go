package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"quiz-seed/internal/domain"

	"golang.org/x/sync/errgroup"
)

//go:embed topics/*.json
var topicFiles embed.FS

// Entry names a topic and the document that holds it.
type Entry struct {
	Name string
	File string
}

// Manifest is the fixed seeding order of the shipped topics.
var Manifest = []Entry{
	{Name: "Primitives and Objects", File: "topics/primitives_objects.json"},
	{Name: "Boxing and Unboxing", File: "topics/boxing_unboxing.json"},
	{Name: "Implicit Type Casting", File: "topics/implicit_type_casting.json"},
	{Name: "Symbol", File: "topics/symbol.json"},
}

// LoadTopics parses the embedded topic documents in Manifest order.
func LoadTopics() ([]domain.Topic, error) {
	return LoadTopicsFS(topicFiles, Manifest)
}

// LoadTopicsFS parses entries from fsys. Documents are decoded concurrently;
// the result keeps the order of entries.
func LoadTopicsFS(fsys fs.FS, entries []Entry) ([]domain.Topic, error) {
	topics := make([]domain.Topic, len(entries))

	var g errgroup.Group
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			raw, err := fs.ReadFile(fsys, entry.File)
			if err != nil {
				return fmt.Errorf("failed to read topic %q: %w", entry.Name, err)
			}
			var mock TopicMock
			if err := json.Unmarshal(raw, &mock); err != nil {
				return fmt.Errorf("failed to unmarshal topic %q: %w", entry.Name, err)
			}
			topics[i] = mock.ToDomain(entry.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return topics, nil
}
