package catalog

import (
	"fmt"
	"sort"
	"sync"

	glinterrors "github.com/glintui/glint/pkg/errors"
)

// Registry indexes stories by ID.
type Registry struct {
	mu      sync.RWMutex
	stories map[string]Story
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{stories: make(map[string]Story)}
}

// Register adds a story. IDs are unique; registering a duplicate fails.
func (r *Registry) Register(story Story) error {
	if story.ID == "" {
		return glinterrors.NewStoryError(story.ID, fmt.Errorf("story has no id"))
	}
	if story.New == nil {
		return glinterrors.NewStoryError(story.ID, fmt.Errorf("story has no constructor"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stories[story.ID]; exists {
		return glinterrors.NewStoryError(story.ID, fmt.Errorf("story already registered"))
	}
	r.stories[story.ID] = story
	return nil
}

// Get retrieves a story by ID.
func (r *Registry) Get(id string) (Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	story, ok := r.stories[id]
	if !ok {
		return Story{}, glinterrors.NewStoryError(id, fmt.Errorf("no such story"))
	}
	return story, nil
}

// List returns every story sorted by ID.
func (r *Registry) List() []Story {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Story, 0, len(r.stories))
	for _, story := range r.stories {
		out = append(out, story)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered stories.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stories)
}
