package catalog

import "catdistribution/backend/models"

// Selection tracks at most one cat. Cats are compared by name, so two records
// sharing a name are indistinguishable here; the backend rejects duplicate
// names to keep that from happening.
type Selection struct {
	current *models.Cat
}

// Select replaces the selection; nil clears it
func (s *Selection) Select(c *models.Cat) {
	if c == nil {
		s.current = nil
		return
	}
	cp := *c
	s.current = &cp
}

func (s *Selection) Current() *models.Cat {
	return s.current
}

func (s *Selection) Clear() {
	s.current = nil
}

// IsSelected reports whether c has the selected cat's name
func (s *Selection) IsSelected(c models.Cat) bool {
	return s.current != nil && s.current.Name == c.Name
}
