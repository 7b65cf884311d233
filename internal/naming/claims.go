package naming

import (
	"errors"
	"fmt"

	"iconforge/internal/model"
)

var (
	// ErrCollision marks a raw name whose canonical name was already claimed by another raw name.
	ErrCollision = errors.New("canonical name collision")
	// ErrEmptyName marks a raw name that canonicalizes to an empty component id (e.g., "-" or "__").
	ErrEmptyName = errors.New("empty component id")
)

// Claims tracks which raw name owns each component id and file slug within one scope.
type Claims struct {
	ids   map[string]string
	slugs map[string]string
}

// NewClaims creates an empty claim set.
func NewClaims(size int) *Claims {
	return &Claims{ids: make(map[string]string, size), slugs: make(map[string]string, size)}
}

// Claim registers name for rawName. The first raw name keeps a component id or
// slug; later ones get ErrCollision. Empty component ids get ErrEmptyName.
func (c *Claims) Claim(rawName string, name model.Name) error {
	if name.ComponentID == "" || name.FileSlug == "" {
		return fmt.Errorf("%w: %q", ErrEmptyName, rawName)
	}
	if owner, ok := c.ids[name.ComponentID]; ok && owner != rawName {
		return fmt.Errorf("%w: %s and %s", ErrCollision, owner, rawName)
	}
	if owner, ok := c.slugs[name.FileSlug]; ok && owner != rawName {
		return fmt.Errorf("%w: %s and %s", ErrCollision, owner, rawName)
	}
	c.ids[name.ComponentID] = rawName
	c.slugs[name.FileSlug] = rawName
	return nil
}
