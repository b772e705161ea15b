package models

import (
	"fmt"
	"strings"
)

type Category struct {
	ID    string `json:"id" yaml:"id"`
	Owner string `json:"owner" yaml:"owner"`
	Name  string `json:"name" yaml:"name"`
	Emoji string `json:"emoji" yaml:"emoji"`
	Color string `json:"color" yaml:"color"` // hex colour, e.g. #E8D5FF
}

// CategoryInput carries the fields supplied when creating a category.
type CategoryInput struct {
	Name  string
	Emoji string
	Color string
}

func (in CategoryInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("category name must not be empty")
	}
	return nil
}

// CategoryPatch is a field-level optional update; unset fields are left unchanged.
type CategoryPatch struct {
	Name  Optional[string]
	Emoji Optional[string]
	Color Optional[string]
}

func (p CategoryPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Emoji.Set && !p.Color.Set
}

func (p CategoryPatch) Validate() error {
	if p.Name.Set && strings.TrimSpace(p.Name.Value) == "" {
		return fmt.Errorf("category name must not be empty")
	}
	return nil
}

// Apply returns c with every set field of p written over it.
func (p CategoryPatch) Apply(c Category) Category {
	if p.Name.Set {
		c.Name = p.Name.Value
	}
	if p.Emoji.Set {
		c.Emoji = p.Emoji.Value
	}
	if p.Color.Set {
		c.Color = p.Color.Value
	}
	return c
}
