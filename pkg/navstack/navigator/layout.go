package navigator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/options"
)

// Kind is the type of a layout node.
type Kind string

const (
	KindComponent Kind = "component"
	KindStack     Kind = "stack"
)

// Layout describes a tree of screens to build. Component nodes name a
// registered factory; stack nodes list their children bottom to top.
//
//	type: stack
//	id: main
//	children:
//	  - type: component
//	    name: inbox
//	    options:
//	      topBar:
//	        title: Inbox
type Layout struct {
	Type     Kind            `json:"type" yaml:"type"`
	ID       string          `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string          `json:"name,omitempty" yaml:"name,omitempty"`
	Options  options.Options `json:"options" yaml:"options"`
	Children []Layout        `json:"children,omitempty" yaml:"children,omitempty"`
}

// Component is a shorthand for a component node.
func Component(name string, o options.Options) Layout {
	return Layout{Type: KindComponent, Name: name, Options: o}
}

// Stack is a shorthand for a stack node.
func Stack(children ...Layout) Layout {
	return Layout{Type: KindStack, Children: children}
}

// WithID returns a copy of l with the given id.
func (l Layout) WithID(id string) Layout {
	l.ID = id
	return l
}

// Validate checks the tree shape. It does not check component names.
func (l Layout) Validate() error {
	switch l.Type {
	case KindComponent:
		if l.Name == "" {
			return fmt.Errorf("navigator: component %q has no name: %w", l.ID, navstack.ErrInvalidArgument)
		}
		if len(l.Children) > 0 {
			return fmt.Errorf("navigator: component %q has children: %w", l.Name, navstack.ErrInvalidArgument)
		}
	case KindStack:
		for _, child := range l.Children {
			if err := child.Validate(); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("navigator: unknown layout type %q: %w", l.Type, navstack.ErrInvalidArgument)
	}
	return nil
}

// withIDs fills in missing ids, depth first.
func (l Layout) withIDs() Layout {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if len(l.Children) > 0 {
		children := make([]Layout, len(l.Children))
		for i, child := range l.Children {
			children[i] = child.withIDs()
		}
		l.Children = children
	}
	return l
}

// ParseLayout decodes a layout from YAML or JSON.
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return Layout{}, fmt.Errorf("navigator: empty layout: %w", navstack.ErrInvalidArgument)
		}
		return Layout{}, fmt.Errorf("navigator: decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// LoadLayout reads and decodes a layout file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("navigator: read layout: %w", err)
	}
	return ParseLayout(data)
}
