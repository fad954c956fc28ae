package options

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Param is a single option value that knows whether it was explicitly set.
// The zero Param is unset. Merging only lets set values shadow lower layers,
// so an explicit false or empty string still wins over a default.
type Param[T comparable] struct {
	value T
	set   bool
}

// NewParam returns a set Param holding v.
func NewParam[T comparable](v T) Param[T] {
	return Param[T]{value: v, set: true}
}

// HasValue reports whether the value was explicitly set.
func (p Param[T]) HasValue() bool {
	return p.set
}

// Get returns the value, or the zero value if unset.
func (p Param[T]) Get() T {
	return p.value
}

// GetOr returns the value if set, otherwise def.
func (p Param[T]) GetOr(def T) T {
	if p.set {
		return p.value
	}
	return def
}

// Or returns p if it is set, otherwise lower.
func (p Param[T]) Or(lower Param[T]) Param[T] {
	if p.set {
		return p
	}
	return lower
}

// Equal reports whether both params are unset, or both are set to the same value.
func (p Param[T]) Equal(other Param[T]) bool {
	return p.set == other.set && (!p.set || p.value == other.value)
}

func (p Param[T]) String() string {
	if !p.set {
		return "<unset>"
	}
	return fmt.Sprint(p.value)
}

func (p *Param[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Param[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = NewParam(v)
	return nil
}

func (p Param[T]) MarshalJSON() ([]byte, error) {
	if !p.set {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}

func (p *Param[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*p = Param[T]{}
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = NewParam(v)
	return nil
}

// UnmarshalTOML receives the raw decoded TOML value: bool, int64, float64 or string.
func (p *Param[T]) UnmarshalTOML(data any) error {
	var v T
	switch dst := any(&v).(type) {
	case *bool:
		b, ok := data.(bool)
		if !ok {
			return fmt.Errorf("options: expected bool, got %T", data)
		}
		*dst = b
	case *string:
		s, ok := data.(string)
		if !ok {
			return fmt.Errorf("options: expected string, got %T", data)
		}
		*dst = s
	case *int:
		switch n := data.(type) {
		case int64:
			*dst = int(n)
		case float64:
			*dst = int(n)
		default:
			return fmt.Errorf("options: expected integer, got %T", data)
		}
	case *float64:
		switch n := data.(type) {
		case int64:
			*dst = float64(n)
		case float64:
			*dst = n
		default:
			return fmt.Errorf("options: expected number, got %T", data)
		}
	default:
		return fmt.Errorf("options: unsupported parameter type %T", v)
	}
	*p = NewParam(v)
	return nil
}

// Text is a string option.
type Text = Param[string]

// Number is an integer option.
type Number = Param[int]

// Fraction is a floating point option.
type Fraction = Param[float64]

// Bool is a tri-state option: unset, true or false.
type Bool struct {
	Param[bool]
}

// NewBool returns a set Bool.
func NewBool(v bool) Bool {
	return Bool{NewParam(v)}
}

// True returns a Bool set to true.
func True() Bool { return NewBool(true) }

// False returns a Bool set to false.
func False() Bool { return NewBool(false) }

func (b Bool) IsTrue() bool {
	return b.set && b.value
}

func (b Bool) IsFalse() bool {
	return b.set && !b.value
}

// IsTrueOrUndefined treats an unset value as true.
func (b Bool) IsTrueOrUndefined() bool {
	return !b.set || b.value
}

// IsFalseOrUndefined treats an unset value as false.
func (b Bool) IsFalseOrUndefined() bool {
	return !b.set || !b.value
}

// Or returns b if it is set, otherwise lower.
func (b Bool) Or(lower Bool) Bool {
	if b.set {
		return b
	}
	return lower
}
