package geom

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The types in this package marshal to plain structures and are
// validated on the way back in, so that decoding can't produce a value
// that the constructors would have rejected.
//
//	Angle    1.5707963267948966
//	AABB     {"min": {"x": 0, "y": 0}, "max": {"x": 1, "y": 1}}
//	Polygon  [{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 0, "y": 1}]

type aabbData[T Float] struct {
	Min Vec[T] `json:"min" yaml:"min"`
	Max Vec[T] `json:"max" yaml:"max"`
}

func (a Angle) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.rad)
}

func (a *Angle) UnmarshalJSON(data []byte) error {
	var r float64
	err := json.Unmarshal(data, &r)
	if err != nil {
		return fmt.Errorf("decode angle: %w", err)
	}
	return a.set(r)
}

func (a Angle) MarshalYAML() (any, error) {
	return a.rad, nil
}

func (a *Angle) UnmarshalYAML(node *yaml.Node) error {
	var r float64
	err := node.Decode(&r)
	if err != nil {
		return fmt.Errorf("decode angle: %w", err)
	}
	return a.set(r)
}

func (a *Angle) set(r float64) error {
	v, err := AngleFromRadians(r)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (b AABB[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(aabbData[T]{Min: b.min, Max: b.max})
}

func (b *AABB[T]) UnmarshalJSON(data []byte) error {
	var raw aabbData[T]
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("decode AABB: %w", err)
	}
	return b.set(raw)
}

func (b AABB[T]) MarshalYAML() (any, error) {
	return aabbData[T]{Min: b.min, Max: b.max}, nil
}

func (b *AABB[T]) UnmarshalYAML(node *yaml.Node) error {
	var raw aabbData[T]
	err := node.Decode(&raw)
	if err != nil {
		return fmt.Errorf("decode AABB: %w", err)
	}
	return b.set(raw)
}

func (b *AABB[T]) set(raw aabbData[T]) error {
	v, err := NewAABB(raw.Min, raw.Max)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (p Polygon[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.vertices)
}

func (p *Polygon[T]) UnmarshalJSON(data []byte) error {
	var raw []Vec[T]
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("decode polygon: %w", err)
	}
	return p.set(raw)
}

func (p Polygon[T]) MarshalYAML() (any, error) {
	return p.vertices, nil
}

func (p *Polygon[T]) UnmarshalYAML(node *yaml.Node) error {
	var raw []Vec[T]
	err := node.Decode(&raw)
	if err != nil {
		return fmt.Errorf("decode polygon: %w", err)
	}
	return p.set(raw)
}

func (p *Polygon[T]) set(raw []Vec[T]) error {
	v, err := NewPolygon(raw...)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
