package geom_test

import (
	"encoding/json"
	"math"
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type scene struct {
	Rotation geom.Angle `json:"rotation" yaml:"rotation"`
	Bounds   AABB       `json:"bounds" yaml:"bounds"`
	Shape    Polygon    `json:"shape" yaml:"shape"`
}

func testScene(t *testing.T) scene {
	return scene{
		Rotation: geom.QuarterTurn,
		Bounds:   box(t, -1, -2, 3, 4),
		Shape:    poly(t, Vec{0, 0}, Vec{1, 0}, Vec{0.5, 1}),
	}
}

func TestJSON(t *testing.T) {
	in := testScene(t)
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"rotation": 1.5707963267948966,
		"bounds": {"min": {"x": -1, "y": -2}, "max": {"x": 3, "y": 4}},
		"shape": [{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 0.5, "y": 1}]
	}`, string(data))

	var out scene
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestJSONInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"InvertedBounds", `{"bounds": {"min": {"x": 1, "y": 1}, "max": {"x": 0, "y": 0}}}`, geom.ErrInvertedBounds},
		{"TooFewVertices", `{"shape": [{"x": 0, "y": 0}, {"x": 1, "y": 1}]}`, geom.ErrTooFewVertices},
		{"DegenerateEdge", `{"shape": [{"x": 0, "y": 0}, {"x": 0, "y": 0}, {"x": 1, "y": 1}]}`, geom.ErrDegenerateEdge},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out scene
			err := json.Unmarshal([]byte(test.data), &out)
			require.ErrorIs(t, err, test.err)
		})
	}

	var a geom.Angle
	require.Error(t, json.Unmarshal([]byte(`"north"`), &a))
}

func TestYAML(t *testing.T) {
	in := testScene(t)
	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out scene
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.Equal(t, in, out)

	err = yaml.Unmarshal([]byte(`
rotation: 7.0
bounds: {min: {x: 0, y: 0}, max: {x: 2, y: 2}}
shape:
  - {x: 0, y: 0}
  - {x: 2, y: 0}
  - {x: 2, y: 2}
`), &out)
	require.NoError(t, err)
	require.InDelta(t, 7-2*math.Pi, out.Rotation.Radians(), 1e-12)
	require.Equal(t, box(t, 0, 0, 2, 2), out.Bounds)
	require.Equal(t, 3, out.Shape.Len())
}

func TestYAMLInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{"NaNAngle", `rotation: .nan`, geom.ErrNonFinite},
		{"InfiniteCorner", `bounds: {min: {x: 0, y: -.inf}, max: {x: 1, y: 1}}`, geom.ErrNonFinite},
		{"InvertedBounds", `bounds: {min: {x: 0, y: 2}, max: {x: 1, y: 1}}`, geom.ErrInvertedBounds},
		{"TooFewVertices", `shape: [{x: 0, y: 0}]`, geom.ErrTooFewVertices},
		{"ClosedRing", `shape: [{x: 0, y: 0}, {x: 1, y: 0}, {x: 1, y: 1}, {x: 0, y: 0}]`, geom.ErrDegenerateEdge},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out scene
			err := yaml.Unmarshal([]byte(test.data), &out)
			require.ErrorIs(t, err, test.err)
		})
	}
}
