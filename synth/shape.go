// SPDX-License-Identifier: EPL-2.0

package synth

// Shape selects which generation formula Generate applies.
type Shape int

const (
	Sine Shape = iota
	Square
	Sawtooth
	Triangle
	// Harmonics is an additive series of sine partials; see SignalSpec.Harmonics.
	Harmonics
)

var shapeNames = map[Shape]string{
	Sine:      "sine",
	Square:    "square",
	Sawtooth:  "sawtooth",
	Triangle:  "triangle",
	Harmonics: "harmonics",
}

func (s Shape) String() string {
	name, ok := shapeNames[s]
	if !ok {
		return "unknown"
	}
	return name
}

// ParseShape maps a shape name (as returned by Shape.String) back to its
// Shape value. Unrecognized names return ErrUnknownShape.
func ParseShape(name string) (Shape, error) {
	for s, n := range shapeNames {
		if n == name {
			return s, nil
		}
	}
	return 0, ErrUnknownShape
}
