package gameplayutils

import (
	"fmt"
	"math"
)

// WorldRight represents a unit vector in the global +X direction.
var WorldRight = NewVector(1, 0, 0)

// WorldForward represents a unit vector in the global +Y direction.
var WorldForward = NewVector(0, 1, 0)

// WorldUp represents a unit vector in the global +Z direction (the vertical axis).
var WorldUp = NewVector(0, 0, 1)

// Vector represents a 3D vector for the usual gameplay applications (position,
// direction, velocity, etc). The world space is right-handed with Z as the up axis.
// Any Vector functions that modify the calling Vector return copies of the modified
// Vector, so method-chaining works naturally and Vectors can be passed around by
// value without surprises.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd, vertical) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorZero creates a new "zero-ed out" Vector, with x, y, and z all 0.
func NewVectorZero() Vector {
	return Vector{}
}

// Add returns a copy of the calling Vector, added together with the other Vector.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Invert returns a copy of the Vector with all components flipped.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Scale scales a Vector by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector by the given scalar.
func (vec Vector) Divide(scalar float64) Vector {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than
// Magnitude() as it avoids math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the Euclidean distance between the calling Vector and the other Vector.
func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// DistanceSquared returns the squared distance between the calling Vector and the
// other Vector; faster than Distance() for comparisons.
func (vec Vector) DistanceSquared(other Vector) float64 {
	return vec.Sub(other).MagnitudeSquared()
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
// A zero (or near-zero) Vector is returned unmodified.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		// If it's 0, then don't modify the vector
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Dot returns the dot product of the Vector and the other Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Cross returns the cross product of the calling Vector and the other Vector.
func (vec Vector) Cross(other Vector) Vector {

	ogY := vec.Y
	ogZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogZ*other.X - other.Z*vec.X
	vec.X = ogY*other.Z - other.Y*ogZ

	return vec

}

// Flatten returns a copy of the Vector with the vertical (Z) component zeroed out,
// leaving the horizontal-plane projection.
func (vec Vector) Flatten() Vector {
	vec.Z = 0
	return vec
}

// Lerp linearly interpolates from the calling Vector towards the other Vector by the
// percentage given (clamped to a 0-1 range).
func (vec Vector) Lerp(other Vector, percent float64) Vector {
	percent = clamp(percent, 0, 1)
	vec.X += (other.X - vec.X) * percent
	vec.Y += (other.Y - vec.Y) * percent
	vec.Z += (other.Z - vec.Z) * percent
	return vec
}

// SetX sets the X component in the vector to the value provided.
func (vec Vector) SetX(x float64) Vector {
	vec.X = x
	return vec
}

// SetY sets the Y component in the vector to the value provided.
func (vec Vector) SetY(y float64) Vector {
	vec.Y = y
	return vec
}

// SetZ sets the Z component in the vector to the value provided.
func (vec Vector) SetZ(z float64) Vector {
	vec.Z = z
	return vec
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector) Equals(other Vector) bool {

	eps := 1e-8

	if math.Abs(vec.X-other.X) > eps || math.Abs(vec.Y-other.Y) > eps || math.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// IsZero returns true if all of the values in the Vector are extremely close to 0.
func (vec Vector) IsZero() bool {

	eps := 1e-8

	if math.Abs(vec.X) > eps || math.Abs(vec.Y) > eps || math.Abs(vec.Z) > eps {
		return false
	}

	return true

}

// String returns a string representation of the Vector, rounded for readability.
func (vec Vector) String() string {
	return fmt.Sprintf("{%.2f, %.2f, %.2f}", vec.X, vec.Y, vec.Z)
}
