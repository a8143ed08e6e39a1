package mesh

// Vec3 is a single-precision 3D coordinate or displacement. It is a pure
// value type with no identity beyond its components.
type Vec3 struct {
	X, Y, Z float32
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LengthSquared returns the squared Euclidean length of v. No square root
// is taken; relative ordering is all the neighbor search needs.
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}
