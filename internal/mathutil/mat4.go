package mathutil

// Mat4 is a 4×4 matrix stored row-major. Used for the camera basis transform.
type Mat4 [16]float64

// MulHomogeneous homogenizes v with w=1, multiplies, and divides by the resulting w.
// When the resulting w is exactly 0 the undivided result is returned.
func (m Mat4) MulHomogeneous(v Vec3) Vec3 {
	x := m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]
	y := m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]
	z := m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]
	w := m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]
	if w != 0 {
		x /= w
		y /= w
		z /= w
	}
	return Vec3{x, y, z}
}

// BasisMat4 builds the matrix whose columns are the given axes, so that
// MulHomogeneous maps (x, y, z) to x·right + y·up + z·forward.
func BasisMat4(right, up, forward Vec3) Mat4 {
	return Mat4{
		right[0], up[0], forward[0], 0,
		right[1], up[1], forward[1], 0,
		right[2], up[2], forward[2], 0,
		0, 0, 0, 1,
	}
}
