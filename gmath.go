// Package gmath is a small linear-algebra library for graphics and physics code, built around rigid
// rotations in 2D and 3D.
//
// A rotation can live in more than one representation - an orthogonal matrix (Rot2, Rot3) or a unit
// quaternion (Quaternion) - and the Rotation2 / Rotation3 interfaces let code work against whichever one
// is in hand, while each representation composes and inverts with its own cheapest algorithm. The
// conversion capabilities (ToMatrix2, ToMatrix3, ToQuaternion, ToRotation2, ToRotation3) move values
// between representations losslessly.
//
// Everything is generic over the scalar type: use float32 for GPU-adjacent work and float64 when
// precision matters more than bandwidth.
//
// Conventions: right-handed coordinate system, counter-clockwise rotations around an axis pointed at the
// viewer, column vectors (a matrix multiplies a vector as M·v), and a.Concat(b) applying b before a.
package gmath
