// Package message handles the header vocabulary of Octave text files.
//
// Each object in a file is announced by a short run of metadata lines. Every
// line starts with the marker character '#' followed by one tag and its value:
//
//	# name: int_mat
//	# type: int32 matrix
//	# rows: 2
//	# columns: 3
//
// # Tags
//
//   - name: the variable identifier
//   - type: optional kind tag, optional "complex", then scalar, matrix or string.
//     See [ParseType] and [Datatype].
//   - rows:, columns: legacy matrix dimensions
//   - ndims: newer matrix dimensions, followed by a line listing the sizes
//   - elements:, length: string count and character length
//
// # Descriptors
//
// A [Descriptor] combines the parsed type with the dimensions. Matrices with a
// single row or column are demoted to [Vector] or [CoVector] by [Refine]; a
// 1×1 matrix becomes a Vector.
//
// The line sequence itself (which tags follow which) is driven by the object
// package; this package only parses and formats individual lines.
package message
