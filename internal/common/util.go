// Package common holds small helpers shared by client packages.
package common

// WipeByteArray overwrites b with zeros. Passwords are kept in byte slices
// so they can be wiped once sent. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
