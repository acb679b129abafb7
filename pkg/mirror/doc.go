// Package mirror implements the reflection algebra for symmetric-mode
// packing: every placement in the left half of the strip implicitly
// constrains a mirrored placement in the right half, without that
// mirrored placement ever being committed to the layout.
package mirror
