// Package vm implements the primitive-value layer of the virtual machine.
//
// This package contains:
//   - Tagged immediate representation of numbers, booleans, null and
//     undefined (two-bit tag in the low bits of a word)
//   - The numeric codec for the wide (float64) and narrow (float32)
//     configurations; build with -tags immediate32 for narrow
//   - Truthiness, canonical singletons, and primitive conversions
//   - A minimal heap that boxes numbers which do not fit in an immediate
package vm
