/*
Package ggh is a pure Go implementation of the Goldreich-Goldwasser-Halevi (GGH) public-key
cryptosystem over integer lattices, along with the exact lattice arithmetic it relies on.

The cryptosystem is implemented in the schemes/ggh package, the exact linear algebra over
bases of integer lattices in the core/lattice package, and a command line example in examples/ggh.
This library is educational: GGH in its original form is broken by lattice reduction and must
not be used to protect data.
*/
package ggh
