// Package gf implements the two Galois fields the engine depends on:
// GF(2^8) under the AES reduction polynomial for MixColumns and S-box
// derivation, and GF(2^128) under the GHASH polynomial for tag computation.
// Both multiplications are total functions over their input domains.
package gf
