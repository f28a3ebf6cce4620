// Package ecdsa implements ECDSA over secp256k1: key generation, deterministic
// RFC 6979 signing, verification and public-key recovery from (r, s, v).
// Signatures are low-s normalized and carry the recovery id in {0, 1}, the
// go-ethereum wire convention; 27/28 values are accepted on recovery.
package ecdsa
