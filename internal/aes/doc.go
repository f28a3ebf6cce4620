// Package aes implements AES-256 block encryption and the GCM authenticated
// mode from first principles. Every sub-step of the cipher — SubBytes,
// ShiftRows, MixColumns, AddRoundKey, the key schedule, J0 derivation,
// counter increment and GHASH — is exported so the circuit harness can
// reproduce and compare each intermediate value independently.
//
// The state is a 16-byte block in column-major order: byte index 4*col + row,
// matching the FIPS-197 layout. Only encryption is implemented; GCM decryption
// reuses the forward cipher because CTR mode is its own inverse.
package aes
