// Package permit implements EIP-712 typed-data hashing for Permit2 batch
// token-transfer authorizations. Struct hashing follows the standard's
// encodeData rules: every field widens to a 32-byte big-endian word, dynamic
// arrays hash to the keccak256 of their concatenated element hashes, and
// referenced struct definitions are appended to the type string before it is
// hashed into a typehash. The mainnet Permit2 constants fall out of those
// rules and are pinned in the package tests.
package permit
