// Package will is the workflow-facing facade over the crypto engine: sealing
// and opening will documents with AES-256-GCM and signing Permit2 transfer
// authorizations over their EIP-712 digest. It is the only package that logs;
// the primitives underneath stay pure. Log records carry sizes and algorithm
// names, never key or plaintext material.
package will
