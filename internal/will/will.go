package will

import (
	"io"

	"ZKWill-Oracle/internal/aes"
	"ZKWill-Oracle/internal/ecdsa"
	"ZKWill-Oracle/internal/errors"
	"ZKWill-Oracle/internal/permit"
	"ZKWill-Oracle/pkg/logger"
)

// Algorithm selects the sealing cipher. The zero value is invalid so a
// forgotten field surfaces as UnsupportedAlgorithm instead of silently
// picking a default.
type Algorithm uint8

const (
	AlgorithmAES256GCM Algorithm = iota + 1
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmAES256GCM:
		return "aes-256-gcm"
	default:
		return "unknown"
	}
}

// ivSize is the GCM fast-path IV length drawn for every sealed document.
const ivSize = 12

// EncryptedDocument is a sealed will document. The IV is public and stored
// alongside the ciphertext; the tag authenticates ciphertext and AAD.
type EncryptedDocument struct {
	Algorithm  Algorithm
	IV         []byte
	Ciphertext []byte
	Tag        [aes.TagSize]byte
}

// TransferAuthorization is a signed Permit2 batch digest, ready to be
// redeemed by the spender once the will executes.
type TransferAuthorization struct {
	Digest    [32]byte
	Signature ecdsa.Signature
}

// EncryptDocument seals plaintext under key with a fresh IV drawn from rand.
func EncryptDocument(rand io.Reader, alg Algorithm, key, plaintext, aad []byte) (EncryptedDocument, error) {
	switch alg {
	case AlgorithmAES256GCM:
	default:
		return EncryptedDocument{}, errors.Newf(errors.CodeUnsupportedAlgorithm, "algorithm %q", alg)
	}

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand, iv); err != nil {
		return EncryptedDocument{}, errors.Wrap(errors.CodeUnknown, err, "draw iv")
	}

	ciphertext, tag, err := aes.Encrypt(key, iv, plaintext, aad)
	if err != nil {
		return EncryptedDocument{}, err
	}

	logger.Named("will").Debug("document sealed",
		"algorithm", alg.String(),
		"plaintext_bytes", len(plaintext),
		"aad_bytes", len(aad),
	)
	return EncryptedDocument{
		Algorithm:  alg,
		IV:         iv,
		Ciphertext: ciphertext,
		Tag:        tag,
	}, nil
}

// DecryptDocument opens a sealed document. Authentication failure yields no
// plaintext.
func DecryptDocument(key []byte, doc EncryptedDocument, aad []byte) ([]byte, error) {
	switch doc.Algorithm {
	case AlgorithmAES256GCM:
	default:
		return nil, errors.Newf(errors.CodeUnsupportedAlgorithm, "algorithm %q", doc.Algorithm)
	}

	plaintext, err := aes.Decrypt(key, doc.IV, doc.Ciphertext, aad, doc.Tag)
	if err != nil {
		return nil, err
	}
	logger.Named("will").Debug("document opened",
		"algorithm", doc.Algorithm.String(),
		"ciphertext_bytes", len(doc.Ciphertext),
	)
	return plaintext, nil
}

// SignTransferAuthorization hashes the batch under the domain and signs the
// resulting digest with the testator's key.
func SignTransferAuthorization(priv *ecdsa.PrivateKey, batch permit.PermitBatchTransferFrom, domain permit.Domain) (TransferAuthorization, error) {
	digest := batch.Digest(domain)
	sig, err := ecdsa.Sign(digest, priv)
	if err != nil {
		return TransferAuthorization{}, err
	}
	logger.Named("will").Debug("transfer authorization signed",
		"domain", domain.Name,
		"permitted_tokens", len(batch.Permitted),
	)
	return TransferAuthorization{Digest: digest, Signature: sig}, nil
}
