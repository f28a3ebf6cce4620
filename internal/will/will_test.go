package will

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"ZKWill-Oracle/internal/ecdsa"
	"ZKWill-Oracle/internal/errors"
	"ZKWill-Oracle/internal/permit"
)

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	raw, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return raw
}

// Zero key and an all-zero IV reader pin the seal output to the GCM
// known-answer vector for this plaintext.
func TestEncryptDocumentKnownAnswer(t *testing.T) {
	key := make([]byte, 32)
	ivSource := bytes.NewReader(make([]byte, 12))

	doc, err := EncryptDocument(ivSource, AlgorithmAES256GCM, key, []byte("Hi! How are you?"), nil)
	if err != nil {
		t.Fatalf("EncryptDocument: %v", err)
	}
	if doc.Algorithm != AlgorithmAES256GCM {
		t.Fatalf("algorithm = %v", doc.Algorithm)
	}
	if !bytes.Equal(doc.IV, make([]byte, 12)) {
		t.Fatalf("iv = %x", doc.IV)
	}
	if want := unhex(t, "86ce611d050f1c4e663ca0f3c39ce827"); !bytes.Equal(doc.Ciphertext, want) {
		t.Fatalf("ciphertext = %x, want %x", doc.Ciphertext, want)
	}
	if want := unhex(t, "d10faff370bebbf406f149237682bca5"); !bytes.Equal(doc.Tag[:], want) {
		t.Fatalf("tag = %x, want %x", doc.Tag, want)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	key := unhex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	plaintext := []byte("I leave my entire estate to the holder of this key.")
	aad := []byte("testator:0xabc")

	doc, err := EncryptDocument(rand.Reader, AlgorithmAES256GCM, key, plaintext, aad)
	if err != nil {
		t.Fatalf("EncryptDocument: %v", err)
	}
	got, err := DecryptDocument(key, doc, aad)
	if err != nil {
		t.Fatalf("DecryptDocument: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip changed the document")
	}
}

func TestDecryptFailClosed(t *testing.T) {
	key := make([]byte, 32)
	doc, err := EncryptDocument(rand.Reader, AlgorithmAES256GCM, key, []byte("secret"), []byte("ctx"))
	if err != nil {
		t.Fatalf("EncryptDocument: %v", err)
	}

	tampered := doc
	tampered.Ciphertext = append([]byte(nil), doc.Ciphertext...)
	tampered.Ciphertext[0] ^= 0x01
	if _, err := DecryptDocument(key, tampered, []byte("ctx")); errors.CodeOf(err) != errors.CodeAuthenticationFailure {
		t.Fatalf("tampered ciphertext: got %v", err)
	}

	if _, err := DecryptDocument(key, doc, []byte("wrong")); errors.CodeOf(err) != errors.CodeAuthenticationFailure {
		t.Fatalf("wrong aad: got %v", err)
	}

	otherKey := make([]byte, 32)
	otherKey[31] = 1
	if _, err := DecryptDocument(otherKey, doc, []byte("ctx")); errors.CodeOf(err) != errors.CodeAuthenticationFailure {
		t.Fatalf("wrong key: got %v", err)
	}
}

func TestUnsupportedAlgorithm(t *testing.T) {
	key := make([]byte, 32)
	if _, err := EncryptDocument(rand.Reader, Algorithm(0), key, []byte("x"), nil); errors.CodeOf(err) != errors.CodeUnsupportedAlgorithm {
		t.Fatalf("zero algorithm: got %v", err)
	}
	if _, err := EncryptDocument(rand.Reader, Algorithm(99), key, []byte("x"), nil); errors.CodeOf(err) != errors.CodeUnsupportedAlgorithm {
		t.Fatalf("unknown algorithm: got %v", err)
	}
	if _, err := DecryptDocument(key, EncryptedDocument{Algorithm: Algorithm(99)}, nil); errors.CodeOf(err) != errors.CodeUnsupportedAlgorithm {
		t.Fatalf("decrypt unknown algorithm: got %v", err)
	}
}

func TestEncryptRejectsBadKey(t *testing.T) {
	_, err := EncryptDocument(rand.Reader, AlgorithmAES256GCM, make([]byte, 16), []byte("x"), nil)
	if errors.CodeOf(err) != errors.CodeInvalidInputShape {
		t.Fatalf("16-byte key: got %v", err)
	}
}

func TestSignTransferAuthorization(t *testing.T) {
	d, _ := new(big.Int).SetString("4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318", 16)
	key, err := ecdsa.NewPrivateKey(d)
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}

	batch := permit.PermitBatchTransferFrom{
		Permitted: []permit.TokenPermissions{
			{
				Token:  common.HexToAddress("0x1111111111111111111111111111111111111111"),
				Amount: uint256.NewInt(1000),
			},
			{
				Token:  common.HexToAddress("0x2222222222222222222222222222222222222222"),
				Amount: uint256.MustFromDecimal("2000000000000000000"),
			},
		},
		Spender:  common.HexToAddress("0xcccccccccccccccccccccccccccccccccccccccc"),
		Nonce:    uint256.NewInt(7),
		Deadline: uint256.NewInt(1893456000),
	}
	domain := permit.Domain{
		Name:              "Permit2",
		ChainID:           uint256.NewInt(1),
		VerifyingContract: common.HexToAddress("0x000000000022D473030F116dDEE9F6B43aC78BA3"),
	}

	auth, err := SignTransferAuthorization(key, batch, domain)
	if err != nil {
		t.Fatalf("SignTransferAuthorization: %v", err)
	}

	if want := unhex(t, "fa3f9792b8f0eb78ac34ec91c990b25c7377caef0d3c424b702dbfb9a326df1d"); !bytes.Equal(auth.Digest[:], want) {
		t.Fatalf("digest = %x, want %x", auth.Digest, want)
	}

	wantR, _ := new(big.Int).SetString("90e452d13612edacf91b6bf0b59ce6138c895c52ae5ed0968227565b70946071", 16)
	wantS, _ := new(big.Int).SetString("690b5d6bf2db846b8a9265e268e885efe0e665d2038d492beeb643636e9429b9", 16)
	if auth.Signature.R.Cmp(wantR) != 0 || auth.Signature.S.Cmp(wantS) != 0 || auth.Signature.V != 1 {
		t.Fatalf("signature = (%x, %x, %d)", auth.Signature.R, auth.Signature.S, auth.Signature.V)
	}

	pub, err := key.Public()
	if err != nil {
		t.Fatalf("Public: %v", err)
	}
	if !ecdsa.Verify(auth.Digest, auth.Signature, pub) {
		t.Fatalf("authorization signature does not verify")
	}
	recovered, err := ecdsa.RecoverPublicKey(auth.Digest, auth.Signature)
	if err != nil {
		t.Fatalf("RecoverPublicKey: %v", err)
	}
	if !recovered.Equal(pub) {
		t.Fatalf("recovery does not yield the testator's key")
	}
}

func TestSignTransferAuthorizationNilKey(t *testing.T) {
	_, err := SignTransferAuthorization(nil, permit.PermitBatchTransferFrom{}, permit.Domain{})
	if errors.CodeOf(err) != errors.CodeInvalidInputShape {
		t.Fatalf("nil key: got %v", err)
	}
}
