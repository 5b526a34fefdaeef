package snapshot

import (
	"crypto/rand"
	"fmt"

	"github.com/veraison/go-cose"
)

// Sealer signs encoded snapshots as COSE Sign1 messages. The snapshot bytes
// are carried as the attached payload.
type Sealer struct {
	keyID string
}

func NewSealer(keyID string) Sealer {
	return Sealer{keyID: keyID}
}

// Seal signs snapshot. external is bound into the signature but not carried in
// the message; verifiers must supply the same bytes.
func (s Sealer) Seal(signer cose.Signer, snapshot []byte, external []byte) ([]byte, error) {
	headers := cose.Headers{
		Protected: cose.ProtectedHeader{},
	}
	headers.Protected.SetAlgorithm(signer.Algorithm())
	if s.keyID != "" {
		headers.Protected[cose.HeaderLabelKeyID] = []byte(s.keyID)
	}

	msg := cose.Sign1Message{
		Headers: headers,
		Payload: snapshot,
	}
	if err := msg.Sign(rand.Reader, external, signer); err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}

// VerifySealed checks the seal and returns the snapshot bytes it carries.
func VerifySealed(verifier cose.Verifier, sealed []byte, external []byte) ([]byte, error) {
	var msg cose.Sign1Message
	if err := msg.UnmarshalCBOR(sealed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSealVerifyFailed, err)
	}
	if err := msg.Verify(external, verifier); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSealVerifyFailed, err)
	}
	return msg.Payload, nil
}

// SealedKeyID returns the key id from the protected header without verifying
// the seal, so callers can select a verifier.
func SealedKeyID(sealed []byte) (string, error) {
	var msg cose.Sign1Message
	if err := msg.UnmarshalCBOR(sealed); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadFormat, err)
	}
	kid, ok := msg.Headers.Protected[cose.HeaderLabelKeyID].([]byte)
	if !ok {
		return "", nil
	}
	return string(kid), nil
}
