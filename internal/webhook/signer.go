package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/devmarrez/payment-relay/internal/models"
)

// SignPayload computes the HMAC-SHA256 signature for a webhook payload and
// returns the final body to send. The signature deliberately covers the
// payload serialized with an empty signature field, then gets embedded into
// the sent body; receivers must blank the field before verifying. Changing
// this to sign the final bytes would break every existing receiver.
func SignPayload(p *models.WebhookPayload, secret string) ([]byte, error) {
	p.Signature = ""
	unsigned, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("error marshaling webhook payload: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(unsigned)
	p.Signature = hex.EncodeToString(mac.Sum(nil))

	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("error marshaling signed webhook payload: %w", err)
	}
	return body, nil
}

// VerifyPayload checks a received body against the shared secret, using the
// same empty-signature-field convention as SignPayload.
func VerifyPayload(body []byte, secret string) (bool, error) {
	var p models.WebhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return false, fmt.Errorf("error unmarshaling webhook payload: %w", err)
	}

	claimed, err := hex.DecodeString(p.Signature)
	if err != nil {
		return false, fmt.Errorf("error decoding signature: %w", err)
	}

	p.Signature = ""
	unsigned, err := json.Marshal(&p)
	if err != nil {
		return false, fmt.Errorf("error marshaling webhook payload: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(unsigned)
	return hmac.Equal(claimed, mac.Sum(nil)), nil
}
