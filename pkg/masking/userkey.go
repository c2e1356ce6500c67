package masking

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// UserKey derives the opaque, tenant-scoped identifier used for audit chains
// from a phone number. Keyed with a process-wide pepper so the raw phone
// cannot be recovered or correlated across deployments.
func UserKey(pepper, tenantID, phone string) string {
	mac := hmac.New(sha256.New, []byte(pepper))
	mac.Write([]byte(tenantID))
	mac.Write([]byte{0})
	mac.Write([]byte(phone))
	digest := hex.EncodeToString(mac.Sum(nil))
	if tenantID != "" {
		return tenantID + ":" + digest
	}
	return digest
}
