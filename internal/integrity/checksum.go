// Package integrity computes content hashes reported alongside backups.
package integrity

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/safebackup/safebackup/pkg/model"
)

// ContentHash returns the hex SHA-256 of data.
func ContentHash(data []byte) model.HashValue {
	hash := sha256.Sum256(data)
	return model.HashValue(hex.EncodeToString(hash[:]))
}
