package db

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// JSONDigest marshals v and derives a short content id, "prefix:hex".
// Identical payloads digest to identical ids.
func JSONDigest(prefix string, v interface{}) (id string, data []byte, err error) {
	data, err = json.Marshal(v)
	if err != nil {
		return "", nil, err
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", prefix, sum[:4]), data, nil
}
