// Package hashutil holds the password digest used by login and the user
// services. It is an unsalted MD5 hex digest, kept for compatibility
// with already-stored credentials; it is not a modern password hash.
package hashutil

import (
	"crypto/md5"
	"encoding/hex"
)

// DefaultPassword is assigned (hashed) to users created by an administrator.
const DefaultPassword = "123456"

// MD5Hash returns the lowercase hex MD5 digest of s.
func MD5Hash(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
