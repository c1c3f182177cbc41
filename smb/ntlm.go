package smb

import (
	"crypto/hmac"
	"crypto/md5" //nolint:gosec // HMAC-MD5 is required by MS-NLMP
	"encoding/binary"
	"strings"
	"unicode/utf16"

	"golang.org/x/crypto/md4" //nolint:staticcheck // MD4 is required by MS-NLMP
)

// Credentials holds the identity a session authenticates with. The transfer
// core never reads these; they exist for Channel implementations that speak
// NTLM over the wire.
type Credentials struct {
	Domain   string
	Username string
	Password string
}

// encodeUTF16LE converts s to UTF-16 little-endian bytes as required by NTLM.
func encodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], u)
	}
	return buf
}

// NTLMHash computes the NT one-way function of a password:
// MD4 over the UTF-16LE encoding of the password.
func NTLMHash(password string) []byte {
	h := md4.New()
	h.Write(encodeUTF16LE(password))
	return h.Sum(nil)
}

// NTLMv2Hash computes the NTLMv2 key for a user:
// HMAC-MD5 keyed with the NT hash over UTF-16LE(uppercase(user) + domain).
// The username is uppercased per MS-NLMP; the domain is not.
func NTLMv2Hash(username, domain, password string) []byte {
	mac := hmac.New(md5.New, NTLMHash(password))
	mac.Write(encodeUTF16LE(strings.ToUpper(username) + domain))
	return mac.Sum(nil)
}

// NTLMv2Hash computes the v2 key for the credentials.
func (c Credentials) NTLMv2Hash() []byte {
	return NTLMv2Hash(c.Username, c.Domain, c.Password)
}
