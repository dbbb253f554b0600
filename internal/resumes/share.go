package resumes

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"
)

// EncodeShareToken returns base64("<studentID>-<unix millis>").
func EncodeShareToken(studentID int64, now time.Time) string {
	raw := strconv.FormatInt(studentID, 10) + "-" + strconv.FormatInt(now.UnixMilli(), 10)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeShareToken returns the student id carried by token. A positive ttl
// rejects tokens issued more than ttl before now.
func DecodeShareToken(token string, now time.Time, ttl time.Duration) (int64, error) {
	raw, ok := decodeBase64(strings.TrimSpace(token))
	if !ok {
		return 0, ErrInvalidShareToken
	}
	idPart, issuedPart, found := strings.Cut(raw, "-")
	if !found {
		return 0, ErrInvalidShareToken
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidShareToken
	}
	issuedMs, err := strconv.ParseInt(issuedPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidShareToken
	}
	if ttl > 0 && now.Sub(time.UnixMilli(issuedMs)) > ttl {
		return 0, ErrShareTokenExpired
	}
	return id, nil
}

// ShareTokenExpiry reports when a token issued at issued stops being valid, or
// the zero time when tokens never expire.
func ShareTokenExpiry(issued time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return issued.Add(ttl)
}

func decodeBase64(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	for _, enc := range []*base64.Encoding{base64.RawURLEncoding, base64.URLEncoding, base64.StdEncoding, base64.RawStdEncoding} {
		if b, err := enc.DecodeString(token); err == nil {
			return string(b), true
		}
	}
	return "", false
}
