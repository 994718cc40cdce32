package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"
)

const CookieName = "trip.sid"

var errBadCookie = errors.New("malformed or tampered session cookie")

// Codec signs session ids so a client cannot forge one by guessing. The
// cookie value is "<id>.<hex hmac-sha256(id, secret)>".
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

func (c *Codec) sign(sessionID string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (c *Codec) Encode(sessionID string) string {
	return sessionID + "." + c.sign(sessionID)
}

func (c *Codec) Decode(value string) (string, error) {
	sessionID, signature, ok := strings.Cut(value, ".")
	if !ok || sessionID == "" {
		return "", errBadCookie
	}
	if !hmac.Equal([]byte(signature), []byte(c.sign(sessionID))) {
		return "", errBadCookie
	}
	return sessionID, nil
}

// SetCookie writes the signed session cookie for the whole site.
func (c *Codec) SetCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    c.Encode(sessionID),
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie immediately.
func (c *Codec) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadCookie extracts and verifies the session id from the request, if any.
func (c *Codec) ReadCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", err
	}
	return c.Decode(cookie.Value)
}
