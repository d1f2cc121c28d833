// Package initdata verifies the signed payload a Telegram WebApp client
// sends with every request. The payload is a query-string-encoded set of
// fields signed by the platform with a key derived from the bot token; a
// successful verification yields the trusted identity embedded in the
// payload without any server-side session state.
package initdata

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MaxAge is how long a signed payload stays acceptable after its auth_date.
// Bounds replay of captured payloads.
const MaxAge = 24 * time.Hour

// secretKeyLabel is the fixed HMAC key used to derive the signing secret
// from the bot token. The label is the key and the token is the message,
// not the other way around.
const secretKeyLabel = "WebAppData"

// Verification failures. All of them reject the request at the boundary;
// none is transient.
var (
	ErrMalformed    = errors.New("init data is malformed")
	ErrBadSignature = errors.New("init data signature mismatch")
	ErrExpired      = errors.New("init data is expired")
	ErrBadIdentity  = errors.New("init data user field is not valid")
)

// Identity is the verified external identity carried in the payload's user
// field. ID is the stable Telegram account identifier.
type Identity struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// Verifier validates raw init data payloads against a single bot token
// configured at startup. The token is only ever used as verifier input.
type Verifier struct {
	botToken string
}

// NewVerifier creates a Verifier for the given bot token.
func NewVerifier(botToken string) *Verifier {
	return &Verifier{botToken: botToken}
}

// Verify validates rawInitData against the current time.
func (v *Verifier) Verify(rawInitData string) (Identity, error) {
	return v.VerifyAt(rawInitData, time.Now())
}

// VerifyAt validates rawInitData as of the given moment. It is a pure
// function of its inputs: parse the field set, recompute the HMAC-SHA256
// digest over the canonical check string, compare it to the claimed hash in
// constant time, enforce the freshness window and decode the user identity.
func (v *Verifier) VerifyAt(rawInitData string, now time.Time) (Identity, error) {
	fields, err := url.ParseQuery(rawInitData)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	receivedHash := lastValue(fields, "hash")
	if receivedHash == "" {
		return Identity{}, fmt.Errorf("%w: hash field is missing", ErrMalformed)
	}
	delete(fields, "hash")

	authDateRaw := lastValue(fields, "auth_date")
	if authDateRaw == "" {
		return Identity{}, fmt.Errorf("%w: auth_date field is missing", ErrMalformed)
	}
	authDate, err := strconv.ParseInt(authDateRaw, 10, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: auth_date is not a unix timestamp", ErrMalformed)
	}

	userRaw := lastValue(fields, "user")
	if userRaw == "" {
		return Identity{}, fmt.Errorf("%w: user field is missing", ErrMalformed)
	}

	if !hmac.Equal([]byte(v.computeHash(fields)), []byte(receivedHash)) {
		return Identity{}, ErrBadSignature
	}

	if now.Unix()-authDate > int64(MaxAge.Seconds()) {
		return Identity{}, ErrExpired
	}

	var identity Identity
	if err := json.Unmarshal([]byte(userRaw), &identity); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrBadIdentity, err)
	}
	if identity.ID == 0 {
		return Identity{}, fmt.Errorf("%w: user id is missing", ErrBadIdentity)
	}

	return identity, nil
}

// computeHash builds the canonical check string (keys sorted
// lexicographically, key=value pairs joined with newlines, hash excluded)
// and signs it with the secret derived from the bot token.
func (v *Verifier) computeHash(fields url.Values) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+lastValue(fields, k))
	}
	checkString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte(secretKeyLabel))
	secret.Write([]byte(v.botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	return hex.EncodeToString(mac.Sum(nil))
}

// lastValue mirrors the overwrite-on-duplicate behavior of the reference
// parser: the last occurrence of a repeated key wins.
func lastValue(fields url.Values, key string) string {
	vs := fields[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[len(vs)-1]
}
