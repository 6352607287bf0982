// Package sessioncookie identifies a browser by a signed cookie naming its
// storage namespace.
package sessioncookie

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lceo-rwanda/portal/internal/platform/id"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/requestmeta"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/webctx"
)

// Name is the browser cookie name.
const Name = "lceo_browser"

const (
	issuer = "lceo-portal"
	maxAge = 365 * 24 * time.Hour
)

// ErrInvalidToken reports a cookie that fails signature or claim checks.
var ErrInvalidToken = errors.New("invalid browser token")

// Codec signs and verifies browser namespace tokens.
type Codec struct {
	key []byte
	now func() time.Time
}

// NewCodec builds a codec over an HMAC key.
func NewCodec(key []byte) (Codec, error) {
	if len(key) == 0 {
		return Codec{}, errors.New("session signing key is required")
	}
	return Codec{key: append([]byte(nil), key...), now: time.Now}, nil
}

// Sign returns a token naming namespace.
func (c Codec) Sign(namespace string) (string, error) {
	if !id.Valid(namespace) {
		return "", fmt.Errorf("sign browser token: invalid namespace %q", namespace)
	}
	claims := jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  namespace,
		IssuedAt: jwt.NewNumericDate(c.now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign browser token: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns the namespace it names.
func (c Codec) Parse(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" || len(c.key) == 0 {
		return "", ErrInvalidToken
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !id.Valid(claims.Subject) {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Read returns the namespace from a valid browser cookie.
func Read(r *http.Request, codec Codec) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil {
		return "", false
	}
	namespace, err := codec.Parse(cookie.Value)
	if err != nil {
		return "", false
	}
	return namespace, true
}

// Write sets the browser cookie for namespace.
func Write(w http.ResponseWriter, r *http.Request, codec Codec, namespace string, policy requestmeta.SchemePolicy) error {
	if w == nil {
		return nil
	}
	token, err := codec.Sign(namespace)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the browser cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// Ensure attaches a browser namespace to every request, issuing a new
// cookie when the request carries none or an invalid one.
func Ensure(codec Codec, policy requestmeta.SchemePolicy, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			namespace, ok := Read(r, codec)
			if !ok {
				generated, err := id.NewID()
				if err != nil {
					logger.ErrorContext(r.Context(), "issue browser namespace", "error", err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				if err := Write(w, r, codec, generated, policy); err != nil {
					logger.ErrorContext(r.Context(), "write browser cookie", "error", err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				namespace = generated
			}
			next.ServeHTTP(w, r.WithContext(webctx.WithNamespace(r.Context(), namespace)))
		})
	}
}
