// Package cookie writes and reads HTTP cookies with shared defaults and
// optional HMAC-SHA256 signatures.
//
// The session package stores only the opaque session token on the client,
// so a signature is enough: the token must not be forgeable, but it carries
// nothing secret besides itself.
//
//   • Set(), Get(), Delete() – plain cookies
//   • SetSigned(), GetSigned() – signed cookies
//
// Signed values are encoded as base64url(value) "." base64url(hmac). The
// first secret signs and every secret verifies, which allows rotation.
//
// # Usage
//
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//	    return err
//	}
//	_ = man.SetSigned(w, "sid", token, cookie.WithMaxAge(1440))
//	token, err := man.GetSigned(r, "sid")
//
// # Configuration
//
// Config is loaded from COOKIE_* variables (COOKIE_SECRETS is a comma
// separated list) and turned into a Manager with NewFromConfig.
//
// # Error Handling
//
// ErrCookieNotFound, ErrInvalidFormat and ErrInvalidSignature can be
// matched with errors.Is. Set refuses SameSite=None without Secure.
package cookie
