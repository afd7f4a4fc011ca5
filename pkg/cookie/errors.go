package cookie

import "errors"

var (
	ErrNoSecret             = errors.New("cookie.no_secret")
	ErrSecretTooShort       = errors.New("cookie.secret_too_short")
	ErrInvalidSignature     = errors.New("cookie.invalid_signature")
	ErrCookieNotFound       = errors.New("cookie.not_found")
	ErrInvalidFormat        = errors.New("cookie.invalid_format")
	ErrInvalidName          = errors.New("cookie.invalid_name")
	ErrInsecureSameSiteNone = errors.New("cookie.same_site_none_requires_secure")
)
