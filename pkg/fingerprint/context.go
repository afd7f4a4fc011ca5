package fingerprint

import "context"

type fingerprintContextKey struct{}

// SetToContext stores fp in ctx.
func SetToContext(ctx context.Context, fp Fingerprint) context.Context {
	return context.WithValue(ctx, fingerprintContextKey{}, fp)
}

// FromContext returns the fingerprint stored in ctx, if any.
func FromContext(ctx context.Context) (Fingerprint, bool) {
	fp, ok := ctx.Value(fingerprintContextKey{}).(Fingerprint)
	return fp, ok
}
