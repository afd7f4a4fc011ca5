package fingerprint_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/clientip"
	"github.com/dmitrymomot/sessionkit/pkg/fingerprint"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ip   string
		want int64
	}{
		{"class A lower bound", "0.0.0.0", 0},
		{"class A", "10.0.0.5", 10},
		{"class A same /8", "10.0.0.200", 10},
		{"class A upper bound", "127.255.255.255", 127},
		{"class B lower bound", "128.0.0.0", 0x8000},
		{"class B", "172.16.5.4", 0xAC10},
		{"class B upper bound", "191.255.255.255", 0xBFFF},
		{"class C lower bound", "192.0.0.0", 0xC00000},
		{"class C", "192.168.1.5", 0xC0A801},
		{"class D", "224.0.0.1", 0xE00000},
		{"class E upper bound", "255.255.255.255", 0xFFFFFF},
		{"IPv4-mapped IPv6", "::ffff:10.1.2.3", 10},
		{"IPv6", "2001:db8::1", 0},
		{"loopback IPv6", "::1", 0},
		{"empty", "", 0},
		{"garbage", "not-an-ip", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fingerprint.Classify(tt.ip))
		})
	}
}

func TestClassify_SubnetBoundaries(t *testing.T) {
	t.Parallel()

	t.Run("same /16 in class B", func(t *testing.T) {
		assert.Equal(t, fingerprint.Classify("150.10.1.1"), fingerprint.Classify("150.10.200.7"))
		assert.NotEqual(t, fingerprint.Classify("150.10.1.1"), fingerprint.Classify("150.11.1.1"))
	})

	t.Run("same /24 in class C", func(t *testing.T) {
		assert.Equal(t, fingerprint.Classify("192.168.1.5"), fingerprint.Classify("192.168.1.250"))
		assert.NotEqual(t, fingerprint.Classify("192.168.1.5"), fingerprint.Classify("192.168.2.5"))
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("populates subnet", func(t *testing.T) {
		fp := fingerprint.New("10.0.0.5", "UA1")
		assert.Equal(t, "10.0.0.5", fp.IP)
		assert.Equal(t, int64(10), fp.Subnet)
		assert.Equal(t, "UA1", fp.UserAgent)
	})

	t.Run("empty ip falls back to loopback", func(t *testing.T) {
		fp := fingerprint.New("", "")
		assert.Equal(t, fingerprint.LocalIP, fp.IP)
		assert.Equal(t, int64(127), fp.Subnet)
		assert.Empty(t, fp.UserAgent)
	})
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("uses remote address and user agent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.5:4000"
		req.Header.Set("User-Agent", "Mozilla/5.0")

		fp := fingerprint.FromRequest(req)
		assert.Equal(t, "192.168.1.5", fp.IP)
		assert.Equal(t, int64(0xC0A801), fp.Subnet)
		assert.Equal(t, "Mozilla/5.0", fp.UserAgent)
	})

	t.Run("prefers ip resolved by clientip middleware", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.5:4000"
		req = req.WithContext(clientip.SetIPToContext(req.Context(), "10.9.8.7"))

		fp := fingerprint.FromRequest(req)
		assert.Equal(t, int64(10), fp.Subnet)
	})

	t.Run("missing user agent is empty identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Del("User-Agent")

		fp := fingerprint.FromRequest(req)
		assert.Empty(t, fp.UserAgent)
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var (
		got fingerprint.Fingerprint
		ok  bool
	)
	handler := fingerprint.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = fingerprint.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "172.16.5.4:80"
	req.Header.Set("User-Agent", "curl/8.0")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, ok)
	assert.Equal(t, fingerprint.New("172.16.5.4", "curl/8.0"), got)
}
