package httpclient

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardClient_RoundTrips(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write([]byte(r.Method + ":" + string(body)))
	}))
	defer srv.Close()

	c := NewStandardClient()

	resp, err := c.Get(srv.URL)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "GET:", string(b))

	resp, err = c.Post(srv.URL, "text/plain", strings.NewReader("hi"))
	require.NoError(t, err)
	b, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "POST:hi", string(b))
}

func TestClientWithTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	_, err = NewClientWithTimeout(20 * time.Millisecond).Do(req)
	assert.Error(t, err)
}

func TestErrorDetail(t *testing.T) {
	assert.Equal(t, "rate limited", ErrorDetail([]byte(" rate limited\n"), MaxErrorDetail))

	// "é" is two bytes, so a 5 byte cap must not keep half of the third one
	got := ErrorDetail([]byte("ééé"), 5)
	assert.Equal(t, "éé", got)
	assert.True(t, utf8.ValidString(got))
}
