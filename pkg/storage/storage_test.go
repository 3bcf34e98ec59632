package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAudio(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		contentType string
		wantErr     bool
	}{
		{name: "valid mpeg", data: []byte("ID3"), contentType: "audio/mpeg"},
		{name: "uppercase type", data: []byte("ID3"), contentType: "AUDIO/MPEG"},
		{name: "empty payload", data: nil, contentType: "audio/mpeg", wantErr: true},
		{name: "not audio", data: []byte("x"), contentType: "image/png", wantErr: true},
		{name: "too large", data: make([]byte, MaxAudioSize+1), contentType: "audio/mpeg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAudio(tt.data, tt.contentType)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewClient_RequiresBucket(t *testing.T) {
	_, err := NewClient(Config{AccessKeyID: "id", SecretAccessKey: "secret"})
	assert.Error(t, err)
}

func TestNewClient_PublicURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "aws default",
			cfg:  Config{BucketName: "pitches", Region: "eu-west-1"},
			want: "https://pitches.s3.eu-west-1.amazonaws.com",
		},
		{
			name: "custom endpoint",
			cfg:  Config{BucketName: "pitches", Endpoint: "http://minio:9000/"},
			want: "http://minio:9000/pitches",
		},
		{
			name: "explicit public base",
			cfg:  Config{BucketName: "pitches", PublicBaseURL: "https://cdn.example.com/"},
			want: "https://cdn.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.publicBaseURL)
		})
	}
}

func TestUploadAudio_PutsObject(t *testing.T) {
	var gotMethod, gotPath, gotType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c, err := NewClient(Config{
		AccessKeyID:     "id",
		SecretAccessKey: "secret",
		BucketName:      "pitches",
		Endpoint:        server.URL,
	})
	require.NoError(t, err)

	url, err := c.UploadAudio(context.Background(), []byte("mp3-bytes"), "videos/abc.mp3", "audio/mpeg")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/pitches/videos/abc.mp3", gotPath)
	assert.Equal(t, "audio/mpeg", gotType)
	assert.Equal(t, "mp3-bytes", string(gotBody))
	assert.Equal(t, server.URL+"/pitches/videos/abc.mp3", url)
}

func TestUploadAudio_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c, err := NewClient(Config{BucketName: "pitches", Endpoint: server.URL})
	require.NoError(t, err)

	_, err = c.UploadAudio(context.Background(), []byte("mp3"), "k.mp3", "audio/mpeg")
	assert.Error(t, err)
}
