package media

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestUploadMissingCredentialsFailsBeforeNetwork tests the fail-fast check.
func TestUploadMissingCredentialsFailsBeforeNetwork(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	u := NewUploader("", "").WithBaseURL(server.URL)
	_, err := u.UploadImage(context.Background(), strings.NewReader("img"), "a.jpg", "barbers")
	if !errors.Is(err, ErrMissingCloudName) {
		t.Errorf("expected ErrMissingCloudName, got %v", err)
	}

	u = NewUploader("haircoolest", "").WithBaseURL(server.URL)
	_, err = u.UploadImage(context.Background(), strings.NewReader("img"), "a.jpg", "barbers")
	if !errors.Is(err, ErrMissingUploadPreset) {
		t.Errorf("expected ErrMissingUploadPreset, got %v", err)
	}

	if calls != 0 {
		t.Errorf("expected no network calls, got %d", calls)
	}
}

// TestUploadImageSuccess tests the happy path: multipart fields posted to
// the auto endpoint, secure_url extracted.
func TestUploadImageSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1_1/haircoolest/auto/upload" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}
		if got := r.FormValue("upload_preset"); got != "unsigned-preset" {
			t.Errorf("expected upload_preset field, got %q", got)
		}
		if got := r.FormValue("folder"); got != "barbers" {
			t.Errorf("expected folder=barbers, got %q", got)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("expected file part: %v", err)
		}
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/haircoolest/image/upload/a.jpg"}`))
	}))
	defer server.Close()

	u := NewUploader("haircoolest", "unsigned-preset").WithBaseURL(server.URL)
	url, err := u.UploadImage(context.Background(), strings.NewReader("img-bytes"), "a.jpg", "barbers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://res.cloudinary.com/haircoolest/image/upload/a.jpg" {
		t.Errorf("unexpected url: %s", url)
	}
}

// TestUploadVideoUsesVideoEndpoint tests the resource-type routing and the
// fixed videos folder.
func TestUploadVideoUsesVideoEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1_1/haircoolest/video/upload" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		r.ParseMultipartForm(1 << 20)
		if got := r.FormValue("folder"); got != "videos" {
			t.Errorf("expected folder=videos, got %q", got)
		}
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/haircoolest/video/upload/v.mp4"}`))
	}))
	defer server.Close()

	u := NewUploader("haircoolest", "unsigned-preset").WithBaseURL(server.URL)
	url, err := u.UploadVideo(context.Background(), strings.NewReader("video-bytes"), "v.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url == "" {
		t.Error("expected a url")
	}
}

// TestUploadNon2xxIncludesStatus tests that the error message names the
// HTTP status and carries the response body.
func TestUploadNon2xxIncludesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	}))
	defer server.Close()

	u := NewUploader("haircoolest", "bad-preset").WithBaseURL(server.URL)
	_, err := u.UploadImage(context.Background(), strings.NewReader("img"), "a.jpg", "")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "400") {
		t.Errorf("expected status in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Upload preset not found") {
		t.Errorf("expected body in message, got %q", err.Error())
	}
}

// TestUpload2xxWithoutSecureURLIsFailure tests the malformed-success case.
func TestUpload2xxWithoutSecureURLIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"public_id":"abc"}`))
	}))
	defer server.Close()

	u := NewUploader("haircoolest", "unsigned-preset").WithBaseURL(server.URL)
	_, err := u.UploadImage(context.Background(), strings.NewReader("img"), "a.jpg", "")
	if !errors.Is(err, ErrNoSecureURL) {
		t.Errorf("expected ErrNoSecureURL, got %v", err)
	}
}
