// Package media uploads editor-submitted images and videos to Cloudinary
// using the unsigned upload-preset flow, and hands back the durable URL
// that gets persisted on content documents.
package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
)

// DefaultBaseURL is the Cloudinary REST endpoint prefix.
const DefaultBaseURL = "https://api.cloudinary.com"

// Credential errors, raised before any network call is attempted.
var (
	ErrMissingCloudName    = errors.New("cloudinary cloud name is not set (CLOUDINARY_CLOUD_NAME)")
	ErrMissingUploadPreset = errors.New("cloudinary upload preset is not set (CLOUDINARY_UPLOAD_PRESET)")
	ErrNoSecureURL         = errors.New("cloudinary response did not include a secure_url")
)

// Uploader posts files to Cloudinary's unsigned upload endpoints.
// No retries, no chunking: a failed upload is surfaced to the submitting
// editor and can simply be retried from the form.
type Uploader struct {
	cloudName    string
	uploadPreset string
	baseURL      string
	client       *http.Client
}

// NewUploader creates an uploader with explicit credentials.
// PRE: cloudName and uploadPreset may be empty; uploads then fail fast
func NewUploader(cloudName, uploadPreset string) *Uploader {
	return &Uploader{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		baseURL:      DefaultBaseURL,
		client:       http.DefaultClient,
	}
}

// NewUploaderFromEnv creates an uploader from CLOUDINARY_CLOUD_NAME and
// CLOUDINARY_UPLOAD_PRESET.
func NewUploaderFromEnv() *Uploader {
	return NewUploader(os.Getenv("CLOUDINARY_CLOUD_NAME"), os.Getenv("CLOUDINARY_UPLOAD_PRESET"))
}

// WithBaseURL overrides the endpoint prefix. Tests point this at a local
// httptest server.
func (u *Uploader) WithBaseURL(baseURL string) *Uploader {
	u.baseURL = strings.TrimRight(baseURL, "/")
	return u
}

// UploadImage uploads an image (or any non-video asset) into the given
// Cloudinary folder and returns the secure URL.
// POST: Returns the durable https URL, or an error the caller surfaces
func (u *Uploader) UploadImage(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	return u.upload(ctx, file, filename, folder, "auto")
}

// UploadVideo uploads a video into the fixed "videos" folder.
func (u *Uploader) UploadVideo(ctx context.Context, file io.Reader, filename string) (string, error) {
	return u.upload(ctx, file, filename, "videos", "video")
}

// upload builds the multipart body and posts it to the resource endpoint.
// PRE: credentials are checked before any network I/O
// POST: non-2xx responses produce an error naming the HTTP status
func (u *Uploader) upload(ctx context.Context, file io.Reader, filename, folder, resource string) (string, error) {
	if u.cloudName == "" {
		return "", ErrMissingCloudName
	}
	if u.uploadPreset == "" {
		return "", ErrMissingUploadPreset
	}

	var body strings.Builder
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	writer.WriteField("cloud_name", u.cloudName)
	writer.WriteField("upload_preset", u.uploadPreset)
	if folder != "" {
		writer.WriteField("folder", folder)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/%s/upload", u.baseURL, u.cloudName, resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	defer resp.Body.Close()

	// The error payload is sometimes JSON, sometimes plain text; either way
	// it goes into the message alongside the status code.
	payload, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("cloudinary_upload_failed", "status", resp.StatusCode, "resource", resource)
		return "", fmt.Errorf("cloudinary upload failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var parsed struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil || parsed.SecureURL == "" {
		return "", ErrNoSecureURL
	}

	slog.Info("cloudinary_uploaded", "resource", resource, "folder", folder, "url", parsed.SecureURL)
	return parsed.SecureURL, nil
}
