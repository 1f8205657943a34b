// Package extraction is the HTTP client for the external document extraction
// endpoint. Files are posted as one multipart batch and the JSON answer is
// normalized into domain document descriptors.
package extraction

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/SscSPs/audit_dashboard/internal/apperrors"
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	"github.com/SscSPs/audit_dashboard/internal/core/ports"
)

const (
	// FilesField is the repeatable multipart field carrying the uploads.
	FilesField = "files"

	defaultTimeout = 60 * time.Second
	maxBodyBytes   = 32 << 20
)

// Client posts uploads to the extraction endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        *slog.Logger
}

var _ ports.DocumentExtractor = (*Client)(nil)

// NewClient creates a Client for the given endpoint URL. A zero timeout uses the default.
func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "extraction"),
	}
}

// Extract uploads files in a single request. Any non-2xx status, transport
// failure or payload without documents is reported as ErrExtractionFailed.
func (c *Client) Extract(ctx context.Context, files []domain.UploadFile) ([]domain.ExtractedDocument, error) {
	body, contentType, err := encodeFiles(files)
	if err != nil {
		return nil, fmt.Errorf("extraction: encode multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("extraction: create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	c.log.DebugContext(ctx, "extraction request", slog.Int("files", len(files)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "extraction request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: could not reach the extraction endpoint: %v", apperrors.ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WarnContext(ctx, "extraction endpoint rejected the upload", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: could not process the extraction request (status %d)", apperrors.ErrExtractionFailed, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", apperrors.ErrExtractionFailed, err)
	}

	docs, err := decodeDocuments(raw)
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "extraction response",
		slog.Int("status", resp.StatusCode),
		slog.Int("documents", len(docs)),
	)
	return docs, nil
}

func encodeFiles(files []domain.UploadFile) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, FilesField, f.Name))
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
