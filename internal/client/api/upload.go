package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const uploadTimeout = 2 * time.Minute

// UploadFile PUTs a recording directly to a presigned URL. No bearer
// header: the URL itself carries the authorization. Never retried; the
// caller restarts the whole intent flow on failure.
func (c *Client) UploadFile(ctx context.Context, uploadURL, contentType string, payload io.Reader, size int64) error {
	reqCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPut, uploadURL, payload)
	if err != nil {
		return &NetworkError{Kind: KindInvalidURL, Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = size

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.mapTransportError(ctx, Endpoint{Path: "presigned upload", Timeout: uploadTimeout}, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &NetworkError{
			Kind:       KindServer,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("upload rejected with status %d", resp.StatusCode),
		}
	}

	return nil
}
