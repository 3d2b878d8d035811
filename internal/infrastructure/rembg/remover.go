package rembg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/andreyxaxa/Background-Remover/pkg/imagecodec"
)

const (
	_defaultTimeout  = 20 * time.Second
	_maxResponseSize = 64 << 20
	_formField       = "file"
	_uploadFileName  = "image.png"
)

var (
	ErrResponseStatusNotOK = errors.New("rembg: response status not OK")
	ErrResponseTooLarge    = errors.New("rembg: response too large")
)

type httpRequestFunc func(req *http.Request) (*http.Response, error)

// Remover delegates background removal to a rembg HTTP server
// (POST multipart "file", PNG with alpha in response).
type Remover struct {
	endpoint    string
	makeRequest httpRequestFunc
}

func New(endpoint string, timeout time.Duration) *Remover {
	if timeout <= 0 {
		timeout = _defaultTimeout
	}

	client := &http.Client{Timeout: timeout}

	return &Remover{endpoint: endpoint, makeRequest: client.Do}
}

func (r *Remover) Name() string {
	return "rembg"
}

func (r *Remover) RemoveBackground(ctx context.Context, img image.Image) (image.Image, error) {
	// PNG keeps the upload lossless regardless of the original format
	data, err := imagecodec.EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("rembg - Remover - RemoveBackground - imagecodec.EncodePNG: %w", err)
	}

	req, err := r.buildRequest(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("rembg - Remover - RemoveBackground - r.buildRequest: %w", err)
	}

	resp, err := r.makeRequest(req)
	if err != nil {
		return nil, fmt.Errorf("rembg - Remover - RemoveBackground - r.makeRequest: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rembg - Remover - RemoveBackground: %w: %d", ErrResponseStatusNotOK, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, _maxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("rembg - Remover - RemoveBackground - io.ReadAll: %w", err)
	}
	if len(body) > _maxResponseSize {
		return nil, fmt.Errorf("rembg - Remover - RemoveBackground: %w", ErrResponseTooLarge)
	}

	out, err := imagecodec.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("rembg - Remover - RemoveBackground - imagecodec.Decode: %w", err)
	}

	return out, nil
}

func (r *Remover) buildRequest(ctx context.Context, data []byte) (*http.Request, error) {
	var body bytes.Buffer

	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(_formField, _uploadFileName)
	if err != nil {
		return nil, err
	}
	if _, err = part.Write(data); err != nil {
		return nil, err
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "image/png")

	return req, nil
}
