// Package fileio opens inputs and outputs that may live on local disk or in a
// Google Cloud Storage bucket (gs://bucket/object).
package fileio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/charlieparkes/makelist/app"
	"go.uber.org/zap"
)

// IsGS reports whether path is a gs:// URL.
func IsGS(path string) bool {
	u, err := url.Parse(path)
	return err == nil && u.Scheme == "gs"
}

func splitGS(path string) (bucket, object string, err error) {
	u, err := url.Parse(path)
	if err != nil {
		return "", "", err
	}
	object = strings.TrimLeft(u.Path, "/")
	if u.Host == "" || object == "" {
		return "", "", fmt.Errorf("invalid storage url %q", path)
	}
	return u.Host, object, nil
}

// Open opens path for reading.
func Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if !IsGS(path) {
		app.Log.Debug("reading from disk", zap.String("path", path))
		return os.Open(path)
	}

	bucket, object, err := splitGS(path)
	if err != nil {
		return nil, err
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	app.Log.Debug("reading from google storage", zap.String("host", bucket), zap.String("path", object))
	return &objectReader{Reader: r, client: client}, nil
}

// Create opens path for writing. Writes to a gs:// object are committed by
// Close; cancel ctx before closing to discard them.
func Create(ctx context.Context, path string) (io.WriteCloser, error) {
	if !IsGS(path) {
		app.Log.Debug("writing to disk", zap.String("path", path))
		return os.Create(path)
	}

	bucket, object, err := splitGS(path)
	if err != nil {
		return nil, err
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	app.Log.Debug("writing to google storage", zap.String("host", bucket), zap.String("path", object))
	return &objectWriter{Writer: w, client: client}, nil
}

// objectReader closes the storage client along with the object reader.
type objectReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *objectReader) Close() error {
	err := r.Reader.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}

// objectWriter commits the object on Close, then closes the client.
type objectWriter struct {
	*storage.Writer
	client *storage.Client
}

func (w *objectWriter) Close() error {
	err := w.Writer.Close()
	if cerr := w.client.Close(); err == nil {
		err = cerr
	}
	return err
}
