package tracker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Source supplies raw roadmap document bytes.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Origin() string
}

// HTTPSource fetches the document from a fixed well-known URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (s HTTPSource) Origin() string { return s.URL }

// FileSource reads the document from a local path.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

func (s FileSource) Origin() string { return s.Path }

// BytesSource serves already-read bytes, e.g. user-supplied content.
type BytesSource struct {
	Name string
	Data []byte
}

func (s BytesSource) Fetch(context.Context) ([]byte, error) { return s.Data, nil }

func (s BytesSource) Origin() string {
	if s.Name != "" {
		return s.Name
	}
	return "inline"
}

// Resolve maps a configured location to a Source: http(s) URLs fetch
// over the network, everything else is treated as a file path.
func Resolve(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return HTTPSource{URL: location}
	}
	return FileSource{Path: location}
}
