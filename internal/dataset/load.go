package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
)

// Format names a dataset encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatYAML Format = "yaml"
)

// DetectFormat picks a format from the location's extension, defaulting to JSON.
func DetectFormat(location string) Format {
	p := location
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && u.Path != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".csv":
		return FormatCSV
	case ".tsv":
		return FormatTSV
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Loader fetches a dataset from an HTTP(S) URL or a local file path.
type Loader struct {
	// Client is used for http and https locations. nil uses a client with Timeout.
	Client  *http.Client
	Timeout time.Duration
	// Format overrides extension-based detection when set.
	Format Format
}

// NewLoader returns a Loader whose HTTP client uses the given timeout.
// A zero timeout leaves the transport defaults in place.
func NewLoader(timeout time.Duration) *Loader {
	return &Loader{Timeout: timeout}
}

// Load fetches and decodes the dataset at location. A source that decodes
// to something other than a sequence yields an empty Dataset and no error;
// the caller decides how to surface that. Every other failure is a *LoadError.
func (l *Loader) Load(ctx context.Context, location string) (Dataset, error) {
	body, err := l.fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	format := l.Format
	if format == "" {
		format = DetectFormat(location)
	}
	var ds Dataset
	switch format {
	case FormatCSV:
		ds, err = DecodeCSV(body, ',')
	case FormatTSV:
		ds, err = DecodeCSV(body, '\t')
	case FormatYAML:
		ds, err = DecodeYAML(body)
	case FormatJSON:
		ds, err = DecodeJSON(body)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, &LoadError{Location: location, Err: err}
	}
	return ds, nil
}

func (l *Loader) fetch(ctx context.Context, location string) ([]byte, error) {
	if isRemote(location) {
		return l.fetchHTTP(ctx, location)
	}
	b, err := os.ReadFile(location)
	if err != nil {
		return nil, &LoadError{Location: location, Err: fmt.Errorf("read file: %w", err)}
	}
	return b, nil
}

func (l *Loader) fetchHTTP(ctx context.Context, location string) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: l.Timeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, &LoadError{Location: location, Err: fmt.Errorf("build request: %w", err)}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &LoadError{Location: location, Err: fmt.Errorf("fetch: %w", err)}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &LoadError{Location: location, Status: resp.StatusCode}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Location: location, Err: fmt.Errorf("read body: %w", err)}
	}
	return b, nil
}

func isRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
