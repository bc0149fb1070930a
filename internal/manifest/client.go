package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultName is the manifest file looked up when the source names a directory.
const DefaultName = "photos.json"

// Photo is one record of the manifest.
type Photo struct {
	File     string `json:"file"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Caption  string `json:"caption,omitempty"`
}

// LoadFailure reports that the manifest could not be fetched or parsed.
type LoadFailure struct {
	Source string
	Err    error
}

func (e *LoadFailure) Error() string {
	return fmt.Sprintf("load manifest %s: %v", e.Source, e.Err)
}

func (e *LoadFailure) Unwrap() error {
	return e.Err
}

// IsLoadFailure reports whether err carries a LoadFailure.
func IsLoadFailure(err error) bool {
	var lf *LoadFailure
	return errors.As(err, &lf)
}

type Client struct {
	source string
	http   *http.Client
}

func NewClient(source string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		source: normalizeSource(strings.TrimSpace(source)),
		http:   httpClient,
	}
}

func (c *Client) Source() string {
	return c.source
}

// Load reads the manifest once. Every failure is returned as a *LoadFailure.
func (c *Client) Load(ctx context.Context) ([]Photo, error) {
	var (
		photos []Photo
		err    error
	)
	if IsRemote(c.source) {
		photos, err = c.loadRemote(ctx)
	} else {
		photos, err = c.loadFile(ctx)
	}
	if err != nil {
		return nil, &LoadFailure{Source: c.source, Err: err}
	}
	return photos, nil
}

// ResolvePhoto returns the URL or filesystem path of a manifest-relative file.
func (c *Client) ResolvePhoto(file string) string {
	file = strings.TrimSpace(file)
	if file == "" {
		return ""
	}
	if IsRemote(c.source) {
		base, err := url.Parse(c.source)
		if err != nil {
			return file
		}
		ref, err := url.Parse(file)
		if err != nil || ref.Scheme == "" {
			ref = &url.URL{Path: file}
		}
		return base.ResolveReference(ref).String()
	}
	if IsRemote(file) || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(filepath.Dir(c.source), filepath.FromSlash(file))
}

func (c *Client) loadRemote(ctx context.Context) ([]Photo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("manifest request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("manifest request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return decodePhotos(resp.Body)
}

func (c *Client) loadFile(ctx context.Context) ([]Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(c.source)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return decodePhotos(f)
}

func decodePhotos(r io.Reader) ([]Photo, error) {
	var photos []Photo
	dec := json.NewDecoder(r)
	if err := dec.Decode(&photos); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode manifest: unexpected data after photo list")
	}
	if photos == nil {
		return nil, errors.New("decode manifest: payload is not a photo list")
	}
	return photos, nil
}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func normalizeSource(source string) string {
	if source == "" {
		return DefaultName
	}
	if IsRemote(source) {
		if strings.HasSuffix(source, "/") {
			return source + DefaultName
		}
		return source
	}
	if info, err := os.Stat(source); err == nil && info.IsDir() {
		return filepath.Join(source, DefaultName)
	}
	return source
}
