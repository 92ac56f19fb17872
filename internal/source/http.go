package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/Egor213/LogLens/internal/domain"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTTP lists files linked from a directory index page (Apache/nginx style
// autoindex or any page of plain links).
type HTTP struct {
	base   *url.URL
	client *http.Client
}

func NewHTTP(baseURL string, client *http.Client) (*HTTP, error) {
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{base: base, client: client}, nil
}

// normalizeBaseURL drops query and fragment and makes the path end with "/",
// so relative links resolve inside the listed directory.
func normalizeBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("base url has no host")
	}

	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
		if u.RawPath != "" {
			u.RawPath += "/"
		}
	}
	return u, nil
}

func (h *HTTP) Kind() domain.SourceKind {
	return domain.SourceHTTP
}

func (h *HTTP) Path() string {
	return h.base.String()
}

func (h *HTTP) List(ctx context.Context) ([]domain.FileRef, error) {
	body, status, err := h.get(ctx, h.base.String())
	if err != nil {
		return nil, &EnumerationError{Source: h.Path(), Err: err}
	}
	if status < 200 || status > 299 {
		return nil, &EnumerationError{
			Source: h.Path(),
			Err:    fmt.Errorf("%w: %d", ErrUnexpectedStatus, status),
		}
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &EnumerationError{Source: h.Path(), Err: err}
	}

	return h.collectLinks(doc), nil
}

func (h *HTTP) collectLinks(doc *html.Node) []domain.FileRef {
	var refs []domain.FileRef
	seen := make(map[string]struct{})

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			if ref, ok := h.linkRef(n); ok {
				if _, dup := seen[ref.Locator]; !dup {
					seen[ref.Locator] = struct{}{}
					refs = append(refs, ref)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return refs
}

func (h *HTTP) linkRef(a *html.Node) (domain.FileRef, bool) {
	var href string
	for _, attr := range a.Attr {
		if attr.Key == "href" {
			href = strings.TrimSpace(attr.Val)
			break
		}
	}

	switch {
	case href == "", href == "..", href == "../":
		return domain.FileRef{}, false
	case strings.HasPrefix(href, "?"), strings.HasPrefix(href, "#"):
		return domain.FileRef{}, false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return domain.FileRef{}, false
	}
	resolved := h.base.ResolveReference(ref)
	resolved.Fragment = ""
	resolved.RawFragment = ""

	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return domain.FileRef{}, false
	}
	if strings.HasSuffix(resolved.Path, "/") || resolved.Path == "" {
		return domain.FileRef{}, false
	}

	return domain.FileRef{
		Locator:  resolved.String(),
		Filename: path.Base(resolved.Path),
	}, true
}

func (h *HTTP) Fetch(ctx context.Context, ref domain.FileRef) ([]byte, error) {
	body, status, err := h.get(ctx, ref.Locator)
	if err != nil {
		return nil, &FetchError{Locator: ref.Locator, Err: err}
	}
	if status < 200 || status > 299 {
		return nil, &FetchError{Locator: ref.Locator, StatusCode: status, Err: ErrUnexpectedStatus}
	}
	return body, nil
}

func (h *HTTP) get(ctx context.Context, target string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
