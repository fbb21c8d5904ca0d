package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Pager follows GitLab's cursor-style pagination. The first request carries
// the supplied query parameters; subsequent requests follow the opaque
// rel="next" link from the Link response header verbatim. The sequence is
// finite and forward-only: a failed fetch terminates it without yielding a
// partial page, and the failure is available through Err.
//
// Usage follows the bufio.Scanner pattern:
//
//	pager := NewPager(client, header, url, params)
//	for pager.Next() {
//		var page []Issue
//		if err := pager.Decode(&page); err != nil { ... }
//	}
//	if err := pager.Err(); err != nil { ... }
type Pager struct {
	client  *http.Client
	header  http.Header
	url     string
	params  url.Values
	started bool
	next    string
	body    []byte
	err     error
}

// NewPager creates a pager for the given URL, query parameters and request
// headers.
func NewPager(client *http.Client, header http.Header, rawURL string, params url.Values) *Pager {
	if client == nil {
		client = http.DefaultClient
	}
	return &Pager{
		client: client,
		header: header,
		url:    rawURL,
		params: params,
	}
}

// Next fetches the next page. It returns false when the sequence is
// exhausted or a fetch failed.
func (p *Pager) Next() bool {
	if p.err != nil {
		return false
	}

	var target string
	switch {
	case !p.started:
		p.started = true
		target = p.url
		if len(p.params) > 0 {
			target += "?" + p.params.Encode()
		}
	case p.next != "":
		target = p.next
	default:
		return false
	}

	body, next, err := p.fetch(target)
	if err != nil {
		p.err = err
		return false
	}

	p.body = body
	p.next = next
	return true
}

// Decode unmarshals the current page body into v.
func (p *Pager) Decode(v interface{}) error {
	return json.Unmarshal(p.body, v)
}

// Err returns the error that terminated the sequence, if any.
func (p *Pager) Err() error {
	return p.err
}

// fetch performs a single page request and extracts the next-page link.
func (p *Pager) fetch(target string) (body []byte, next string, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	for key, values := range p.header {
		req.Header[key] = values
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", fmt.Errorf("%w: GET %s returned %s", ErrRequestFailed, target, resp.Status)
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	return body, nextLink(resp.Header), nil
}

// nextLink extracts the rel="next" target from an RFC 5988 Link header.
// It returns an empty string when no next page is advertised.
func nextLink(header http.Header) string {
	for _, link := range header.Values("Link") {
		for _, part := range strings.Split(link, ",") {
			section := strings.Split(part, ";")
			if len(section) < 2 {
				continue
			}

			target := strings.Trim(strings.TrimSpace(section[0]), "<>")
			for _, param := range section[1:] {
				if strings.TrimSpace(param) == `rel="next"` {
					return target
				}
			}
		}
	}
	return ""
}
