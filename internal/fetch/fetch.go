// Package fetch retrieves a single page over HTTP for the extract CLI
// command. It is deliberately single-purpose: the extraction engine
// itself is a pure function of (config, response) and does no I/O; this
// package exists only to produce the Response that façade expects.
package fetch

import (
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

const defaultUserAgent = "linkxtract-Bot/1.0"

// Options configures a single-page fetch.
type Options struct {
	// UserAgent is sent as the User-Agent header. Defaults to
	// "linkxtract-Bot/1.0" when empty.
	UserAgent string
	// Timeout is the maximum duration for the request. A zero value
	// leaves the collector's default request timeout in place.
	Timeout time.Duration
	// RespectRobotsTxt honors the target's robots.txt before fetching.
	RespectRobotsTxt bool
}

// Page is the raw material an extraction call needs: the final URL
// after redirects, the body bytes, and the encoding declared by the
// response's Content-Type header, if any.
type Page struct {
	URL      string
	Body     []byte
	Encoding string
	IsXML    bool
}

// Fetch retrieves rawURL and returns the resulting Page. It follows the
// teacher's colly collector pattern, scoped down to one synchronous
// request instead of a recursive crawl.
func Fetch(rawURL string, opts Options) (Page, error) {
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	c := colly.NewCollector(colly.UserAgent(opts.UserAgent))
	c.IgnoreRobotsTxt = !opts.RespectRobotsTxt
	if opts.Timeout > 0 {
		c.SetRequestTimeout(opts.Timeout)
	}

	var page Page
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		page.URL = r.Request.URL.String()
		page.Body = r.Body
		contentType := ""
		if r.Headers != nil {
			contentType = r.Headers.Get("Content-Type")
		}
		page.Encoding = encodingFromContentType(contentType)
		page.IsXML = isXMLContentType(contentType)
	})

	c.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("fetch %s: %w", rawURL, err)
	})

	if err := c.Visit(rawURL); err != nil {
		return Page{}, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	c.Wait()

	if fetchErr != nil {
		return Page{}, fetchErr
	}
	return page, nil
}

func encodingFromContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}

func isXMLContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasSuffix(mediaType, "/xml") || strings.HasSuffix(mediaType, "+xml")
}
