package endpoint

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// joinURLPath appends resourcePath to urlPath.
func joinURLPath(urlPath, resourcePath string) string {
	if resourcePath == "" {
		if urlPath == "" {
			return "/"
		}
		return urlPath
	}
	if !strings.HasSuffix(urlPath, "/") {
		urlPath += "/"
	}
	return urlPath + strings.TrimPrefix(resourcePath, "/")
}

// newRequest creates the request for desc on svc.
func newRequest(ctx context.Context, svc *Service, desc *Descriptor) (*http.Request, error) {
	URL, err := url.Parse(svc.BaseURL)
	if err != nil {
		return nil, err
	}
	URL.Path = joinURLPath(URL.Path, desc.URLPath)
	// we only honour desc.URLQuery
	URL.RawQuery = ""
	if len(desc.URLQuery) > 0 {
		URL.RawQuery = desc.URLQuery.Encode()
	}
	var reqBody io.Reader
	if len(desc.RequestBody) > 0 {
		reqBody = bytes.NewReader(desc.RequestBody)
		svc.logger().Debugf("endpoint: request body length: %d", len(desc.RequestBody))
		if desc.LogBody {
			svc.logger().Debugf("endpoint: request body: %s", string(desc.RequestBody))
		}
	}
	req, err := http.NewRequestWithContext(ctx, desc.Method, URL.String(), reqBody)
	if err != nil {
		return nil, err
	}
	for key, values := range svc.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Host = svc.Host
	authorization := svc.Authorization
	if desc.Authorization != "" {
		authorization = desc.Authorization
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	if desc.ContentType != "" {
		req.Header.Set("Content-Type", desc.ContentType)
	}
	if desc.Accept != "" {
		req.Header.Set("Accept", desc.Accept)
	}
	if svc.UserAgent != "" {
		req.Header.Set("User-Agent", svc.UserAgent)
	}
	return req, nil
}
