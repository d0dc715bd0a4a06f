// Package http provides the HTTP client used to fetch the site's remote
// JSON documents and cover art.
//
// # Client
//
// The Client wraps net/http with a User-Agent, a timeout and no-cache
// request headers:
//
//	client := http.NewClient()
//
//	// Raw bytes
//	data, err := client.Get(ctx, url)
//
//	// Decoded JSON
//	var payload map[string]any
//	err = client.GetJSON(ctx, url, &payload)
//
// # Errors
//
// A non-200 answer is reported as *StatusError; use errors.As to inspect
// the status code.
package http
