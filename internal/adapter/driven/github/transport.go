package github

import "net/http"

// revalidateTransport marks every request max-age=0. httpcache then treats the
// stored response as stale and revalidates it with If-None-Match, so repeated
// polls always reach GitHub and unchanged resources come back as 304s.
type revalidateTransport struct {
	next http.RoundTripper
}

// RoundTrip clones the request with the revalidation header and delegates.
func (t *revalidateTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Cache-Control", "max-age=0")
	return t.next.RoundTrip(r)
}
