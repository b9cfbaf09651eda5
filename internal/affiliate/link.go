// Package affiliate rewrites marketplace URLs to carry attribution.
package affiliate

import "net/url"

// BuildLink injects the affiliate tag into a marketplace URL, replacing
// any pre-existing tag and stripping linkCode attribution. A raw value
// that does not parse as an absolute http(s) URL is returned unchanged
// so a malformed admin-entered URL never blocks product creation.
//
// Query parameters are re-encoded in net/url's sorted order, so the
// result is deterministic but not byte-identical to the input layout.
func BuildLink(rawURL, tag string) string {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return rawURL
	}

	q := u.Query()
	q.Del("tag")
	q.Del("linkCode")
	q.Set("tag", tag)
	u.RawQuery = q.Encode()

	return u.String()
}

// HasTag reports whether the URL already carries a non-empty tag
// parameter. Unparseable URLs report false.
func HasTag(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Query().Get("tag") != ""
}
