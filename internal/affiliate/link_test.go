package affiliate

import (
	"net/url"
	"strings"
	"testing"
)

func TestBuildLink_ReplacesTagAndStripsLinkCode(t *testing.T) {
	t.Parallel()

	got := BuildLink("https://amazon.com/dp/B1?tag=old&linkCode=x", "new-20")

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("result is not a valid URL: %v", err)
	}
	if tag := u.Query().Get("tag"); tag != "new-20" {
		t.Errorf("tag = %q, want new-20", tag)
	}
	if u.Query().Has("linkCode") {
		t.Errorf("linkCode should be stripped, got %q", got)
	}
}

func TestBuildLink_PreservesOtherParams(t *testing.T) {
	t.Parallel()

	got := BuildLink("https://www.amazon.com/dp/B08XYZ?ref=sr_1_3&th=1", "viralcart-20")

	u, _ := url.Parse(got)
	if u.Query().Get("ref") != "sr_1_3" || u.Query().Get("th") != "1" {
		t.Errorf("unrelated params should survive, got %q", got)
	}
	if u.Query().Get("tag") != "viralcart-20" {
		t.Errorf("tag = %q, want viralcart-20", u.Query().Get("tag"))
	}
	if u.Path != "/dp/B08XYZ" {
		t.Errorf("path changed: %q", u.Path)
	}
}

func TestBuildLink_MalformedPassthrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"not_a_url", "not a url"},
		{"missing_scheme", "amazon.com/dp/B1"},
		{"unsupported_scheme", "ftp://amazon.com/dp/B1"},
		{"empty", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := BuildLink(test.raw, "t"); got != test.raw {
				t.Errorf("BuildLink(%q) = %q, want unchanged input", test.raw, got)
			}
		})
	}
}

func TestBuildLink_Deterministic(t *testing.T) {
	t.Parallel()

	raw := "https://amazon.com/dp/B1?b=2&a=1"
	first := BuildLink(raw, "t-20")
	second := BuildLink(raw, "t-20")
	if first != second {
		t.Errorf("same input produced different outputs: %q vs %q", first, second)
	}
	if !strings.Contains(first, "tag=t-20") {
		t.Errorf("tag missing from %q", first)
	}
}

func TestHasTag(t *testing.T) {
	t.Parallel()

	if !HasTag("https://amazon.com/dp/B1?tag=x-20") {
		t.Error("expected tagged URL to report true")
	}
	if HasTag("https://amazon.com/dp/B1") {
		t.Error("expected untagged URL to report false")
	}
	if HasTag("://bad") {
		t.Error("expected unparseable URL to report false")
	}
}
