package docpdf

import (
	"context"
	"strings"
	"testing"
)

func TestGoldmarkToHTML(t *testing.T) {
	c := newGoldmarkConverter()

	html, err := c.ToHTML(context.Background(), "## Section\n\n**Key point**\n\nPlain paragraph.")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<h2 id="section">Section</h2>`,
		"<strong>Key point</strong>",
		"<p>Plain paragraph.</p>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGoldmarkToHTMLCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newGoldmarkConverter()
	if _, err := c.ToHTML(ctx, "# Test"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestInjectCSS(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "into head",
			html: "<html><head></head><body>x</body></html>",
			want: "<style>p{}</style></head>",
		},
		{
			name: "after body when no head",
			html: "<html><body class=\"a\">x</body></html>",
			want: `<body class="a"><style>p{}</style>`,
		},
		{
			name: "prepended to bare fragment",
			html: "<p>x</p>",
			want: "<style>p{}</style><p>x</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := injectCSS(tt.html, "p{}")
			if !strings.Contains(got, tt.want) {
				t.Errorf("injectCSS() = %q, want substring %q", got, tt.want)
			}
		})
	}

	t.Run("empty CSS is a no-op", func(t *testing.T) {
		if got := injectCSS("<p>x</p>", ""); got != "<p>x</p>" {
			t.Errorf("injectCSS() = %q", got)
		}
	})

	t.Run("closing sequences in CSS are escaped", func(t *testing.T) {
		got := injectCSS("<html><head></head></html>", "a{content:'</style>'}")
		if strings.Count(got, "</style>") != 1 {
			t.Errorf("style block closed early: %q", got)
		}
	})
}

func TestInjectCover(t *testing.T) {
	cover := Cover{MainTitle: "TITLE", Subtitle: "Sub", Brand: "Acme & Co"}

	got := injectCover("<html><body><p>content</p></body></html>", cover)

	coverIdx := strings.Index(got, `<div class="cover">`)
	contentIdx := strings.Index(got, "<p>content</p>")
	if coverIdx == -1 {
		t.Fatalf("cover markup missing: %q", got)
	}
	if coverIdx > contentIdx {
		t.Errorf("cover not placed before document content")
	}
	// Field values are HTML-escaped.
	if !strings.Contains(got, "Acme &amp; Co") {
		t.Errorf("brand not escaped: %q", got)
	}
	for _, want := range []string{
		`<div class="title">TITLE</div>`,
		`<div class="subtitle">Sub</div>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestReportCSSPageBreak(t *testing.T) {
	// The cover rule must force a page break so the body starts on page two.
	if !strings.Contains(reportCSS, "page-break-after: always") {
		t.Error("cover style lost its page break")
	}
}
