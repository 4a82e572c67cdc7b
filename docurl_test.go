package docpdf

import (
	"errors"
	"testing"
)

func TestExtractDocumentID(t *testing.T) {
	tests := []struct {
		name   string
		docURL string
		want   string
	}{
		{
			name:   "canonical edit URL",
			docURL: "https://docs.google.com/document/d/1aBcDeF_gH-iJ/edit",
			want:   "1aBcDeF_gH-iJ",
		},
		{
			name:   "canonical URL without trailing path",
			docURL: "https://docs.google.com/document/d/1aBcDeF_gH-iJ",
			want:   "1aBcDeF_gH-iJ",
		},
		{
			name:   "id query parameter",
			docURL: "https://docs.google.com/open?id=1aBcDeF_gH-iJ",
			want:   "1aBcDeF_gH-iJ",
		},
		{
			name:   "bare document ID",
			docURL: "1aBcDeF_gH-iJ",
			want:   "1aBcDeF_gH-iJ",
		},
		{
			name:   "self-test sentinel passes through",
			docURL: SelfTestDocumentID,
			want:   SelfTestDocumentID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractDocumentID(tt.docURL)
			if err != nil {
				t.Fatalf("ExtractDocumentID(%q) error = %v", tt.docURL, err)
			}
			if got != tt.want {
				t.Errorf("ExtractDocumentID(%q) = %q, want %q", tt.docURL, got, tt.want)
			}
		})
	}
}

func TestExtractDocumentIDErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := ExtractDocumentID("")
		if !errors.Is(err, ErrEmptyDocURL) {
			t.Errorf("error = %v, want ErrEmptyDocURL", err)
		}
	})

	invalid := []struct {
		name   string
		docURL string
	}{
		{"document path with empty ID", "https://docs.google.com/document/d//edit"},
		{"unrelated URL", "https://example.com/some/page"},
		{"slash in bare input", "not/an/id"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractDocumentID(tt.docURL)
			if !errors.Is(err, ErrInvalidDocURL) {
				t.Errorf("ExtractDocumentID(%q) error = %v, want ErrInvalidDocURL", tt.docURL, err)
			}
		})
	}
}
