package docpdf

import (
	"fmt"
	"net/url"
	"strings"
)

// ExtractDocumentID pulls the document ID out of a Google Docs URL.
// Accepted forms: the canonical "/document/d/<id>/..." path, an "id" query
// parameter, the self-test sentinel, or a bare document ID.
func ExtractDocumentID(docURL string) (string, error) {
	if docURL == "" {
		return "", ErrEmptyDocURL
	}
	if docURL == SelfTestDocumentID {
		return SelfTestDocumentID, nil
	}

	if _, after, found := strings.Cut(docURL, "/document/d/"); found {
		id, _, _ := strings.Cut(after, "/")
		if id == "" {
			return "", fmt.Errorf("%w: empty document ID in %q", ErrInvalidDocURL, docURL)
		}
		return id, nil
	}

	parsed, err := url.Parse(docURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDocURL, err)
	}
	if id := parsed.Query().Get("id"); id != "" {
		return id, nil
	}

	// Bare IDs have no scheme, host, path separators, or query.
	if parsed.Scheme == "" && parsed.Host == "" && !strings.ContainsAny(docURL, "/?&") {
		return docURL, nil
	}

	return "", fmt.Errorf("%w: cannot extract document ID from %q", ErrInvalidDocURL, docURL)
}
