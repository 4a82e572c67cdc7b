// Package docpdf converts structured documents into paginated PDF reports.
//
// The pipeline normalizes a raw styled-document tree (the Google Docs wire
// shape) into an ordered sequence of typed content blocks, derives cover-page
// fields from the block sequence, and renders the result through one of two
// interchangeable backends: a flowable renderer that delegates wrapping and
// pagination to headless Chrome, and a manual canvas renderer with explicit
// pagination arithmetic for environments where Chrome is unavailable.
//
// Basic usage:
//
//	conv, err := docpdf.New(docpdf.WithBackend(docpdf.BackendCanvas))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, docpdf.Input{
//		DocURL: "https://docs.google.com/document/d/abc123/edit",
//		Brand:  "Acme",
//	})
package docpdf
