package docpdf

import (
	"errors"
	"testing"

	"github.com/KeithKrenek/google-doc-pdf-converter/internal/gdocs"
)

// run is a shorthand constructor for styled text runs.
func run(content string, bold bool, size float64) gdocs.ParagraphElement {
	tr := &gdocs.TextRun{Content: content}
	if bold || size != 0 {
		tr.TextStyle = &gdocs.TextStyle{Bold: bold}
		if size != 0 {
			tr.TextStyle.FontSize = &gdocs.FontSize{Magnitude: size, Unit: "PT"}
		}
	}
	return gdocs.ParagraphElement{TextRun: tr}
}

func paragraph(elements ...gdocs.ParagraphElement) gdocs.StructuralElement {
	return gdocs.StructuralElement{Paragraph: &gdocs.Paragraph{Elements: elements}}
}

func doc(title string, elements ...gdocs.StructuralElement) *gdocs.Document {
	if elements == nil {
		// A present-but-empty content list, distinct from a missing one.
		elements = []gdocs.StructuralElement{}
	}
	return &gdocs.Document{Title: title, Body: &gdocs.Body{Content: elements}}
}

func TestExtractModelClassification(t *testing.T) {
	tests := []struct {
		name string
		para gdocs.StructuralElement
		want ContentBlock
	}{
		{
			name: "plain text is normal",
			para: paragraph(run("hello world", false, 0)),
			want: ContentBlock{Kind: KindNormal, Text: "hello world"},
		},
		{
			name: "bold at threshold is bold not heading",
			para: paragraph(run("Section", true, 14)),
			want: ContentBlock{Kind: KindBold, Text: "Section"},
		},
		{
			name: "bold above threshold is heading",
			para: paragraph(run("Title", true, 18)),
			want: ContentBlock{Kind: KindHeading, Text: "Title"},
		},
		{
			name: "bold without font size is bold",
			para: paragraph(run("emphasis", true, 0)),
			want: ContentBlock{Kind: KindBold, Text: "emphasis"},
		},
		{
			name: "runs concatenate in order",
			para: paragraph(run("one ", false, 0), run("two ", false, 0), run("three", false, 0)),
			want: ContentBlock{Kind: KindNormal, Text: "one two three"},
		},
		{
			name: "last bold run wins over earlier heading run",
			para: paragraph(run("big ", true, 18), run("small", true, 10)),
			want: ContentBlock{Kind: KindBold, Text: "big small"},
		},
		{
			name: "last bold run wins over earlier bold run",
			para: paragraph(run("small ", true, 10), run("big", true, 18)),
			want: ContentBlock{Kind: KindHeading, Text: "small big"},
		},
		{
			name: "trailing non-bold run does not reset bold classification",
			para: paragraph(run("lead ", true, 18), run("tail", false, 0)),
			want: ContentBlock{Kind: KindHeading, Text: "lead tail"},
		},
		{
			name: "whitespace is stripped",
			para: paragraph(run("  padded text \n", false, 0)),
			want: ContentBlock{Kind: KindNormal, Text: "padded text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, err := ExtractModel(doc("Doc", tt.para))
			if err != nil {
				t.Fatalf("ExtractModel() error = %v", err)
			}
			if len(model.Blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(model.Blocks))
			}
			if model.Blocks[0] != tt.want {
				t.Errorf("block = %+v, want %+v", model.Blocks[0], tt.want)
			}
		})
	}
}

func TestExtractModelDropsEmptyParagraphs(t *testing.T) {
	model, err := ExtractModel(doc("Doc",
		paragraph(run("   \n  ", false, 0)),
		paragraph(run("kept", false, 0)),
		paragraph(), // no runs at all
	))
	if err != nil {
		t.Fatalf("ExtractModel() error = %v", err)
	}
	if len(model.Blocks) != 1 || model.Blocks[0].Text != "kept" {
		t.Errorf("blocks = %+v, want single %q block", model.Blocks, "kept")
	}
}

func TestExtractModelSkipsNonParagraphElements(t *testing.T) {
	model, err := ExtractModel(doc("Doc",
		gdocs.StructuralElement{}, // e.g. a section break
		paragraph(run("text", false, 0)),
	))
	if err != nil {
		t.Fatalf("ExtractModel() error = %v", err)
	}
	if len(model.Blocks) != 1 {
		t.Errorf("got %d blocks, want 1", len(model.Blocks))
	}
}

func TestExtractModelPreservesOrder(t *testing.T) {
	model, err := ExtractModel(doc("Doc",
		paragraph(run("first", true, 18)),
		paragraph(run("second", false, 0)),
		paragraph(run("third", true, 10)),
	))
	if err != nil {
		t.Fatalf("ExtractModel() error = %v", err)
	}
	want := []ContentBlock{
		{Kind: KindHeading, Text: "first"},
		{Kind: KindNormal, Text: "second"},
		{Kind: KindBold, Text: "third"},
	}
	if len(model.Blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d", len(model.Blocks), len(want))
	}
	for i, b := range model.Blocks {
		if b != want[i] {
			t.Errorf("block[%d] = %+v, want %+v", i, b, want[i])
		}
	}
}

func TestExtractModelTitle(t *testing.T) {
	t.Run("title taken verbatim", func(t *testing.T) {
		model, err := ExtractModel(doc("Quarterly Report"))
		if err != nil {
			t.Fatalf("ExtractModel() error = %v", err)
		}
		if model.Title != "Quarterly Report" {
			t.Errorf("Title = %q", model.Title)
		}
	})

	t.Run("missing title falls back to default", func(t *testing.T) {
		model, err := ExtractModel(doc(""))
		if err != nil {
			t.Fatalf("ExtractModel() error = %v", err)
		}
		if model.Title != DefaultTitle {
			t.Errorf("Title = %q, want %q", model.Title, DefaultTitle)
		}
	})
}

func TestExtractModelMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		doc  *gdocs.Document
	}{
		{"nil document", nil},
		{"missing body", &gdocs.Document{Title: "Doc"}},
		{"missing content", &gdocs.Document{Title: "Doc", Body: &gdocs.Body{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractModel(tt.doc)
			if !errors.Is(err, ErrDocumentStructure) {
				t.Errorf("error = %v, want ErrDocumentStructure", err)
			}
		})
	}
}

func TestExtractModelEmptyContentIsValid(t *testing.T) {
	// An empty content list is a present-but-empty body, not malformed input.
	model, err := ExtractModel(doc("Doc"))
	if err != nil {
		t.Fatalf("ExtractModel() error = %v", err)
	}
	if len(model.Blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(model.Blocks))
	}
}
