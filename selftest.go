package docpdf

// SelfTestDocumentID is the input sentinel used for environment verification.
// Conversions for this ID skip document retrieval and extraction entirely and
// render a fixed synthetic model instead. This is a deliberate escape hatch
// for deployment smoke tests, not a general contract.
const SelfTestDocumentID = "test-environment"

// selfTestModel returns the synthetic model rendered for the self-test
// sentinel, parameterized by the active backend so the output names what
// actually produced it.
func selfTestModel(backend Backend) *DocumentModel {
	return &DocumentModel{
		Title: "Environment Test Document",
		Blocks: []ContentBlock{
			{Kind: KindNormal, Text: "Rendering backend: " + string(backend)},
		},
	}
}
