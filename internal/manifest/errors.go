package manifest

import (
	"encoding/xml"
	"fmt"

	"github.com/sfops/flowrec/pkg/flowrec"
)

// ManifestError represents a structured parse error with file context and
// an actionable hint.
type ManifestError struct {
	Path    string // Path to the manifest with the error
	Line    int    // Line number (0 if unknown)
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *ManifestError) Error() string {
	location := e.Path
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", e.Path, e.Line)
	}

	msg := fmt.Sprintf("manifest error in %s: %s", location, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap lets callers classify any ManifestError with
// errors.Is(err, flowrec.ErrMalformedManifest).
func (e *ManifestError) Unwrap() error {
	return flowrec.ErrMalformedManifest
}

// wrapXMLError converts xml package errors to ManifestError with line numbers.
func wrapXMLError(err error, path string) error {
	if syntaxErr, ok := err.(*xml.SyntaxError); ok {
		return &ManifestError{
			Path:    path,
			Line:    int(syntaxErr.Line),
			Message: syntaxErr.Msg,
			Hint:    "Check that all XML tags are properly closed and attributes are quoted.",
		}
	}

	return &ManifestError{
		Path:    path,
		Message: err.Error(),
		Hint: "Expected a metadata manifest:\n" +
			"  <Package xmlns=\"" + flowrec.MetadataNamespace + "\">\n" +
			"    <types><members>...</members><name>...</name></types>\n" +
			"    <version>...</version>\n" +
			"  </Package>",
	}
}
