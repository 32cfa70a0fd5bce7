package manifest

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/sfops/flowrec/pkg/flowrec"
)

// Parse decodes a manifest document. The path is used for error reporting
// only. A document whose root element is not <Package> is rejected with a
// ManifestError wrapping flowrec.ErrMalformedManifest.
func Parse(data []byte, path string) (*Manifest, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ManifestError{
			Path:    path,
			Message: "document is empty",
			Hint:    "A manifest must contain a <Package> root element.",
		}
	}

	var m Manifest
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, wrapXMLError(err, path)
	}

	// Preserved elements inherit the root's default namespace; clearing
	// the space keeps Serialize from stamping xmlns onto each of them.
	for i := range m.Extra {
		m.Extra[i].XMLName.Space = ""
	}

	return &m, nil
}

// Serialize encodes the manifest with the standard XML header and
// two-space indentation. Member ordering is whatever the manifest holds;
// merge operations keep it sorted, so output is deterministic.
func (m *Manifest) Serialize() ([]byte, error) {
	body, err := xml.MarshalIndent(m, "", "    ")
	if err != nil {
		return nil, err
	}

	var buf strings.Builder
	buf.WriteString(xml.Header)
	buf.Write(body)
	buf.WriteString("\n")
	return []byte(buf.String()), nil
}

// New returns a minimal manifest with the metadata namespace and the
// given API version.
func New(apiVersion string) *Manifest {
	return &Manifest{
		Xmlns:   flowrec.MetadataNamespace,
		Version: apiVersion,
	}
}
