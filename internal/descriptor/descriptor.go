package descriptor

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/sfops/flowrec/pkg/flowrec"
)

// FlowDefinition represents a flow deactivation descriptor
// (<Name>.flowDefinition-meta.xml). Only activeVersionNumber is
// interpreted; every other element is carried through untouched so an
// edit never loses fields the descriptor already had.
//
// XML Structure:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<FlowDefinition xmlns="http://soap.sforce.com/2006/04/metadata">
//	    <activeVersionNumber>0</activeVersionNumber>
//	</FlowDefinition>
type FlowDefinition struct {
	XMLName             xml.Name     `xml:"FlowDefinition"`
	Xmlns               string       `xml:"xmlns,attr"`
	ActiveVersionNumber int          `xml:"activeVersionNumber"`
	Extra               []RawElement `xml:",any"`
}

// RawElement carries an uninterpreted descriptor element verbatim,
// including any nested content.
type RawElement struct {
	XMLName xml.Name
	Content string `xml:",innerxml"`
}

// NewInactive returns the minimal descriptor written when a flow has no
// local descriptor yet: just the namespace and the inactive sentinel.
func NewInactive() *FlowDefinition {
	return &FlowDefinition{
		Xmlns:               flowrec.MetadataNamespace,
		ActiveVersionNumber: flowrec.InactiveVersionNumber,
	}
}

// Parse decodes a descriptor document. The name is used for error
// reporting only.
func Parse(data []byte, name string) (*FlowDefinition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("flow %q: descriptor is empty", name)
	}

	var fd FlowDefinition
	if err := xml.Unmarshal(data, &fd); err != nil {
		return nil, fmt.Errorf("flow %q: failed to parse descriptor: %w", name, err)
	}

	// Preserved elements inherit the root's default namespace; clearing
	// the space keeps Serialize from stamping xmlns onto each of them.
	for i := range fd.Extra {
		fd.Extra[i].XMLName.Space = ""
	}

	return &fd, nil
}

// Deactivate sets the inactive sentinel, leaving every other field as is.
func (fd *FlowDefinition) Deactivate() {
	fd.ActiveVersionNumber = flowrec.InactiveVersionNumber
}

// Serialize encodes the descriptor with the standard XML header and
// four-space indentation, matching the format the retrieval tooling emits.
func (fd *FlowDefinition) Serialize() ([]byte, error) {
	body, err := xml.MarshalIndent(fd, "", "    ")
	if err != nil {
		return nil, err
	}

	var buf strings.Builder
	buf.WriteString(xml.Header)
	buf.WriteString(string(body))
	buf.WriteString("\n")
	return []byte(buf.String()), nil
}
