package salesforce

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sfops/flowrec/pkg/flowrec"
)

// queryResponse mirrors the CLI's --json envelope for data query.
type queryResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Name    string `json:"name"`
	Result  struct {
		Records   []flowQueryRecord `json:"records"`
		TotalSize int               `json:"totalSize"`
		Done      bool              `json:"done"`
	} `json:"result"`
}

// flowQueryRecord is one Flow row from the tooling API.
type flowQueryRecord struct {
	VersionNumber int    `json:"VersionNumber"`
	Status        string `json:"Status"`
	Definition    struct {
		DeveloperName string `json:"DeveloperName"`
	} `json:"Definition"`
}

// parseQueryOutput decodes the CLI's stdout into version records.
//
// The CLI normally emits exactly one JSON document, but output has been
// observed split into multiple chunks; every valid document is merged
// rather than trusting the first one. Malformed chunks and unusable rows
// are skipped with a warning. No valid document at all is a hard error.
func parseQueryOutput(stdout []byte, logger flowrec.Logger) ([]flowrec.FlowVersionRecord, error) {
	decoder := json.NewDecoder(bytes.NewReader(stdout))

	var records []flowrec.FlowVersionRecord
	validChunks := 0
	failedChunks := 0
	var lastFailure string

	for {
		var chunk queryResponse
		err := decoder.Decode(&chunk)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// The stream cannot be resynchronized past a syntax error;
			// keep whatever decoded cleanly before it.
			logger.Warn("Skipping malformed query response chunk: %v", err)
			break
		}

		if chunk.Status != 0 {
			failedChunks++
			lastFailure = chunk.Message
			if lastFailure == "" {
				lastFailure = chunk.Name
			}
			logger.Warn("Query response chunk reported failure: %s", lastFailure)
			continue
		}

		validChunks++
		for _, r := range chunk.Result.Records {
			if r.Definition.DeveloperName == "" || r.VersionNumber <= 0 {
				logger.Warn("Skipping unusable flow version record (name=%q, version=%d)",
					r.Definition.DeveloperName, r.VersionNumber)
				continue
			}
			records = append(records, flowrec.FlowVersionRecord{
				DeveloperName: r.Definition.DeveloperName,
				VersionNumber: r.VersionNumber,
				Status:        r.Status,
			})
		}
	}

	if validChunks == 0 {
		if lastFailure != "" {
			return nil, fmt.Errorf("query reported failure: %s", lastFailure)
		}
		return nil, errors.New("no valid JSON document in query output")
	}

	return records, nil
}
