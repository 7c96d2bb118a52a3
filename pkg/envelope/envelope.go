// Package envelope validates externally-constructed JSON payloads against
// embedded schemas before they cross into the pipeline: EvidenceRecord's
// raw observation payload, and an executor's raw response body. Schemas
// are compiled once at package init and evaluated purely thereafter — no
// network fetch, no filesystem read — the same per-payload schema
// compilation idiom as the teacher's firewall.PolicyFirewall.AllowTool,
// generalized from a per-tool allowlist to two fixed envelope shapes.
package envelope

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	evidenceRawPayloadSchemaURL  = "https://govkernel.schemas.local/envelope/evidence_raw_payload.schema.json"
	executorRawResponseSchemaURL = "https://govkernel.schemas.local/envelope/executor_raw_response.schema.json"
)

const evidenceRawPayloadSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["source_id", "captured_at", "data"],
	"properties": {
		"source_id": {"type": "string", "minLength": 1},
		"captured_at": {"type": "string", "minLength": 1},
		"data": {"type": "object"}
	},
	"additionalProperties": true
}`

const executorRawResponseSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["executor_id", "status"],
	"properties": {
		"executor_id": {"type": "string", "minLength": 1},
		"status": {"type": "string", "enum": ["SUCCESS", "FAILURE", "TIMEOUT", "PARTIAL", "MALFORMED"]},
		"detail": {"type": "string"}
	},
	"additionalProperties": true
}`

var (
	evidenceRawPayload   = mustCompile(evidenceRawPayloadSchemaURL, evidenceRawPayloadSchema)
	executorRawResponse  = mustCompile(executorRawResponseSchemaURL, executorRawResponseSchema)
)

func mustCompile(url, schema string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(url, strings.NewReader(schema)); err != nil {
		panic(fmt.Sprintf("envelope: failed to load schema %s: %v", url, err))
	}
	compiled, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("envelope: failed to compile schema %s: %v", url, err))
	}
	return compiled
}

// ValidateEvidenceRawPayload checks a decoded EvidenceRecord.RawPayload
// envelope (source_id, captured_at, data) before L10 ever sees it.
func ValidateEvidenceRawPayload(v any) error {
	if err := evidenceRawPayload.Validate(v); err != nil {
		return fmt.Errorf("envelope: evidence raw payload rejected: %w", err)
	}
	return nil
}

// ValidateExecutorRawResponse checks a decoded executor response body
// (executor_id, status, optional detail) before L16 normalizes it.
func ValidateExecutorRawResponse(v any) error {
	if err := executorRawResponse.Validate(v); err != nil {
		return fmt.Errorf("envelope: executor raw response rejected: %w", err)
	}
	return nil
}
