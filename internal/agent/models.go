package agent

import "encoding/json"

// Result is the envelope returned by the generation service for every call.
type Result struct {
	Success       bool           `json:"success"`
	Response      *Response      `json:"response,omitempty"`
	ModuleOutputs *ModuleOutputs `json:"module_outputs,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// Response.Result is left raw: it is either an object or a string that
// holds JSON, and its shape depends on the agent.
type Response struct {
	Result json.RawMessage `json:"result,omitempty"`
}

type ModuleOutputs struct {
	ArtifactFiles []ArtifactFile `json:"artifact_files,omitempty"`
}

type ArtifactFile struct {
	FileURL string `json:"file_url"`
}

// Payload returns the raw result, or nil when the envelope carries none.
func (r *Result) Payload() json.RawMessage {
	if r == nil || r.Response == nil {
		return nil
	}
	return r.Response.Result
}

// FirstArtifactURL returns the URL of the first generated file, if any.
func (r *Result) FirstArtifactURL() string {
	if r == nil || r.ModuleOutputs == nil || len(r.ModuleOutputs.ArtifactFiles) == 0 {
		return ""
	}
	return r.ModuleOutputs.ArtifactFiles[0].FileURL
}

type callRequest struct {
	Message string `json:"message"`
	AgentID string `json:"agent_id"`
}
