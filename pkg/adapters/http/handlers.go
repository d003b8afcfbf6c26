package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aretw0/tweetflow/internal/metrics"
	"github.com/aretw0/tweetflow/internal/presentation/graph"
	"github.com/aretw0/tweetflow/pkg/content"
	"github.com/aretw0/tweetflow/pkg/domain"
	"github.com/aretw0/tweetflow/pkg/schema"
	"github.com/aretw0/tweetflow/pkg/workflow"
	"github.com/oapi-codegen/runtime"
	"gopkg.in/yaml.v3"
)

// Render formats accepted by /api/workflow/render.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMermaid = "mermaid"
)

type errorResponse struct {
	Error   string       `json:"error"`
	Details string       `json:"details,omitempty"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// fieldErrors lists the per-field failures carried by a schema error.
func fieldErrors(err error) []fieldError {
	var out []fieldError
	for _, e := range schema.ValidationErrors(err) {
		var ve *schema.ValidationError
		if errors.As(e, &ve) {
			out = append(out, fieldError{Field: ve.Key, Reason: ve.Reason})
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := errorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
		resp.Fields = fieldErrors(err)
	}
	if status >= http.StatusInternalServerError {
		s.Logger.Error(msg, "err", err)
	} else {
		s.Logger.Warn(msg, "err", err)
	}
	writeJSON(w, status, resp)
}

// decodeBody reads the JSON body of r into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return nil
}

// decodeConfig reads a configuration object from the body of r.
func decodeConfig(w http.ResponseWriter, r *http.Request) (domain.Config, error) {
	var raw map[string]any
	if err := decodeBody(w, r, &raw); err != nil {
		return domain.Config{}, err
	}
	return workflow.DecodeConfig(raw)
}

// build decodes and builds, recording the outcome.
func (s *Server) build(cfg domain.Config) (domain.Workflow, error) {
	wf, err := workflow.Build(cfg, s.BuildOptions...)
	if err != nil {
		s.Metrics.ObserveBuild(metrics.OutcomeError, 0)
		return domain.Workflow{}, err
	}
	s.Metrics.ObserveBuild(metrics.OutcomeOK, len(wf.Nodes))
	return wf, nil
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GenerateWorkflow handles POST /api/generate-workflow.
func (s *Server) GenerateWorkflow(w http.ResponseWriter, r *http.Request) {
	cfg, err := decodeConfig(w, r)
	if err != nil {
		s.Metrics.ObserveBuild(metrics.OutcomeInvalid, 0)
		s.writeError(w, http.StatusBadRequest, "Invalid workflow configuration", err)
		return
	}

	wf, err := s.build(cfg)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to generate workflow", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"workflow": wf,
		"success":  true,
	})
}

// RenderWorkflow handles POST /api/workflow/render?format=json|yaml|mermaid.
func (s *Server) RenderWorkflow(w http.ResponseWriter, r *http.Request) {
	format := FormatJSON
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid format parameter", err)
		return
	}
	format = strings.ToLower(format)
	switch format {
	case FormatJSON, FormatYAML, FormatMermaid:
	default:
		s.writeError(w, http.StatusBadRequest, "Invalid format parameter",
			fmt.Errorf("unsupported format %q (want json, yaml or mermaid)", format))
		return
	}

	cfg, err := decodeConfig(w, r)
	if err != nil {
		s.Metrics.ObserveBuild(metrics.OutcomeInvalid, 0)
		s.writeError(w, http.StatusBadRequest, "Invalid workflow configuration", err)
		return
	}
	wf, err := s.build(cfg)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to generate workflow", err)
		return
	}

	switch format {
	case FormatYAML:
		out, err := yaml.Marshal(wf)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, "Failed to render workflow", err)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(out)
	case FormatMermaid:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(graph.GenerateMermaid(wf, nil)))
	default:
		writeJSON(w, http.StatusOK, wf)
	}
}

// executeSchema is the envelope of /api/execute-workflow; the optional
// workflow document is decoded separately.
var executeSchema = schema.Schema{
	"config": schema.Custom("object", func(v any) error {
		if _, ok := v.(map[string]any); !ok {
			return fmt.Errorf("expected object, got %T", v)
		}
		return nil
	}),
}

// ExecuteWorkflow handles POST /api/execute-workflow. The run is simulated.
func (s *Server) ExecuteWorkflow(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := schema.Validate(executeSchema, raw); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	cfg, err := workflow.DecodeConfig(raw["config"].(map[string]any))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid workflow configuration", err)
		return
	}

	var req struct {
		Workflow *domain.Workflow `json:"workflow"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	var wf domain.Workflow
	if req.Workflow != nil {
		wf = *req.Workflow
	}
	report, err := s.Simulator.Run(wf, cfg)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "Failed to execute workflow", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": report.Message,
		"results": report.Results,
		"steps":   report.Steps,
	})
}

type imageRequest struct {
	Prompt string `json:"prompt"`
	Topic  string `json:"topic"`
	Niche  string `json:"niche"`
	Tone   string `json:"tone"`
}

// GenerateTweet handles POST /api/generate-tweet.
func (s *Server) GenerateTweet(w http.ResponseWriter, r *http.Request) {
	var req content.TweetRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	tweet, err := s.Generator.Tweet(r.Context(), req)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to generate tweet", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tweet": tweet, "success": true})
}

// GenerateImage handles POST /api/generate-image. Without an explicit prompt,
// one is derived from topic, niche and tone as sent by the image node.
func (s *Server) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req imageRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	prompt := req.Prompt
	if prompt == "" {
		prompt = content.ImagePrompt(req.Topic, req.Niche, req.Tone)
	}
	if prompt == "" {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", errors.New("prompt or topic is required"))
		return
	}

	url, err := s.Generator.Image(r.Context(), content.ImageRequest{Prompt: prompt})
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to generate image", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"imageUrl": url, "success": true})
}

// GenerateComment handles POST /api/generate-comment.
func (s *Server) GenerateComment(w http.ResponseWriter, r *http.Request) {
	var req content.CommentRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	comment, err := s.Generator.Comment(r.Context(), req)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to generate comment", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comment": comment, "success": true})
}

// PersonalizeDM handles POST /api/personalize-dm.
func (s *Server) PersonalizeDM(w http.ResponseWriter, r *http.Request) {
	var req content.DMRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	msg, err := s.Generator.PersonalizeDM(r.Context(), req)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "Failed to personalize DM", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": msg, "username": req.Username, "success": true})
}
