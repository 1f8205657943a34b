package extraction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/SscSPs/audit_dashboard/internal/apperrors"
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
)

// envelope covers the object-shaped answers: {documents: [...]} and {document: {...}}.
type envelope struct {
	Documents json.RawMessage `json:"documents"`
	Document  json.RawMessage `json:"document"`
}

// decodeDocuments accepts {documents: [...]}, a bare array, or {document: {...}}.
func decodeDocuments(raw []byte) ([]domain.ExtractedDocument, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty response body", apperrors.ErrExtractionFailed)
	}

	var items []map[string]any
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: decode json: %v", apperrors.ErrExtractionFailed, err)
		}
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("%w: decode json: %v", apperrors.ErrExtractionFailed, err)
		}
		if isArray(env.Documents) {
			if err := json.Unmarshal(env.Documents, &items); err != nil {
				return nil, fmt.Errorf("%w: decode documents: %v", apperrors.ErrExtractionFailed, err)
			}
		} else if isObject(env.Document) {
			var single map[string]any
			if err := json.Unmarshal(env.Document, &single); err != nil {
				return nil, fmt.Errorf("%w: decode document: %v", apperrors.ErrExtractionFailed, err)
			}
			items = []map[string]any{single}
		}
	default:
		return nil, fmt.Errorf("%w: unexpected response payload", apperrors.ErrExtractionFailed)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: the response did not include processed documents", apperrors.ErrExtractionFailed)
	}

	docs := make([]domain.ExtractedDocument, 0, len(items))
	for _, item := range items {
		docs = append(docs, toDocument(item))
	}
	return docs, nil
}

func toDocument(item map[string]any) domain.ExtractedDocument {
	meta, _ := item["metadata"].(map[string]any)
	clientID := stringField(meta, "clientId")
	if clientID == "" {
		// Older extraction services still send the client as projectId.
		clientID = stringField(meta, "projectId")
	}
	return domain.ExtractedDocument{
		Title: stringField(item, "title"),
		Text:  stringField(item, "text"),
		Metadata: domain.DocumentMetadata{
			ID:          stringField(meta, "id"),
			Title:       stringField(meta, "title"),
			Text:        stringField(meta, "text"),
			CreatedBy:   stringField(meta, "createdBy"),
			ClientID:    clientID,
			Source:      stringField(meta, "source"),
			Attachments: stringSlice(meta, "attachments"),
		},
	}
}

// stringField reads a string or number field; anything else counts as absent.
func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func stringSlice(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	list, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func isArray(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}

func isObject(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '{'
}
