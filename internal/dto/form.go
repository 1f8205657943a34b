package dto

import (
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
)

// OpenFormRequest opens a form session. An empty RecordID opens a creation form.
type OpenFormRequest struct {
	RecordID string `json:"recordId"`
}

// UpdateFormRequest carries field edits; omitted fields are left unchanged.
type UpdateFormRequest struct {
	Title         *string         `json:"title"`
	Description   *string         `json:"description"`
	Status        *string         `json:"status" binding:"omitempty,auditstatus"`
	Creator       *CreatorRequest `json:"creator"`
	ClientName    *string         `json:"clientName"`
	SelectedFiles []string        `json:"selectedFiles"`
}

func (r UpdateFormRequest) ToDomain() domain.FormPatch {
	patch := domain.FormPatch{
		Title:         r.Title,
		Description:   r.Description,
		Creator:       r.Creator.ToDomain(),
		ClientName:    r.ClientName,
		SelectedFiles: r.SelectedFiles,
	}
	if r.Status != nil {
		status, ok := domain.ParseAuditStatus(*r.Status)
		if !ok {
			status = domain.AuditStatus(*r.Status)
		}
		patch.Status = &status
	}
	return patch
}

type FormFieldsResponse struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	Creator       CreatorResponse `json:"creator"`
	ClientName    string          `json:"clientName"`
	SelectedFiles []string        `json:"selectedFiles"`
}

// FormResponse defines the data returned for a form session.
type FormResponse struct {
	ID              string             `json:"id"`
	State           string             `json:"state"`
	Fields          FormFieldsResponse `json:"fields"`
	EditingRecordID string             `json:"editingRecordId,omitempty"`
	NewClientHint   string             `json:"newClientHint,omitempty"`
}

func ToFormResponse(s *domain.FormSnapshot) FormResponse {
	files := s.Fields.SelectedFiles
	if files == nil {
		files = []string{}
	}
	res := FormResponse{
		ID:    s.ID,
		State: string(s.State),
		Fields: FormFieldsResponse{
			Title:         s.Fields.Title,
			Description:   s.Fields.Description,
			Status:        string(s.Fields.Status),
			Creator:       ToCreatorResponse(s.Fields.Creator),
			ClientName:    s.Fields.ClientName,
			SelectedFiles: files,
		},
		NewClientHint: s.NewClientHint,
	}
	if s.Editing != nil {
		res.EditingRecordID = s.Editing.ID
	}
	return res
}
