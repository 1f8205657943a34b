package dto

import (
	"github.com/SscSPs/audit_dashboard/internal/core/domain"
)

// CreatorRequest selects the creator of a record.
// Mode is "existing" (UserID), "new" (Name) or "unset".
type CreatorRequest struct {
	Mode   string `json:"mode" binding:"omitempty,oneof=existing new unset"`
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name,omitempty"`
}

// ToDomain converts the request; a nil request yields nil.
func (r *CreatorRequest) ToDomain() domain.CreatorInput {
	if r == nil {
		return nil
	}
	switch r.Mode {
	case "existing":
		return domain.ExistingCreator{UserID: r.UserID}
	case "new":
		return domain.NewCreator{Name: r.Name}
	default:
		return domain.UnsetCreator{}
	}
}

// CreatorResponse mirrors CreatorRequest.
type CreatorResponse struct {
	Mode   string `json:"mode"`
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name,omitempty"`
}

func ToCreatorResponse(input domain.CreatorInput) CreatorResponse {
	switch c := input.(type) {
	case domain.ExistingCreator:
		return CreatorResponse{Mode: "existing", UserID: c.UserID}
	case domain.NewCreator:
		return CreatorResponse{Mode: "new", Name: c.Name}
	default:
		return CreatorResponse{Mode: "unset"}
	}
}

// CreateAuditRecordRequest defines the data needed to create an audit record in one call.
type CreateAuditRecordRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Status      string          `json:"status" binding:"omitempty,auditstatus"`
	Creator     *CreatorRequest `json:"creator"`
	ClientName  string          `json:"clientName"`
	Attachments []string        `json:"attachments"`
}

// ToFormFields converts the request into form field values.
func (r CreateAuditRecordRequest) ToFormFields() domain.FormFields {
	status, _ := domain.ParseAuditStatus(r.Status)
	return domain.FormFields{
		Title:         r.Title,
		Description:   r.Description,
		Status:        status,
		Creator:       r.Creator.ToDomain(),
		ClientName:    r.ClientName,
		SelectedFiles: r.Attachments,
	}
}

// AuditRecordResponse defines the data returned for an audit record.
type AuditRecordResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Status        string   `json:"status"`
	CreatedBy     string   `json:"createdBy"`
	CreatedByName string   `json:"createdByName,omitempty"`
	ClientID      string   `json:"clientId"`
	ClientName    string   `json:"clientName,omitempty"`
	CreatedDate   string   `json:"createdDate"`
	Attachments   []string `json:"attachments,omitempty"`
}

// ToAuditRecordResponse converts a bare record; display names are left empty.
func ToAuditRecordResponse(r domain.AuditRecord) AuditRecordResponse {
	return AuditRecordResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      string(r.Status),
		CreatedBy:   r.CreatedBy,
		ClientID:    r.ClientID,
		CreatedDate: r.CreatedDate.Format(domain.DateLayout),
		Attachments: r.Attachments,
	}
}

// ToAuditRecordViewResponse converts a resolved view.
func ToAuditRecordViewResponse(v domain.AuditRecordView) AuditRecordResponse {
	res := ToAuditRecordResponse(v.AuditRecord)
	res.CreatedByName = v.CreatedByName
	res.ClientName = v.ClientName
	return res
}

func ToListAuditRecordResponse(records []domain.AuditRecord) []AuditRecordResponse {
	res := make([]AuditRecordResponse, len(records))
	for i, r := range records {
		res[i] = ToAuditRecordResponse(r)
	}
	return res
}

func ToListAuditRecordViewResponse(views []domain.AuditRecordView) []AuditRecordResponse {
	res := make([]AuditRecordResponse, len(views))
	for i, v := range views {
		res[i] = ToAuditRecordViewResponse(v)
	}
	return res
}
