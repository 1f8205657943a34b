package domain

// FormState is the state of the audit record form.
type FormState string

const (
	FormClosed          FormState = "closed"
	FormCreatingNew     FormState = "creating"
	FormEditingExisting FormState = "editing"
)

// FormFields are the editable fields of the audit record form.
type FormFields struct {
	Title         string
	Description   string
	Status        AuditStatus
	Creator       CreatorInput
	ClientName    string
	SelectedFiles []string // filenames, taken verbatim as attachments
}

// DefaultFormFields returns the fields of a freshly opened creation form.
func DefaultFormFields() FormFields {
	return FormFields{Status: StatusNew, Creator: UnsetCreator{}}
}

// FormPatch carries field edits. Nil members leave the field untouched.
type FormPatch struct {
	Title         *string
	Description   *string
	Status        *AuditStatus
	Creator       CreatorInput
	ClientName    *string
	SelectedFiles []string
}

// FormSnapshot is the observable state of a form session.
type FormSnapshot struct {
	ID     string
	State  FormState
	Fields FormFields
	// Editing is the record being edited, set only in FormEditingExisting.
	Editing *AuditRecord
	// NewClientHint is non-empty when submitting would create a client.
	NewClientHint string
}
