package domain

// Fallback labels shown when a record reference does not resolve.
const (
	UnassignedLabel = "Unassigned"
	NoClientLabel   = "No client"
)

// AuditRecordView is an audit record with its creator and client resolved to
// display names.
type AuditRecordView struct {
	AuditRecord
	CreatedByName string
	ClientName    string
}

// ResolveView builds the display view of r. Unknown or empty references fall
// back to UnassignedLabel and NoClientLabel.
func ResolveView(r AuditRecord, users map[string]User, clients map[string]Client) AuditRecordView {
	view := AuditRecordView{AuditRecord: r, CreatedByName: UnassignedLabel, ClientName: NoClientLabel}
	if u, ok := users[r.CreatedBy]; ok && r.CreatedBy != "" {
		view.CreatedByName = u.Name
	}
	if c, ok := clients[r.ClientID]; ok && r.ClientID != "" {
		view.ClientName = c.Name
	}
	return view
}
