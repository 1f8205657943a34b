package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"log/slog"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/audit_dashboard/internal/core/ports/services"
)

const notAvailable = "Not available"

var auditRecordPage = template.Must(template.New("audit_record").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Audit record {{.ID}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #1f2937; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #d1d5db; padding: 0.5rem 0.75rem; text-align: left; vertical-align: top; }
th { background: #f3f4f6; width: 12rem; }
@media print { body { margin: 0; } }
</style>
</head>
<body onload="window.print()">
<h1>{{.Title}}</h1>
<table>
{{- range .Rows}}
<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
{{- end}}
</table>
</body>
</html>
`))

type exportRow struct {
	Label string
	Value string
}

type exportPage struct {
	ID    string
	Title string
	Rows  []exportRow
}

type exportService struct {
	BaseService
	audits portssvc.AuditReaderSvc
}

// NewExportService renders printable pages from the resolved record views.
func NewExportService(audits portssvc.AuditReaderSvc, opts ...Option) portssvc.ExportSvc {
	svc := &exportService{audits: audits}
	svc.apply(opts)
	return svc
}

func (s *exportService) RenderAuditRecord(ctx context.Context, recordID string, w io.Writer) error {
	view, err := s.audits.GetAuditRecord(ctx, recordID)
	if err != nil {
		return err
	}

	// Render fully before writing so a failure never leaves a partial page.
	var buf bytes.Buffer
	if err := auditRecordPage.Execute(&buf, pageFor(*view)); err != nil {
		s.LogError(ctx, err, "Failed to render audit record", slog.String("record_id", recordID))
		return fmt.Errorf("failed to render audit record: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func pageFor(view domain.AuditRecordView) exportPage {
	description := view.Description
	if description == "" {
		description = notAvailable
	}
	return exportPage{
		ID:    view.ID,
		Title: view.Title,
		Rows: []exportRow{
			{Label: "ID", Value: view.ID},
			{Label: "Title", Value: view.Title},
			{Label: "Description", Value: description},
			{Label: "Status", Value: string(view.Status)},
			{Label: "Created by", Value: view.CreatedByName},
			{Label: "Client", Value: view.ClientName},
			{Label: "Created date", Value: view.CreatedDate.Format(domain.DateLayout)},
		},
	}
}
