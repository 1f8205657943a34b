package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/audit_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/audit_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/audit_dashboard/internal/middleware"
)

func demoDate(raw string) time.Time {
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		panic(fmt.Sprintf("invalid demo date %q: %v", raw, err))
	}
	return t
}

var demoUsers = []domain.User{
	{ID: "user-1", Name: "Alice Johnson", Email: "alice@example.com"},
	{ID: "user-2", Name: "Bob Williams", Email: "bob@example.com"},
	{ID: "user-3", Name: "Charlie Brown", Email: "charlie@example.com"},
	{ID: "user-4", Name: "Diana Prince", Email: "diana@example.com"},
}

var demoClients = []domain.Client{
	{ID: "proj-1", Name: "AM&PM", Description: domain.ClientDescriptionFor("AM&PM")},
	{ID: "proj-2", Name: "Waters on the Bay", Description: domain.ClientDescriptionFor("Waters on the Bay")},
	{ID: "proj-3", Name: "ISI", Description: domain.ClientDescriptionFor("ISI")},
}

// demoRecords is in display order, most recent first.
var demoRecords = []domain.AuditRecord{
	{ID: "task-1", Title: "Design Homepage Mockup", Description: "Create a high-fidelity mockup in Figma.", Status: domain.StatusCompleted, CreatedBy: "user-1", ClientID: "proj-1", CreatedDate: demoDate("2023-02-01")},
	{ID: "task-2", Title: "Develop Login Page", Description: "Implement frontend and backend for user authentication.", Status: domain.StatusInProgress, CreatedBy: "user-2", ClientID: "proj-1", CreatedDate: demoDate("2023-02-15")},
	{ID: "task-3", Title: "Setup Push Notifications", Description: "Configure APNS and FCM for the mobile app.", Status: domain.StatusInProgress, CreatedBy: "user-3", ClientID: "proj-2", CreatedDate: demoDate("2023-04-10")},
	{ID: "task-4", Title: "Research Payment Gateway", Description: "Evaluate Stripe vs. Braintree.", Status: domain.StatusNew, CreatedBy: "user-1", ClientID: "proj-2", CreatedDate: demoDate("2023-05-01")},
	{ID: "task-5", Title: "Implement OAuth Endpoint", Description: "Create the /oauth/token endpoint.", Status: domain.StatusCompleted, CreatedBy: "user-4", ClientID: "proj-3", CreatedDate: demoDate("2023-06-05")},
	{ID: "task-6", Title: "Write API Documentation", Description: "Use Swagger/OpenAPI for documentation.", Status: domain.StatusNew, CreatedBy: "user-2", ClientID: "proj-3", CreatedDate: demoDate("2023-06-20")},
}

// SeedDemoData loads the demo users, clients and audit records.
func SeedDemoData(ctx context.Context, repos portsrepo.RepositoryProvider) error {
	for _, u := range demoUsers {
		if err := repos.UserRepo.InsertUser(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	for _, c := range demoClients {
		if err := repos.ClientRepo.InsertClient(ctx, c); err != nil {
			return fmt.Errorf("seed client %s: %w", c.ID, err)
		}
	}
	// Inserts prepend, so walk backwards to keep display order.
	for i := len(demoRecords) - 1; i >= 0; i-- {
		if err := repos.AuditRecordRepo.InsertAuditRecord(ctx, demoRecords[i]); err != nil {
			return fmt.Errorf("seed audit record %s: %w", demoRecords[i].ID, err)
		}
	}
	middleware.GetLoggerFromCtx(ctx).Info("Demo data loaded",
		slog.Int("users", len(demoUsers)),
		slog.Int("clients", len(demoClients)),
		slog.Int("audit_records", len(demoRecords)))
	return nil
}
