package services

import (
	"github.com/SscSPs/audit_dashboard/internal/core/ports"
	portsrepo "github.com/SscSPs/audit_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/audit_dashboard/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, extractor ports.DocumentExtractor, opts ...Option) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Audit = NewAuditService(repos, opts...)
	container.Form = NewFormService(repos, opts...)
	container.Intake = NewIntakeService(extractor, repos.AuditRecordRepo, DefaultProgressInterval, opts...)
	container.Directory = NewDirectoryService(repos.ClientRepo, repos.UserRepo, opts...)
	container.Export = NewExportService(container.Audit, opts...)

	return container
}
