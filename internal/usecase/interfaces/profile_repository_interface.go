package interfaces

import (
	"context"

	"buildconnect/internal/domain/entities"
)

// ICompanyRepository resolves the company a company admin acts for.
type ICompanyRepository interface {
	GetByID(ctx context.Context, id string) (entities.Company, error)
	GetByAdmin(ctx context.Context, adminUserID string) (entities.Company, error)
}

// IProfessionalRepository resolves an independent professional profile.
type IProfessionalRepository interface {
	GetByID(ctx context.Context, id string) (entities.Professional, error)
	GetByUser(ctx context.Context, userID string) (entities.Professional, error)
}
