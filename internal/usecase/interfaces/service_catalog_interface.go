package interfaces

import (
	"context"

	"sit_connector/internal/domain/sit"
)

//go:generate mockgen -source=service_catalog_interface.go -destination=mocks/mock_service_catalog_interface.go

// IServiceCatalog abstracts the cached SIT service catalog.
//
// GetService returns the zero Service (ServiceID == 0) when the id is not in
// the catalog; the pricing use case turns that into a not-found error.
type IServiceCatalog interface {
	GetService(ctx context.Context, serviceID int) (sit.Service, error)
}
