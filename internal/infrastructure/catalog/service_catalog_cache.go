package catalog

import (
	"context"
	"log"
	"sync"

	"sit_connector/internal/domain/sit"
	"sit_connector/internal/usecase/interfaces"

	"golang.org/x/sync/singleflight"
)

// ServiceCatalogCache is the process-wide, lazily-populated cache of the SIT
// service list.
//
// The catalog is fetched on first use and then treated as valid for the
// lifetime of the process. It is never refreshed on a timer; staleness is an
// accepted tradeoff. The only way it refetches is if a population attempt
// left it empty. Concurrent first-use calls are collapsed into a single
// GetServicesList call via singleflight.

type ServiceCatalogCache struct {
	api interfaces.ISITProviderAPI

	mu       sync.RWMutex
	services []sit.Service

	sf singleflight.Group
}

var _ interfaces.IServiceCatalog = (*ServiceCatalogCache)(nil)

func NewServiceCatalogCache(api interfaces.ISITProviderAPI) *ServiceCatalogCache {
	return &ServiceCatalogCache{api: api}
}

// GetService returns the catalog entry with the given id, populating the
// cache first if it is empty. A missing id yields the zero Service and a nil
// error; the caller decides how hard that failure is.
func (c *ServiceCatalogCache) GetService(ctx context.Context, serviceID int) (sit.Service, error) {
	services, err := c.getServices(ctx)
	if err != nil {
		return sit.Service{}, err
	}

	for _, service := range services {
		if service.ServiceID == serviceID {
			return service, nil
		}
	}
	return sit.Service{}, nil
}

func (c *ServiceCatalogCache) getServices(ctx context.Context) ([]sit.Service, error) {
	c.mu.RLock()
	services := c.services
	c.mu.RUnlock()
	if len(services) > 0 {
		return services, nil
	}

	v, err, _ := c.sf.Do("services", func() (interface{}, error) {
		// Re-check under the flight: a concurrent populate may have won.
		c.mu.RLock()
		cached := c.services
		c.mu.RUnlock()
		if len(cached) > 0 {
			return cached, nil
		}

		log.Printf("[catalog][cache] populating service catalog")
		fetched, err := c.api.GetServicesList(ctx)
		if err != nil {
			log.Printf("[catalog][cache] populate failed err=%v", err)
			return nil, err
		}
		log.Printf("[catalog][cache] populate success services=%d", len(fetched))

		c.mu.Lock()
		c.services = fetched
		c.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]sit.Service), nil
}
