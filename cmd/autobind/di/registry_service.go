package di

import (
	"github.com/samber/do/v2"

	"github.com/omarluq/autobind/registry"
)

// RegistryService wraps the binding registry for DI.
type RegistryService struct {
	Registry registry.Registry
}

// NewRegistry creates the do-backed registry over the application's own
// injector, so discovered bindings become resolvable named services in the
// same container that hosts autobind itself.
func NewRegistry(i do.Injector) (*RegistryService, error) {
	return &RegistryService{Registry: registry.NewDo(i)}, nil
}
