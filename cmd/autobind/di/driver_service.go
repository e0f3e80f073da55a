package di

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/omarluq/autobind/bind"
	"github.com/omarluq/autobind/catalog"
)

// DriverService wraps the registration driver for DI.
type DriverService struct {
	Driver *bind.Driver
	Policy bind.Policy
}

// NewDriver creates the registration driver over the default catalog,
// applying the configured policy, worker bound, and module subset, with
// command-line overrides taking precedence.
func NewDriver(i do.Injector) (*DriverService, error) {
	cfgSvc := do.MustInvoke[*ConfigService](i)
	cacheSvc := do.MustInvoke[*ScanCacheService](i)

	reg := cfgSvc.Config.Registration

	policyName := reg.Policy
	if override, err := do.InvokeNamed[string](i, PolicyOverrideKey); err == nil {
		policyName = override
	}
	policy, ok := bind.ParsePolicy(policyName)
	if !ok && policyName != "" {
		return nil, fmt.Errorf("unknown registration policy %q", policyName)
	}

	workers := reg.EffectiveWorkers()
	if override, err := do.InvokeNamed[int](i, WorkersOverrideKey); err == nil && override > 0 {
		workers = override
	}

	var cat catalog.Catalog = catalog.Default()
	if len(reg.Modules) > 0 {
		keep := make([]catalog.Module, len(reg.Modules))
		for n, name := range reg.Modules {
			keep[n] = catalog.Module(name)
		}
		cat = catalog.Subset(cat, keep...)
	}

	driver := bind.New(cat, cacheSvc.Cache,
		bind.WithPolicy(policy),
		bind.WithWorkers(workers),
	)

	return &DriverService{Driver: driver, Policy: policy}, nil
}
