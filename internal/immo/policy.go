package immo

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"immo-service/internal/model"
	"immo-service/internal/store"
)

// Policy assigns a storage backend to every entity kind
type Policy map[model.Kind]store.Backend

// DefaultPolicy keeps brokers and customers in the database and everything
// else in memory.
func DefaultPolicy() Policy {
	return Policy{
		model.KindBroker:           store.Persistent,
		model.KindCustomer:         store.Persistent,
		model.KindHouse:            store.Transient,
		model.KindApartment:        store.Transient,
		model.KindRentalContract:   store.Transient,
		model.KindPurchaseContract: store.Transient,
	}
}

// ParsePolicy reads a comma separated list of kind=backend overrides on top
// of DefaultPolicy, e.g. "house=persistent,apartment=persistent".
func ParsePolicy(list string) (Policy, error) {
	policy := DefaultPolicy()
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: malformed storage policy entry %q", store.ErrInvalidArgument, part)
		}
		kind, err := model.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidArgument, err)
		}
		backend, err := store.ParseBackend(value)
		if err != nil {
			return nil, err
		}
		policy[kind] = backend
	}
	return policy, nil
}

// Backend returns the backend for kind, transient if unset
func (p Policy) Backend(kind model.Kind) store.Backend {
	if backend, ok := p[kind]; ok {
		return backend
	}
	return store.Transient
}

// NeedsDatabase reports whether any kind is assigned the persistent backend
func (p Policy) NeedsDatabase() bool {
	return slices.Contains(slices.Collect(maps.Values(p)), store.Persistent)
}

func (p Policy) String() string {
	parts := make([]string, 0, len(model.Kinds()))
	for _, kind := range model.Kinds() {
		parts = append(parts, fmt.Sprintf("%s=%s", kind, p.Backend(kind)))
	}
	return strings.Join(parts, ",")
}
