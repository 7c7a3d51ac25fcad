package datatype

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/meridiandb/meridian/pkg/errors"
	"github.com/meridiandb/meridian/pkg/logger"
	"github.com/meridiandb/meridian/pkg/metrics"
)

// Creator builds a fresh descriptor for one type family
type Creator func() DataType

// Registry maps type names to descriptor creators. Names are
// case-sensitive; aliases resolve to a registered name.
type Registry struct {
	name     string
	creators map[string]Creator
	aliases  map[string]string
	mu       sync.RWMutex
	logger   *zap.Logger
}

// Global registry instance with the built-in types
var globalRegistry = newBuiltinRegistry()

// NewRegistry creates an empty registry; the name labels its metrics
func NewRegistry(name string) *Registry {
	return &Registry{
		name:     name,
		creators: make(map[string]Creator),
		aliases:  make(map[string]string),
		logger:   logger.Get().With(zap.String("component", "datatype_registry")),
	}
}

func newBuiltinRegistry() *Registry {
	r := NewRegistry("default")
	for name, creator := range map[string]Creator{
		"String":  func() DataType { return NewStringType() },
		"Int64":   func() DataType { return NewInt64Type() },
		"Float64": func() DataType { return NewFloat64Type() },
		"Bool":    func() DataType { return NewBoolType() },
		"IPv4":    NewIPv4Type,
	} {
		if err := r.Register(name, creator); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a type creator under its canonical name
func (r *Registry) Register(name string, creator Creator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.creators[name]; exists {
		return errors.Newf(errors.ErrorTypeConflict,
			"data type %s already registered", name).WithDetail("type_name", name)
	}

	r.creators[name] = creator
	metrics.TypesRegistered.WithLabelValues(r.name).Set(float64(len(r.creators)))
	r.logger.Info("data type registered", zap.String("name", name))
	return nil
}

// RegisterAlias makes alias resolve to an already registered name
func (r *Registry) RegisterAlias(alias, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.creators[name]; !exists {
		return errors.Newf(errors.ErrorTypeNotFound,
			"cannot alias %s to unknown data type %s", alias, name)
	}
	if _, exists := r.creators[alias]; exists {
		return errors.Newf(errors.ErrorTypeConflict,
			"data type %s already registered", alias)
	}
	if _, exists := r.aliases[alias]; exists {
		return errors.Newf(errors.ErrorTypeConflict,
			"alias %s already registered", alias)
	}

	r.aliases[alias] = name
	r.logger.Info("data type alias registered",
		zap.String("alias", alias), zap.String("name", name))
	return nil
}

// Get builds a descriptor for the given type name or alias
func (r *Registry) Get(name string) (DataType, error) {
	r.mu.RLock()
	creator, exists := r.creators[name]
	if !exists {
		if canonical, ok := r.aliases[name]; ok {
			creator, exists = r.creators[canonical]
		}
	}
	r.mu.RUnlock()

	if !exists {
		return nil, errors.Newf(errors.ErrorTypeNotFound,
			"unknown data type %s", name)
	}
	return creator(), nil
}

// Names returns all canonical type names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.creators))
	for name := range r.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a type creator to the global registry
func Register(name string, creator Creator) error {
	return globalRegistry.Register(name, creator)
}

// RegisterAlias adds an alias to the global registry
func RegisterAlias(alias, name string) error {
	return globalRegistry.RegisterAlias(alias, name)
}

// Get builds a descriptor from the global registry
func Get(name string) (DataType, error) {
	return globalRegistry.Get(name)
}

// Names lists the global registry's canonical type names
func Names() []string {
	return globalRegistry.Names()
}
