package host

import (
	"go.uber.org/zap"

	"github.com/plugforge/plughost/hostapi"
	"github.com/plugforge/plughost/native"
)

// handshake runs after a library is opened: it validates the ABI
// version against the host's constant, injects the host API exactly
// once, and resolves the module's plugin kind. Any failure rejects the
// whole module; the caller is responsible for closing it.
func (r *Registry) handshake(m *Module) (*PluginRecord, error) {
	sym, err := m.lib.Lookup(native.SymbolABIVersion)
	if err != nil {
		return nil, ErrNotAModule
	}
	versionFn, ok := sym.(func() int32)
	if !ok {
		return nil, ErrNotAModule
	}
	if actual := versionFn(); actual != hostapi.ABIVersion {
		return nil, &AbiMismatchError{Expected: hostapi.ABIVersion, Actual: actual}
	}

	sym, err = m.lib.Lookup(native.SymbolInitAPI)
	if err != nil {
		return nil, &MissingExportError{Symbol: native.SymbolInitAPI}
	}
	initFn, ok := sym.(func(*hostapi.API))
	if !ok {
		return nil, &MissingExportError{Symbol: native.SymbolInitAPI}
	}
	initFn(r.api)

	// The module may now call any API function until it is unloaded.
	return r.resolveKind(m)
}

// kindOutcome is the determinate result of one kind trial. Exactly one
// field is set.
type kindOutcome struct {
	record *PluginRecord
	reason error
}

// resolveKind tries each kind in kindOrder. A rejected kind never
// aborts resolution; only exhausting every kind rejects the module.
func (r *Registry) resolveKind(m *Module) (*PluginRecord, error) {
	for _, spec := range kindOrder {
		out := r.tryKind(m, spec)
		if out.record != nil {
			return out.record, nil
		}
		r.logger.Debug("plugin kind rejected",
			zap.String("path", m.Path),
			zap.Stringer("kind", spec.kind),
			zap.Error(out.reason))
	}
	return nil, ErrAllKindsExhausted
}

func (r *Registry) tryKind(m *Module, spec kindSpec) kindOutcome {
	sym, err := m.lib.Lookup(spec.factory)
	if err != nil {
		return kindOutcome{reason: &MissingExportError{Symbol: spec.factory}}
	}
	factory, ok := sym.(func() any)
	if !ok {
		return kindOutcome{reason: &MissingExportError{Symbol: spec.factory}}
	}

	sym, err = m.lib.Lookup(spec.destructor)
	if err != nil {
		return kindOutcome{reason: &MissingExportError{Symbol: spec.destructor}}
	}
	destructor, ok := sym.(func(any))
	if !ok {
		return kindOutcome{reason: &MissingExportError{Symbol: spec.destructor}}
	}

	instance := factory()
	if instance == nil {
		return kindOutcome{reason: &FactoryNullError{Kind: spec.kind}}
	}

	return kindOutcome{record: &PluginRecord{
		Kind:     spec.kind,
		instance: instance,
		destroy:  destructor,
	}}
}
