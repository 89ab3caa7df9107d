package host

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAModule marks a file that opened fine but exports no ABI
	// version symbol. It simply isn't a plugin and is skipped, not
	// treated as a failure.
	ErrNotAModule = errors.New("no ABI version export, not a plugin module")

	// ErrAllKindsExhausted marks a handshaken module whose exports
	// match no known plugin kind.
	ErrAllKindsExhausted = errors.New("no plugin kind recognized")

	// ErrModuleClosing is returned by Module.BeginCall once an unload
	// has started for the module.
	ErrModuleClosing = errors.New("module is unloading")

	// ErrUnknownModule is returned by Unload for a module the registry
	// does not own.
	ErrUnknownModule = errors.New("module is not loaded in this registry")
)

// AbiMismatchError reports a module compiled against a different ABI
// version than the host's.
type AbiMismatchError struct {
	Expected int32
	Actual   int32
}

func (e *AbiMismatchError) Error() string {
	return fmt.Sprintf("ABI version mismatch: host has %d, module has %d", e.Expected, e.Actual)
}

// MissingExportError reports a required export that could not be
// resolved, or that resolved to the wrong signature.
type MissingExportError struct {
	Symbol string
}

func (e *MissingExportError) Error() string {
	return fmt.Sprintf("missing export %q", e.Symbol)
}

// FactoryNullError reports a kind whose factory resolved but returned a
// nil instance. It rejects only that kind; resolution moves on.
type FactoryNullError struct {
	Kind Kind
}

func (e *FactoryNullError) Error() string {
	return fmt.Sprintf("factory for %s kind returned nil", e.Kind)
}
