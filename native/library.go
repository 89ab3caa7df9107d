// Package native abstracts the platform shared-object loader so the
// host can open module files and resolve their exports by name, and so
// tests can substitute in-memory symbol tables for real libraries.
package native

// Exported symbol names fixed by the plugin ABI. Renaming any of them,
// or changing the signature behind one, requires bumping
// hostapi.ABIVersion.
const (
	// SymbolABIVersion resolves to func() int32.
	SymbolABIVersion = "PluginABIVersion"

	// SymbolInitAPI resolves to func(*hostapi.API).
	SymbolInitAPI = "PluginInitAPI"
)

// Library is one opened native library. Lookup resolves an export by
// name; the caller asserts the concrete function type.
type Library interface {
	Lookup(name string) (any, error)
	Close() error
}

// Opener opens a module file from disk.
type Opener interface {
	Open(path string) (Library, error)
}
