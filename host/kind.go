package host

// Kind is the plugin category a module provides, determined by which
// factory/destructor export pair it exposes.
type Kind int

const (
	KindServer Kind = iota
	KindCore
	KindController
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindServer:
		return "server"
	case KindCore:
		return "core"
	case KindController:
		return "controller"
	default:
		return "unknown"
	}
}

// kindSpec binds a kind to its factory and destructor export names.
// The factory resolves to func() any, the destructor to func(any).
type kindSpec struct {
	kind       Kind
	factory    string
	destructor string
}

// kindOrder is the fixed trial order during kind resolution. The first
// kind whose factory returns a non-nil instance wins; no further kinds
// are attempted for that module.
var kindOrder = []kindSpec{
	{kind: KindServer, factory: "NewServerPlugin", destructor: "DeleteServerPlugin"},
	{kind: KindCore, factory: "NewCorePlugin", destructor: "DeleteCorePlugin"},
	{kind: KindController, factory: "NewControllerPlugin", destructor: "DeleteControllerPlugin"},
}
