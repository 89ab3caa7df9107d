package host

import (
	"sync"

	"github.com/google/uuid"

	"github.com/plugforge/plughost/native"
)

// PluginRecord is one instantiated plugin of a specific kind. It is
// logically owned by its Module and must never outlive it.
type PluginRecord struct {
	Kind Kind

	instance any
	destroy  func(any)
}

// Instance returns the opaque handle the module's factory produced.
func (r *PluginRecord) Instance() any { return r.instance }

// Module is one opened native library, exclusively owned by the
// Registry. Records are appended lazily as kinds resolve; the slice
// never holds placeholder entries.
type Module struct {
	ID   uuid.UUID
	Path string

	lib     native.Library
	records []*PluginRecord

	callMu  sync.Mutex
	closing bool
	calls   sync.WaitGroup
}

// Records returns a snapshot of the module's registered plugins.
func (m *Module) Records() []*PluginRecord {
	return append([]*PluginRecord{}, m.records...)
}

// BeginCall gates a host-initiated call into one of this module's
// plugins. The returned func must be called when the call finishes.
// Once an unload has started, BeginCall fails with ErrModuleClosing so
// destructors never race an in-flight call.
func (m *Module) BeginCall() (func(), error) {
	m.callMu.Lock()
	defer m.callMu.Unlock()

	if m.closing {
		return nil, ErrModuleClosing
	}
	m.calls.Add(1)
	return m.calls.Done, nil
}

// quiesce refuses new calls and waits for the in-flight count to drain
// to zero.
func (m *Module) quiesce() {
	m.callMu.Lock()
	m.closing = true
	m.callMu.Unlock()

	m.calls.Wait()
}
