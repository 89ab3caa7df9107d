//go:build linux || darwin || freebsd

package native

import (
	"fmt"
	"plugin"
)

// PlatformOpener returns the Opener backed by the Go runtime's shared
// object loader.
func PlatformOpener() Opener {
	return platformOpener{}
}

type platformOpener struct{}

func (platformOpener) Open(path string) (Library, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open library %s: %w", path, err)
	}
	return &sharedLibrary{p: p}, nil
}

type sharedLibrary struct {
	p *plugin.Plugin
}

func (l *sharedLibrary) Lookup(name string) (any, error) {
	sym, err := l.p.Lookup(name)
	if err != nil {
		return nil, err
	}
	return sym, nil
}

// Close drops the host-side handle. The Go runtime cannot unmap an
// opened shared object, so the mapping itself stays until process
// exit; the host guarantees only that no further symbols are resolved
// through this Library.
func (l *sharedLibrary) Close() error {
	l.p = nil
	return nil
}
