//go:build !(linux || darwin || freebsd)

package native

import "fmt"

// PlatformOpener returns an Opener that fails every open: the Go
// runtime does not load shared objects on this platform.
func PlatformOpener() Opener {
	return unsupportedOpener{}
}

type unsupportedOpener struct{}

func (unsupportedOpener) Open(path string) (Library, error) {
	return nil, fmt.Errorf("open library %s: native modules are not supported on this platform", path)
}
