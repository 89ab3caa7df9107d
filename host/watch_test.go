package host

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestWatch_LoadsDroppedModule(t *testing.T) {
	symbols := abiSymbols(nil)
	symbols["NewServerPlugin"] = func() any { return &struct{}{} }
	symbols["DeleteServerPlugin"] = func(any) {}

	dir := t.TempDir()
	r := NewRegistry(Config{
		Dir:    dir,
		Logger: zap.NewNop(),
		Opener: &fakeOpener{libs: map[string]*fakeLibrary{"late.so": {symbols: symbols}}},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watchDone := make(chan error, 1)
	go func() { watchDone <- r.Watch(ctx) }()

	// Give the watcher a moment to register before dropping the file.
	time.Sleep(100 * time.Millisecond)
	touch(t, dir, "late.so")

	deadline := time.Now().Add(3 * time.Second)
	for len(r.Records()) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("watcher did not load the dropped module")
		}
		time.Sleep(10 * time.Millisecond)
	}

	records := r.Records()
	if records[0].Kind != KindServer {
		t.Errorf("Kind = %v, want server", records[0].Kind)
	}

	cancel()
	select {
	case err := <-watchDone:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Watch did not stop on context cancel")
	}
}
