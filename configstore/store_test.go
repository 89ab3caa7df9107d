package configstore

import (
	"errors"
	"testing"
)

func TestStore_MissingKeyFailsRegardlessOfType(t *testing.T) {
	s := New()

	if s.Exists("nope") {
		t.Error("Exists on empty store should be false")
	}

	if _, err := Get[bool](s, "nope"); !errors.Is(err, ErrKeyMissing) {
		t.Errorf("Get[bool]: err = %v, want ErrKeyMissing", err)
	}
	if _, err := Get[string](s, "nope"); !errors.Is(err, ErrKeyMissing) {
		t.Errorf("Get[string]: err = %v, want ErrKeyMissing", err)
	}
	if _, err := Get[uint64](s, "nope"); !errors.Is(err, ErrKeyMissing) {
		t.Errorf("Get[uint64]: err = %v, want ErrKeyMissing", err)
	}
}

func TestStore_SetGetRemove(t *testing.T) {
	s := New()
	s.Set("value", uint64(32))

	if !s.Exists("value") {
		t.Fatal("Exists after Set should be true")
	}
	if !Is[uint64](s, "value") {
		t.Error("Is[uint64] should be true")
	}
	if Is[string](s, "value") {
		t.Error("Is[string] should be false")
	}

	got, err := Get[uint64](s, "value")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != 32 {
		t.Errorf("got %d, want 32", got)
	}

	if !s.Remove("value") {
		t.Error("Remove should report the key existed")
	}
	if s.Exists("value") {
		t.Error("Exists after Remove should be false")
	}
	if _, err := Get[uint64](s, "value"); !errors.Is(err, ErrKeyMissing) {
		t.Errorf("Get after Remove: err = %v, want ErrKeyMissing", err)
	}
}

func TestStore_WrongTypeIsDistinctFromMissing(t *testing.T) {
	s := New()
	s.Set("value", uint64(32))

	_, err := Get[string](s, "value")
	var wrongType *WrongTypeError
	if !errors.As(err, &wrongType) {
		t.Fatalf("err = %v, want WrongTypeError", err)
	}
	if errors.Is(err, ErrKeyMissing) {
		t.Error("wrong-type failure must not match ErrKeyMissing")
	}
	if wrongType.Key != "value" {
		t.Errorf("Key = %q", wrongType.Key)
	}
}

func TestStore_SetReplacesAcrossTypes(t *testing.T) {
	s := New()
	s.Set("k", "text")
	s.Set("k", true)

	if !Is[bool](s, "k") {
		t.Error("value should now be a bool")
	}
	if _, err := Get[string](s, "k"); err == nil {
		t.Error("Get[string] after replacement should fail")
	}
}

func TestStore_KeysSorted(t *testing.T) {
	s := New()
	s.Set("b", 1)
	s.Set("a", 2)
	s.Set("c", 3)

	keys := s.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Keys = %v", keys)
	}
}

func TestStore_Bind(t *testing.T) {
	type settings struct {
		Name    string `json:"name"`
		Retries int    `json:"retries" default:"3"`
	}

	s := New()
	s.Set("name", "primary")

	var cfg settings
	if err := s.Bind(&cfg); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if cfg.Name != "primary" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Retries != 3 {
		t.Errorf("Retries = %d, want default 3", cfg.Retries)
	}
}
