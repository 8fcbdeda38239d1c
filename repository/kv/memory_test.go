package kv

import (
	"context"
	"testing"
)

func TestMemory_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	if _, found, err := s.Get(ctx, "identity:0.0.1"); err != nil || found {
		t.Fatalf("Get on empty store: found=%v err=%v; want false nil", found, err)
	}

	if err := s.Set(ctx, "identity:0.0.1", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, found, err := s.Get(ctx, "identity:0.0.1")
	if err != nil || !found || string(v) != `{"a":1}` {
		t.Fatalf("Get: %q found=%v err=%v", v, found, err)
	}

	// overwrite replaces the whole blob
	if err := s.Set(ctx, "identity:0.0.1", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, _, _ = s.Get(ctx, "identity:0.0.1")
	if string(v) != `{"a":2}` {
		t.Fatalf("overwrite got %q", v)
	}

	if err := s.Delete(ctx, "identity:0.0.1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := s.Get(ctx, "identity:0.0.1"); found {
		t.Fatal("key survived delete")
	}
	if err := s.Delete(ctx, "identity:0.0.1"); err != nil {
		t.Fatalf("Delete absent key: %v", err)
	}
}

func TestMemory_ListPrefix(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	seed := map[string]string{
		"rental:0.0.7:RENT-b": "2",
		"rental:0.0.7:RENT-a": "1",
		"rental:0.0.8:RENT-c": "3",
		"ratings:0.0.7":       "[]",
	}
	for k, v := range seed {
		if err := s.Set(ctx, k, []byte(v)); err != nil {
			t.Fatalf("Set %s: %v", k, err)
		}
	}

	got, err := s.List(ctx, "rental:0.0.7:")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List len=%d; want 2", len(got))
	}
	// ordered by key
	if got[0].Key != "rental:0.0.7:RENT-a" || got[1].Key != "rental:0.0.7:RENT-b" {
		t.Fatalf("List order: %s, %s", got[0].Key, got[1].Key)
	}

	all, err := s.List(ctx, "")
	if err != nil || len(all) != 4 {
		t.Fatalf("List all: len=%d err=%v", len(all), err)
	}
}

func TestMemory_ValueIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	buf := []byte(`{"n":1}`)
	_ = s.Set(ctx, "k", buf)
	buf[5] = '9'

	v, _, _ := s.Get(ctx, "k")
	if string(v) != `{"n":1}` {
		t.Fatalf("stored value aliased caller buffer: %q", v)
	}
	v[0] = 'X'
	v2, _, _ := s.Get(ctx, "k")
	if string(v2) != `{"n":1}` {
		t.Fatalf("returned value aliased store: %q", v2)
	}
}
