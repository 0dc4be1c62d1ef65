package source

import (
	"fmt"
	"sync"
	"testing"
)

func TestInternerBasic(t *testing.T) {
	interner := NewInterner()

	// NoStringID зарезервирован для пустой строки
	if s, ok := interner.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("Lookup(NoStringID) = %q, %v", s, ok)
	}

	id1 := interner.Intern("hello")
	if id1 == NoStringID {
		t.Error("Intern returned NoStringID for non-empty string")
	}
	if id2 := interner.Intern("hello"); id1 != id2 {
		t.Errorf("same string got different ids: %d != %d", id1, id2)
	}
	if got := interner.MustLookup(id1); got != "hello" {
		t.Errorf("MustLookup = %q", got)
	}
	if _, ok := interner.Lookup(StringID(100)); ok {
		t.Error("Lookup of unknown id must fail")
	}
	if interner.Len() != 2 {
		t.Errorf("Len = %d, want 2", interner.Len())
	}
}

func TestInternerConcurrent(t *testing.T) {
	interner := NewInterner()
	const workers = 16
	const words = 200

	ids := make([][]StringID, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ids[w] = make([]StringID, words)
			for i := range words {
				ids[w][i] = interner.Intern(fmt.Sprintf("word-%d", i))
			}
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		for i := range words {
			if ids[w][i] != ids[0][i] {
				t.Fatalf("worker %d word %d: id %d != %d", w, i, ids[w][i], ids[0][i])
			}
		}
	}
	if interner.Len() != words+1 {
		t.Errorf("Len = %d, want %d", interner.Len(), words+1)
	}
}
