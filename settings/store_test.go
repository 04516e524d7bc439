package settings

import (
	"sync"
	"testing"
)

func TestStoreGetOrCreate(t *testing.T) {
	store := NewStore()

	s := store.GetOrCreate(42)
	if s != Defaults() {
		t.Errorf("first GetOrCreate = %+v, want defaults", s)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}

	again := store.GetOrCreate(42)
	if again != s {
		t.Errorf("second GetOrCreate = %+v, want %+v", again, s)
	}
	if store.Len() != 1 {
		t.Errorf("Len() after repeat = %d, want 1", store.Len())
	}
}

func TestStoreSnapshotDoesNotLeak(t *testing.T) {
	store := NewStore()

	s := store.GetOrCreate(7)
	s.Length = 99
	s.LastPassword = "hunter2"

	if got := store.GetOrCreate(7); got != Defaults() {
		t.Errorf("stored settings mutated through a snapshot: %+v", got)
	}
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore()

	store.Update(7, func(s *Settings) {
		s.Length = 24
		s.Symbols = true
	})

	got := store.GetOrCreate(7)
	if got.Length != 24 || !got.Symbols {
		t.Errorf("Update not applied: %+v", got)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestStoreUpdateUnknownUserStartsFromDefaults(t *testing.T) {
	store := NewStore()

	var seen Settings
	store.Update(11, func(s *Settings) {
		seen = *s
	})

	if seen != Defaults() {
		t.Errorf("Update on unknown user saw %+v, want defaults", seen)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestStoreUpdateNilFn(t *testing.T) {
	store := NewStore()

	store.Update(3, nil)

	if store.Len() != 0 {
		t.Errorf("nil Update created an entry, Len() = %d", store.Len())
	}
}

func TestStoreSerializesUpdates(t *testing.T) {
	store := NewStore()
	const workers = 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update(1, func(s *Settings) {
				s.Length++
			})
		}()
	}
	wg.Wait()

	got := store.GetOrCreate(1)
	if want := DefaultLength + workers; got.Length != want {
		t.Errorf("Length after %d concurrent updates = %d, want %d", workers, got.Length, want)
	}
}

func TestStoreTracksDistinctUsers(t *testing.T) {
	store := NewStore()

	for id := int64(1); id <= 5; id++ {
		store.GetOrCreate(id)
	}
	store.Update(3, func(s *Settings) { s.Upper = false })

	if store.Len() != 5 {
		t.Errorf("Len() = %d, want 5", store.Len())
	}
	if store.GetOrCreate(3).Upper {
		t.Error("user 3 update leaked away")
	}
	if !store.GetOrCreate(2).Upper {
		t.Error("user 2 affected by user 3's update")
	}
}
