package nlp

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNewCatalogFiltersAndOrders(t *testing.T) {
	catalog := NewCatalog([]Intent{
		{Name: "bas", Priority: 1, Active: true},
		{Name: "inactif", Priority: 99, Active: false},
		{Name: "haut", Priority: 10, Active: true},
	})

	if catalog.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (inactive filtered)", catalog.Len())
	}
	if catalog.Intents()[0].Name != "haut" {
		t.Errorf("first intent = %q, want priority-descending order", catalog.Intents()[0].Name)
	}
	if _, ok := catalog.Lookup("inactif"); ok {
		t.Error("Lookup found an inactive intent")
	}
	if _, ok := catalog.Lookup("haut"); !ok {
		t.Error("Lookup missed an active intent")
	}
}

func TestHandleReloadFailureKeepsSnapshot(t *testing.T) {
	source := &staticSource{intents: []Intent{{Name: "a", Active: true}}}
	handle := NewHandle(source, testLogger())
	if err := handle.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	source.err = errors.New("store down")
	if err := handle.Reload(context.Background()); err == nil {
		t.Fatal("expected reload error")
	}

	if handle.Snapshot().Len() != 1 {
		t.Error("failed reload must keep the previous snapshot")
	}
}

// flippingSource alternates between two complete intent sets so that a
// torn snapshot would be observable as a mixture.
type flippingSource struct {
	n atomic.Int64
}

func (s *flippingSource) FetchActive(context.Context) ([]Intent, error) {
	if s.n.Add(1)%2 == 0 {
		return []Intent{
			{Name: "gen_a_1", Category: "a", Priority: 2, Active: true},
			{Name: "gen_a_2", Category: "a", Priority: 1, Active: true},
		}, nil
	}
	return []Intent{
		{Name: "gen_b_1", Category: "b", Priority: 3, Active: true},
		{Name: "gen_b_2", Category: "b", Priority: 2, Active: true},
		{Name: "gen_b_3", Category: "b", Priority: 1, Active: true},
	}, nil
}

func TestHandleReloadAtomicity(t *testing.T) {
	handle := NewHandle(&flippingSource{}, testLogger())
	if err := handle.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = handle.Reload(context.Background())
		}
		close(stop)
	}()

	for reader := 0; reader < 4; reader++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}

				snapshot := handle.Snapshot()
				intents := snapshot.Intents()
				if len(intents) == 0 {
					t.Error("observed empty snapshot")
					return
				}
				category := intents[0].Category
				wantLen := 3
				if category == "a" {
					wantLen = 2
				}
				if len(intents) != wantLen {
					t.Errorf("observed mixed snapshot: category %q with %d intents", category, len(intents))
					return
				}
				for _, it := range intents {
					if it.Category != category {
						t.Errorf("observed intents from both generations: %q and %q", category, it.Category)
						return
					}
				}
			}
		}()
	}

	wg.Wait()
}
