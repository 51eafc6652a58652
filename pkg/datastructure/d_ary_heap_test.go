package datastructure

import (
	"math/rand"
	"sort"
	"testing"
)

func TestMinHeapExtractOrder(t *testing.T) {
	h := NewFourAryHeap[int]()

	rng := rand.New(rand.NewSource(42))
	ranks := make([]float64, 0, 200)
	for i := 0; i < 200; i++ {
		rank := rng.Float64() * 1000
		ranks = append(ranks, rank)
		h.Insert(NewPriorityQueueNode(rank, i))
	}

	sort.Float64s(ranks)

	for i := 0; i < len(ranks); i++ {
		node, err := h.ExtractMin()
		if err != nil {
			t.Fatalf("extract min: %v", err)
		}
		if node.GetRank() != ranks[i] {
			t.Fatalf("extract order broken at %d: got %v, want %v", i, node.GetRank(), ranks[i])
		}
	}

	if !h.IsEmpty() {
		t.Error("heap should be empty after extracting everything")
	}
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := NewFourAryHeap[string]()

	a := NewPriorityQueueNode(10.0, "a")
	b := NewPriorityQueueNode(20.0, "b")
	c := NewPriorityQueueNode(30.0, "c")
	h.Insert(a)
	h.Insert(b)
	h.Insert(c)

	h.DecreaseKey(c, 5.0)

	node, err := h.ExtractMin()
	if err != nil {
		t.Fatalf("extract min: %v", err)
	}
	if node.GetItem() != "c" {
		t.Errorf("expected c after decrease key, got %s", node.GetItem())
	}
}

func TestMinHeapEmpty(t *testing.T) {
	h := NewFourAryHeap[int]()
	if _, err := h.ExtractMin(); err == nil {
		t.Error("expected error extracting from empty heap")
	}
}
