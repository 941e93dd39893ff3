// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
	order     *[]string
	name      string
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
	if m.order != nil {
		*m.order = append(*m.order, "run:"+m.name)
	}
}

func (m *mockWorker) Stop() {
	m.stopCount++
	if m.order != nil {
		*m.order = append(*m.order, "stop:"+m.name)
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_StopInReverseOrder(t *testing.T) {
	var order []string

	ws := NewWorkers(
		&mockWorker{name: "a", order: &order},
		&mockWorker{name: "b", order: &order},
	)
	ws.Run(context.Background())
	ws.Stop()

	expected := []string{"run:a", "run:b", "stop:b", "stop:a"}
	if len(order) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, order)
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%s, got %s", i, v, order[i])
		}
	}
}
