package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tido/internal/store"
	"tido/internal/task"
)

func tempStore(t *testing.T) *store.FileStore {
	t.Helper()
	return store.NewFileStore(filepath.Join(t.TempDir(), "tasks.json"))
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	st := tempStore(t)

	tasks, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected empty list, got %d tasks", len(tasks))
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	lists := map[string][]task.Task{
		"empty": {},
		"one":   {task.NewWithID("a", "Buy milk")},
		"many": {
			task.NewWithID("a", "héllo wörld 🚀"),
			task.NewWithID("b", `quotes " and \ backslashes`),
			task.NewWithID("c", "日本語のタスク"),
			task.NewWithID("d", "trailing spaces kept   "),
		},
	}

	for name, tasks := range lists {
		t.Run(name, func(t *testing.T) {
			st := tempStore(t)
			ctx := context.Background()

			if err := st.Save(ctx, tasks); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			got, err := st.Load(ctx)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(got) != len(tasks) {
				t.Fatalf("expected %d tasks, got %d", len(tasks), len(got))
			}
			for i := range tasks {
				if got[i].ID != tasks[i].ID || got[i].Description != tasks[i].Description {
					t.Errorf("task %d mismatch: want %+v, got %+v", i, tasks[i], got[i])
				}
			}
		})
	}
}

func TestFileStore_CompletedFlagRoundTrips(t *testing.T) {
	st := tempStore(t)
	ctx := context.Background()

	done := task.NewWithID("a", "finished")
	done.Completed = true

	if err := st.Save(ctx, []task.Task{done, task.NewWithID("b", "open")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !got[0].Completed || got[1].Completed {
		t.Errorf("completed flags not preserved: %+v", got)
	}
}

func TestFileStore_CorruptData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	st := store.NewFileStore(path)
	_, err := st.Load(context.Background())
	if !errors.Is(err, store.ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestFileStore_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.json")
	st := store.NewFileStore(path)

	if err := st.Save(context.Background(), []task.Task{task.NewWithID("a", "x")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestFileStore_SaveNilListWritesEmptyArray(t *testing.T) {
	st := tempStore(t)
	ctx := context.Background()

	if err := st.Save(ctx, nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %+v", got)
	}
}
