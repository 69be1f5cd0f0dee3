package memory

import (
	"context"
	"testing"
)

func TestBlobStore(t *testing.T) {
	db := New()
	ctx := context.Background()

	// Nothing stored yet
	got, err := db.GetBlobs(ctx, "habits", "stats")
	if err != nil {
		t.Fatalf("GetBlobs: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}

	in := map[string][]byte{"habits": []byte(`[]`), "stats": []byte(`{"xp":1}`)}
	if err := db.PutBlobs(ctx, in); err != nil {
		t.Fatalf("PutBlobs: %v", err)
	}

	// Caller buffers are copied
	in["stats"][0] = 'X'

	got, err = db.GetBlobs(ctx, "habits", "stats", "completions")
	if err != nil {
		t.Fatalf("GetBlobs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 blobs, got %d", len(got))
	}
	if string(got["stats"]) != `{"xp":1}` {
		t.Errorf("unexpected stats blob %q", got["stats"])
	}
	if _, ok := got["completions"]; ok {
		t.Error("expected completions to be absent")
	}

	// Overwrite
	if err := db.PutBlobs(ctx, map[string][]byte{"habits": []byte(`[{"id":"h1"}]`)}); err != nil {
		t.Fatalf("PutBlobs: %v", err)
	}
	got, _ = db.GetBlobs(ctx, "habits")
	if string(got["habits"]) != `[{"id":"h1"}]` {
		t.Errorf("unexpected habits blob %q", got["habits"])
	}
}
