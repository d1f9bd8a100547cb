package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScoreboardSaveAndLoad(t *testing.T) {
	sb := NewScoreboard(filepath.Join(t.TempDir(), "nested"))

	if sb.Best() != nil {
		t.Fatalf("expected empty board")
	}
	if err := sb.Save(HighScoreRecord{Name: "Bob", Score: 120}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := sb.Save(HighScoreRecord{Name: "alice", Score: 300}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Same name, lower score: keeps the better one.
	if err := sb.Save(HighScoreRecord{Name: " bob ", Score: 50}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := sb.Save(HighScoreRecord{Name: "BOB", Score: 200}); err != nil {
		t.Fatalf("save: %v", err)
	}

	top := sb.Top(10)
	if len(top) != 2 {
		t.Fatalf("expected 2 records, got %+v", top)
	}
	if top[0].Name != "alice" || top[0].Score != 300 || top[1].Score != 200 {
		t.Fatalf("unexpected order: %+v", top)
	}
	if best := sb.Best(); best == nil || best.Score != 300 {
		t.Fatalf("unexpected best: %+v", best)
	}
	if got := sb.Top(1); len(got) != 1 {
		t.Fatalf("Top(1) returned %d records", len(got))
	}

	if err := sb.Save(HighScoreRecord{Name: "x", Score: -1}); err == nil {
		t.Fatalf("expected error when saving negative score")
	}
	if _, err := os.Stat(sb.path() + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temporary file left behind")
	}
}

func TestScoreboardLegacyFormats(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		body  string
		score int
	}{
		{"single object", highScoreJSONFN, `{"name":"Ann","score":77}`, 77},
		{"legacy text", highScoreTxtFN, "12345\n", 12345},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, tt.file), []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			best := NewScoreboard(dir).Best()
			if best == nil || best.Score != tt.score {
				t.Fatalf("expected %d, got %+v", tt.score, best)
			}
		})
	}
}

func TestScoreboardIgnoresGarbage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, highScoreJSONFN), []byte("not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := NewScoreboard(dir).Load(); got != nil {
		t.Fatalf("expected empty board, got %+v", got)
	}
}

func TestDefaultScoreboardHonoursEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PACMAN_CONFIG_DIR", dir)
	sb, err := DefaultScoreboard()
	if err != nil {
		t.Fatalf("DefaultScoreboard: %v", err)
	}
	if sb.path() != filepath.Join(dir, highScoreJSONFN) {
		t.Fatalf("unexpected path %s", sb.path())
	}
}
