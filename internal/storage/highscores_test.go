package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/vovakirdan/pixel-snake/internal/config"
)

func TestScoreBoardMissingFile(t *testing.T) {
	b, err := OpenScoreBoard(filepath.Join(t.TempDir(), "scores.txt"), nil)
	if err != nil {
		t.Fatalf("OpenScoreBoard() failed: %v", err)
	}
	for _, d := range config.Difficulties() {
		if got := b.Best(d); got != 0 {
			t.Errorf("Best(%s) = %d, expected 0", d, got)
		}
	}
}

func TestScoreBoardRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.txt")
	b, err := OpenScoreBoard(path, nil)
	if err != nil {
		t.Fatalf("OpenScoreBoard() failed: %v", err)
	}

	if !b.RecordIfHigher(config.DifficultyMedium, 500) {
		t.Fatal("RecordIfHigher(medium, 500) = false on an empty board")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("score file not written: %v", err)
	}
	if string(data) != "easy:0\nmedium:500\nhard:0\n" {
		t.Errorf("file contents = %q", data)
	}

	reloaded, err := OpenScoreBoard(path, nil)
	if err != nil {
		t.Fatalf("OpenScoreBoard() failed: %v", err)
	}
	expected := map[config.Difficulty]int{
		config.DifficultyEasy:   0,
		config.DifficultyMedium: 500,
		config.DifficultyHard:   0,
	}
	for d, want := range expected {
		if got := reloaded.Best(d); got != want {
			t.Errorf("Best(%s) = %d, expected %d", d, got, want)
		}
	}

	if !reloaded.RecordIfHigher(config.DifficultyMedium, 600) {
		t.Error("RecordIfHigher(medium, 600) should set a new high")
	}
	if reloaded.RecordIfHigher(config.DifficultyMedium, 400) {
		t.Error("RecordIfHigher(medium, 400) should not replace 600")
	}
	if reloaded.RecordIfHigher(config.DifficultyMedium, 600) {
		t.Error("RecordIfHigher() must require a strict improvement")
	}
	if got := reloaded.Best(config.DifficultyMedium); got != 600 {
		t.Errorf("Best(medium) = %d, expected 600", got)
	}
}

func TestScoreBoardSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	content := strings.Join([]string{
		"easy:120",
		"garbage",
		"nightmare:9000",
		"medium:abc",
		"hard:-5",
		"",
		"  HARD : 75 ",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := OpenScoreBoard(path, nil)
	if err != nil {
		t.Fatalf("OpenScoreBoard() failed: %v", err)
	}
	all := b.All()
	if all[config.DifficultyEasy] != 120 || all[config.DifficultyMedium] != 0 || all[config.DifficultyHard] != 75 {
		t.Errorf("All() = %v, expected easy 120, medium 0, hard 75", all)
	}
	if len(all) != 3 {
		t.Errorf("All() has %d entries, expected 3", len(all))
	}
}

func TestScoreBoardWriteFailureKeepsMemory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := OpenScoreBoard(filepath.Join(dir, "scores.txt"), nil)
	if err != nil {
		t.Fatalf("OpenScoreBoard() failed: %v", err)
	}
	// The parent "directory" is a regular file, so every save fails.
	b.path = filepath.Join(blocker, "scores.txt")

	if !b.RecordIfHigher(config.DifficultyEasy, 10) {
		t.Error("RecordIfHigher() should report the new high even if saving fails")
	}
	if b.Best(config.DifficultyEasy) != 10 {
		t.Errorf("Best(easy) = %d, expected 10", b.Best(config.DifficultyEasy))
	}
	if err := b.Save(); err == nil {
		t.Error("Save() should fail when the directory cannot be created")
	}
}

func TestScoreBoardUnreadableFileYieldsZeros(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	// A directory where the file should be cannot be read as one.
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	b, err := OpenScoreBoard(path, nil)
	if err != nil {
		t.Fatalf("OpenScoreBoard() failed: %v", err)
	}
	for _, d := range config.Difficulties() {
		if got := b.Best(d); got != 0 {
			t.Errorf("Best(%s) = %d, expected 0", d, got)
		}
	}
	if !b.RecordIfHigher(config.DifficultyMedium, 50) {
		t.Error("RecordIfHigher() should still track scores in memory")
	}
	if got := b.Best(config.DifficultyMedium); got != 50 {
		t.Errorf("Best(medium) = %d, expected 50", got)
	}
}

func TestScoreBoardConcurrent(t *testing.T) {
	b, err := OpenScoreBoard(filepath.Join(t.TempDir(), "scores.txt"), nil)
	if err != nil {
		t.Fatalf("OpenScoreBoard() failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			b.RecordIfHigher(config.DifficultyHard, score)
		}(i * 10)
	}
	wg.Wait()

	if got := b.Best(config.DifficultyHard); got != 500 {
		t.Errorf("Best(hard) = %d, expected 500", got)
	}
}

func TestScoreBoardUnknownDifficultyPanics(t *testing.T) {
	b, err := OpenScoreBoard(filepath.Join(t.TempDir(), "scores.txt"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown difficulty")
		}
	}()
	b.RecordIfHigher(config.Difficulty("insane"), 1)
}
