package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/config"
	"github.com/vovakirdan/pixel-snake/internal/games/snake"
)

// ScoreBoard keeps the best score per difficulty in a small text file of
// "difficulty:score" lines. It is safe for concurrent use.
type ScoreBoard struct {
	mu     sync.Mutex
	path   string
	best   map[config.Difficulty]int
	logger *log.Logger
}

var _ snake.HighScores = (*ScoreBoard)(nil)

// OpenScoreBoard loads the score file at path. A missing or unreadable file
// yields zeros. A nil logger discards output.
func OpenScoreBoard(path string, logger *log.Logger) (*ScoreBoard, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	b := &ScoreBoard{
		path:   path,
		best:   zeroScores(),
		logger: logger,
	}
	b.Load()
	return b, nil
}

func zeroScores() map[config.Difficulty]int {
	m := make(map[config.Difficulty]int, 3)
	for _, d := range config.Difficulties() {
		m[d] = 0
	}
	return m
}

// Load re-reads the score file, replacing the in-memory values.
// Malformed lines and unknown difficulties are skipped. A file that cannot be
// read is logged and treated as holding no scores.
func (b *ScoreBoard) Load() {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			b.logger.Warn("cannot read high scores", "path", b.path, "error", err)
		}
		b.best = zeroScores()
		return
	}

	b.best = parseScores(data, b.logger)
}

func parseScores(data []byte, logger *log.Logger) map[config.Difficulty]int {
	best := zeroScores()
	sc := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		name, value, ok := strings.Cut(text, ":")
		if !ok {
			logger.Debug("skipping score line", "line", line, "text", text)
			continue
		}
		d, err := config.ParseDifficulty(name)
		if err != nil {
			logger.Debug("skipping score line", "line", line, "error", err)
			continue
		}
		score, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || score < 0 {
			logger.Debug("skipping score line", "line", line, "text", text)
			continue
		}
		best[d] = score
	}
	return best
}

// Save writes all scores to disk atomically.
func (b *ScoreBoard) Save() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saveLocked()
}

func (b *ScoreBoard) saveLocked() error {
	var buf bytes.Buffer
	for _, d := range config.Difficulties() {
		fmt.Fprintf(&buf, "%s:%d\n", d, b.best[d])
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".scores-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", b.path, err)
	}
	return nil
}

// Best returns the best score for d, or 0.
func (b *ScoreBoard) Best(d config.Difficulty) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.best[d]
}

// All returns a copy of every difficulty's best score.
func (b *ScoreBoard) All() map[config.Difficulty]int {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[config.Difficulty]int, len(b.best))
	for d, s := range b.best {
		out[d] = s
	}
	return out
}

// RecordIfHigher updates and persists the best score for d when score is
// strictly higher. A failed write is logged; the new value is kept in memory.
func (b *ScoreBoard) RecordIfHigher(d config.Difficulty, score int) bool {
	if !d.Valid() {
		panic(fmt.Sprintf("storage: unknown difficulty %q", string(d)))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if score <= b.best[d] {
		return false
	}
	b.best[d] = score
	if err := b.saveLocked(); err != nil {
		b.logger.Warn("cannot persist high score", "difficulty", d, "score", score, "error", err)
	}
	return true
}

// Path returns the score file location.
func (b *ScoreBoard) Path() string {
	return b.path
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
