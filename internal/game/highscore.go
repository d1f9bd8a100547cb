package game

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	configDirName   = "pacman"
	highScoreTxtFN  = "highscore.txt"  // legacy
	highScoreJSONFN = "highscore.json" // current
)

// HighScoreRecord stores a player's best score.
type HighScoreRecord struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Scoreboard is the leaderboard file in a config directory.
type Scoreboard struct {
	dir string
}

func NewScoreboard(dir string) *Scoreboard {
	return &Scoreboard{dir: dir}
}

// DefaultScoreboard uses PACMAN_CONFIG_DIR if set, otherwise UserConfigDir()/pacman.
func DefaultScoreboard() (*Scoreboard, error) {
	if env := os.Getenv("PACMAN_CONFIG_DIR"); env != "" {
		return NewScoreboard(env), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, errors.Wrap(err, "locate config dir")
	}
	return NewScoreboard(filepath.Join(base, configDirName)), nil
}

func (s *Scoreboard) path() string {
	return filepath.Join(s.dir, highScoreJSONFN)
}

// Best returns the highest record, or nil if the board is empty.
func (s *Scoreboard) Best() *HighScoreRecord {
	top := s.Top(1)
	if len(top) == 0 {
		return nil
	}
	return &top[0]
}

// Top returns at most n records, best first.
func (s *Scoreboard) Top(n int) []HighScoreRecord {
	list := s.Load()
	sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
	if len(list) > n {
		list = list[:n]
	}
	return list
}

// Save upserts rec by name (case-insensitive) keeping the better score, and rewrites the
// board atomically.
func (s *Scoreboard) Save(rec HighScoreRecord) error {
	if rec.Score < 0 {
		return errors.Errorf("score %d must be non-negative", rec.Score)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "create score dir")
	}
	board := s.Load()
	updated := false
	for i := range board {
		if strings.EqualFold(strings.TrimSpace(board[i].Name), strings.TrimSpace(rec.Name)) {
			if rec.Score > board[i].Score {
				board[i].Score = rec.Score
			}
			updated = true
			break
		}
	}
	if !updated {
		board = append(board, rec)
	}
	data, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode scores")
	}
	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "write scores")
	}
	return errors.Wrap(os.Rename(tmp, s.path()), "replace scores")
}

// Load reads every record. Accepts a JSON array, a single JSON object, or the legacy text
// file holding one number. A missing or unreadable board is empty.
func (s *Scoreboard) Load() []HighScoreRecord {
	if data, err := os.ReadFile(s.path()); err == nil {
		var arr []HighScoreRecord
		if err := json.Unmarshal(data, &arr); err == nil {
			return arr
		}
		var obj HighScoreRecord
		if err := json.Unmarshal(data, &obj); err == nil && obj.Score >= 0 {
			return []HighScoreRecord{obj}
		}
		log.WithField("path", s.path()).Warn("ignoring unreadable score file")
	}
	f, err := os.Open(filepath.Join(s.dir, highScoreTxtFN))
	if err != nil {
		return nil
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 0 {
			return []HighScoreRecord{{Score: n}}
		}
	}
	return nil
}
