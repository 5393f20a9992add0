// Package results keeps a ledger of finished games in a local sqlite file.
// Only completed results are stored; in-progress game state is never
// persisted.
package results

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const tableName = "countup_games"

type Service struct {
	db *sql.DB
	m  sync.Mutex
}

// GameResult is one finished game: the strategy kind seated at each position,
// the final scores, and the winning seats.
type GameResult struct {
	ID        string
	CreatedAt string
	Seats     [4]string
	Scores    [4]int
	Winners   []int
}

func Open(path string) (*Service, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results db: %w", err)
	}

	sqlStmt := `
	create table if not exists ` + tableName + ` (
		id text not null primary key,
		created_at text,
		seat0 text,
		seat1 text,
		seat2 text,
		seat3 text,
		score0 integer,
		score1 integer,
		score2 integer,
		score3 integer,
		winners text
	);
	`
	if _, err := db.Exec(sqlStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create results table: %w", err)
	}
	return &Service{db: db}, nil
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) Record(r GameResult) error {
	s.m.Lock()
	defer s.m.Unlock()
	createdAt := r.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.db.Exec("INSERT INTO "+tableName+
		" (id, created_at, seat0, seat1, seat2, seat3, score0, score1, score2, score3, winners) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		r.ID,
		createdAt,
		r.Seats[0],
		r.Seats[1],
		r.Seats[2],
		r.Seats[3],
		r.Scores[0],
		r.Scores[1],
		r.Scores[2],
		r.Scores[3],
		joinWinners(r.Winners))
	return err
}

func (s *Service) Games() ([]GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT id, created_at, seat0, seat1, seat2, seat3, score0, score1, score2, score3, winners FROM " + tableName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var r GameResult
		var winners string
		if err := rows.Scan(
			&r.ID,
			&r.CreatedAt,
			&r.Seats[0],
			&r.Seats[1],
			&r.Seats[2],
			&r.Seats[3],
			&r.Scores[0],
			&r.Scores[1],
			&r.Scores[2],
			&r.Scores[3],
			&winners); err != nil {
			return nil, err
		}
		r.Winners, err = splitWinners(winners)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func joinWinners(winners []int) string {
	ws := make([]string, 0, len(winners))
	for _, w := range winners {
		ws = append(ws, strconv.Itoa(w))
	}
	return strings.Join(ws, ",")
}

func splitWinners(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var winners []int
	for _, w := range strings.Split(s, ",") {
		n, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("bad winners column %q: %w", s, err)
		}
		winners = append(winners, n)
	}
	return winners, nil
}
