package game

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const (
	journalTable      = "session_results"
	// fixed width so that text ordering matches time ordering
	journalTimeFormat = "2006-01-02 15:04:05.000000000"
)

// SessionJournal is an append-only log of finished sessions.
type SessionJournal struct {
	db *sql.DB
}

type SessionRecord struct {
	ID          string
	PlayerName  string
	Height      int
	Width       int
	HolePercent float64
	InputMode   string
	State       string
	Outcome     string
	Moves       int
	CreatedAt   time.Time
}

// NewSessionRecord snapshots a session that has just ended.
func NewSessionRecord(playerName string, cfg GridConfig, session *Session) SessionRecord {
	return SessionRecord{
		PlayerName:  playerName,
		Height:      cfg.Height,
		Width:       cfg.Width,
		HolePercent: cfg.HolePercent,
		InputMode:   session.KeyMap.Mode.String(),
		State:       session.State().String(),
		Outcome:     session.LastOutcome().String(),
		Moves:       session.Moves(),
	}
}

func NewSessionJournal(dbPath string) (*SessionJournal, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database %s: %w", dbPath, err)
	}

	journal := &SessionJournal{db: db}
	if err := journal.createTable(); err != nil {
		db.Close()
		return nil, err
	}

	return journal, nil
}

func (j *SessionJournal) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + journalTable + ` (
		id TEXT PRIMARY KEY,
		player_name TEXT NOT NULL,
		height INTEGER NOT NULL,
		width INTEGER NOT NULL,
		hole_percent REAL NOT NULL,
		input_mode TEXT NOT NULL,
		state TEXT NOT NULL,
		outcome TEXT NOT NULL,
		moves INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);`

	if _, err := j.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	log.Debug("Session journal table ensured.")
	return nil
}

// Record stores a finished session and returns it with ID and CreatedAt filled in.
func (j *SessionJournal) Record(rec SessionRecord) (SessionRecord, error) {
	const insertSQL = `
	INSERT INTO ` + journalTable + ` (id, player_name, height, width, hole_percent, input_mode, state, outcome, moves, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := j.db.Exec(insertSQL, rec.ID, rec.PlayerName, rec.Height, rec.Width, rec.HolePercent,
		rec.InputMode, rec.State, rec.Outcome, rec.Moves, rec.CreatedAt.UTC().Format(journalTimeFormat))
	if err != nil {
		return rec, fmt.Errorf("failed to record session for %s: %w", rec.PlayerName, err)
	}

	return rec, nil
}

// Recent returns a page of sessions, newest first.
func (j *SessionJournal) Recent(limit, offset int) ([]SessionRecord, error) {
	const selectSQL = `
	SELECT id, player_name, height, width, hole_percent, input_mode, state, outcome, moves, created_at
	FROM ` + journalTable + `
	ORDER BY created_at DESC, rowid DESC
	LIMIT ? OFFSET ?;`

	rows, err := j.db.Query(selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var createdAt string
		err := rows.Scan(&rec.ID, &rec.PlayerName, &rec.Height, &rec.Width, &rec.HolePercent,
			&rec.InputMode, &rec.State, &rec.Outcome, &rec.Moves, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		parsed, err := time.ParseInLocation(journalTimeFormat, createdAt, time.UTC)
		if err == nil {
			rec.CreatedAt = parsed
		} else {
			log.Warn("Could not parse session timestamp", "id", rec.ID, "raw", createdAt, "error", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}

	return records, nil
}

func (j *SessionJournal) Count() (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + journalTable + `;`
	var count int
	if err := j.db.QueryRow(countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get session count: %w", err)
	}
	return count, nil
}

func (j *SessionJournal) Close() error {
	return j.db.Close()
}
