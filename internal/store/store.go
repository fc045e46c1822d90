package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chinmaypg001-sys/TechWave/internal/model"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		education_level TEXT NOT NULL,
		sub_level TEXT NOT NULL DEFAULT '',
		board TEXT NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS auth_sessions (
		id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		expires_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS study_sessions (
		id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL,
		topic TEXT NOT NULL,
		technique TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		quiz TEXT NOT NULL DEFAULT '',
		score INTEGER NOT NULL DEFAULT 0,
		completed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS responses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		sequence INTEGER NOT NULL,
		kind TEXT NOT NULL,
		submitted TEXT NOT NULL DEFAULT '',
		answer TEXT NOT NULL DEFAULT '',
		is_correct BOOLEAN NOT NULL DEFAULT 0,
		confidence REAL NOT NULL DEFAULT 0,
		similarity REAL NOT NULL DEFAULT 0,
		overlap REAL NOT NULL DEFAULT 0,
		time_taken REAL NOT NULL DEFAULT 0,
		speed TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		FOREIGN KEY (session_id) REFERENCES study_sessions(id)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// CreateSession stores a new study session. The quiz is serialized as a
// JSON column.
func (s *Store) CreateSession(sess model.StudySession) error {
	quizJSON, err := json.Marshal(sess.Quiz)
	if err != nil {
		return fmt.Errorf("marshal quiz: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO study_sessions (id, user_id, topic, technique, content, quiz, score, completed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.UserID, sess.Topic, sess.Technique, sess.Content, string(quizJSON),
		sess.Score, sess.Completed, time.Now(),
	)
	return err
}

// GetSession returns a session with its responses loaded, or nil if the
// session does not exist.
func (s *Store) GetSession(id string) (*model.StudySession, error) {
	var sess model.StudySession
	var quizJSON string
	err := s.db.QueryRow(
		`SELECT id, user_id, topic, technique, content, quiz, score, completed, created_at
		 FROM study_sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &sess.UserID, &sess.Topic, &sess.Technique, &sess.Content, &quizJSON,
		&sess.Score, &sess.Completed, &sess.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if quizJSON != "" {
		if err := json.Unmarshal([]byte(quizJSON), &sess.Quiz); err != nil {
			return nil, fmt.Errorf("unmarshal quiz for session %s: %w", id, err)
		}
	}
	sess.Responses, err = s.GetResponses(id)
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// ListSessionsByUser returns a user's sessions, newest first, with
// responses loaded.
func (s *Store) ListSessionsByUser(userID int64) ([]model.StudySession, error) {
	rows, err := s.db.Query(
		`SELECT id FROM study_sessions WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var sessions []model.StudySession
	for _, id := range ids {
		sess, err := s.GetSession(id)
		if err != nil {
			return nil, err
		}
		if sess != nil {
			sessions = append(sessions, *sess)
		}
	}
	return sessions, nil
}

// AddResponse records one graded answer and bumps the session score when
// the answer is correct.
func (s *Store) AddResponse(r model.Response) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO responses (session_id, sequence, kind, submitted, answer, is_correct, confidence, similarity, overlap, time_taken, speed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Sequence, r.Kind, r.Submitted, r.Answer, r.IsCorrect,
		r.Confidence, r.Similarity, r.Overlap, r.TimeTaken, r.Speed, time.Now(),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if r.IsCorrect {
		if _, err := tx.Exec(`UPDATE study_sessions SET score = score + 1 WHERE id = ?`, r.SessionID); err != nil {
			return 0, err
		}
	}

	return id, tx.Commit()
}

// CompleteSession replaces a session's responses with the final graded
// set, records the score, and marks the session completed. Replacing
// keeps per-answer submissions and a final full-quiz submission from
// double counting.
func (s *Store) CompleteSession(sessionID string, responses []model.Response, score int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM responses WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	now := time.Now()
	for _, r := range responses {
		_, err := tx.Exec(
			`INSERT INTO responses (session_id, sequence, kind, submitted, answer, is_correct, confidence, similarity, overlap, time_taken, speed, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sessionID, r.Sequence, r.Kind, r.Submitted, r.Answer, r.IsCorrect,
			r.Confidence, r.Similarity, r.Overlap, r.TimeTaken, r.Speed, now,
		)
		if err != nil {
			return err
		}
	}
	if _, err := tx.Exec(
		`UPDATE study_sessions SET score = ?, completed = 1 WHERE id = ?`, score, sessionID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// GetResponses returns all responses for a session in submission order.
func (s *Store) GetResponses(sessionID string) ([]model.Response, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, sequence, kind, submitted, answer, is_correct, confidence, similarity, overlap, time_taken, speed, created_at
		 FROM responses WHERE session_id = ? ORDER BY id`, sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []model.Response
	for rows.Next() {
		var r model.Response
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Sequence, &r.Kind, &r.Submitted, &r.Answer,
			&r.IsCorrect, &r.Confidence, &r.Similarity, &r.Overlap, &r.TimeTaken, &r.Speed, &r.CreatedAt); err != nil {
			return nil, err
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

// SessionCount returns the number of study sessions in the database.
func (s *Store) SessionCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM study_sessions`).Scan(&count)
	return count, err
}
