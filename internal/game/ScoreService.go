package game

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const scoresTableName = "snake_scores"

// Score is one finished game as persisted in the scores database.
type Score struct {
	ID         int
	PlayerName string
	Score      int
	Length     int
	Ticks      int
	CreatedAt  time.Time
}

// ScoreService persists finished games to a sqlite database and serves
// the leaderboard.
type ScoreService struct {
	db *sql.DB
}

func NewScoreService(dbPath string) (*ScoreService, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening scores database %s: %w", dbPath, err)
	}

	service := &ScoreService{db: db}
	if err := service.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return service, nil
}

func (serviceImpl *ScoreService) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + scoresTableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		length INTEGER NOT NULL,
		ticks INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := serviceImpl.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	return nil
}

func (serviceImpl *ScoreService) SaveScore(playerName string, score, length, ticks int) error {
	const insertSQL = `
	INSERT INTO ` + scoresTableName + ` (player_name, score, length, ticks)
	VALUES (?, ?, ?, ?);`

	if _, err := serviceImpl.db.Exec(insertSQL, playerName, score, length, ticks); err != nil {
		return fmt.Errorf("failed to insert score for %s: %w", playerName, err)
	}
	return nil
}

// GetHighScores retrieves a page of scores, best first. Ties on score
// break toward the longer snake.
func (serviceImpl *ScoreService) GetHighScores(limit, offset int) ([]Score, error) {
	const selectSQL = `
	SELECT id, player_name, score, length, ticks, created_at
	FROM ` + scoresTableName + `
	ORDER BY score DESC, length DESC
	LIMIT ? OFFSET ?;`

	rows, err := serviceImpl.db.Query(selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %w", err)
	}
	defer rows.Close()

	var scores []Score
	for rows.Next() {
		var score Score
		var createdAt string
		err := rows.Scan(&score.ID, &score.PlayerName, &score.Score, &score.Length, &score.Ticks, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		parsedCreatedAt, err := time.Parse(time.RFC3339, createdAt)
		if err == nil {
			score.CreatedAt = parsedCreatedAt
		} else {
			log.Debug("unparseable created_at", "id", score.ID, "raw", createdAt, "error", err)
		}
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return scores, nil
}

func (serviceImpl *ScoreService) GetTotalScoreCount() (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + scoresTableName + `;`
	var count int
	if err := serviceImpl.db.QueryRow(countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get total score count: %w", err)
	}
	return count, nil
}

func (serviceImpl *ScoreService) Close() error {
	return serviceImpl.db.Close()
}
