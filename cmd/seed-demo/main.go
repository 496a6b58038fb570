package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/examsys/examination-backend/internal/config"
	"github.com/examsys/examination-backend/internal/database"
	"github.com/examsys/examination-backend/internal/logger"
)

// Seeds a demo course with one exam whose window opened an hour ago and
// closes in an hour, ten questions, and a handful of assigned students
// (password "student123").
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	fmt.Println("=== Seeding demo examination data ===")

	var courseID int
	if err := pool.QueryRow(ctx,
		`INSERT INTO courses (name) VALUES ('Introduction to Databases') RETURNING id`,
	).Scan(&courseID); err != nil {
		log.Fatal().Err(err).Msg("Failed to create course")
	}

	now := time.Now()
	var examID int
	if err := pool.QueryRow(ctx,
		`INSERT INTO exams (course_id, total_grade, start_time, end_time)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		courseID, 100.0, now.Add(-time.Hour), now.Add(time.Hour),
	).Scan(&examID); err != nil {
		log.Fatal().Err(err).Msg("Failed to create exam")
	}
	fmt.Printf("Created exam %d (window %s to %s)\n", examID,
		now.Add(-time.Hour).Format(time.Kitchen), now.Add(time.Hour).Format(time.Kitchen))

	type seedQuestion struct {
		qtype   string
		body    string
		weight  float64
		correct string
		choices map[string]string
	}

	questions := []seedQuestion{
		{"MCQ", "Which SQL clause filters rows?", 10, "B",
			map[string]string{"A": "ORDER BY", "B": "WHERE", "C": "GROUP BY", "D": "HAVING"}},
		{"MCQ", "Which constraint guarantees row uniqueness?", 10, "C",
			map[string]string{"A": "CHECK", "B": "NOT NULL", "C": "PRIMARY KEY", "D": "DEFAULT"}},
		{"TRUE_FALSE", "A foreign key may reference a non-unique column.", 10, "F", nil},
		{"MCQ", "Which isolation level allows dirty reads?", 10, "A",
			map[string]string{"A": "READ UNCOMMITTED", "B": "READ COMMITTED", "C": "REPEATABLE READ", "D": "SERIALIZABLE"}},
		{"TRUE_FALSE", "An index always speeds up INSERT statements.", 10, "F", nil},
		{"MCQ", "Which join keeps unmatched left rows?", 10, "B",
			map[string]string{"A": "INNER JOIN", "B": "LEFT JOIN", "C": "CROSS JOIN", "D": "RIGHT JOIN"}},
		{"TRUE_FALSE", "NULL equals NULL in standard SQL comparisons.", 10, "F", nil},
		{"MCQ", "Which statement removes all rows but keeps the table?", 10, "D",
			map[string]string{"A": "DROP TABLE", "B": "DELETE CASCADE", "C": "ALTER TABLE", "D": "TRUNCATE"}},
		{"TRUE_FALSE", "A transaction either commits fully or not at all.", 10, "T", nil},
		{"MCQ", "Which aggregate ignores NULL values?", 10, "A",
			map[string]string{"A": "COUNT(column)", "B": "COUNT(*)", "C": "ROW_NUMBER()", "D": "RANK()"}},
	}

	labels := []string{"A", "B", "C", "D"}
	for i, q := range questions {
		var questionID int
		if err := pool.QueryRow(ctx,
			`INSERT INTO questions (exam_id, question_type, body, weight, position, correct_answer)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			examID, q.qtype, q.body, q.weight, i+1, q.correct,
		).Scan(&questionID); err != nil {
			log.Fatal().Err(err).Int("position", i+1).Msg("Failed to create question")
		}
		for _, label := range labels {
			body, ok := q.choices[label]
			if !ok {
				continue
			}
			if _, err := pool.Exec(ctx,
				`INSERT INTO choices (question_id, label, body) VALUES ($1, $2, $3)`,
				questionID, label, body,
			); err != nil {
				log.Fatal().Err(err).Msg("Failed to create choice")
			}
		}
	}
	fmt.Printf("Created %d questions\n", len(questions))

	hash, _ := bcrypt.GenerateFromPassword([]byte("student123"), cfg.BcryptCost)

	students := []struct {
		first, last, email string
	}{
		{"Amira", "Hassan", "amira.hassan@example.com"},
		{"Omar", "Khalil", "omar.khalil@example.com"},
		{"Laila", "Mansour", "laila.mansour@example.com"},
		{"Yousef", "Nasser", "yousef.nasser@example.com"},
		{"Nour", "Saleh", "nour.saleh@example.com"},
	}

	created := 0
	for _, s := range students {
		var studentID int
		err := pool.QueryRow(ctx,
			`INSERT INTO students (first_name, last_name, email, password_hash, track_id)
			 VALUES ($1, $2, $3, $4, 'TRK-1')
			 ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
			 RETURNING id`,
			s.first, s.last, s.email, string(hash),
		).Scan(&studentID)
		if err != nil {
			fmt.Printf("Error creating student %s: %v\n", s.email, err)
			continue
		}
		if _, err := pool.Exec(ctx,
			`INSERT INTO exam_assignments (student_id, exam_id)
			 VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			studentID, examID,
		); err != nil {
			fmt.Printf("Error assigning student %s: %v\n", s.email, err)
			continue
		}
		created++
	}

	fmt.Printf("\nSeed completed! %d/%d students assigned to exam %d.\n", created, len(students), examID)
}
