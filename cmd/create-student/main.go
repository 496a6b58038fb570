package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/examsys/examination-backend/internal/config"
	"github.com/examsys/examination-backend/internal/database"
	"github.com/examsys/examination-backend/internal/logger"
	"github.com/examsys/examination-backend/internal/model"
	"github.com/examsys/examination-backend/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	studentRepo := repository.NewStudentRepository(pool)

	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Student Account ===")

	firstName := prompt(reader, "First name")
	if firstName == "" {
		fmt.Println("Error: first name is required")
		return
	}

	lastName := prompt(reader, "Last name")
	if lastName == "" {
		fmt.Println("Error: last name is required")
		return
	}

	email := prompt(reader, "Email")
	if email == "" {
		fmt.Println("Error: email is required")
		return
	}

	trackID := prompt(reader, "Track ID (optional)")

	fmt.Print("Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("Error reading password")
		return
	}
	password := string(bytePassword)
	if len(password) < 4 {
		fmt.Println("Error: password must be at least 4 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	student := &model.Student{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		TrackID:      trackID,
	}

	if err := studentRepo.Create(ctx, student); err != nil {
		log.Fatal().Err(err).Msg("Failed to create student")
	}

	fmt.Printf("\nSuccess! Student '%s %s' (%s) created with ID: %d\n",
		student.FirstName, student.LastName, student.Email, student.ID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Printf("%s: ", label)
	value, _ := reader.ReadString('\n')
	return strings.TrimSpace(value)
}
