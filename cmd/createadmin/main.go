package main

import (
	"context"
	"errors"
	"flag"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/auth"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/env"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/repo"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/store/mongo"
	"go.uber.org/zap"
)

// Seeds or resets the admin account used by the management UI.
func main() {
	var (
		email     = flag.String("email", "", "admin email")
		password  = flag.String("password", "", "admin password")
		firstName = flag.String("first-name", "", "first name")
		lastName  = flag.String("last-name", "", "last name")
		force     = flag.Bool("force", false, "reset the password if the user already exists")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	if *email == "" || *password == "" {
		logger.Fatal("email and password are required")
	}

	storage, err := mongo.New(mongo.Config{
		URI:      env.GetString("MONGO_URI", "mongodb://localhost:27017"),
		Database: env.GetString("MONGO_DATABASE", "poolsandpool"),
		Timeout:  time.Second * 10,
	})
	if err != nil {
		logger.Fatalw("failed to connect to MongoDB", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	defer func() {
		if err := storage.Close(context.Background()); err != nil {
			logger.Errorw("error closing MongoDB", "error", err)
		}
	}()

	if err := storage.CreateIndexes(ctx); err != nil {
		logger.Warnw("failed to create indexes", "error", err)
	}

	userRepo := mongo.NewUserRepository(storage.Database())
	normalizedEmail := strings.ToLower(strings.TrimSpace(*email))

	hash, err := auth.HashPassword(*password)
	if err != nil {
		logger.Fatalw("failed to hash password", "error", err)
	}

	existing, err := userRepo.GetByEmail(ctx, normalizedEmail)
	switch {
	case err == nil:
		if !*force {
			logger.Fatalw("user already exists, pass -force to reset the password", "email", normalizedEmail)
		}

		existing.PasswordHash = hash
		existing.Role = domain.RoleAdmin
		if *firstName != "" {
			existing.FirstName = *firstName
		}
		if *lastName != "" {
			existing.LastName = *lastName
		}

		if err := userRepo.Update(ctx, existing); err != nil {
			logger.Fatalw("failed to update user", "error", err)
		}

		logger.Infow("admin password reset", "email", normalizedEmail)

	case errors.Is(err, repo.ErrNotFound):
		user := &domain.User{
			Email:        normalizedEmail,
			FirstName:    *firstName,
			LastName:     *lastName,
			Role:         domain.RoleAdmin,
			PasswordHash: hash,
		}

		if err := userRepo.Create(ctx, user); err != nil {
			logger.Fatalw("failed to create user", "error", err)
		}

		logger.Infow("admin user created", "email", normalizedEmail, "user_id", user.ID.Hex())

	default:
		logger.Fatalw("failed to look up user", "error", err)
	}
}
