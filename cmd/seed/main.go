// Package main provides data seeding for the Etree admin service:
// built-in roles and the initial super-user account. The command is
// idempotent and safe to re-run.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"etree.io/etree/ent"
	entrole "etree.io/etree/ent/role"
	entuser "etree.io/etree/ent/user"
	"etree.io/etree/internal/config"
	"etree.io/etree/internal/domain"
	"etree.io/etree/internal/infrastructure"
	"etree.io/etree/internal/pkg/logger"
	"etree.io/etree/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	client := db.EntClient

	logger.Info("Starting data seeding...")

	superUserRoleID, err := seedBuiltInRoles(ctx, client)
	if err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}

	if err := seedSuperUser(ctx, client, cfg, superUserRoleID); err != nil {
		return fmt.Errorf("seed super user: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// seedBuiltInRoles ensures the two administrative roles exist and
// returns the Super User role id.
func seedBuiltInRoles(ctx context.Context, client *ent.Client) (int, error) {
	builtIn := []struct {
		name        string
		description string
	}{
		{domain.RoleSuperUser, "Full platform access including role and permission management"},
		{domain.RoleAdmin, "Administrative access to users, roles, and field definitions"},
	}

	superUserID := 0
	for _, r := range builtIn {
		role, err := client.Role.Query().Where(entrole.NameEQ(r.name)).Only(ctx)
		if ent.IsNotFound(err) {
			role, err = client.Role.Create().
				SetName(r.name).
				SetDescription(r.description).
				SetRegistrationAllowed(false).
				Save(ctx)
			if err != nil {
				return 0, fmt.Errorf("create role %s: %w", r.name, err)
			}
			logger.Info("Created built-in role", zap.String("name", r.name), zap.Int("id", role.ID))
		} else if err != nil {
			return 0, fmt.Errorf("query role %s: %w", r.name, err)
		}
		if r.name == domain.RoleSuperUser {
			superUserID = role.ID
		}
	}
	return superUserID, nil
}

// seedSuperUser ensures the initial super-user account exists. The
// password comes from config; when unset a random one is generated and
// logged once.
func seedSuperUser(ctx context.Context, client *ent.Client, cfg *config.Config, roleID int) error {
	email := cfg.Seed.SuperUserEmail
	if email == "" {
		return fmt.Errorf("seed.super_user_email is not configured")
	}

	exists, err := client.User.Query().Where(entuser.EmailEQ(email)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("query super user: %w", err)
	}
	if exists {
		logger.Info("Super user already present", zap.String("email", email))
		return nil
	}

	password := cfg.Seed.SuperUserPassword
	generated := false
	if password == "" {
		password, err = service.GenerateRandomPassword(16)
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		generated = true
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate user id: %w", err)
	}

	if _, err := client.User.Create().
		SetID(id.String()).
		SetFullName("Super User").
		SetEmail(email).
		SetPasswordHash(hash).
		SetRoleID(roleID).
		Save(ctx); err != nil {
		return fmt.Errorf("create super user: %w", err)
	}

	if generated {
		// One-time bootstrap credential; change it after first login.
		logger.Info("Created super user with generated password",
			zap.String("email", email),
			zap.String("password", password),
		)
	} else {
		logger.Info("Created super user", zap.String("email", email))
	}
	return nil
}
