// Command seed loads demo accounts and employees into the database.
package main

import (
	"bytes"
	"context"
	_ "embed"
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dayflow-hr/dayflow-backend-go/internal/config"
	"github.com/dayflow-hr/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/dayflow-hr/dayflow-backend-go/internal/service/auth"
	employeeService "github.com/dayflow-hr/dayflow-backend-go/internal/service/employee"
	"github.com/dayflow-hr/dayflow-backend-go/migrations"
)

//go:embed employees.yaml
var defaultFixture []byte

func main() {
	file := flag.String("file", "", "path to an employees fixture (defaults to the embedded one)")
	migrate := flag.Bool("migrate", false, "run migrations before seeding")
	flag.Parse()

	if err := run(*file, *migrate); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(file string, migrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var src io.Reader = bytes.NewReader(defaultFixture)
	if file != "" {
		fh, err := os.Open(file)
		if err != nil {
			return err
		}
		defer fh.Close()
		src = fh
	}
	f, err := loadFixture(src)
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return err
	}
	defer db.Close()

	if migrate || cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, migrations.FS, "up"); err != nil {
			return err
		}
	}

	jwtService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return err
	}

	tx := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	result, err := seed(ctx,
		serviceAuth.NewAuthService(tx, userRepo, employeeRepo, jwtService, time.Now),
		employeeService.NewEmployeeService(tx, employeeRepo, userRepo, time.Now),
		func(ctx context.Context, userID string) error { return userRepo.SetRole(ctx, userID, user.RoleHR) },
		f,
	)
	if err != nil {
		return err
	}

	slog.Info("seed complete", "created", result.Created, "skipped", result.Skipped)
	return nil
}
