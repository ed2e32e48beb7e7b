package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/envutil"
	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
	"github.com/assemblee-ouverte/assemblee-backend/internal/types"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := envutil.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := envutil.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := envutil.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := envutil.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := envutil.GetEnv("POSTGRES_NAME", "assemblee", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return &PostgresService{db: gormDB, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.Acteur{},
		&types.Organe{},
		&types.Mandat{},
		&types.Collaborateur{},
		&types.Suppleant{},
		&types.Document{},
		&types.DocumentActeur{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		table  string
		name   string
		ddl    string
	}{
		{"mandat", "fk_mandat_acteur_uid",
			`FOREIGN KEY ("acteur_uid") REFERENCES "acteur"("uid") ON DELETE CASCADE`},
		{"mandat", "fk_mandat_organe_uid",
			`FOREIGN KEY ("organe_uid") REFERENCES "organe"("uid") ON DELETE SET NULL`},
		{"collaborateur", "fk_collaborateur_mandat_id",
			`FOREIGN KEY ("mandat_id") REFERENCES "mandat"("id") ON DELETE CASCADE`},
		{"suppleant", "fk_suppleant_mandat_id",
			`FOREIGN KEY ("mandat_id") REFERENCES "mandat"("id") ON DELETE CASCADE`},
		{"document_acteur", "fk_document_acteur_document_uid",
			`FOREIGN KEY ("document_uid") REFERENCES "document"("uid") ON DELETE CASCADE`},
		{"document_acteur", "fk_document_acteur_acteur_uid",
			`FOREIGN KEY ("acteur_uid") REFERENCES "acteur"("uid") ON DELETE SET NULL`},
	}
	for _, c := range constraints {
		drop := fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, c.table, c.name)
		if err := s.db.Exec(drop).Error; err != nil {
			return fmt.Errorf("drop constraint %s: %w", c.name, err)
		}
		add := fmt.Sprintf(`ALTER TABLE %q ADD CONSTRAINT %q %s`, c.table, c.name, c.ddl)
		if err := s.db.Exec(add).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
