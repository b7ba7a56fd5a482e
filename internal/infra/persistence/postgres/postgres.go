package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"biolink/config"
	"biolink/internal/domain/lifecycle"
	"biolink/internal/errors"
	"biolink/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Database != nil && params.Config.Database.AutoMigrate {
				if err := migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("PostgreSQL schema migrated")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// tableConstraint is a constraint GORM tags cannot express.
// Repositories translate violations of these into domain errors.
type tableConstraint struct {
	table      string
	name       string
	definition string
}

var schemaConstraints = []tableConstraint{
	{
		table:      "links",
		name:       "chk_links_type",
		definition: "CHECK (type IN ('general', 'social', 'product', 'embed'))",
	},
	{
		table:      "links",
		name:       "chk_links_price",
		definition: "CHECK (price IS NULL OR price >= 0)",
	},
	{
		table:      "links",
		name:       "chk_links_position",
		definition: "CHECK (position >= 0)",
	},
	{
		// Clicks of a deleted link go with it; a late click event for it fails the insert
		table:      "link_clicks",
		name:       "fk_link_clicks_link",
		definition: "FOREIGN KEY (link_id) REFERENCES links (id) ON DELETE CASCADE",
	},
}

// migrate creates the tables from the GORM models, then adds the missing constraints.
func migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate PostgreSQL schema")
	}

	for _, c := range schemaConstraints {
		var existing int64
		if err := db.WithContext(ctx).
			Raw("SELECT COUNT(*) FROM pg_constraint WHERE conname = ?", c.name).
			Scan(&existing).Error; err != nil {
			return errors.Wrapf(err, "failed to look up constraint %s", c.name)
		}
		if existing > 0 {
			continue
		}

		if err := db.WithContext(ctx).Exec(addConstraintSQL(c)).Error; err != nil {
			return errors.Wrapf(err, "failed to add constraint %s", c.name)
		}
	}

	return nil
}

func addConstraintSQL(c tableConstraint) string {
	return fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", c.table, c.name, c.definition)
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("wait_count_delta", waitDelta),
					slog.Duration("wait_duration_delta", waitDurationDelta),
					slog.Duration("avg_wait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("max_open_conns", cur.MaxOpenConnections),
					slog.Int("open_conns", cur.OpenConnections),
					slog.Int("in_use_conns", cur.InUse),
					slog.Int("idle_conns", cur.Idle),
					slog.Int64("wait_count_total", cur.WaitCount),
					slog.Duration("wait_duration_total", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
