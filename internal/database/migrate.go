package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ORA-00955 (name already used) is swallowed so the bootstrap is repeatable.
const createMigrationsTable = `BEGIN
	EXECUTE IMMEDIATE 'CREATE TABLE schema_migrations (version VARCHAR2(255) PRIMARY KEY, applied_at TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL)';
EXCEPTION
	WHEN OTHERS THEN
		IF SQLCODE != -955 THEN
			RAISE;
		END IF;
END;`

const (
	selectAppliedVersions = `SELECT version FROM schema_migrations`
	insertAppliedVersion  = `INSERT INTO schema_migrations (version) VALUES (:1)`
	migrationSuffix       = ".up.sql"
)

// RunMigrations applies every *.up.sql file in fsys that is not yet recorded in
// schema_migrations, in file name order. It returns the number of files applied.
func RunMigrations(ctx context.Context, db *sqlx.DB, fsys fs.FS, log *zap.Logger) (int, error) {
	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return 0, fmt.Errorf("could not create schema_migrations: %w", err)
	}

	var versions []string
	if err := db.SelectContext(ctx, &versions, selectAppliedVersions); err != nil {
		return 0, fmt.Errorf("could not read applied migrations: %w", err)
	}
	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}

	files, err := fs.Glob(fsys, "*"+migrationSuffix)
	if err != nil {
		return 0, fmt.Errorf("could not list migrations: %w", err)
	}
	sort.Strings(files)

	count := 0
	for _, file := range files {
		version := strings.TrimSuffix(file, migrationSuffix)
		if applied[version] {
			log.Debug("Migration already applied", zap.String("version", version))
			continue
		}

		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return count, fmt.Errorf("could not read migration file %s: %w", file, err)
		}

		for i, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return count, fmt.Errorf("could not execute migration %s (statement %d): %w", file, i+1, err)
			}
		}
		if _, err := db.ExecContext(ctx, insertAppliedVersion, version); err != nil {
			return count, fmt.Errorf("could not record migration %s: %w", file, err)
		}

		log.Info("Executed migration", zap.String("version", version))
		count++
	}

	return count, nil
}

// SplitStatements breaks a migration file into single statements. Lines
// starting with "--" are dropped and the trailing ";" is stripped, since the
// Oracle drivers execute one statement per call.
func SplitStatements(content string) []string {
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	var stmts []string
	for _, s := range strings.Split(b.String(), ";") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
