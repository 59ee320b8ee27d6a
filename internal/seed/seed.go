// Package seed exports the lead table to a MySQL database. It is used
// by the seed command to mirror the CSV-backed table into a relational
// store for downstream reporting.
package seed

import (
	"context"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // mysql driver
	"github.com/jmoiron/sqlx"

	"github.com/leadstream/leadstream/pkg/errors"
	"github.com/leadstream/leadstream/pkg/leads"
	"github.com/leadstream/leadstream/pkg/logging"
)

const (
	// batchSize caps rows per INSERT to keep statements under the
	// MySQL packet limit.
	batchSize = 500

	defaultTable = "leads"
)

// Seeder mirrors lead tables into MySQL.
type Seeder struct {
	db    *sqlx.DB
	table string
}

// Open connects to MySQL and returns a Seeder against the given table
// name. An empty table name uses "leads".
func Open(dsn, table string) (*Seeder, error) {
	if table == "" {
		table = defaultTable
	}

	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, errors.WrapResource("open", "database", dsn, err)
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Seeder{db: db, table: table}, nil
}

// Close releases the database connection pool.
func (s *Seeder) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the leads table if it does not exist.
func (s *Seeder) EnsureSchema(ctx context.Context) error {
	schema := `CREATE TABLE IF NOT EXISTS ` + s.table + ` (
		lead_id          INT PRIMARY KEY,
		full_name        VARCHAR(255) NOT NULL,
		location         VARCHAR(255) NOT NULL DEFAULT '',
		status           VARCHAR(32)  NOT NULL,
		phone            VARCHAR(64)  NOT NULL DEFAULT '',
		email            VARCHAR(255) NOT NULL DEFAULT '',
		lead_source      VARCHAR(64)  NOT NULL,
		created_date     DATETIME     NULL,
		interest_status  VARCHAR(32)  NOT NULL,
		notes            TEXT,
		engagement_score DOUBLE       NULL,
		owner            VARCHAR(255) NOT NULL
	)`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return errors.WrapResource("create", "table", s.table, err)
	}
	return nil
}

// Seed upserts every lead into the database, keyed by lead_id, in
// batches inside a single transaction. Existing rows are updated in
// place so repeated runs converge on the table state.
func (s *Seeder) Seed(ctx context.Context, table *leads.Table) (int, error) {
	rows := table.List()
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.WrapResource("begin", "transaction", s.table, err)
	}

	total := 0
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		query, args := buildUpsert(s.table, chunk)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			_ = tx.Rollback()
			return 0, errors.WrapResource("upsert", "leads", s.table, err)
		}
		total += len(chunk)

		logging.Debug().
			Int("rows", len(chunk)).
			Int("total", total).
			Msg("Seeded batch")
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.WrapResource("commit", "transaction", s.table, err)
	}
	return total, nil
}

// seedColumns is the insert column order, matching the Lead db tags.
var seedColumns = []string{
	"lead_id", "full_name", "location", "status", "phone", "email",
	"lead_source", "created_date", "interest_status", "notes",
	"engagement_score", "owner",
}

// buildUpsert assembles a multi-row INSERT ... ON DUPLICATE KEY UPDATE
// statement with positional placeholders for one batch of leads.
func buildUpsert(table string, chunk []*leads.Lead) (string, []any) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(seedColumns, ", "))
	sb.WriteString(") VALUES ")

	row := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(seedColumns)), ", ") + ")"
	args := make([]any, 0, len(chunk)*len(seedColumns))

	for i, l := range chunk {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(row)

		var created any
		if l.CreatedDate != nil {
			created = l.CreatedDate.UTC().Format("2006-01-02 15:04:05")
		}
		var score any
		if l.EngagementScore != nil {
			score = *l.EngagementScore
		}

		args = append(args,
			l.ID, l.FullName, l.Location, string(l.Status), l.Phone,
			l.Email, string(l.Source), created, string(l.InterestStatus),
			l.Notes, score, l.Owner,
		)
	}

	sb.WriteString(" ON DUPLICATE KEY UPDATE ")
	updates := make([]string, 0, len(seedColumns)-1)
	for _, col := range seedColumns[1:] {
		updates = append(updates, col+" = VALUES("+col+")")
	}
	sb.WriteString(strings.Join(updates, ", "))

	return sb.String(), args
}
