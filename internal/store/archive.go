package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"careermatch-engine/internal/domain"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// Archive persists refreshed jobs and resume analyses to sqlite. It is a
// best-effort sink: the in-memory snapshot is the source of truth for
// serving, the archive exists for history and the analytics store.
type Archive struct {
	pool *sql.DB
}

func OpenArchive(path string) (*Archive, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(1) // sqlite wants a single writer
	pool.SetConnMaxLifetime(5 * time.Minute)

	a := &Archive{pool: pool}
	if err := a.migrate(); err != nil {
		pool.Close()
		return nil, err
	}
	return a, nil
}

func (a *Archive) Close() error { return a.pool.Close() }

func (a *Archive) migrate() error {
	_, err := a.pool.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  job_id TEXT NOT NULL,
  source TEXT NOT NULL,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  location TEXT NOT NULL,
  description TEXT NOT NULL,
  tags TEXT NOT NULL DEFAULT '[]',
  salary TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL DEFAULT '',
  posted_date TEXT NOT NULL DEFAULT '',
  first_seen TEXT NOT NULL,
  PRIMARY KEY (job_id, source)
);
CREATE INDEX IF NOT EXISTS idx_jobs_first_seen ON jobs(first_seen DESC);

CREATE TABLE IF NOT EXISTS analyses (
  id TEXT PRIMARY KEY,
  profile TEXT NOT NULL,
  created_at TEXT NOT NULL
);
`)
	return err
}

// SaveJobs appends a refreshed batch; previously seen (job_id, source)
// pairs are left untouched.
func (a *Archive) SaveJobs(ctx context.Context, jobs []domain.NormalizedJob) error {
	now := time.Now().UTC().Format(time.RFC3339)
	for _, j := range jobs {
		tagsB, _ := json.Marshal(j.Tags)
		_, err := a.pool.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs(job_id, source, title, company, location, description, tags, salary, url, posted_date, first_seen)
VALUES(?,?,?,?,?,?,?,?,?,?,?);`,
			j.JobID, j.Source, j.Title, j.Company, j.Location, j.Description,
			string(tagsB), j.Salary, j.URL, j.PostedDate, now,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// SaveAnalysis stores a resume profile under the given id.
func (a *Archive) SaveAnalysis(ctx context.Context, id string, profile domain.ResumeProfile) error {
	b, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	_, err = a.pool.ExecContext(ctx, `
INSERT OR REPLACE INTO analyses(id, profile, created_at)
VALUES(?,?,?);`,
		id, string(b), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// LoadAnalysis fetches a stored resume profile by id.
func (a *Archive) LoadAnalysis(ctx context.Context, id string) (domain.ResumeProfile, error) {
	var raw string
	err := a.pool.QueryRowContext(ctx,
		`SELECT profile FROM analyses WHERE id = ?;`, id,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ResumeProfile{}, ErrAnalysisNotFound
	}
	if err != nil {
		return domain.ResumeProfile{}, err
	}

	var profile domain.ResumeProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return domain.ResumeProfile{}, err
	}
	return profile, nil
}
