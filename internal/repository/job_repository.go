package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"job-scout/internal/database"
)

var ErrJobNotFound = errors.New("job not found")

type JobRow struct {
	ID          int64
	Title       string
	Company     string
	Location    string
	Experience  string
	Skills      string
	Salary      string
	Description string
	JobType     string
	Education   string
	URL         string
	PostedDate  time.Time
	ScrapedAt   time.Time
}

type JobUpsert struct {
	Title       string
	Company     string
	Location    string
	Experience  string
	Skills      string
	Salary      string
	Description string
	JobType     string
	Education   string
	URL         string
	PostedDate  time.Time
}

type JobRepository interface {
	ListAllJobs(ctx context.Context) ([]JobRow, error)
	GetJobByID(ctx context.Context, id int64) (JobRow, error)
	UpsertJobs(ctx context.Context, jobs []JobUpsert) (int, error)
	CountJobs(ctx context.Context) (int64, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(location, ''),
	COALESCE(experience, ''), COALESCE(skills, ''), COALESCE(salary, ''),
	COALESCE(description, ''), COALESCE(job_type, ''), COALESCE(education, ''),
	COALESCE(url, ''), posted_date, scraped_at`

func (r *PostgresJobRepository) ListAllJobs(ctx context.Context) ([]JobRow, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobRow, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) GetJobByID(ctx context.Context, id int64) (JobRow, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		return JobRow{}, ErrJobNotFound
	}
	return j, nil
}

// UpsertJobs inserts new postings and refreshes existing ones keyed by URL.
// Rows without a usable URL are skipped: they cannot be deduplicated.
func (r *PostgresJobRepository) UpsertJobs(ctx context.Context, jobs []JobUpsert) (int, error) {
	written := 0
	for _, j := range jobs {
		url := strings.TrimSpace(j.URL)
		if url == "" {
			continue
		}
		posted := j.PostedDate
		if posted.IsZero() {
			posted = time.Now().UTC()
		}

		_, err := r.db.Exec(ctx, `
			INSERT INTO jobs (title, company, location, experience, skills, salary,
				description, job_type, education, url, posted_date, scraped_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now())
			ON CONFLICT (url) DO UPDATE SET
				title = EXCLUDED.title,
				company = EXCLUDED.company,
				location = EXCLUDED.location,
				experience = EXCLUDED.experience,
				skills = EXCLUDED.skills,
				salary = EXCLUDED.salary,
				description = EXCLUDED.description,
				job_type = EXCLUDED.job_type,
				education = EXCLUDED.education,
				posted_date = EXCLUDED.posted_date,
				scraped_at = now()`,
			strings.TrimSpace(j.Title), strings.TrimSpace(j.Company), j.Location,
			j.Experience, j.Skills, j.Salary, j.Description, j.JobType,
			j.Education, url, posted,
		)
		if err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func (r *PostgresJobRepository) CountJobs(ctx context.Context) (int64, error) {
	var n int64
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(s scanner) (JobRow, error) {
	var j JobRow
	err := s.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Experience, &j.Skills,
		&j.Salary, &j.Description, &j.JobType, &j.Education, &j.URL,
		&j.PostedDate, &j.ScrapedAt,
	)
	return j, err
}
