package seeder

import (
	"context"
	"fmt"

	"job-scout/internal/database"
)

// SampleJobsSeeder loads a handful of postings so a fresh install has
// something to rank before the first scrape run. It only writes when the
// jobs table is empty.
type SampleJobsSeeder struct{}

func (SampleJobsSeeder) Name() string { return "sample_jobs" }

func (SampleJobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs",
		"id", "title", "company", "location", "experience", "skills",
		"salary", "description", "job_type", "education", "url",
		"posted_date", "scraped_at"); err != nil {
		return err
	}

	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
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
	}{
		{
			Title: "Python Developer", Company: "TechCorp", Location: "Bangalore",
			Experience: "2-4 years", Skills: "Python, Django, SQL, Git",
			Salary: "6-9 LPA", Description: "Build and maintain backend services in Python and Django.",
			JobType: "Full Time", Education: "B.Tech",
			URL: "https://www.karkidi.com/job/sample-python-developer",
		},
		{
			Title: "Frontend Engineer", Company: "Webify", Location: "Remote",
			Experience: "1-3 years", Skills: "JavaScript, React, HTML, CSS",
			Salary: "5-8 LPA", Description: "Develop responsive interfaces with React.",
			JobType: "Remote", Education: "Any Graduate",
			URL: "https://www.karkidi.com/job/sample-frontend-engineer",
		},
		{
			Title: "Data Analyst", Company: "InsightWorks", Location: "Mumbai",
			Experience: "Fresher", Skills: "SQL, Excel, Python, Tableau",
			Salary: "3-5 LPA", Description: "Analyze product data and build dashboards.",
			JobType: "Full Time", Education: "B.Sc",
			URL: "https://www.karkidi.com/job/sample-data-analyst",
		},
		{
			Title: "DevOps Engineer", Company: "CloudNine", Location: "Hyderabad",
			Experience: "3-5 years", Skills: "AWS, Docker, Kubernetes, Linux",
			Salary: "10-15 LPA", Description: "Own deployment pipelines and cluster operations.",
			JobType: "Full Time", Education: "B.Tech",
			URL: "https://www.karkidi.com/job/sample-devops-engineer",
		},
		{
			Title: "Java Backend Intern", Company: "FinEdge", Location: "Pune",
			Experience: "Fresher", Skills: "Java, Spring, SQL",
			Salary: "15k/month", Description: "Assist the payments team with service development.",
			JobType: "Internship", Education: "B.E",
			URL: "https://www.karkidi.com/job/sample-java-intern",
		},
	}

	for _, it := range items {
		_, err := tx.Exec(ctx,
			`INSERT INTO jobs (title, company, location, experience, skills, salary,
				description, job_type, education, url, posted_date, scraped_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now(),now())
			ON CONFLICT (url) DO NOTHING`,
			it.Title, it.Company, it.Location, it.Experience, it.Skills,
			it.Salary, it.Description, it.JobType, it.Education, it.URL,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
