package scraper

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"job-scout/internal/repository"

	"github.com/gocolly/colly/v2"
)

const defaultBoardURL = "https://www.karkidi.com"

// BoardScraper pulls postings from the job board: a listing page per
// keyword, then one detail page per posting. Detail fetches run through the
// worker pool with a rate limit so the board is not hammered.
type BoardScraper struct {
	baseURL     string
	allowedHost string
	useHeadless bool
	requestGap  time.Duration
	logger      *log.Logger
}

func NewBoardScraper(baseURL string, useHeadless bool, requestDelayMs int, logger *log.Logger) *BoardScraper {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = defaultBoardURL
	}
	gap := time.Duration(requestDelayMs) * time.Millisecond
	if gap <= 0 {
		gap = 500 * time.Millisecond
	}
	return &BoardScraper{
		baseURL:     strings.TrimRight(baseURL, "/"),
		allowedHost: hostFromBaseURL(baseURL),
		useHeadless: useHeadless,
		requestGap:  gap,
		logger:      logger,
	}
}

func (s *BoardScraper) Fetch(ctx context.Context, keyword, location string, limit int) ([]repository.JobUpsert, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scraper")
	}
	if limit <= 0 {
		limit = 50
	}

	links, err := s.fetchListingLinks(ctx, keyword, location, limit)
	if err != nil && s.useHeadless {
		if s.logger != nil {
			s.logger.Printf("[Scraper] listing fetch failed, retrying headless | keyword=%q err=%v", keyword, err)
		}
		links, err = s.fetchListingLinksHeadless(ctx, keyword, location, limit)
	}
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []repository.JobUpsert{}, nil
	}

	pool := NewWorkerPool(4, len(links))
	rps := int(time.Second / s.requestGap)
	if rps < 1 {
		rps = 1
	}
	pool.SetRateLimit(rps)
	results := pool.Run(ctx)

	var mu sync.Mutex
	out := make([]repository.JobUpsert, 0, len(links))

	for _, link := range links {
		link := link
		pool.Submit(func(ctx context.Context) error {
			job, err := s.fetchDetail(ctx, link)
			if err != nil {
				return fmt.Errorf("detail %s: %w", link, err)
			}
			mu.Lock()
			out = append(out, job)
			mu.Unlock()
			return nil
		})
	}
	pool.Close()

	for res := range results {
		if res.Err != nil && s.logger != nil {
			s.logger.Printf("[Scraper] detail error | err=%v", res.Err)
		}
	}

	return out, nil
}

func (s *BoardScraper) listingURL(keyword, location string) string {
	q := url.Values{}
	q.Set("keyword", strings.TrimSpace(keyword))
	if loc := strings.TrimSpace(location); loc != "" {
		q.Set("location", loc)
	}
	return s.baseURL + "/search?" + q.Encode()
}

func (s *BoardScraper) fetchListingLinks(ctx context.Context, keyword, location string, limit int) ([]string, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: s.requestGap})

	links := make([]string, 0, limit)

	c.OnHTML("a", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" || !strings.Contains(href, "/job/") {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		links = append(links, abs)
	})

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(s.listingURL(keyword, location)); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	dedup := map[string]struct{}{}
	out := make([]string, 0, len(links))
	for _, l := range links {
		u := normalizeURL(l)
		if u == "" {
			continue
		}
		if _, ok := dedup[u]; ok {
			continue
		}
		dedup[u] = struct{}{}
		out = append(out, u)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *BoardScraper) fetchDetail(ctx context.Context, jobURL string) (repository.JobUpsert, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: s.requestGap})

	var job repository.JobUpsert
	var pageTitle string
	var postedRaw string

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML("title", func(e *colly.HTMLElement) {
		pageTitle = cleanText(e.Text)
	})
	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if job.Title == "" {
			job.Title = cleanText(e.Text)
		}
	})
	c.OnHTML(".company-name", func(e *colly.HTMLElement) {
		job.Company = cleanText(e.Text)
	})
	c.OnHTML(".job-location", func(e *colly.HTMLElement) {
		job.Location = cleanText(e.Text)
	})
	c.OnHTML(".job-experience", func(e *colly.HTMLElement) {
		job.Experience = cleanText(e.Text)
	})
	c.OnHTML(".job-skills", func(e *colly.HTMLElement) {
		job.Skills = cleanText(e.Text)
	})
	c.OnHTML(".job-salary", func(e *colly.HTMLElement) {
		job.Salary = cleanText(e.Text)
	})
	c.OnHTML(".job-type", func(e *colly.HTMLElement) {
		job.JobType = cleanText(e.Text)
	})
	c.OnHTML(".job-education", func(e *colly.HTMLElement) {
		job.Education = cleanText(e.Text)
	})
	c.OnHTML(".job-description", func(e *colly.HTMLElement) {
		job.Description = cleanText(e.Text)
	})
	c.OnHTML(".posted-date", func(e *colly.HTMLElement) {
		postedRaw = cleanText(e.Text)
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return repository.JobUpsert{}, ctx.Err()
	}
	if err := c.Visit(jobURL); err != nil {
		return repository.JobUpsert{}, err
	}
	c.Wait()
	if reqErr != nil {
		return repository.JobUpsert{}, reqErr
	}

	job.Title = pickNonEmpty(job.Title, pageTitle)
	job.URL = normalizeURL(jobURL)
	job.PostedDate = parsePostedDate(postedRaw, time.Now())
	return job, nil
}
