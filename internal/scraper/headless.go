package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// fetchListingLinksHeadless drives a real browser for boards that render
// their listings client-side. Much slower than the plain fetch, so it only
// runs as a fallback.
func (s *BoardScraper) fetchListingLinksHeadless(ctx context.Context, keyword, location string, limit int) ([]string, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scraper")
	}
	if limit <= 0 {
		limit = 50
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var hrefs []string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(s.listingURL(keyword, location)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`Array.from(document.querySelectorAll('a[href]'))
			.map(a => a.href)
			.filter(h => h && h.includes('/job/'))`, &hrefs),
	)
	if err != nil {
		return nil, err
	}

	dedup := map[string]struct{}{}
	out := make([]string, 0, limit)
	for _, h := range hrefs {
		u := normalizeURL(strings.TrimSpace(h))
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

	if len(out) == 0 {
		return nil, fmt.Errorf("no job urls found (headless)")
	}
	return out, nil
}
