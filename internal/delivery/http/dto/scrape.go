package dto

type ScrapeRequest struct {
	Keyword  string `json:"keyword"`
	Location string `json:"location"`
	Limit    int    `json:"limit"`
}

type ScrapeResponse struct {
	RunID         string `json:"run_id"`
	Keyword       string `json:"keyword"`
	Location      string `json:"location,omitempty"`
	Fetched       int    `json:"fetched"`
	Upserted      int    `json:"upserted"`
	CorpusVersion int64  `json:"corpus_version"`
	CorpusJobs    int    `json:"corpus_jobs"`
}
