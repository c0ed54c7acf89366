package dto

type JobSearchItemResponse struct {
	JobID      int64   `json:"job_id"`
	Title      string  `json:"title"`
	Company    string  `json:"company"`
	Location   string  `json:"location"`
	Experience string  `json:"experience"`
	Skills     string  `json:"skills"`
	Salary     string  `json:"salary"`
	JobType    string  `json:"job_type"`
	URL        string  `json:"url"`
	PostedDate string  `json:"posted_date,omitempty"`
	Score      float64 `json:"score"`
}

type RequirementsResponse struct {
	Skills     []string `json:"skills"`
	Locations  []string `json:"locations"`
	Experience string   `json:"experience,omitempty"`
	Salary     string   `json:"salary,omitempty"`
	JobType    string   `json:"job_type,omitempty"`
}

type JobSearchResponse struct {
	Query         string                  `json:"query"`
	Requirements  RequirementsResponse    `json:"requirements"`
	Jobs          []JobSearchItemResponse `json:"jobs"`
	Total         int                     `json:"total"`
	CorpusVersion int64                   `json:"corpus_version"`
}
