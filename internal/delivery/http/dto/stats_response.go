package dto

type CountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	TotalJobs              int             `json:"total_jobs"`
	RecentJobs             int             `json:"recent_jobs"`
	TopCompanies           []CountResponse `json:"top_companies"`
	TopLocations           []CountResponse `json:"top_locations"`
	TopSkills              []CountResponse `json:"top_skills"`
	ExperienceDistribution []CountResponse `json:"experience_distribution"`
}
