package dto

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	SessionID   string                  `json:"session_id"`
	Intent      string                  `json:"intent"`
	Message     string                  `json:"message"`
	Jobs        []JobSearchItemResponse `json:"jobs,omitempty"`
	Suggestions []string                `json:"suggestions,omitempty"`
	Timestamp   string                  `json:"timestamp"`
}

type ChatHistoryEntryResponse struct {
	UserMessage string `json:"user_message"`
	BotMessage  string `json:"bot_message"`
	Intent      string `json:"intent"`
	Timestamp   string `json:"timestamp"`
}

type ChatHistoryResponse struct {
	SessionID string                     `json:"session_id"`
	History   []ChatHistoryEntryResponse `json:"history"`
}
