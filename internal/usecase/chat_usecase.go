package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"job-scout/internal/chat"
	"job-scout/internal/match"
)

const chatSearchTopK = 5

type ChatParams struct {
	SessionID string
	Message   string
}

type ChatResponse struct {
	SessionID   string          `json:"session_id"`
	Intent      chat.Intent     `json:"intent"`
	Message     string          `json:"message"`
	Jobs        []JobSearchItem `json:"jobs,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

type ChatUsecase interface {
	HandleMessage(ctx context.Context, params ChatParams) (ChatResponse, error)
	History(ctx context.Context, sessionID string) ([]chat.HistoryEntry, error)
	Reset(ctx context.Context, sessionID string) error
}

type Chat struct {
	sessions *chat.Manager
	search   JobSearchUsecase
	stats    JobStatsUsecase
	logger   *log.Logger
	now      func() time.Time
}

func NewChatUsecase(sessions *chat.Manager, search JobSearchUsecase, statsUc JobStatsUsecase, logger *log.Logger) *Chat {
	return &Chat{sessions: sessions, search: search, stats: statsUc, logger: logger, now: time.Now}
}

// HandleMessage classifies the message, routes it by intent, and records
// the exchange in the session history.
func (u *Chat) HandleMessage(ctx context.Context, params ChatParams) (ChatResponse, error) {
	message := strings.TrimSpace(params.Message)
	if message == "" {
		return ChatResponse{}, ErrInvalidInput
	}

	sess := u.sessions.GetOrCreate(params.SessionID)
	intent := chat.DetectIntent(message)

	resp := ChatResponse{
		SessionID: sess.ID,
		Intent:    intent,
		Timestamp: u.now().UTC(),
	}

	switch intent {
	case chat.IntentGreeting:
		resp.Message = chat.GreetingMessage(len(sess.Snapshot()))

	case chat.IntentJobSearch, chat.IntentSkill, chat.IntentLocation,
		chat.IntentExperience, chat.IntentSalary:
		req := match.Extract(message)
		sess.MergeProfile(req)

		result, err := u.search.Search(ctx, JobSearchParams{Query: message, TopK: chatSearchTopK})
		if err != nil {
			if u.logger != nil {
				u.logger.Printf("[Chat] search failed | session=%s err=%v", sess.ID, err)
			}
			return ChatResponse{}, ErrInternal
		}
		resp.Jobs = result.Items
		resp.Message = formatJobsMessage(result.Items)

	case chat.IntentStatistics:
		summary, err := u.stats.GetStatistics(ctx)
		if err != nil {
			return ChatResponse{}, ErrInternal
		}
		resp.Message = chat.FormatStatistics(summary)

	case chat.IntentHelp:
		resp.Message = chat.HelpMessage()

	case chat.IntentGoodbye:
		resp.Message = chat.GoodbyeMessage()

	default:
		resp.Message = "I can search open roles for you. Tell me the skills, location, or experience level you have in mind."
	}

	resp.Suggestions = chat.Suggestions(intent)

	sess.Append(chat.HistoryEntry{
		UserMessage: message,
		BotMessage:  resp.Message,
		Intent:      intent,
		Timestamp:   resp.Timestamp,
	})
	return resp, nil
}

func (u *Chat) History(ctx context.Context, sessionID string) ([]chat.HistoryEntry, error) {
	sess, ok := u.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess.Snapshot(), nil
}

func (u *Chat) Reset(ctx context.Context, sessionID string) error {
	u.sessions.Reset(sessionID)
	return nil
}

func formatJobsMessage(items []JobSearchItem) string {
	if len(items) == 0 {
		return "I couldn't find matching jobs for that. Try different skills or a broader location."
	}

	b := strings.Builder{}
	fmt.Fprintf(&b, "I found %d matching job", len(items))
	if len(items) > 1 {
		b.WriteString("s")
	}
	b.WriteString(":\n")
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s at %s", i+1, it.Title, it.Company)
		if it.Location != "" {
			fmt.Fprintf(&b, " (%s)", it.Location)
		}
		fmt.Fprintf(&b, " [%.0f%% match]\n", it.Score*100)
	}
	return strings.TrimRight(b.String(), "\n")
}
