package ws

import (
	"encoding/json"
	"time"
)

type CorpusRefreshedEvent struct {
	Type      string `json:"type"`
	Version   int64  `json:"version"`
	Jobs      int    `json:"jobs"`
	Timestamp string `json:"timestamp"`
}

// Notifier pushes corpus lifecycle events to connected clients so they can
// re-run searches against the new snapshot.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyCorpusRefreshed(version int64, jobs int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := CorpusRefreshedEvent{
		Type:      "corpus_refreshed",
		Version:   version,
		Jobs:      jobs,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
