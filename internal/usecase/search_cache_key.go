package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type jobSearchCacheKeyInput struct {
	Query   string `json:"query"`
	TopK    int    `json:"top_k"`
	Version int64  `json:"version"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// JobsSearchCacheKey hashes the normalized query together with the corpus
// version, so entries written against an old snapshot die with it.
func JobsSearchCacheKey(query string, topK int, version int64) string {
	in := jobSearchCacheKeyInput{
		Query:   normalizeSearchValue(query),
		TopK:    topK,
		Version: version,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	h := hex.EncodeToString(sum[:])
	return "jobs:search:" + h
}

func JobsSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, "jobs:search:") {
		return "jobs:lock:" + strings.TrimPrefix(searchKey, "jobs:search:")
	}
	return "jobs:lock:" + searchKey
}
