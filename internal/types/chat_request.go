package types

// ChatRequest is the inbound chat payload, constructed once per request and
// never mutated after binding.
type ChatRequest struct {
	UserID      string   `json:"user_id" binding:"required"`
	UserMessage string   `json:"user_message" binding:"required"`
	CurrentMood string   `json:"current_mood"`
	Location    string   `json:"location"`
	Schedule    []string `json:"schedule"`
}

// Mood resolves the free-text label into the closed mood set.
func (r ChatRequest) Mood() Mood {
	return ParseMood(r.CurrentMood)
}
