package models

// RelatedPost is the trimmed post projection attached to chatbot replies.
type RelatedPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// ChatResponse is the chatbot answer returned to the client.
//
// Cached reports whether the reply text was served from the reply cache;
// related posts are recomputed on every call regardless.
type ChatResponse struct {
	Reply        string        `json:"reply"`
	TokensUsed   int           `json:"tokensUsed"`
	Cached       bool          `json:"cached"`
	RelatedPosts []RelatedPost `json:"relatedPosts,omitempty"`
}

// Completion is the result of a single generative-AI call.
type Completion struct {
	Text       string
	TokensUsed int
}
