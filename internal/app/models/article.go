package models

// Article is global content, not scoped to a patient. Blocks is the
// structured view derived from the plain-text Content; IsFavorited comes
// from the requesting user's stored preferences.
type Article struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Category          string         `json:"category"`
	Summary           string         `json:"summary,omitempty"`
	ReadingTime       int            `json:"reading_time,omitempty"`
	PublishedDate     string         `json:"published_date,omitempty"`
	Content           string         `json:"-"`
	Blocks            []ArticleBlock `json:"blocks,omitempty"`
	RelatedArticleIDs []string       `json:"related_article_ids,omitempty"`
	IsFavorited       bool           `json:"is_favorited"`
}

type ArticleBlock struct {
	Kind  string   `json:"kind"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

const (
	ArticleBlockHeading   = "heading"
	ArticleBlockParagraph = "paragraph"
	ArticleBlockList      = "list"
)
