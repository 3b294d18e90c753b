package models

import "time"

// Preferences are display settings persisted per identity, outside the
// patient data held by the care store.
type Preferences struct {
	ID                 string    `json:"-" bson:"_id,omitempty"`
	IdentityID         string    `json:"identity_id" bson:"identityId"`
	Theme              string    `json:"theme" bson:"theme"`
	TextSize           string    `json:"text_size" bson:"textSize"`
	FavoriteArticleIDs []string  `json:"favorite_article_ids" bson:"favoriteArticleIds"`
	UpdatedAt          time.Time `json:"updated_at" bson:"updatedAt"`
}
