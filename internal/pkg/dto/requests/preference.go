package requests

type UpdatePreferences struct {
	Theme    string `json:"theme" validate:"required,oneof=light dark"`
	TextSize string `json:"text_size" validate:"required,oneof=normal large x-large"`
}

type ToggleFavoriteArticle struct {
	Favorited bool `json:"favorited"`
}
