package requests

type SendMessage struct {
	Text string `json:"text"`
}
