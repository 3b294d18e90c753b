package utils

import (
	"strings"

	"openwindows-service/internal/pkg/dto/requests"
)

func SanitizeLoginRequest(request *requests.Login) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeSendMessageRequest(request *requests.SendMessage) {
	request.Text = strings.TrimSpace(request.Text)
}
