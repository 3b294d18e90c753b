package models

import "time"

type Message struct {
	ID            string     `json:"id"`
	PatientID     string     `json:"patient_id"`
	SenderName    string     `json:"sender_name"`
	SenderRole    *string    `json:"sender_role"`
	IsFromPatient bool       `json:"is_from_patient"`
	Text          string     `json:"text"`
	SentAt        time.Time  `json:"sent_at"`
	ReadAt        *time.Time `json:"read_at"`
}
