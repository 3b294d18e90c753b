package fixtures

import "time"

// Canonical rows served by the in-memory care store double. Shapes mirror the
// row API responses, so tests exercise the same decoding paths as production.

const (
	IdentityID = "11111111-1111-1111-1111-111111111111"
	PatientID  = "22222222-2222-2222-2222-222222222222"

	Email    = "margaret.chen@example.com"
	Password = "gardenias-1947"

	// UnconfirmedEmail signs in against an account that never clicked its
	// confirmation link.
	UnconfirmedEmail = "pending@example.com"
)

type PatientRow struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DateOfBirth   string `json:"date_of_birth"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Diagnosis     string `json:"diagnosis"`
	CurrentStatus string `json:"current_status"`
}

type MedicationRow struct {
	ID          string   `json:"id"`
	PatientID   string   `json:"patient_id"`
	Name        string   `json:"name"`
	GenericName string   `json:"generic_name"`
	Dosage      string   `json:"dosage"`
	Unit        string   `json:"unit"`
	Frequency   string   `json:"frequency"`
	Route       string   `json:"route"`
	Purpose     string   `json:"purpose"`
	SideEffects []string `json:"side_effects"`
	Prescriber  string   `json:"prescriber"`
	Status      string   `json:"status"`
}

type MessageRow struct {
	ID            string     `json:"id"`
	PatientID     string     `json:"patient_id"`
	SenderName    string     `json:"sender_name"`
	SenderRole    *string    `json:"sender_role"`
	IsFromPatient bool       `json:"is_from_patient"`
	Text          string     `json:"text"`
	SentAt        time.Time  `json:"sent_at"`
	ReadAt        *time.Time `json:"read_at"`
}

type ArticleRow struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Category          string   `json:"category"`
	Summary           string   `json:"summary"`
	ReadingTime       int      `json:"reading_time"`
	PublishedDate     string   `json:"published_date"`
	Content           string   `json:"content"`
	RelatedArticleIDs []string `json:"related_article_ids"`
}

func strPtr(s string) *string { return &s }

func Patient() PatientRow {
	return PatientRow{
		ID:            PatientID,
		UserID:        IdentityID,
		FirstName:     "Margaret",
		LastName:      "Chen",
		DateOfBirth:   "1947-03-12",
		Phone:         "(555) 201-4437",
		Address:       "18 Alder Court, Portland, OR",
		Diagnosis:     "Congestive heart failure, stage D",
		CurrentStatus: "Stable, home care",
	}
}

func Medications() []MedicationRow {
	return []MedicationRow{
		{
			ID:          "med-001",
			PatientID:   PatientID,
			Name:        "Furosemide",
			GenericName: "furosemide",
			Dosage:      "40",
			Unit:        "mg",
			Frequency:   "Once daily in the morning",
			Route:       "oral",
			Purpose:     "Reduces fluid buildup",
			SideEffects: []string{"Increased urination", "Dizziness"},
			Prescriber:  "Dr. Amara Okafor",
			Status:      "active",
		},
		{
			ID:          "med-002",
			PatientID:   PatientID,
			Name:        "Morphine Sulfate",
			GenericName: "morphine",
			Dosage:      "5",
			Unit:        "mg",
			Frequency:   "Every 4 hours as needed for pain",
			Route:       "oral",
			Purpose:     "Pain and breathlessness relief",
			SideEffects: []string{"Drowsiness", "Constipation"},
			Prescriber:  "Dr. Amara Okafor",
			Status:      "active",
		},
		{
			ID:          "med-003",
			PatientID:   PatientID,
			Name:        "Metoprolol",
			GenericName: "metoprolol tartrate",
			Dosage:      "25",
			Unit:        "mg",
			Frequency:   "Twice daily, morning and evening",
			Route:       "oral",
			Purpose:     "Heart rate control",
			SideEffects: []string{"Fatigue"},
			Prescriber:  "Dr. Amara Okafor",
			Status:      "active",
		},
	}
}

func Messages(now time.Time) []MessageRow {
	return []MessageRow{
		{
			ID:            "msg-001",
			PatientID:     PatientID,
			SenderName:    "Sarah Nakamura",
			SenderRole:    strPtr("nurse"),
			IsFromPatient: false,
			Text:          "Good morning Margaret, how did you sleep after the dose change?",
			SentAt:        now.Add(-48 * time.Hour),
		},
		{
			ID:            "msg-002",
			PatientID:     PatientID,
			SenderName:    "Margaret Chen",
			IsFromPatient: true,
			Text:          "Much better, thank you. Less swelling in my ankles too.",
			SentAt:        now.Add(-47 * time.Hour),
		},
		{
			ID:            "msg-003",
			PatientID:     PatientID,
			SenderName:    "Sarah Nakamura",
			SenderRole:    strPtr("nurse"),
			IsFromPatient: false,
			Text:          "Wonderful. I'll stop by Thursday as planned.",
			SentAt:        now.Add(-2 * time.Hour),
		},
	}
}

func Articles() []ArticleRow {
	return []ArticleRow{
		{
			ID:            "art-001",
			Title:         "Understanding Comfort Care",
			Category:      "Care basics",
			Summary:       "What comfort-focused care means day to day.",
			ReadingTime:   4,
			PublishedDate: "2025-11-02",
			Content: "**What comfort care means**\n\n" +
				"Comfort care focuses on quality of life rather than curing illness. " +
				"It treats symptoms like pain, breathlessness, and anxiety.\n\n" +
				"Common goals\n\n" +
				"- Staying at home\n" +
				"- Managing pain\n" +
				"- Time with family",
			RelatedArticleIDs: []string{"art-002"},
		},
		{
			ID:            "art-002",
			Title:         "Questions for Your Care Team",
			Category:      "Care basics",
			Summary:       "Conversation starters for visits.",
			ReadingTime:   3,
			PublishedDate: "2025-10-18",
			Content:       "Write questions down before each visit so nothing is forgotten.",
		},
	}
}
