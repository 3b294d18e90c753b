package models

// Medication is the normalized shape the portal renders. TimeOfDay is not a
// stored field; it is derived from the free-text Frequency during
// normalization.
type Medication struct {
	ID               string   `json:"id"`
	PatientID        string   `json:"patient_id"`
	Name             string   `json:"name"`
	GenericName      string   `json:"generic_name,omitempty"`
	Dosage           string   `json:"dosage"`
	Unit             string   `json:"unit"`
	Frequency        string   `json:"frequency"`
	TimeOfDay        string   `json:"time_of_day"`
	Route            string   `json:"route,omitempty"`
	Purpose          string   `json:"purpose,omitempty"`
	SideEffects      []string `json:"side_effects,omitempty"`
	Prescriber       string   `json:"prescriber,omitempty"`
	Status           string   `json:"status,omitempty"`
	DeliveryDate     string   `json:"delivery_date,omitempty"`
	ExpectedDelivery string   `json:"expected_delivery,omitempty"`
	DeliveredBy      string   `json:"delivered_by,omitempty"`
}
