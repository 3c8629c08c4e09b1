package models

// HistoryEntry is one row of a user's contribution or request history.
// CounterpartName is the other party's "FIRST LAST", nil until matched.
type HistoryEntry struct {
	OrganName       string  `json:"organ_name"`
	CounterpartName *string `json:"recipient_name"`
	Status          *string `json:"donation_status"`
}

// Participant is a user flagged as donor or recipient, with the name of the
// hospital they are attached to when it resolves.
type Participant struct {
	User
	HospitalName *string `json:"hospital_name"`
}
