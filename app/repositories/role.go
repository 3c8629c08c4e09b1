package repositories

// Role selects which side of a donation a user is looked up on.
type Role int

const (
	AsDonor Role = iota
	AsRecipient
)

func (r Role) String() string {
	if r == AsRecipient {
		return "recipient"
	}
	return "donor"
}

// columns returns the donations column matched against the user and the
// column resolved as the counterpart.
func (r Role) columns() (party, counterpart string) {
	if r == AsRecipient {
		return "recipient_id", "donor_id"
	}
	return "donor_id", "recipient_id"
}

// flag is the users column marking membership in the role.
func (r Role) flag() string {
	if r == AsRecipient {
		return "is_recipient"
	}
	return "is_donor"
}
