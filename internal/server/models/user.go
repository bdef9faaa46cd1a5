package models

// User is a registered member whose profile is moderated.
type User struct {
	ID               int64        `json:"id"`
	FirstName        string       `json:"first_name"`
	LastName         string       `json:"last_name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	InstagramAccount string       `json:"instagram_account"`
	ImageURL         string       `json:"image_url"`
	Verified         Verification `json:"verified"`
	University       string       `json:"university"`
	Gender           string       `json:"gender"`
}

func (u User) RecordID() int64 { return u.ID }

// FullName is the card title shown to moderators.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
