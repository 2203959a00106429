package types

type Backfill struct {
	All bool

	loggedInUserID string
}

func (in *Backfill) SetLoggedInUserID(userID string) {
	in.loggedInUserID = userID
}

func (in Backfill) LoggedInUserID() string {
	return in.loggedInUserID
}

// BackfillTarget is a job thread that may need seeding or attribution.
type BackfillTarget struct {
	ConversationID  string  `db:"conversation_id"`
	CandidateUserID *string `db:"candidate_user_id"`
}

type BackfillResult struct {
	Seeded     int64 `json:"seeded"`
	Attributed int64 `json:"attributed"`
}
