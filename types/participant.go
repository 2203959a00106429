package types

import "time"

type Participant struct {
	ConversationID    string     `json:"conversation_id" db:"conversation_id"`
	UserID            string     `json:"user_id" db:"user_id"`
	Role              Role       `json:"role" db:"role"`
	Active            bool       `json:"active" db:"active"`
	LastReadMessageID int64      `json:"last_read_message_id" db:"last_read_message_id"`
	LastReadAt        *time.Time `json:"last_read_at" db:"last_read_at"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

type Role string

const (
	RoleCandidate   Role = "candidate"
	RoleCounterpart Role = "counterpart"
	RoleAdmin       Role = "admin"
	RoleGuest       Role = "guest"
)

// RolePrecedence ranks roles. When a user qualifies for more than one
// role the highest rank wins, and a stored rank is never lowered.
var RolePrecedence = map[Role]int{
	RoleGuest:       1,
	RoleCandidate:   2,
	RoleCounterpart: 3,
	RoleAdmin:       4,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	_, ok := RolePrecedence[r]
	return ok
}

func (r Role) Rank() int {
	return RolePrecedence[r]
}

type DesiredParticipant struct {
	UserID string
	Role   Role
}

// DedupeParticipants keeps one entry per user with the highest ranked role.
// Order of first appearance is preserved.
func DedupeParticipants(desired []DesiredParticipant) []DesiredParticipant {
	index := make(map[string]int, len(desired))
	out := make([]DesiredParticipant, 0, len(desired))
	for _, d := range desired {
		if d.UserID == "" || !d.Role.Valid() {
			continue
		}

		i, ok := index[d.UserID]
		if !ok {
			index[d.UserID] = len(out)
			out = append(out, d)
			continue
		}

		if d.Role.Rank() > out[i].Role.Rank() {
			out[i].Role = d.Role
		}
	}
	return out
}
