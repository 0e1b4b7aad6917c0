package session

import "encoding/json"

const (
	StatusActive = "active"
	StatusEnded  = "ended"
)

// Session is the server-owned record of one run.
type Session struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	Score        int     `json:"score"`
	Speed        float64 `json:"speed"`
	EarnedAmount float64 `json:"earnedAmount"`
	StartTime    string  `json:"startTime,omitempty"`
	EndTime      string  `json:"endTime,omitempty"`
}

// The live service sends Mongo-style "_id"; older builds sent "id".
func (s *Session) UnmarshalJSON(b []byte) error {
	type wire Session
	var raw struct {
		wire
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = Session(raw.wire)
	if s.ID == "" {
		s.ID = raw.MongoID
	}
	return nil
}

// Progress is the authoritative answer to one cleared obstacle.
type Progress struct {
	Score        int     `json:"score"`
	Speed        float64 `json:"speed"`
	EarnedAmount float64 `json:"earnedAmount"`
	Status       string  `json:"status"`
}

type User struct {
	Username string  `json:"username,omitempty"`
	Balance  float64 `json:"balance"`
}

// Result is the final state of a run returned by the end call.
type Result struct {
	Score        int     `json:"score"`
	EarnedAmount float64 `json:"earnedAmount"`
	Status       string  `json:"status"`
	User         *User   `json:"user,omitempty"`
}

type errorMessage struct {
	Message string `json:"message"`
}
