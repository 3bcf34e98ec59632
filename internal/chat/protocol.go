package chat

import (
	"encoding/json"
	"strings"
)

// Socket events
const (
	EventJoinTeam     = "join-team"
	EventLeaveTeam    = "leave-team"
	EventSendMessage  = "send-message"
	EventNewMessage   = "new-message"
	EventMemberStatus = "member-status"
	EventError        = "error"
)

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

const maxTeamIDLength = 100

// Envelope is one socket frame in either direction
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type MemberStatus struct {
	TeamID string `json:"teamId"`
	UserID string `json:"userId"`
	Status string `json:"status"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func encode(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: raw})
}

// parseTeamID accepts either a bare string or {"teamId": "..."}
func parseTeamID(data json.RawMessage) string {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		return strings.TrimSpace(id)
	}

	var obj struct {
		TeamID string `json:"teamId"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		return strings.TrimSpace(obj.TeamID)
	}
	return ""
}

// ValidTeamID rejects IDs that cannot be used as a single NATS subject token
func ValidTeamID(teamID string) bool {
	if teamID == "" || len(teamID) > maxTeamIDLength {
		return false
	}
	return !strings.ContainsAny(teamID, ".*> \t\r\n")
}
