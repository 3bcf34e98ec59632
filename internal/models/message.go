package models

import "time"

// TeamMessage is one chat line, both on the socket and in team_messages.
// ClientID echoes the sender's local id back on the socket and is not stored.
type TeamMessage struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"clientId,omitempty"`
	TeamID     string    `json:"teamId"`
	Sender     string    `json:"sender"`
	SenderName string    `json:"senderName"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateMessageRequest struct {
	TeamID     string `json:"teamId" binding:"required,max=100"`
	Message    string `json:"message" binding:"required,max=5000"`
	SenderName string `json:"senderName" binding:"max=100"`
}
