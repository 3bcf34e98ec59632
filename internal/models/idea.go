package models

import "time"

type Idea struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Flowchart   string    `json:"flowchart"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateIdeaRequest saves an idea for the signed-in user
type CreateIdeaRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=20000"`
	Flowchart   string `json:"flowchart" binding:"max=200000"`
}

// GenerateIdeaRequest is the body of POST /api/perplexity
type GenerateIdeaRequest struct {
	Title  string `json:"title" binding:"required,max=200"`
	Prompt string `json:"prompt" binding:"max=4000"`
}

type GenerateIdeaResponse struct {
	Idea      string    `json:"idea"`
	Flowchart Flowchart `json:"flowchart"`
}
