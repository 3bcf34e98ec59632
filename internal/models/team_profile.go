package models

import "time"

type TeamProfile struct {
	ID           string    `json:"id"`
	TeamID       string    `json:"teamId"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	TechStack    []string  `json:"techStack"`
	Skills       []string  `json:"skills"`
	Availability []string  `json:"availability"`
	LookingFor   []string  `json:"lookingFor"`
	GitHubRepo   string    `json:"githubRepo"`
	DiscordLink  string    `json:"discordLink"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateTeamProfileRequest struct {
	TeamID       string   `json:"teamId" binding:"required,max=100"`
	Name         string   `json:"name" binding:"required,max=100"`
	Email        string   `json:"email" binding:"omitempty,email"`
	Role         string   `json:"role" binding:"max=100"`
	TechStack    []string `json:"techStack" binding:"max=50"`
	Skills       []string `json:"skills" binding:"max=50"`
	Availability []string `json:"availability" binding:"max=20"`
	LookingFor   []string `json:"lookingFor" binding:"max=20"`
	GitHubRepo   string   `json:"githubRepo" binding:"omitempty,url"`
	DiscordLink  string   `json:"discordLink" binding:"omitempty,url"`
}
