package models

import "time"

// CommunityGroup is a student community. MemberCount only ever increases,
// one per join call; inactive groups stay stored but are not listed.
type CommunityGroup struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	Category     string    `json:"category" db:"category"`
	Icon         string    `json:"icon" db:"icon"`
	MemberCount  int       `json:"memberCount" db:"member_count"`
	WhatsappLink *string   `json:"whatsappLink,omitempty" db:"whatsapp_link"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
