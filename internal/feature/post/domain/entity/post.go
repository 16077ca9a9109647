// Package entity defines the domain entities for the post feature.
package entity

import "time"

// Post represents a link-sharing post created by a user.
type Post struct {
	// ID is the unique identifier for the post.
	ID uint `gorm:"primaryKey" json:"id"`

	// Title is the post headline.
	Title string `gorm:"size:255;not null" json:"title"`

	// Text is the post body.
	Text string `gorm:"type:text" json:"text"`

	// CreatorID references the user who created the post.
	CreatorID uint `gorm:"index" json:"creatorId"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the post was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
