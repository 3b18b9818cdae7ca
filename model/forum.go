package model

import "gorm.io/gorm"

// ForumPost is an anonymous community post. The owning user ID is kept for
// moderation and author-only deletes but never serialized; readers only see
// the generated alias.
type ForumPost struct {
	gorm.Model
	UserID uint   `json:"-" gorm:"column:user_id;index"`
	Alias  string `json:"alias" gorm:"column:alias"`
	Title  string `json:"title" gorm:"column:title"`
	Body   string `json:"body" gorm:"column:body;type:text"`
}

type ForumReply struct {
	gorm.Model
	PostID uint   `json:"post_id" gorm:"column:post_id;index"`
	UserID uint   `json:"-" gorm:"column:user_id;index"`
	Alias  string `json:"alias" gorm:"column:alias"`
	Body   string `json:"body" gorm:"column:body;type:text"`
}
