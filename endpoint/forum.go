package endpoint

import (
	"fmt"

	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/erinskieasy/calm-yuh-mind/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type createForumPostRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

type createForumReplyRequest struct {
	Body string `json:"body" binding:"required"`
}

// forumAlias generates a throwaway pseudonym. A fresh alias per post keeps
// posts by the same user unlinkable.
func forumAlias() string {
	return "anon-" + uuid.NewString()[:8]
}

// ListForumPosts returns community posts, newest first.
func ListForumPosts(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var posts []model.ForumPost
	if err := db.Order("created_at DESC").Find(&posts).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve posts", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Posts retrieved", Data: posts})
}

// GetForumPost returns one post with its replies, oldest reply first.
func GetForumPost(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var post model.ForumPost
	if err := db.First(&post, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Post not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load post", Err: err})
		return
	}

	var replies []model.ForumReply
	if err := db.Where("post_id = ?", post.ID).Order("created_at ASC").Find(&replies).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load replies", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Post retrieved",
		Data: map[string]interface{}{"post": post, "replies": replies},
	})
}

// CreateForumPost publishes an anonymous post for the caller.
func CreateForumPost(c *gin.Context) {
	var req createForumPostRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	post := model.ForumPost{
		UserID: userID,
		Alias:  forumAlias(),
		Title:  req.Title,
		Body:   req.Body,
	}
	if err := db.Create(&post).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create post", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Post created", Data: post})
}

// CreateForumReply adds an anonymous reply to an existing post.
func CreateForumReply(c *gin.Context) {
	var req createForumReplyRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	var post model.ForumPost
	if err := db.First(&post, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Post not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load post", Err: err})
		return
	}

	reply := model.ForumReply{
		PostID: post.ID,
		UserID: userID,
		Alias:  forumAlias(),
		Body:   req.Body,
	}
	if err := db.Create(&reply).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create reply", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Reply created", Data: reply})
}

// DeleteForumPost removes a post and its replies. Author only; anyone else
// sees not found so ownership is not leaked.
func DeleteForumPost(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	var post model.ForumPost
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&post).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Post not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load post", Err: err})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&model.ForumReply{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete post", Err: fmt.Errorf("delete transaction: %w", err)})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Post deleted"})
}
