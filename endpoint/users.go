package endpoint

import (
	"errors"
	"fmt"

	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/erinskieasy/calm-yuh-mind/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var ErrUserEmailAlreadyExists = errors.New("email already exists")

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GetUser returns the authenticated user's own record.
func GetUser(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	var user model.User
	if err := db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "User not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve user", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "User retrieved", Data: user})
}

// UpdateUser updates the authenticated user's name, email and/or password.
// A password change invalidates every other session for the account.
func UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	if req.Name == "" && req.Email == "" && req.Password == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "At least one field (name, email, or password) must be provided",
			Err: fmt.Errorf("no fields to update"),
		})
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

	var user model.User
	if err := db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "User not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve user", Err: err})
		return
	}

	passwordChanged, err := applyUserUpdate(db, &user, &req)
	if err != nil {
		if errors.Is(err, ErrUserEmailAlreadyExists) {
			util.CallUserError(c, util.APIErrorParams{Msg: "Email already exists", Err: err})
		} else {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update user fields", Err: err})
		}
		return
	}

	if err := db.Save(&user).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update user", Err: err})
		return
	}

	if passwordChanged {
		_ = db.Where("user_id = ?", user.ID).Delete(&model.Session{}).Error
		_ = util.InvalidateUserSessions(user.ID)
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "User updated successfully", Data: user})
}

// applyUserUpdate mutates the user model from the request, handling email
// uniqueness and password hashing. No HTTP responses are sent here.
func applyUserUpdate(db *gorm.DB, user *model.User, req *UpdateUserRequest) (passwordChanged bool, err error) {
	if req.Email != "" && req.Email != user.Email {
		var count int64
		if err := db.Model(&model.User{}).Where("email = ? AND id != ?", req.Email, user.ID).Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to validate email uniqueness: %w", err)
		}
		if count > 0 {
			return false, ErrUserEmailAlreadyExists
		}
		user.Email = req.Email
	}

	if req.Name != "" {
		user.Name = util.NormalizeName(req.Name)
	}

	if req.Password != "" {
		salt, err := util.GenerateSalt()
		if err != nil {
			return false, fmt.Errorf("failed to generate password salt: %w", err)
		}
		hashedPassword, err := util.HashPasswordArgon2(req.Password, salt)
		if err != nil {
			return false, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashedPassword
		user.PasswordSalt = salt
		passwordChanged = true
	}

	return passwordChanged, nil
}
