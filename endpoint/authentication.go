package endpoint

import (
	"fmt"
	"strings"
	"time"

	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/erinskieasy/calm-yuh-mind/util"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const sessionTTL = 24 * time.Hour

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token        string `json:"token"`
	SessionToken string `json:"session_token"`
	Role         string `json:"role"`
	UserID       uint   `json:"user_id"`
}

// Signup godoc
// @Summary      Register a new account
// @Description  Create a client or therapist account
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Account details"
// @Success      200 {object} util.APIResponse "Account created"
// @Failure      400 {object} util.APIResponse "Invalid request or email taken"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /signup [post]
func Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	roleName := model.RoleClient
	if req.Role != "" {
		switch strings.ToLower(req.Role) {
		case "client":
			roleName = model.RoleClient
		case "therapist":
			roleName = model.RoleTherapist
		default:
			util.CallUserError(c, util.APIErrorParams{
				Msg: "Role must be client or therapist",
				Err: fmt.Errorf("unknown role %q", req.Role),
			})
			return
		}
	}

	var role model.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Role lookup failed", Err: err})
		return
	}

	salt, err := util.GenerateSalt()
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to generate password salt", Err: err})
		return
	}
	hashedPassword, err := util.HashPasswordArgon2(req.Password, salt)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to hash password", Err: err})
		return
	}

	user := model.User{
		Name:         util.NormalizeName(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Password:     hashedPassword,
		PasswordSalt: salt,
		RoleID:       role.ID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var existing model.User
		if err := tx.Where("email = ?", user.Email).First(&existing).Error; err == nil {
			return fmt.Errorf("email already registered")
		} else if err != gorm.ErrRecordNotFound {
			return err
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if err.Error() == "email already registered" {
			util.CallUserError(c, util.APIErrorParams{Msg: "Email already registered", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create account", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Account created",
		Data: map[string]interface{}{"user_id": user.ID, "role": role.Name},
	})
}

// Login godoc
// @Summary      User login
// @Description  Authenticate with email and password; returns a JWT and a session token
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} util.APIResponse{data=LoginResponse} "Login successful"
// @Failure      400 {object} util.APIResponse "Invalid credentials"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var user model.User
	err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid email or password", Err: fmt.Errorf("user not found")})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load user", Err: err})
		return
	}

	if !util.VerifyPassword(req.Password, user.PasswordSalt, user.Password) {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid email or password", Err: fmt.Errorf("password mismatch")})
		return
	}

	token, err := signLoginJWT(user)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to sign token", Err: err})
		return
	}

	session := model.Session{
		SessionToken: uuid.NewString(),
		UserID:       user.ID,
		ExpiresAt:    time.Now().Add(sessionTTL),
		ClientIP:     c.ClientIP(),
		Browser:      c.Request.UserAgent(),
	}
	if err := db.Create(&session).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create session", Err: err})
		return
	}
	_ = util.AddSessionToUserSet(user.ID, session.SessionToken)

	var role model.Role
	_ = db.First(&role, user.RoleID).Error

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Login successful",
		Data: LoginResponse{
			Token:        token,
			SessionToken: session.SessionToken,
			Role:         role.Name,
			UserID:       user.ID,
		},
	})
}

// Logout godoc
// @Summary      Log out the current session
// @Tags         Authentication
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} util.APIResponse "Logged out"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Router       /logout [post]
func Logout(c *gin.Context) {
	sessionToken := c.GetHeader("session-token")
	if sessionToken == "" {
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "Missing session token",
			Err: fmt.Errorf("session-token header is required"),
		})
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var session model.Session
	if err := db.Where("session_token = ?", sessionToken).First(&session).Error; err != nil {
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Session not found", Err: err})
		return
	}

	if err := db.Delete(&session).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete session", Err: err})
		return
	}
	_ = util.RemoveSessionTokenFromUserSet(session.UserID, sessionToken)

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Logged out"})
}

func signLoginJWT(user model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role_id": user.RoleID,
		"exp":     time.Now().Add(sessionTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(util.GetJWTSecretByte())
}
