package endpoint

import (
	"sync"

	"github.com/erinskieasy/calm-yuh-mind/companion"
	"github.com/erinskieasy/calm-yuh-mind/config"
	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/erinskieasy/calm-yuh-mind/util"
	"github.com/gin-gonic/gin"
)

// How many prior turns are forwarded for conversational context.
const chatHistoryWindow = 10

var (
	companionClient   *companion.Client
	companionClientMu sync.RWMutex
)

func getCompanionClient() *companion.Client {
	companionClientMu.RLock()
	cl := companionClient
	companionClientMu.RUnlock()
	if cl != nil {
		return cl
	}

	companionClientMu.Lock()
	defer companionClientMu.Unlock()
	if companionClient == nil {
		companionClient = companion.NewClient(config.LoadConfig().CompanionURL)
	}
	return companionClient
}

// SetCompanionClientForTest injects a companion client pointed at a test server.
func SetCompanionClientForTest(cl *companion.Client) {
	companionClientMu.Lock()
	defer companionClientMu.Unlock()
	companionClient = cl
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat persists the user's message, forwards it with recent history to the
// companion service, and persists and returns the reply. Upstream failure is
// a server error; the user's message is still stored so history stays honest.
func Chat(c *gin.Context) {
	var req chatRequest
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

	var recent []model.ChatMessage
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(chatHistoryWindow).Find(&recent).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load chat history", Err: err})
		return
	}

	// Reverse into chronological order for the companion service.
	history := make([]companion.HistoryTurn, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		history = append(history, companion.HistoryTurn{Sender: recent[i].Sender, Content: recent[i].Content})
	}

	userMsg := model.ChatMessage{UserID: userID, Sender: model.ChatSenderUser, Content: req.Message}
	if err := db.Create(&userMsg).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to store message", Err: err})
		return
	}

	reply, err := getCompanionClient().Chat(userID, req.Message, history)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Companion service unavailable", Err: err})
		return
	}

	companionMsg := model.ChatMessage{UserID: userID, Sender: model.ChatSenderCompanion, Content: reply}
	if err := db.Create(&companionMsg).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to store reply", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Reply received", Data: companionMsg})
}

// ChatHistory returns the caller's conversation in chronological order.
func ChatHistory(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	var messages []model.ChatMessage
	if err := db.Where("user_id = ?", userID).Order("created_at ASC").Find(&messages).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve chat history", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Chat history retrieved", Data: messages})
}

// ClearChatHistory deletes the caller's conversation.
func ClearChatHistory(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	if err := db.Where("user_id = ?", userID).Delete(&model.ChatMessage{}).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to clear chat history", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Chat history cleared"})
}
