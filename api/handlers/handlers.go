package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto-pulse/dto"
	"crypto-pulse/sentiment"
	"crypto-pulse/session"
)

// SetAPIKeyHandler godoc
// @Summary      Set session API key
// @Description  Store the completion-provider credential for this session (memory only)
// @Tags         session
// @Accept       json
// @Success      204
// @Router       /session/key [put]
func SetAPIKeyHandler(st *session.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			APIKey string `json:"api_key"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		st.SetAPIKey(in.APIKey)
		c.Status(http.StatusNoContent)
	}
}

// AddAccountHandler godoc
// @Summary      Track an account
// @Description  Fetch the handle's recent posts, merge them and recompute its sentiment
// @Tags         accounts
// @Param        handle  formData  string  true  "Account handle, with or without leading @"
// @Produce      json
// @Success      200  {array}  dto.AccountDTO
// @Router       /accounts [post]
func AddAccountHandler(st *session.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		handle := c.PostForm("handle")
		if handle == "" {
			var in struct {
				Handle string `json:"handle"`
			}
			if err := c.ShouldBindJSON(&in); err == nil {
				handle = in.Handle
			}
		}
		if handle == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "handle is required"})
			return
		}

		if err := st.AddAccount(c.Request.Context(), handle); err != nil {
			var pe *sentiment.ParseError
			if errors.As(err, &pe) {
				c.JSON(http.StatusBadGateway, gin.H{"error": pe.Error(), "response": pe.Raw})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.NewAccountDTOs(st.Accounts()))
	}
}

// ListAccountsHandler godoc
// @Summary      List tracked accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {array}  dto.AccountDTO
// @Router       /accounts [get]
func ListAccountsHandler(st *session.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAccountDTOs(st.Accounts()))
	}
}

// ListPostsHandler godoc
// @Summary      List normalized posts
// @Description  All accumulated posts restricted to the trailing 7-day window, newest first
// @Tags         posts
// @Produce      json
// @Success      200  {array}  dto.PostRowDTO
// @Router       /posts [get]
func ListPostsHandler(st *session.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewPostRowDTOs(st.Rows()))
	}
}

// GetSentimentHandler godoc
// @Summary      Get the 7-day sentiment table
// @Description  One column per tracked account plus the daily Overall average
// @Tags         sentiment
// @Produce      json
// @Success      200  {object}  dto.SentimentTableDTO
// @Router       /sentiment [get]
func GetSentimentHandler(st *session.State) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSentimentTableDTO(st.SentimentTable()))
	}
}
