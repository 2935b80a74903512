package handlers

import (
	"errors"
	"net/http"

	"glassjoke/internal/service"

	"github.com/gin-gonic/gin"
)

type tokenRequest struct {
	Operator string `json:"operator" binding:"required"`
	Secret   string `json:"secret" binding:"required"`
}

// TokenRequest is an exported model for Swagger docs of the token payload.
type TokenRequest struct {
	Operator string `json:"operator" example:"ops"`
	Secret   string `json:"secret" example:"s3cr3t"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Issue operator token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   TokenRequest  true  "Operator credentials"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "auth disabled"
// @Router       /auth/token [post]
func (h *Handler) issueToken(c *gin.Context) {
	var input tokenRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.IssueToken(input.Operator, input.Secret)
	if err != nil {
		if errors.Is(err, service.ErrAuthDisabled) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if h.log != nil {
			h.log.Infow("auth_token_failed", "operator", input.Operator, "err", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
