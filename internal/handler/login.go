package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// loginRequest accepts the identifier as either email or username.
type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginHandler struct {
	svc LoginService
}

func (h loginHandler) login(c *gin.Context) {
	const op = "loginHandler.login"

	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		abortWithError(c, op, err)
		return
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}

	res, err := h.svc.Authenticate(c.Request.Context(), identifier, req.Password)
	if err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
