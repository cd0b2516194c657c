package utils

import (
	"github.com/gin-gonic/gin"
)

const flashCookie = "flash_sucesso"

// SetFlash stores a one-shot success message, consumed by the next render.
func SetFlash(c *gin.Context, mensagem string) {
	c.SetCookie(flashCookie, mensagem, 60, "/", "", false, true)
}

// GetFlash returns the pending flash message, clearing it so it renders once.
func GetFlash(c *gin.Context) string {
	mensagem, err := c.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return mensagem
}
