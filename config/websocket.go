package config

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// InitWebSocket exposes /ws. Dashboards subscribe here and receive a
// broadcast whenever a deposit or withdrawal request changes status.
func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		if err := m.HandleRequest(c.Writer, c.Request); err != nil {
			log.Printf("websocket upgrade failed: %v", err)
		}
	})

	m.HandleConnect(func(s *melody.Session) {
		log.Printf("websocket client connected: %s", s.Request.RemoteAddr)
	})
}
