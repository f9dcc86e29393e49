package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type FeedController struct {
	hub *services.FeedHub
}

func NewFeedController(hub *services.FeedHub) *FeedController {
	return &FeedController{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// MealsFeed upgrades to a websocket that receives the listing-changed event.
func (fc *FeedController) MealsFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.FeedClient{Conn: conn}
	fc.hub.Register(cl)

	done := make(chan struct{})

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					fc.hub.Unregister(cl)
					return
				}
			}
		}
	}()

	// read loop ends on client close/error → unregister and stop the pinger
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			close(done)
			fc.hub.Unregister(cl)
			return
		}
	}
}
