package ops

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"time"
)

const PathHealth = "/healthz"

type Handler interface {
	Health(ctx *gin.Context)
}

type handler struct {
	botName string
	started time.Time
}

type health struct {
	Status string `json:"status"`
	Bot    string `json:"bot"`
	Uptime string `json:"uptime"`
}

func NewHandler(botName string, started time.Time) Handler {
	return handler{
		botName: botName,
		started: started,
	}
}

func (h handler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, health{
		Status: "ok",
		Bot:    h.botName,
		Uptime: time.Since(h.started).Truncate(time.Second).String(),
	})
}

func NewRouter(h Handler) (r *gin.Engine) {
	r = gin.New()
	r.Use(gin.Recovery())
	r.GET(PathHealth, h.Health)
	return
}
