package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"todolist/internal/adapter/http/middleware"
	"todolist/internal/core/ports"
)

const (
	StatusOk   = "ok"
	StatusDown = "down"
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthStore struct {
	Status         string `json:"status"`
	Categories     int    `json:"categories"`
	Todos          int    `json:"todos"`
	CompletedTodos int    `json:"completed_todos"`
}

type HealthAdvanced struct {
	AppName           string      `json:"app_name"`
	AppVersion        string      `json:"app_version"`
	CurrentSystemTime string      `json:"current_system_time"`
	Language          string      `json:"language"`
	Store             HealthStore `json:"store"`
}

type HealthHandler struct {
	stats ports.StatsReporter
}

func NewHealthHandler(stats ports.StatsReporter) *HealthHandler {
	return &HealthHandler{stats: stats}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk
	if h.stats == nil {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	store := HealthStore{Status: StatusDown}
	if h.stats != nil {
		stats := h.stats.Stats()
		store = HealthStore{
			Status:         StatusOk,
			Categories:     stats.Categories,
			Todos:          stats.Todos,
			CompletedTodos: stats.CompletedTodos,
		}
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           os.Getenv("APP_NAME"),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Store:             store,
	})
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
