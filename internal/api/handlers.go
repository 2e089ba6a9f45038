package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pellrad/sitegen/internal/storage"
)

type Handler struct {
	store       storage.Store
	sitemapPath string
	robotsPath  string
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type PaginationResponse struct {
	Data  interface{} `json:"data"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func NewHandler(store storage.Store, sitemapPath, robotsPath string) *Handler {
	return &Handler{
		store:       store,
		sitemapPath: sitemapPath,
		robotsPath:  robotsPath,
	}
}

func (h *Handler) ServeSitemap(c *gin.Context) {
	c.Header("Content-Type", "application/xml")
	c.File(h.sitemapPath)
}

func (h *Handler) ServeRobots(c *gin.Context) {
	c.Header("Content-Type", "text/plain")
	c.File(h.robotsPath)
}

func (h *Handler) ListRuns(c *gin.Context) {
	if !h.requireStore(c) {
		return
	}

	page, limit := getPaginationParams(c)
	offset := (page - 1) * limit

	runs, err := h.store.ListRuns(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch runs"})
		return
	}

	c.JSON(http.StatusOK, PaginationResponse{
		Data:  runs,
		Page:  page,
		Limit: limit,
	})
}

func (h *Handler) GetRun(c *gin.Context) {
	if !h.requireStore(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid run ID"})
		return
	}

	run, err := h.store.GetRun(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch run"})
		return
	}

	if run == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Run not found"})
		return
	}

	c.JSON(http.StatusOK, run)
}

func (h *Handler) ListRunEntries(c *gin.Context) {
	if !h.requireStore(c) {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid run ID"})
		return
	}

	page, limit := getPaginationParams(c)
	offset := (page - 1) * limit

	entries, err := h.store.ListEntries(c.Request.Context(), id, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch entries"})
		return
	}

	c.JSON(http.StatusOK, PaginationResponse{
		Data:  entries,
		Page:  page,
		Limit: limit,
	})
}

func (h *Handler) SearchEntries(c *gin.Context) {
	if !h.requireStore(c) {
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Search query is required"})
		return
	}

	page, limit := getPaginationParams(c)
	offset := (page - 1) * limit

	entries, err := h.store.SearchEntries(c.Request.Context(), query, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to search entries"})
		return
	}

	c.JSON(http.StatusOK, PaginationResponse{
		Data:  entries,
		Page:  page,
		Limit: limit,
	})
}

func (h *Handler) requireStore(c *gin.Context) bool {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Run history is disabled"})
		return false
	}
	return true
}

func getPaginationParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 50
	}

	return page, limit
}
