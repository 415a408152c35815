// Package handler maps the HTTP surface onto the resource repositories.
// Every response carries a success flag; absence of a record is success with
// empty data, only store failures become 500s.
package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventdesk/internal/announcement"
	"eventdesk/internal/participant"
	"eventdesk/internal/schedule"
)

type Handler struct {
	participants  *participant.Repository
	announcements *announcement.Repository
	schedules     *schedule.Repository
}

func New(p *participant.Repository, a *announcement.Repository, s *schedule.Repository) *Handler {
	return &Handler{participants: p, announcements: a, schedules: s}
}

// Routes registers every endpoint on r.
func (h *Handler) Routes(r *gin.Engine) {
	r.POST("/participant", h.RegisterParticipant)
	r.GET("/participant", h.ListParticipants)
	r.GET("/participant/:email", h.GetParticipant)
	r.DELETE("/participant/:email", h.DeleteParticipant)

	r.POST("/announcement", h.CreateAnnouncement)
	r.GET("/announcement", h.ListAnnouncements)
	r.DELETE("/announcement/:uuid", h.DeleteAnnouncement)

	r.POST("/schedule", h.CreateSchedule)
	r.GET("/schedule/:team", h.ListSchedule)
	r.DELETE("/schedule", h.DeleteSchedule)

	r.POST("/login/:email/:password", h.Login)
}

// fail logs the store error and answers with the generic failure envelope.
func fail(c *gin.Context, err error) {
	log.Printf("store error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred"})
}

// ---------- Participants ----------

type registerRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Team  string `json:"team"`
	Hotel string `json:"hotel"`
	Stamp string `json:"stamp"`
	Diet  string `json:"diet"`
}

// RegisterParticipant stores a new participant. Nothing in the body is
// validated; missing fields are stored empty and a bad body registers an
// empty record.
func (h *Handler) RegisterParticipant(c *gin.Context) {
	var req registerRequest
	_ = c.ShouldBindJSON(&req)

	p, err := h.participants.Register(c.Request.Context(), participant.RegisterInput{
		Email: req.Email,
		Name:  req.Name,
		Team:  req.Team,
		Hotel: req.Hotel,
		Stamp: req.Stamp,
		Diet:  req.Diet,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

func (h *Handler) ListParticipants(c *gin.Context) {
	list, err := h.participants.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if list == nil {
		list = []participant.Participant{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// GetParticipant answers with the last matching record, or an empty item
// when the email is unknown. An unknown email is not an error.
func (h *Handler) GetParticipant(c *gin.Context) {
	p, err := h.participants.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "item": gin.H{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": p})
}

func (h *Handler) DeleteParticipant(c *gin.Context) {
	if err := h.participants.Delete(c.Request.Context(), c.Param("email")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

// ---------- Announcements ----------

type announceRequest struct {
	Message string `json:"message"`
}

func (h *Handler) CreateAnnouncement(c *gin.Context) {
	var req announceRequest
	_ = c.ShouldBindJSON(&req)

	a, err := h.announcements.Create(c.Request.Context(), req.Message)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": a})
}

func (h *Handler) ListAnnouncements(c *gin.Context) {
	list, err := h.announcements.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if list == nil {
		list = []announcement.Announcement{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "sortedData": list})
}

func (h *Handler) DeleteAnnouncement(c *gin.Context) {
	if err := h.announcements.Delete(c.Request.Context(), c.Param("uuid")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

// ---------- Schedule ----------

type scheduleRequest struct {
	Team  string `json:"team"`
	Event string `json:"event"`
}

func (h *Handler) CreateSchedule(c *gin.Context) {
	var req scheduleRequest
	_ = c.ShouldBindJSON(&req)

	e, err := h.schedules.Create(c.Request.Context(), req.Team, req.Event)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": e})
}

func (h *Handler) ListSchedule(c *gin.Context) {
	list, err := h.schedules.ListByTeam(c.Request.Context(), c.Param("team"))
	if err != nil {
		fail(c, err)
		return
	}
	if list == nil {
		list = []schedule.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "teamData": list})
}

// DeleteSchedule removes entries by event, optionally narrowed to a team.
// A request without an event (team alone included) matches nothing, and a
// filter that matched nothing is reported as a failure.
func (h *Handler) DeleteSchedule(c *gin.Context) {
	deleted, err := h.schedules.DeleteByFilter(c.Request.Context(), c.Query("event"), c.Query("team"))
	if err != nil {
		fail(c, err)
		return
	}
	if len(deleted) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "no matching entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": deleted})
}

// ---------- Login ----------

// Login answers a bare JSON boolean, not the usual envelope. Credentials
// arrive as path segments and are compared in plaintext against the scan.
func (h *Handler) Login(c *gin.Context) {
	ok, err := h.participants.Login(c.Request.Context(), c.Param("email"), c.Param("password"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ok)
}
