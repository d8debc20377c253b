package handlers

import (
	"strconv"

	"news-portal-api/helper"
	"news-portal-api/models"
	"news-portal-api/services"

	"github.com/gin-gonic/gin"
)

type PublisherHandler struct {
	publisherService services.PublisherService
	Helper           *helper.HTTPHelper
}

func NewPublisherHandler(publisherService services.PublisherService) *PublisherHandler {
	return &PublisherHandler{publisherService: publisherService, Helper: &helper.HTTPHelper{}}
}

func (h *PublisherHandler) RegisterPublisher(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.RegisterPublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	publisher, err := h.publisherService.Register(userID.(uint), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Publishing house created", publisher)
}

func (h *PublisherHandler) GetPublishers(c *gin.Context) {
	publishers, err := h.publisherService.List()
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Publishers loaded", publishers)
}

func (h *PublisherHandler) GetPublisher(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher id", h.Helper.EmptyJsonMap())
		return
	}

	publisher, err := h.publisherService.Get(uint(id))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Publisher loaded", publisher)
}

func (h *PublisherHandler) JoinPublisher(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher id", h.Helper.EmptyJsonMap())
		return
	}

	publisher, err := h.publisherService.Join(userID.(uint), uint(id))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Joined publishing house", publisher)
}

func (h *PublisherHandler) AddStaff(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher id", h.Helper.EmptyJsonMap())
		return
	}

	var req models.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.publisherService.AddStaff(userID.(uint), uint(id), req); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Staff member added", h.Helper.EmptyJsonMap())
}

func (h *PublisherHandler) RemoveStaff(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid publisher id", h.Helper.EmptyJsonMap())
		return
	}

	var req models.StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if err := h.publisherService.RemoveStaff(userID.(uint), uint(id), req); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Staff member removed", h.Helper.EmptyJsonMap())
}
