package handlers

import (
	"strconv"

	"news-portal-api/helper"
	"news-portal-api/models"
	"news-portal-api/services"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterService services.NewsletterService
	feedService       services.FeedService
	Helper            *helper.HTTPHelper
}

func NewNewsletterHandler(newsletterService services.NewsletterService, feedService services.FeedService) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
		feedService:       feedService,
		Helper:            &helper.HTTPHelper{},
	}
}

func (h *NewsletterHandler) CreateNewsletter(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	newsletter, err := h.newsletterService.Create(userID.(uint), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter created", newsletter)
}

func (h *NewsletterHandler) GetNewsletters(c *gin.Context) {
	userID, _ := c.Get("user_id")

	newsletters, err := h.feedService.NewsletterFeed(userID.(uint))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletters loaded", newsletters)
}

func (h *NewsletterHandler) GetNewsletter(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid newsletter id", h.Helper.EmptyJsonMap())
		return
	}

	newsletter, err := h.newsletterService.Get(userID.(uint), uint(id))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter loaded", newsletter)
}

func (h *NewsletterHandler) UpdateNewsletter(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid newsletter id", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	newsletter, err := h.newsletterService.Update(userID.(uint), uint(id), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter updated", newsletter)
}

func (h *NewsletterHandler) DeleteNewsletter(c *gin.Context) {
	userID, _ := c.Get("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid newsletter id", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.newsletterService.Delete(userID.(uint), uint(id)); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter deleted", h.Helper.EmptyJsonMap())
}
