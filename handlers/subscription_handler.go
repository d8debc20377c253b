package handlers

import (
	"news-portal-api/helper"
	"news-portal-api/models"
	"news-portal-api/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionService services.SubscriptionService
	Helper              *helper.HTTPHelper
}

func NewSubscriptionHandler(subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService, Helper: &helper.HTTPHelper{}}
}

// UpdateSubscriptions replaces the reader's subscription sets wholesale.
func (h *SubscriptionHandler) UpdateSubscriptions(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	subscriptions, err := h.subscriptionService.Subscribe(userID.(uint), req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Subscriptions updated", subscriptions)
}

func (h *SubscriptionHandler) GetSubscriptions(c *gin.Context) {
	userID, _ := c.Get("user_id")

	subscriptions, err := h.subscriptionService.Current(userID.(uint))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Subscriptions loaded", subscriptions)
}
