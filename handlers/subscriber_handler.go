package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"blog-backend/helper"
	"blog-backend/models"
	"blog-backend/services"
)

type SubscriberHandler struct {
	subscriberService services.SubscriberService
	Helper            *helper.HTTPHelper
}

func NewSubscriberHandler(subscriberService services.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService, Helper: &helper.HTTPHelper{}}
}

func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	subscriber, err := h.subscriberService.Subscribe(req.Email)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Subscribed successfully", subscriber)
}

func (h *SubscriberHandler) Verify(c *gin.Context) {
	token := c.Param("token")

	subscriber, err := h.subscriberService.Verify(token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			h.Helper.SendNotFoundError(c, err.Error(), h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Subscription verified", subscriber)
}

func (h *SubscriberHandler) Unsubscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	subscriber, err := h.subscriberService.Unsubscribe(req.Email)
	if err != nil {
		h.Helper.SendNotFoundError(c, "Subscriber not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Unsubscribed successfully", subscriber)
}

func (h *SubscriberHandler) GetSubscribers(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	subscribers, err := h.subscriberService.GetSubscribers(activeOnly)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", subscribers)
}
