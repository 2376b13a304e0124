package billing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Dhyey-19/VaaniBill/internal/parser"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Start draft session (captures catalog snapshot)
// --------------------------------------------------
func (h *Handler) StartSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Locale string `json:"locale"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := h.service.StartSession(
		c.Request.Context(),
		userID,
		parser.Locale(req.Locale),
	)
	if err != nil {
		if errors.Is(err, ErrInvalidLocale) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sessionId": session.ID,
		"locale":    session.Locale,
	})
}

// --------------------------------------------------
// One finalized transcript -> at most one line item
// --------------------------------------------------
func (h *Handler) AddUtterance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft, err := h.service.AddUtterance(c.Param("id"), userID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, parser.ErrEmptyName):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "empty_name",
				"message": "Say a product name like 'two kg sugar'.",
			})
		case errors.Is(err, parser.ErrProductNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "product_not_found",
				"message": "Product not found in your catalog.",
			})
		case errors.Is(err, ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse utterance"})
		}
		return
	}

	c.JSON(http.StatusCreated, draft)
}

// --------------------------------------------------
// Current draft
// --------------------------------------------------
func (h *Handler) GetSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, total, err := h.service.SessionItems(c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
	})
}

// --------------------------------------------------
// Manual edit of a draft line
// --------------------------------------------------
func (h *Handler) UpdateItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Name     *string  `json:"name"`
		Quantity *float64 `json:"quantity"`
		Rate     *float64 `json:"rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.service.UpdateItem(c.Param("id"), userID, c.Param("itemID"), ItemPatch{
		Name:     req.Name,
		Quantity: req.Quantity,
		Rate:     req.Rate,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.RemoveItem(c.Param("id"), userID, c.Param("itemID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --------------------------------------------------
// Complete -> assign bill number, persist, discard
// --------------------------------------------------
func (h *Handler) Complete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bill, err := h.service.Complete(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrEmptyBill):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save bill"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         bill.ID,
		"billNumber": bill.BillNumber,
	})
}

func (h *Handler) DiscardSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.DiscardSession(c.Param("id"), userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// --------------------------------------------------
// Saved bills
// --------------------------------------------------
func (h *Handler) ListBills(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bills, err := h.service.ListBills(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bills"})
		return
	}

	if bills == nil {
		bills = []Bill{}
	}
	c.JSON(http.StatusOK, bills)
}

func (h *Handler) UpdateBill(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	billID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bill id"})
		return
	}

	var req struct {
		Items []BillItem `json:"items"`
		Total *float64   `json:"total"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Total == nil || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bill items and total are required"})
		return
	}

	if err := h.service.UpdateBill(c.Request.Context(), userID, billID, req.Items, *req.Total); err != nil {
		if errors.Is(err, ErrBillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update bill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) DeleteBill(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	billID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bill id"})
		return
	}

	if err := h.service.DeleteBill(c.Request.Context(), userID, billID); err != nil {
		if errors.Is(err, ErrBillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete bill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func currentUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user context"})
		return "", false
	}
	return userID, true
}
