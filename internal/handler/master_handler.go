package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ledgerly/internal/service"
)

// MasterHandler lists the imported masters of the current user.
type MasterHandler struct {
	masterService service.MasterService
}

// NewMasterHandler creates a new MasterHandler.
func NewMasterHandler(masterService service.MasterService) *MasterHandler {
	return &MasterHandler{masterService: masterService}
}

func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

// ListItems handles GET /api/v1/items
// @Summary List items
// @Description List the user's stock items, newest first
// @Tags masters
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Item,meta=PagMeta} "List of items"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /items [get]
func (h *MasterHandler) ListItems(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	items, total, err := h.masterService.ListItems(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, items, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListAccounts handles GET /api/v1/accounts
// @Summary List accounts
// @Description List the user's ledger accounts, newest first
// @Tags masters
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Account,meta=PagMeta} "List of accounts"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /accounts [get]
func (h *MasterHandler) ListAccounts(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	accounts, total, err := h.masterService.ListAccounts(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, accounts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListClients handles GET /api/v1/clients
// @Summary List clients
// @Description List the user's customers, newest first
// @Tags masters
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Party,meta=PagMeta} "List of clients"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /clients [get]
func (h *MasterHandler) ListClients(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	clients, total, err := h.masterService.ListClients(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, clients, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListVendors handles GET /api/v1/vendors
// @Summary List vendors
// @Description List the user's suppliers, newest first
// @Tags masters
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Party,meta=PagMeta} "List of vendors"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /vendors [get]
func (h *MasterHandler) ListVendors(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	vendors, total, err := h.masterService.ListVendors(c.Request.Context(), userID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, vendors, PagMeta{Total: total, Offset: offset, Limit: limit})
}
