package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/chetansai93/eshanee-chetan-backend/internal/domain"
	"github.com/chetansai93/eshanee-chetan-backend/internal/service"
)

type Handler struct {
	Menu   service.MenuServiceInterface
	Orders service.OrderServiceInterface
}

func NewHandler(menu service.MenuServiceInterface, orders service.OrderServiceInterface) *Handler {
	return &Handler{Menu: menu, Orders: orders}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")

	r.HandleFunc("/api/menu", h.listMenuItems).Methods("GET")
	r.HandleFunc("/api/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{id}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/orders/guest", h.createGuestOrder).Methods("POST")
	r.HandleFunc("/api/orders/stats", h.orderStats).Methods("GET")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.orderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
}

// caller identity arrives pre-authenticated from the gateway.
func callerIdentity(r *http.Request) (int, string) {
	id, _ := strconv.Atoi(r.Header.Get("X-User-Id"))
	return id, r.Header.Get("X-User-Role")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, map[string]interface{}{"success": true, "data": data})
}

func writeMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, map[string]interface{}{"success": true, "message": message, "data": data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"success": false, "message": message})
}

func requireRole(w http.ResponseWriter, r *http.Request, roles ...string) bool {
	id, role := callerIdentity(r)
	if id == 0 && role == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return false
	}
	for _, allowed := range roles {
		if role == allowed {
			return true
		}
	}
	writeError(w, http.StatusForbidden, "Insufficient permissions")
	return false
}

// writeServiceError maps the service error taxonomy to HTTP; unexpected
// failures are logged in full and surfaced as the generic message.
func writeServiceError(w http.ResponseWriter, err error, generic string) {
	switch {
	case errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrGuestProfile),
		errors.Is(err, service.ErrInvalidMenuItem):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrOrderNotFound), errors.Is(err, service.ErrItemNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("%s: %v", generic, err)
		writeError(w, http.StatusInternalServerError, generic)
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "restaurant-backend",
	})
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	var isVeg *bool
	if raw := r.URL.Query().Get("is_veg"); raw != "" {
		veg := raw == "true"
		isVeg = &veg
	}

	items, err := h.Menu.ListItems(category, isVeg)
	if err != nil {
		writeServiceError(w, err, "Failed to list menu items")
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeData(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	item, err := h.Menu.GetItem(id)
	if err != nil {
		writeServiceError(w, err, "Failed to get menu item")
		return
	}
	writeData(w, http.StatusOK, item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, domain.RoleAdmin) {
		return
	}

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := h.Menu.CreateItem(&item); err != nil {
		writeServiceError(w, err, "Failed to create menu item")
		return
	}
	writeMessage(w, http.StatusCreated, "Menu item created successfully", item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, domain.RoleAdmin) {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var update domain.MenuItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	item, err := h.Menu.UpdateItem(id, update)
	if err != nil {
		writeServiceError(w, err, "Failed to update menu item")
		return
	}
	writeMessage(w, http.StatusOK, "Menu item updated successfully", item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, domain.RoleAdmin) {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Menu.DeleteItem(id); err != nil {
		writeServiceError(w, err, "Failed to delete menu item")
		return
	}
	writeMessage(w, http.StatusOK, "Menu item deleted successfully", nil)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	callerID, _ := callerIdentity(r)
	if callerID == 0 {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req domain.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	order, err := h.Orders.Create(r.Context(), callerID, req)
	if err != nil {
		writeServiceError(w, err, "Failed to create order")
		return
	}
	writeMessage(w, http.StatusCreated, "Order created successfully", order)
}

// createGuestOrder is public; its failure response deliberately carries the
// underlying error detail to aid operational debugging.
func (h *Handler) createGuestOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.GuestOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	order, err := h.Orders.CreateGuest(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGuestProfile),
			errors.Is(err, service.ErrEmptyOrder),
			errors.Is(err, service.ErrInvalidQuantity),
			errors.Is(err, service.ErrItemUnavailable):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("Failed to create guest order: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"message": "Failed to create order",
				"error":   err.Error(),
			})
		}
		return
	}
	writeMessage(w, http.StatusCreated, "Guest order created successfully", order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	callerID, role := callerIdentity(r)
	if callerID == 0 {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	orders, err := h.Orders.List(callerID, role, r.URL.Query().Get("status"), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err, "Failed to list orders")
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeData(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	callerID, role := callerIdentity(r)
	if callerID == 0 {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Orders.Get(callerID, role, id)
	if err != nil {
		writeServiceError(w, err, "Failed to get order")
		return
	}
	writeData(w, http.StatusOK, order)
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	callerID, role := callerIdentity(r)
	if callerID == 0 {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Orders.Get(callerID, role, id)
	if err != nil {
		writeServiceError(w, err, "Failed to get order")
		return
	}

	png, err := qrcode.Encode(order.OrderNumber, qrcode.Medium, 256)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, domain.RoleAdmin, domain.RoleEmployee) {
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	order, err := h.Orders.SetStatus(r.Context(), id, payload.Status)
	if err != nil {
		writeServiceError(w, err, "Failed to update order status")
		return
	}
	writeMessage(w, http.StatusOK, "Order status updated successfully", order)
}

func (h *Handler) orderStats(w http.ResponseWriter, r *http.Request) {
	if !requireRole(w, r, domain.RoleAdmin, domain.RoleEmployee) {
		return
	}

	stats, err := h.Orders.Stats(r.Context(), r.URL.Query().Get("period"), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err, "Failed to get order stats")
		return
	}
	writeData(w, http.StatusOK, stats)
}
