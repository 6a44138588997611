package handler

import (
	"github.com/labstack/echo/v4"

	"hello-responder/internal/service"
)

// ResponderHandler is the single catch-all handler of the main listener.
type ResponderHandler struct {
	responder service.Responder
}

// NewResponderHandler creates a ResponderHandler around the process's responder.
func NewResponderHandler(r service.Responder) *ResponderHandler {
	return &ResponderHandler{responder: r}
}

// Handle answers any method on any path. The request is not inspected beyond
// its context. Write errors are left to Echo's error handler.
func (h *ResponderHandler) Handle(c echo.Context) error {
	reply := h.responder.Respond(c.Request().Context())
	// c.HTML would send echo's "charset=UTF-8"; the content type must be exact.
	return c.Blob(reply.StatusCode, reply.ContentType, reply.Body)
}
