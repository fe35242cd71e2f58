package app

import (
	"github.com/sadeepdeshal/CALCULATOR/internal/eventbus"
	"github.com/sadeepdeshal/CALCULATOR/internal/logger"
)

// auditHandler writes every calculator event to the log at debug level,
// and calculation errors at warning level.
type auditHandler struct {
	logger logger.Logger
}

func subscribeAudit(bus *eventbus.Bus, log logger.Logger) {
	h := &auditHandler{logger: log}
	bus.Subscribe(eventbus.ButtonPressed, h)
	bus.Subscribe(eventbus.DisplayUpdated, h)
	bus.Subscribe(eventbus.CalculationError, h)
}

func (h *auditHandler) Handle(event eventbus.Event) {
	fields := make(map[string]interface{}, len(event.Data)+1)
	for k, v := range event.Data {
		fields[k] = v
	}
	fields["at"] = event.Timestamp

	if event.Type == eventbus.CalculationError {
		h.logger.Warning("Audit", event.Type, fields)
		return
	}
	h.logger.Debug("Audit", event.Type, fields)
}

func (h *auditHandler) GetID() string {
	return "audit"
}
