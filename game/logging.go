package game

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-arena/engine"
	"github.com/lixenwraith/vi-arena/event"
)

// logHandler writes every game event to the debug log
type logHandler struct {
	logger logrus.FieldLogger
}

func newLogHandler(l logrus.FieldLogger) *logHandler {
	return &logHandler{logger: l.WithField("component", "events")}
}

func (h *logHandler) EventTypes() []event.EventType {
	return event.AllTypes()
}

func (h *logHandler) HandleEvent(_ *engine.World, ev event.GameEvent) {
	entry := h.logger.WithFields(logrus.Fields{
		"event": ev.Type.String(),
		"tick":  ev.Tick,
	})
	switch p := ev.Payload.(type) {
	case *event.AdversaryPayload:
		entry = entry.WithFields(logrus.Fields{"entity": p.Entity, "kind": p.Type.String(), "health": p.Health})
	case *event.VolleyPayload:
		entry = entry.WithFields(logrus.Fields{"kind": p.Type.String(), "count": p.Count})
	case *event.MilestonePayload:
		entry = entry.WithFields(logrus.Fields{"kills": p.Kills, "offered": len(p.Offered)})
	case *event.PowerUpPayload:
		entry = entry.WithFields(logrus.Fields{"kind": p.Definition.Kind.String(), "expires": p.ExpiresAt})
	case *event.ActorDamagedPayload:
		entry = entry.WithFields(logrus.Fields{"damage": p.Damage, "health": p.Health, "entity": p.Source})
	case *event.SpawnIntervalPayload:
		entry = entry.WithFields(logrus.Fields{"interval": p.Current, "previous": p.Previous})
	}
	entry.Debug("event")
}
