package audit

import "github.com/sirupsen/logrus"

type Event struct {
	GesseiroID *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Dispatcher grava eventos de auditoria fora do caminho da requisição.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.GesseiroID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logrus.WithError(err).Warn("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila cheia: auditoria nunca derruba a API
		logrus.Warn("audit queue full, dropping event")
	}
}
