package loader

import (
	"time"

	"github.com/goodnatureofminers/simtrace-backend/internal/trace/event"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveRecord(kind event.Kind, err error)
		ObserveDroppedMessage()
		ObserveLoad(success bool, records int, started time.Time)
	}
)
