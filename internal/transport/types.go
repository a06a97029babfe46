package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"time"

	"github.com/goodnatureofminers/simtrace-backend/internal/service"
)

type TraceSource interface {
	Current() *service.Loaded
}

type Metrics interface {
	ObserveRequest(route, method string, code int, started time.Time)
}
