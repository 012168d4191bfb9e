package syncer

import (
	"context"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

// Monitor reports remote reachability. Changes emits a value on every
// online/offline transition.
type Monitor interface {
	IsOnline() bool
	Changes() <-chan bool
}

// Pinger is anything that can probe the remote store, e.g. the mirror's
// Redis PING.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingMonitor derives connectivity from periodic probes of the remote
// store. It lives for the whole process, there is no teardown beyond
// cancelling the Run context.
type PingMonitor struct {
	pinger   Pinger
	interval time.Duration
	online   atomic.Bool
	changes  chan bool
}

func NewPingMonitor(pinger Pinger, interval time.Duration) *PingMonitor {
	return &PingMonitor{
		pinger:   pinger,
		interval: interval,
		changes:  make(chan bool, 4),
	}
}

func (m *PingMonitor) IsOnline() bool {
	return m.online.Load()
}

func (m *PingMonitor) Changes() <-chan bool {
	return m.changes
}

// Run probes until the context is cancelled. Blocking, call it in its
// own goroutine.
func (m *PingMonitor) Run(ctx context.Context) {
	m.probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *PingMonitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	err := m.pinger.Ping(probeCtx)
	nowOnline := err == nil
	wasOnline := m.online.Swap(nowOnline)
	if wasOnline == nowOnline {
		return
	}

	if nowOnline {
		log.Infoln("connectivity restored")
	} else {
		log.Warnf("connectivity lost: %s", err)
	}

	select {
	case m.changes <- nowOnline:
	default:
	}
}
