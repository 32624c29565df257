package remote

import (
	"log"
	"time"

	"github.com/lib/pq"

	"tmht.org/checkin/core"
)

// NotifyChannel is raised by the row trigger in migrations/schema.sql on
// every insert, update or delete of a check-in row.
const NotifyChannel = "check_ins_changes"

const (
	minReconnect = 2 * time.Second
	maxReconnect = time.Minute
)

// listen starts a pq listener and forwards every notification to onChange.
// The payload is not passed on; consumers are expected to refetch the full
// list rather than trust a payload shape.
func listen(dsn string, onChange func()) (*core.Subscription, error) {
	listener := pq.NewListener(dsn, minReconnect, maxReconnect, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Printf("checkin listener: %v", err)
		}
	})
	if err := listener.Listen(NotifyChannel); err != nil {
		listener.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case _, ok := <-listener.Notify:
				if !ok {
					return
				}
				// a nil notification after a reconnect counts as a change
				// too; rows may have moved while we were away
				onChange()
			}
		}
	}()

	return core.NewSubscription(func() {
		close(done)
		if err := listener.Close(); err != nil {
			log.Printf("checkin listener close: %v", err)
		}
	}), nil
}
