package core

import "sync"

// Subscription is the handle returned by Repository.Subscribe. Unsubscribe
// tears down the underlying change feed and is safe to call more than once.
type Subscription struct {
	once   sync.Once
	cancel func()
}

func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}
