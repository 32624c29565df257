// Package handlers is the HTTP surface the check-in screens call. Every
// route goes through the record repository; nothing here touches a store
// directly.
package handlers

import (
	"sync"

	"github.com/gin-gonic/gin"

	"tmht.org/checkin/config"
	"tmht.org/checkin/core"
	"tmht.org/checkin/infrastructure/localstore"
)

type Endpoint struct {
	Repo       *core.Repository
	Gen        *core.CodeGenerator
	Ledger     *core.ReleasedLedger
	Classrooms *localstore.ClassroomStore
	Prefs      *localstore.PrefsStore
	Cfg        config.Config

	feed *changeFeed
	sub  *core.Subscription
}

// Deps bundles everything the routes need.
type Deps struct {
	Repo       *core.Repository
	Gen        *core.CodeGenerator
	Ledger     *core.ReleasedLedger
	Classrooms *localstore.ClassroomStore
	Prefs      *localstore.PrefsStore
	Cfg        config.Config
}

// Register wires the check-in routes onto the group and opens the change
// subscription that backs the /checkins/changes long poll.
func Register(r *gin.RouterGroup, deps Deps) (*Endpoint, error) {
	ep := &Endpoint{
		Repo:       deps.Repo,
		Gen:        deps.Gen,
		Ledger:     deps.Ledger,
		Classrooms: deps.Classrooms,
		Prefs:      deps.Prefs,
		Cfg:        deps.Cfg,
		feed:       newChangeFeed(),
	}

	sub, err := deps.Repo.Subscribe(ep.feed.Notify)
	if err != nil {
		return nil, err
	}
	ep.sub = sub

	r.POST("/checkins", ep.Create)
	r.GET("/checkins", ep.List)
	r.GET("/checkins/lookup", ep.Lookup)
	r.POST("/checkins/:id/release", ep.Release)
	r.PATCH("/checkins/:id/classroom", ep.CorrectClassroom)
	r.DELETE("/checkins/:id", ep.Delete)
	r.GET("/checkins/changes", ep.Changes)
	r.GET("/checkins/export.csv", ep.ExportCSV)
	r.GET("/checkins/export.xlsx", ep.ExportXLSX)

	r.GET("/released", ep.ListReleased)
	r.GET("/released/recent", ep.RecentlyReleased)
	r.DELETE("/released", ep.ClearReleased)

	r.GET("/stats", ep.Stats)

	r.GET("/classrooms", ep.ListClassrooms)
	r.POST("/classrooms", ep.AddClassroom)

	r.GET("/prefs", ep.GetPrefs)
	r.PUT("/prefs", ep.SetPrefs)

	return ep, nil
}

// Close tears down the change subscription.
func (ep *Endpoint) Close() {
	ep.sub.Unsubscribe()
}

// changeFeed fans one onChange callback out to any number of waiting long
// polls. Notify closes the current generation's channel; waiters refetch
// and come back for the next one.
type changeFeed struct {
	mu sync.Mutex
	ch chan struct{}
}

func newChangeFeed() *changeFeed {
	return &changeFeed{ch: make(chan struct{})}
}

func (f *changeFeed) Notify() {
	f.mu.Lock()
	close(f.ch)
	f.ch = make(chan struct{})
	f.mu.Unlock()
}

func (f *changeFeed) Wait() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ch
}
