package testutils

import (
	"context"
	"log"
	"time"

	"github.com/battiatomatteo/ClanWarMaker-static/containers"
	"github.com/battiatomatteo/ClanWarMaker-static/db"
	"github.com/itbasis/go-clock"
)

// The fixed "now" all database tests run at. Having a mock clock makes the
// today-registrations counter deterministic.
var TestTime = time.Date(2024, 8, 12, 10, 0, 0, 0, time.UTC)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     *clock.Mock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.NewMock()
	clock.Set(TestTime)

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}
