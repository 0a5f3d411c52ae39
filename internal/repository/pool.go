package repository

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/dailypulse/pkg/cleanup"
)

// newPool opens and pings a pgx pool, registering its shutdown as a cleanup job.
func newPool(cfg DBConfig, owner string) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for " + owner + " error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for " + owner + ": " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool of " + owner,
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

func pingConn(conn PgConnection, owner string) {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for " + owner + ": " + err.Error())
	}
}
