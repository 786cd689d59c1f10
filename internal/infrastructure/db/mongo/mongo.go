// Package mongo keeps the append-only user audit trail in MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultTimeout = 10 * time.Second

var errNoDatabase = errors.New("mongo: database name required")

// Config selects the audit database. AppName shows up in server-side logs.
type Config struct {
	URI      string
	Database string
	AppName  string
	Timeout  time.Duration
}

// AuditStore owns the client behind the audit trail.
type AuditStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects and pings the primary. The store is unusable on error.
func Open(ctx context.Context, cfg Config) (*AuditStore, error) {
	if cfg.Database == "" {
		return nil, errNoDatabase
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	openCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout)
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}

	client, err := mongo.Connect(openCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(openCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(openCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &AuditStore{client: client, db: client.Database(cfg.Database)}, nil
}

// UserEvents returns the repository over the user_events collection.
func (s *AuditStore) UserEvents() *UserAuditRepository {
	return NewUserAuditRepository(s.db)
}

// Ping satisfies the readiness check.
func (s *AuditStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *AuditStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
