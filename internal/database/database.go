package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/AnshRaj112/profile-api/internal/config"
)

const (
	// OperationTimeout bounds every point lookup and query.
	OperationTimeout = 30 * time.Second
	// ServerSelectionTimeout bounds cluster discovery.
	ServerSelectionTimeout = 15 * time.Second
	// ConnectTimeout bounds a single node handshake.
	ConnectTimeout = 10 * time.Second
)

// Connection holds the MongoDB client and the database (bucket) every
// collection lives in. It is created once at startup and shared read-only.
type Connection struct {
	Client *mongo.Client
	DB     *mongo.Database
	scope  string
}

// NewConnection wraps an existing database handle.
func NewConnection(db *mongo.Database, scope string) *Connection {
	return &Connection{Client: db.Client(), DB: db, scope: scope}
}

// Collection returns the handle for a collection inside the configured scope.
func (c *Connection) Collection(name string) *mongo.Collection {
	return c.DB.Collection(CollectionName(c.scope, name))
}

// Scope returns the scope collections are namespaced under.
func (c *Connection) Scope() string {
	return c.scope
}

// Namespace identifies the database and scope, e.g. sample_app.profiles.
func (c *Connection) Namespace() string {
	return CollectionName(c.DB.Name(), c.scope)
}

// CollectionName builds the physical collection name, e.g. profiles.user_data.
func CollectionName(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}

// BuildURI assembles the connection string from the individual settings
// unless a full MONGODB_URI was configured.
func BuildURI(cfg *config.Config) string {
	if cfg.MongoURI != "" {
		return cfg.MongoURI
	}

	scheme := "mongodb"
	if cfg.MongoExternal {
		scheme = "mongodb+srv"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   cfg.MongoHost,
		Path:   "/" + cfg.MongoDatabase,
	}
	if cfg.MongoUser != "" {
		u.User = url.UserPassword(cfg.MongoUser, cfg.MongoPassword)
	}
	if cfg.MongoTLS {
		q := url.Values{}
		q.Set("tls", "true")
		q.Set("tlsInsecure", "true")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// Connect opens the client, verifies the primary is reachable and returns
// the shared Connection. Any failure here is fatal to startup; nothing retries.
func Connect(ctx context.Context, cfg *config.Config) (*Connection, error) {
	clientOptions := options.Client().
		ApplyURI(BuildURI(cfg)).
		SetTimeout(OperationTimeout).
		SetServerSelectionTimeout(ServerSelectionTimeout).
		SetConnectTimeout(ConnectTimeout).
		SetRetryReads(false).
		SetRetryWrites(false)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, ServerSelectionTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &Connection{
		Client: client,
		DB:     client.Database(cfg.MongoDatabase),
		scope:  cfg.MongoScope,
	}, nil
}

// Disconnect closes the client's pooled connections.
func (c *Connection) Disconnect(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return c.Client.Disconnect(ctx)
}
