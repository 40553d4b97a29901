package mongodb

import (
	"context"
	"strings"
	"warehouse/packages/common/config"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type connector struct {
	isConnected        bool
	client             *mongo.Client
	employeeCollection *mongo.Collection
	orderCollection    *mongo.Collection
	productCollection  *mongo.Collection
}

// Replaces '<user>' and '<password>' placeholders in uri
func connectionURI(uri, user, password string) string {
	return strings.Replace(strings.Replace(uri, "<user>", user, 1), "<password>", password, 1)
}

// Connect to database. Panics on failure.
func (c *connector) Connect() {
	if c.isConnected {
		dbLogger.Panic("DB connection failed", "Connection already established", nil)
	}

	dbLogger.Info("Connecting to DB...", nil)

	uri := connectionURI(config.Secret.DatabaseURI, config.Secret.DatabaseUser, config.Secret.DatabasePassword)

	ctx, cancel := queryContext()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetTimeout(config.DB.QueryTimeout()))
	if err != nil {
		dbLogger.Panic("DB connection failed", errors.Wrap(err, "connect").Error(), nil)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		dbLogger.Panic("DB connection failed", errors.Wrap(err, "ping").Error(), nil)
	}

	c.use(client.Database(config.DB.Name))

	dbLogger.Info("Connecting to DB: OK", nil)
}

func (c *connector) use(db *mongo.Database) {
	c.client = db.Client()
	c.employeeCollection = db.Collection(config.DB.EmployeeCollectionName)
	c.orderCollection = db.Collection(config.DB.OrderCollectionName)
	c.productCollection = db.Collection(config.DB.ProductCollectionName)
	c.isConnected = true
}

func (c *connector) Disconnect() error {
	if !c.isConnected {
		return errors.New("connection not established")
	}

	dbLogger.Info("Disconnecting from DB...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), config.DB.QueryTimeout())
	defer cancel()

	if err := c.client.Disconnect(ctx); err != nil {
		return errors.Wrap(err, "disconnect")
	}

	c.isConnected = false

	dbLogger.Info("Disconnecting from DB: OK", nil)

	return nil
}

// Returns nil if DB responds
func (c *connector) Ping() error {
	if !c.isConnected {
		return errors.New("connection not established")
	}

	ctx, cancel := queryContext()
	defer cancel()

	_, err := breaker.Execute(func() (any, error) {
		return nil, c.client.Ping(ctx, readpref.Primary())
	})

	return err
}
