// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/acampos/giftwise/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/acampos/giftwise/ent/developmentplan"
	"github.com/acampos/giftwise/ent/giftresult"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DevelopmentPlan is the client for interacting with the DevelopmentPlan builders.
	DevelopmentPlan *DevelopmentPlanClient
	// GiftResult is the client for interacting with the GiftResult builders.
	GiftResult *GiftResultClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DevelopmentPlan = NewDevelopmentPlanClient(c.config)
	c.GiftResult = NewGiftResultClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		DevelopmentPlan: NewDevelopmentPlanClient(cfg),
		GiftResult:      NewGiftResultClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		DevelopmentPlan: NewDevelopmentPlanClient(cfg),
		GiftResult:      NewGiftResultClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DevelopmentPlan.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.DevelopmentPlan.Use(hooks...)
	c.GiftResult.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DevelopmentPlan.Intercept(interceptors...)
	c.GiftResult.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DevelopmentPlanMutation:
		return c.DevelopmentPlan.mutate(ctx, m)
	case *GiftResultMutation:
		return c.GiftResult.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DevelopmentPlanClient is a client for the DevelopmentPlan schema.
type DevelopmentPlanClient struct {
	config
}

// NewDevelopmentPlanClient returns a client for the DevelopmentPlan from the given config.
func NewDevelopmentPlanClient(c config) *DevelopmentPlanClient {
	return &DevelopmentPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `developmentplan.Hooks(f(g(h())))`.
func (c *DevelopmentPlanClient) Use(hooks ...Hook) {
	c.hooks.DevelopmentPlan = append(c.hooks.DevelopmentPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `developmentplan.Intercept(f(g(h())))`.
func (c *DevelopmentPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.DevelopmentPlan = append(c.inters.DevelopmentPlan, interceptors...)
}

// Create returns a builder for creating a DevelopmentPlan entity.
func (c *DevelopmentPlanClient) Create() *DevelopmentPlanCreate {
	mutation := newDevelopmentPlanMutation(c.config, OpCreate)
	return &DevelopmentPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DevelopmentPlan entities.
func (c *DevelopmentPlanClient) CreateBulk(builders ...*DevelopmentPlanCreate) *DevelopmentPlanCreateBulk {
	return &DevelopmentPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DevelopmentPlanClient) MapCreateBulk(slice any, setFunc func(*DevelopmentPlanCreate, int)) *DevelopmentPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DevelopmentPlanCreateBulk{err: fmt.Errorf("calling to DevelopmentPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DevelopmentPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DevelopmentPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DevelopmentPlan.
func (c *DevelopmentPlanClient) Update() *DevelopmentPlanUpdate {
	mutation := newDevelopmentPlanMutation(c.config, OpUpdate)
	return &DevelopmentPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DevelopmentPlanClient) UpdateOne(_m *DevelopmentPlan) *DevelopmentPlanUpdateOne {
	mutation := newDevelopmentPlanMutation(c.config, OpUpdateOne, withDevelopmentPlan(_m))
	return &DevelopmentPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DevelopmentPlanClient) UpdateOneID(id int) *DevelopmentPlanUpdateOne {
	mutation := newDevelopmentPlanMutation(c.config, OpUpdateOne, withDevelopmentPlanID(id))
	return &DevelopmentPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DevelopmentPlan.
func (c *DevelopmentPlanClient) Delete() *DevelopmentPlanDelete {
	mutation := newDevelopmentPlanMutation(c.config, OpDelete)
	return &DevelopmentPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DevelopmentPlanClient) DeleteOne(_m *DevelopmentPlan) *DevelopmentPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DevelopmentPlanClient) DeleteOneID(id int) *DevelopmentPlanDeleteOne {
	builder := c.Delete().Where(developmentplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DevelopmentPlanDeleteOne{builder}
}

// Query returns a query builder for DevelopmentPlan.
func (c *DevelopmentPlanClient) Query() *DevelopmentPlanQuery {
	return &DevelopmentPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDevelopmentPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a DevelopmentPlan entity by its id.
func (c *DevelopmentPlanClient) Get(ctx context.Context, id int) (*DevelopmentPlan, error) {
	return c.Query().Where(developmentplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DevelopmentPlanClient) GetX(ctx context.Context, id int) *DevelopmentPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DevelopmentPlanClient) Hooks() []Hook {
	return c.hooks.DevelopmentPlan
}

// Interceptors returns the client interceptors.
func (c *DevelopmentPlanClient) Interceptors() []Interceptor {
	return c.inters.DevelopmentPlan
}

func (c *DevelopmentPlanClient) mutate(ctx context.Context, m *DevelopmentPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DevelopmentPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DevelopmentPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DevelopmentPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DevelopmentPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DevelopmentPlan mutation op: %q", m.Op())
	}
}

// GiftResultClient is a client for the GiftResult schema.
type GiftResultClient struct {
	config
}

// NewGiftResultClient returns a client for the GiftResult from the given config.
func NewGiftResultClient(c config) *GiftResultClient {
	return &GiftResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `giftresult.Hooks(f(g(h())))`.
func (c *GiftResultClient) Use(hooks ...Hook) {
	c.hooks.GiftResult = append(c.hooks.GiftResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `giftresult.Intercept(f(g(h())))`.
func (c *GiftResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.GiftResult = append(c.inters.GiftResult, interceptors...)
}

// Create returns a builder for creating a GiftResult entity.
func (c *GiftResultClient) Create() *GiftResultCreate {
	mutation := newGiftResultMutation(c.config, OpCreate)
	return &GiftResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GiftResult entities.
func (c *GiftResultClient) CreateBulk(builders ...*GiftResultCreate) *GiftResultCreateBulk {
	return &GiftResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GiftResultClient) MapCreateBulk(slice any, setFunc func(*GiftResultCreate, int)) *GiftResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GiftResultCreateBulk{err: fmt.Errorf("calling to GiftResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GiftResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GiftResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GiftResult.
func (c *GiftResultClient) Update() *GiftResultUpdate {
	mutation := newGiftResultMutation(c.config, OpUpdate)
	return &GiftResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GiftResultClient) UpdateOne(_m *GiftResult) *GiftResultUpdateOne {
	mutation := newGiftResultMutation(c.config, OpUpdateOne, withGiftResult(_m))
	return &GiftResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GiftResultClient) UpdateOneID(id int) *GiftResultUpdateOne {
	mutation := newGiftResultMutation(c.config, OpUpdateOne, withGiftResultID(id))
	return &GiftResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GiftResult.
func (c *GiftResultClient) Delete() *GiftResultDelete {
	mutation := newGiftResultMutation(c.config, OpDelete)
	return &GiftResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GiftResultClient) DeleteOne(_m *GiftResult) *GiftResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GiftResultClient) DeleteOneID(id int) *GiftResultDeleteOne {
	builder := c.Delete().Where(giftresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GiftResultDeleteOne{builder}
}

// Query returns a query builder for GiftResult.
func (c *GiftResultClient) Query() *GiftResultQuery {
	return &GiftResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGiftResult},
		inters: c.Interceptors(),
	}
}

// Get returns a GiftResult entity by its id.
func (c *GiftResultClient) Get(ctx context.Context, id int) (*GiftResult, error) {
	return c.Query().Where(giftresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GiftResultClient) GetX(ctx context.Context, id int) *GiftResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GiftResultClient) Hooks() []Hook {
	return c.hooks.GiftResult
}

// Interceptors returns the client interceptors.
func (c *GiftResultClient) Interceptors() []Interceptor {
	return c.inters.GiftResult
}

func (c *GiftResultClient) mutate(ctx context.Context, m *GiftResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GiftResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GiftResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GiftResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GiftResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GiftResult mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DevelopmentPlan, GiftResult []ent.Hook
	}
	inters struct {
		DevelopmentPlan, GiftResult []ent.Interceptor
	}
)
