// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/quizflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/quizflow/ent/answerevent"
	"github.com/abhisek/quizflow/ent/coachrequestevent"
	"github.com/abhisek/quizflow/ent/sessionentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerEvent is the client for interacting with the AnswerEvent builders.
	AnswerEvent *AnswerEventClient
	// CoachRequestEvent is the client for interacting with the CoachRequestEvent builders.
	CoachRequestEvent *CoachRequestEventClient
	// SessionEntry is the client for interacting with the SessionEntry builders.
	SessionEntry *SessionEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerEvent = NewAnswerEventClient(c.config)
	c.CoachRequestEvent = NewCoachRequestEventClient(c.config)
	c.SessionEntry = NewSessionEntryClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		AnswerEvent:       NewAnswerEventClient(cfg),
		CoachRequestEvent: NewCoachRequestEventClient(cfg),
		SessionEntry:      NewSessionEntryClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		AnswerEvent:       NewAnswerEventClient(cfg),
		CoachRequestEvent: NewCoachRequestEventClient(cfg),
		SessionEntry:      NewSessionEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerEvent.
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
	c.AnswerEvent.Use(hooks...)
	c.CoachRequestEvent.Use(hooks...)
	c.SessionEntry.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnswerEvent.Intercept(interceptors...)
	c.CoachRequestEvent.Intercept(interceptors...)
	c.SessionEntry.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerEventMutation:
		return c.AnswerEvent.mutate(ctx, m)
	case *CoachRequestEventMutation:
		return c.CoachRequestEvent.mutate(ctx, m)
	case *SessionEntryMutation:
		return c.SessionEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerEventClient is a client for the AnswerEvent schema.
type AnswerEventClient struct {
	config
}

// NewAnswerEventClient returns a client for the AnswerEvent from the given config.
func NewAnswerEventClient(c config) *AnswerEventClient {
	return &AnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerevent.Hooks(f(g(h())))`.
func (c *AnswerEventClient) Use(hooks ...Hook) {
	c.hooks.AnswerEvent = append(c.hooks.AnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerevent.Intercept(f(g(h())))`.
func (c *AnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerEvent = append(c.inters.AnswerEvent, interceptors...)
}

// Create returns a builder for creating a AnswerEvent entity.
func (c *AnswerEventClient) Create() *AnswerEventCreate {
	mutation := newAnswerEventMutation(c.config, OpCreate)
	return &AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerEvent entities.
func (c *AnswerEventClient) CreateBulk(builders ...*AnswerEventCreate) *AnswerEventCreateBulk {
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerEventClient) MapCreateBulk(slice any, setFunc func(*AnswerEventCreate, int)) *AnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerEventCreateBulk{err: fmt.Errorf("calling to AnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerEvent.
func (c *AnswerEventClient) Update() *AnswerEventUpdate {
	mutation := newAnswerEventMutation(c.config, OpUpdate)
	return &AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerEventClient) UpdateOne(_m *AnswerEvent) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEvent(_m))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerEventClient) UpdateOneID(id int) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEventID(id))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerEvent.
func (c *AnswerEventClient) Delete() *AnswerEventDelete {
	mutation := newAnswerEventMutation(c.config, OpDelete)
	return &AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerEventClient) DeleteOne(_m *AnswerEvent) *AnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerEventClient) DeleteOneID(id int) *AnswerEventDeleteOne {
	builder := c.Delete().Where(answerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerEventDeleteOne{builder}
}

// Query returns a query builder for AnswerEvent.
func (c *AnswerEventClient) Query() *AnswerEventQuery {
	return &AnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerEvent entity by its id.
func (c *AnswerEventClient) Get(ctx context.Context, id int) (*AnswerEvent, error) {
	return c.Query().Where(answerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerEventClient) GetX(ctx context.Context, id int) *AnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerEventClient) Hooks() []Hook {
	return c.hooks.AnswerEvent
}

// Interceptors returns the client interceptors.
func (c *AnswerEventClient) Interceptors() []Interceptor {
	return c.inters.AnswerEvent
}

func (c *AnswerEventClient) mutate(ctx context.Context, m *AnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerEvent mutation op: %q", m.Op())
	}
}

// CoachRequestEventClient is a client for the CoachRequestEvent schema.
type CoachRequestEventClient struct {
	config
}

// NewCoachRequestEventClient returns a client for the CoachRequestEvent from the given config.
func NewCoachRequestEventClient(c config) *CoachRequestEventClient {
	return &CoachRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `coachrequestevent.Hooks(f(g(h())))`.
func (c *CoachRequestEventClient) Use(hooks ...Hook) {
	c.hooks.CoachRequestEvent = append(c.hooks.CoachRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `coachrequestevent.Intercept(f(g(h())))`.
func (c *CoachRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CoachRequestEvent = append(c.inters.CoachRequestEvent, interceptors...)
}

// Create returns a builder for creating a CoachRequestEvent entity.
func (c *CoachRequestEventClient) Create() *CoachRequestEventCreate {
	mutation := newCoachRequestEventMutation(c.config, OpCreate)
	return &CoachRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CoachRequestEvent entities.
func (c *CoachRequestEventClient) CreateBulk(builders ...*CoachRequestEventCreate) *CoachRequestEventCreateBulk {
	return &CoachRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CoachRequestEventClient) MapCreateBulk(slice any, setFunc func(*CoachRequestEventCreate, int)) *CoachRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CoachRequestEventCreateBulk{err: fmt.Errorf("calling to CoachRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CoachRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CoachRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CoachRequestEvent.
func (c *CoachRequestEventClient) Update() *CoachRequestEventUpdate {
	mutation := newCoachRequestEventMutation(c.config, OpUpdate)
	return &CoachRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CoachRequestEventClient) UpdateOne(_m *CoachRequestEvent) *CoachRequestEventUpdateOne {
	mutation := newCoachRequestEventMutation(c.config, OpUpdateOne, withCoachRequestEvent(_m))
	return &CoachRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CoachRequestEventClient) UpdateOneID(id int) *CoachRequestEventUpdateOne {
	mutation := newCoachRequestEventMutation(c.config, OpUpdateOne, withCoachRequestEventID(id))
	return &CoachRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CoachRequestEvent.
func (c *CoachRequestEventClient) Delete() *CoachRequestEventDelete {
	mutation := newCoachRequestEventMutation(c.config, OpDelete)
	return &CoachRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CoachRequestEventClient) DeleteOne(_m *CoachRequestEvent) *CoachRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CoachRequestEventClient) DeleteOneID(id int) *CoachRequestEventDeleteOne {
	builder := c.Delete().Where(coachrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CoachRequestEventDeleteOne{builder}
}

// Query returns a query builder for CoachRequestEvent.
func (c *CoachRequestEventClient) Query() *CoachRequestEventQuery {
	return &CoachRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCoachRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CoachRequestEvent entity by its id.
func (c *CoachRequestEventClient) Get(ctx context.Context, id int) (*CoachRequestEvent, error) {
	return c.Query().Where(coachrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CoachRequestEventClient) GetX(ctx context.Context, id int) *CoachRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CoachRequestEventClient) Hooks() []Hook {
	return c.hooks.CoachRequestEvent
}

// Interceptors returns the client interceptors.
func (c *CoachRequestEventClient) Interceptors() []Interceptor {
	return c.inters.CoachRequestEvent
}

func (c *CoachRequestEventClient) mutate(ctx context.Context, m *CoachRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CoachRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CoachRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CoachRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CoachRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CoachRequestEvent mutation op: %q", m.Op())
	}
}

// SessionEntryClient is a client for the SessionEntry schema.
type SessionEntryClient struct {
	config
}

// NewSessionEntryClient returns a client for the SessionEntry from the given config.
func NewSessionEntryClient(c config) *SessionEntryClient {
	return &SessionEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionentry.Hooks(f(g(h())))`.
func (c *SessionEntryClient) Use(hooks ...Hook) {
	c.hooks.SessionEntry = append(c.hooks.SessionEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionentry.Intercept(f(g(h())))`.
func (c *SessionEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEntry = append(c.inters.SessionEntry, interceptors...)
}

// Create returns a builder for creating a SessionEntry entity.
func (c *SessionEntryClient) Create() *SessionEntryCreate {
	mutation := newSessionEntryMutation(c.config, OpCreate)
	return &SessionEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEntry entities.
func (c *SessionEntryClient) CreateBulk(builders ...*SessionEntryCreate) *SessionEntryCreateBulk {
	return &SessionEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEntryClient) MapCreateBulk(slice any, setFunc func(*SessionEntryCreate, int)) *SessionEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEntryCreateBulk{err: fmt.Errorf("calling to SessionEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEntry.
func (c *SessionEntryClient) Update() *SessionEntryUpdate {
	mutation := newSessionEntryMutation(c.config, OpUpdate)
	return &SessionEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEntryClient) UpdateOne(_m *SessionEntry) *SessionEntryUpdateOne {
	mutation := newSessionEntryMutation(c.config, OpUpdateOne, withSessionEntry(_m))
	return &SessionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEntryClient) UpdateOneID(id int) *SessionEntryUpdateOne {
	mutation := newSessionEntryMutation(c.config, OpUpdateOne, withSessionEntryID(id))
	return &SessionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEntry.
func (c *SessionEntryClient) Delete() *SessionEntryDelete {
	mutation := newSessionEntryMutation(c.config, OpDelete)
	return &SessionEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEntryClient) DeleteOne(_m *SessionEntry) *SessionEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEntryClient) DeleteOneID(id int) *SessionEntryDeleteOne {
	builder := c.Delete().Where(sessionentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEntryDeleteOne{builder}
}

// Query returns a query builder for SessionEntry.
func (c *SessionEntryClient) Query() *SessionEntryQuery {
	return &SessionEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEntry entity by its id.
func (c *SessionEntryClient) Get(ctx context.Context, id int) (*SessionEntry, error) {
	return c.Query().Where(sessionentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEntryClient) GetX(ctx context.Context, id int) *SessionEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEntryClient) Hooks() []Hook {
	return c.hooks.SessionEntry
}

// Interceptors returns the client interceptors.
func (c *SessionEntryClient) Interceptors() []Interceptor {
	return c.inters.SessionEntry
}

func (c *SessionEntryClient) mutate(ctx context.Context, m *SessionEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerEvent, CoachRequestEvent, SessionEntry []ent.Hook
	}
	inters struct {
		AnswerEvent, CoachRequestEvent, SessionEntry []ent.Interceptor
	}
)
