// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/zapgate/zapgate/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/zapgate/zapgate/ent/auditevent"
	"github.com/zapgate/zapgate/ent/chatsession"
	"github.com/zapgate/zapgate/ent/dedupeentry"
	"github.com/zapgate/zapgate/ent/inboundprocessinglog"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditEvent is the client for interacting with the AuditEvent builders.
	AuditEvent *AuditEventClient
	// ChatSession is the client for interacting with the ChatSession builders.
	ChatSession *ChatSessionClient
	// DedupeEntry is the client for interacting with the DedupeEntry builders.
	DedupeEntry *DedupeEntryClient
	// InboundProcessingLog is the client for interacting with the InboundProcessingLog builders.
	InboundProcessingLog *InboundProcessingLogClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditEvent = NewAuditEventClient(c.config)
	c.ChatSession = NewChatSessionClient(c.config)
	c.DedupeEntry = NewDedupeEntryClient(c.config)
	c.InboundProcessingLog = NewInboundProcessingLogClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		AuditEvent:           NewAuditEventClient(cfg),
		ChatSession:          NewChatSessionClient(cfg),
		DedupeEntry:          NewDedupeEntryClient(cfg),
		InboundProcessingLog: NewInboundProcessingLogClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		AuditEvent:           NewAuditEventClient(cfg),
		ChatSession:          NewChatSessionClient(cfg),
		DedupeEntry:          NewDedupeEntryClient(cfg),
		InboundProcessingLog: NewInboundProcessingLogClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditEvent.
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
	c.AuditEvent.Use(hooks...)
	c.ChatSession.Use(hooks...)
	c.DedupeEntry.Use(hooks...)
	c.InboundProcessingLog.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AuditEvent.Intercept(interceptors...)
	c.ChatSession.Intercept(interceptors...)
	c.DedupeEntry.Intercept(interceptors...)
	c.InboundProcessingLog.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditEventMutation:
		return c.AuditEvent.mutate(ctx, m)
	case *ChatSessionMutation:
		return c.ChatSession.mutate(ctx, m)
	case *DedupeEntryMutation:
		return c.DedupeEntry.mutate(ctx, m)
	case *InboundProcessingLogMutation:
		return c.InboundProcessingLog.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditEventClient is a client for the AuditEvent schema.
type AuditEventClient struct {
	config
}

// NewAuditEventClient returns a client for the AuditEvent from the given config.
func NewAuditEventClient(c config) *AuditEventClient {
	return &AuditEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditevent.Hooks(f(g(h())))`.
func (c *AuditEventClient) Use(hooks ...Hook) {
	c.hooks.AuditEvent = append(c.hooks.AuditEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditevent.Intercept(f(g(h())))`.
func (c *AuditEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEvent = append(c.inters.AuditEvent, interceptors...)
}

// Create returns a builder for creating a AuditEvent entity.
func (c *AuditEventClient) Create() *AuditEventCreate {
	mutation := newAuditEventMutation(c.config, OpCreate)
	return &AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEvent entities.
func (c *AuditEventClient) CreateBulk(builders ...*AuditEventCreate) *AuditEventCreateBulk {
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEventClient) MapCreateBulk(slice any, setFunc func(*AuditEventCreate, int)) *AuditEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEventCreateBulk{err: fmt.Errorf("calling to AuditEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEvent.
func (c *AuditEventClient) Update() *AuditEventUpdate {
	mutation := newAuditEventMutation(c.config, OpUpdate)
	return &AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEventClient) UpdateOne(_m *AuditEvent) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEvent(_m))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEventClient) UpdateOneID(id string) *AuditEventUpdateOne {
	mutation := newAuditEventMutation(c.config, OpUpdateOne, withAuditEventID(id))
	return &AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEvent.
func (c *AuditEventClient) Delete() *AuditEventDelete {
	mutation := newAuditEventMutation(c.config, OpDelete)
	return &AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEventClient) DeleteOne(_m *AuditEvent) *AuditEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEventClient) DeleteOneID(id string) *AuditEventDeleteOne {
	builder := c.Delete().Where(auditevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEventDeleteOne{builder}
}

// Query returns a query builder for AuditEvent.
func (c *AuditEventClient) Query() *AuditEventQuery {
	return &AuditEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEvent entity by its id.
func (c *AuditEventClient) Get(ctx context.Context, id string) (*AuditEvent, error) {
	return c.Query().Where(auditevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEventClient) GetX(ctx context.Context, id string) *AuditEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditEventClient) Hooks() []Hook {
	return c.hooks.AuditEvent
}

// Interceptors returns the client interceptors.
func (c *AuditEventClient) Interceptors() []Interceptor {
	return c.inters.AuditEvent
}

func (c *AuditEventClient) mutate(ctx context.Context, m *AuditEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEvent mutation op: %q", m.Op())
	}
}

// ChatSessionClient is a client for the ChatSession schema.
type ChatSessionClient struct {
	config
}

// NewChatSessionClient returns a client for the ChatSession from the given config.
func NewChatSessionClient(c config) *ChatSessionClient {
	return &ChatSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatsession.Hooks(f(g(h())))`.
func (c *ChatSessionClient) Use(hooks ...Hook) {
	c.hooks.ChatSession = append(c.hooks.ChatSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatsession.Intercept(f(g(h())))`.
func (c *ChatSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatSession = append(c.inters.ChatSession, interceptors...)
}

// Create returns a builder for creating a ChatSession entity.
func (c *ChatSessionClient) Create() *ChatSessionCreate {
	mutation := newChatSessionMutation(c.config, OpCreate)
	return &ChatSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatSession entities.
func (c *ChatSessionClient) CreateBulk(builders ...*ChatSessionCreate) *ChatSessionCreateBulk {
	return &ChatSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatSessionClient) MapCreateBulk(slice any, setFunc func(*ChatSessionCreate, int)) *ChatSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatSessionCreateBulk{err: fmt.Errorf("calling to ChatSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatSession.
func (c *ChatSessionClient) Update() *ChatSessionUpdate {
	mutation := newChatSessionMutation(c.config, OpUpdate)
	return &ChatSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatSessionClient) UpdateOne(_m *ChatSession) *ChatSessionUpdateOne {
	mutation := newChatSessionMutation(c.config, OpUpdateOne, withChatSession(_m))
	return &ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatSessionClient) UpdateOneID(id string) *ChatSessionUpdateOne {
	mutation := newChatSessionMutation(c.config, OpUpdateOne, withChatSessionID(id))
	return &ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatSession.
func (c *ChatSessionClient) Delete() *ChatSessionDelete {
	mutation := newChatSessionMutation(c.config, OpDelete)
	return &ChatSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatSessionClient) DeleteOne(_m *ChatSession) *ChatSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatSessionClient) DeleteOneID(id string) *ChatSessionDeleteOne {
	builder := c.Delete().Where(chatsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatSessionDeleteOne{builder}
}

// Query returns a query builder for ChatSession.
func (c *ChatSessionClient) Query() *ChatSessionQuery {
	return &ChatSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatSession entity by its id.
func (c *ChatSessionClient) Get(ctx context.Context, id string) (*ChatSession, error) {
	return c.Query().Where(chatsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatSessionClient) GetX(ctx context.Context, id string) *ChatSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatSessionClient) Hooks() []Hook {
	return c.hooks.ChatSession
}

// Interceptors returns the client interceptors.
func (c *ChatSessionClient) Interceptors() []Interceptor {
	return c.inters.ChatSession
}

func (c *ChatSessionClient) mutate(ctx context.Context, m *ChatSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatSession mutation op: %q", m.Op())
	}
}

// DedupeEntryClient is a client for the DedupeEntry schema.
type DedupeEntryClient struct {
	config
}

// NewDedupeEntryClient returns a client for the DedupeEntry from the given config.
func NewDedupeEntryClient(c config) *DedupeEntryClient {
	return &DedupeEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dedupeentry.Hooks(f(g(h())))`.
func (c *DedupeEntryClient) Use(hooks ...Hook) {
	c.hooks.DedupeEntry = append(c.hooks.DedupeEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dedupeentry.Intercept(f(g(h())))`.
func (c *DedupeEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.DedupeEntry = append(c.inters.DedupeEntry, interceptors...)
}

// Create returns a builder for creating a DedupeEntry entity.
func (c *DedupeEntryClient) Create() *DedupeEntryCreate {
	mutation := newDedupeEntryMutation(c.config, OpCreate)
	return &DedupeEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DedupeEntry entities.
func (c *DedupeEntryClient) CreateBulk(builders ...*DedupeEntryCreate) *DedupeEntryCreateBulk {
	return &DedupeEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DedupeEntryClient) MapCreateBulk(slice any, setFunc func(*DedupeEntryCreate, int)) *DedupeEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DedupeEntryCreateBulk{err: fmt.Errorf("calling to DedupeEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DedupeEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DedupeEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DedupeEntry.
func (c *DedupeEntryClient) Update() *DedupeEntryUpdate {
	mutation := newDedupeEntryMutation(c.config, OpUpdate)
	return &DedupeEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DedupeEntryClient) UpdateOne(_m *DedupeEntry) *DedupeEntryUpdateOne {
	mutation := newDedupeEntryMutation(c.config, OpUpdateOne, withDedupeEntry(_m))
	return &DedupeEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DedupeEntryClient) UpdateOneID(id string) *DedupeEntryUpdateOne {
	mutation := newDedupeEntryMutation(c.config, OpUpdateOne, withDedupeEntryID(id))
	return &DedupeEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DedupeEntry.
func (c *DedupeEntryClient) Delete() *DedupeEntryDelete {
	mutation := newDedupeEntryMutation(c.config, OpDelete)
	return &DedupeEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DedupeEntryClient) DeleteOne(_m *DedupeEntry) *DedupeEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DedupeEntryClient) DeleteOneID(id string) *DedupeEntryDeleteOne {
	builder := c.Delete().Where(dedupeentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DedupeEntryDeleteOne{builder}
}

// Query returns a query builder for DedupeEntry.
func (c *DedupeEntryClient) Query() *DedupeEntryQuery {
	return &DedupeEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDedupeEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a DedupeEntry entity by its id.
func (c *DedupeEntryClient) Get(ctx context.Context, id string) (*DedupeEntry, error) {
	return c.Query().Where(dedupeentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DedupeEntryClient) GetX(ctx context.Context, id string) *DedupeEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DedupeEntryClient) Hooks() []Hook {
	return c.hooks.DedupeEntry
}

// Interceptors returns the client interceptors.
func (c *DedupeEntryClient) Interceptors() []Interceptor {
	return c.inters.DedupeEntry
}

func (c *DedupeEntryClient) mutate(ctx context.Context, m *DedupeEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DedupeEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DedupeEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DedupeEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DedupeEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DedupeEntry mutation op: %q", m.Op())
	}
}

// InboundProcessingLogClient is a client for the InboundProcessingLog schema.
type InboundProcessingLogClient struct {
	config
}

// NewInboundProcessingLogClient returns a client for the InboundProcessingLog from the given config.
func NewInboundProcessingLogClient(c config) *InboundProcessingLogClient {
	return &InboundProcessingLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inboundprocessinglog.Hooks(f(g(h())))`.
func (c *InboundProcessingLogClient) Use(hooks ...Hook) {
	c.hooks.InboundProcessingLog = append(c.hooks.InboundProcessingLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inboundprocessinglog.Intercept(f(g(h())))`.
func (c *InboundProcessingLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.InboundProcessingLog = append(c.inters.InboundProcessingLog, interceptors...)
}

// Create returns a builder for creating a InboundProcessingLog entity.
func (c *InboundProcessingLogClient) Create() *InboundProcessingLogCreate {
	mutation := newInboundProcessingLogMutation(c.config, OpCreate)
	return &InboundProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InboundProcessingLog entities.
func (c *InboundProcessingLogClient) CreateBulk(builders ...*InboundProcessingLogCreate) *InboundProcessingLogCreateBulk {
	return &InboundProcessingLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InboundProcessingLogClient) MapCreateBulk(slice any, setFunc func(*InboundProcessingLogCreate, int)) *InboundProcessingLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InboundProcessingLogCreateBulk{err: fmt.Errorf("calling to InboundProcessingLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InboundProcessingLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InboundProcessingLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InboundProcessingLog.
func (c *InboundProcessingLogClient) Update() *InboundProcessingLogUpdate {
	mutation := newInboundProcessingLogMutation(c.config, OpUpdate)
	return &InboundProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InboundProcessingLogClient) UpdateOne(_m *InboundProcessingLog) *InboundProcessingLogUpdateOne {
	mutation := newInboundProcessingLogMutation(c.config, OpUpdateOne, withInboundProcessingLog(_m))
	return &InboundProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InboundProcessingLogClient) UpdateOneID(id string) *InboundProcessingLogUpdateOne {
	mutation := newInboundProcessingLogMutation(c.config, OpUpdateOne, withInboundProcessingLogID(id))
	return &InboundProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InboundProcessingLog.
func (c *InboundProcessingLogClient) Delete() *InboundProcessingLogDelete {
	mutation := newInboundProcessingLogMutation(c.config, OpDelete)
	return &InboundProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InboundProcessingLogClient) DeleteOne(_m *InboundProcessingLog) *InboundProcessingLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InboundProcessingLogClient) DeleteOneID(id string) *InboundProcessingLogDeleteOne {
	builder := c.Delete().Where(inboundprocessinglog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InboundProcessingLogDeleteOne{builder}
}

// Query returns a query builder for InboundProcessingLog.
func (c *InboundProcessingLogClient) Query() *InboundProcessingLogQuery {
	return &InboundProcessingLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInboundProcessingLog},
		inters: c.Interceptors(),
	}
}

// Get returns a InboundProcessingLog entity by its id.
func (c *InboundProcessingLogClient) Get(ctx context.Context, id string) (*InboundProcessingLog, error) {
	return c.Query().Where(inboundprocessinglog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InboundProcessingLogClient) GetX(ctx context.Context, id string) *InboundProcessingLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InboundProcessingLogClient) Hooks() []Hook {
	return c.hooks.InboundProcessingLog
}

// Interceptors returns the client interceptors.
func (c *InboundProcessingLogClient) Interceptors() []Interceptor {
	return c.inters.InboundProcessingLog
}

func (c *InboundProcessingLogClient) mutate(ctx context.Context, m *InboundProcessingLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InboundProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InboundProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InboundProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InboundProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InboundProcessingLog mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditEvent, ChatSession, DedupeEntry, InboundProcessingLog []ent.Hook
	}
	inters struct {
		AuditEvent, ChatSession, DedupeEntry, InboundProcessingLog []ent.Interceptor
	}
)
