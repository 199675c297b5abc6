// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/halfmoonlabs/chatloop/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/halfmoonlabs/chatloop/ent/interaction"
	"github.com/halfmoonlabs/chatloop/ent/messagecursor"
	"github.com/halfmoonlabs/chatloop/ent/protocolauditlog"
	"github.com/halfmoonlabs/chatloop/ent/protocolstatus"
	"github.com/halfmoonlabs/chatloop/ent/quarantinemessage"
	"github.com/halfmoonlabs/chatloop/ent/recoveryoperation"
	"github.com/halfmoonlabs/chatloop/ent/statustransition"
	"github.com/halfmoonlabs/chatloop/ent/usercurrentstatus"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Interaction is the client for interacting with the Interaction builders.
	Interaction *InteractionClient
	// MessageCursor is the client for interacting with the MessageCursor builders.
	MessageCursor *MessageCursorClient
	// ProtocolAuditLog is the client for interacting with the ProtocolAuditLog builders.
	ProtocolAuditLog *ProtocolAuditLogClient
	// ProtocolStatus is the client for interacting with the ProtocolStatus builders.
	ProtocolStatus *ProtocolStatusClient
	// QuarantineMessage is the client for interacting with the QuarantineMessage builders.
	QuarantineMessage *QuarantineMessageClient
	// RecoveryOperation is the client for interacting with the RecoveryOperation builders.
	RecoveryOperation *RecoveryOperationClient
	// StatusTransition is the client for interacting with the StatusTransition builders.
	StatusTransition *StatusTransitionClient
	// UserCurrentStatus is the client for interacting with the UserCurrentStatus builders.
	UserCurrentStatus *UserCurrentStatusClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Interaction = NewInteractionClient(c.config)
	c.MessageCursor = NewMessageCursorClient(c.config)
	c.ProtocolAuditLog = NewProtocolAuditLogClient(c.config)
	c.ProtocolStatus = NewProtocolStatusClient(c.config)
	c.QuarantineMessage = NewQuarantineMessageClient(c.config)
	c.RecoveryOperation = NewRecoveryOperationClient(c.config)
	c.StatusTransition = NewStatusTransitionClient(c.config)
	c.UserCurrentStatus = NewUserCurrentStatusClient(c.config)
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
		Interaction:       NewInteractionClient(cfg),
		MessageCursor:     NewMessageCursorClient(cfg),
		ProtocolAuditLog:  NewProtocolAuditLogClient(cfg),
		ProtocolStatus:    NewProtocolStatusClient(cfg),
		QuarantineMessage: NewQuarantineMessageClient(cfg),
		RecoveryOperation: NewRecoveryOperationClient(cfg),
		StatusTransition:  NewStatusTransitionClient(cfg),
		UserCurrentStatus: NewUserCurrentStatusClient(cfg),
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
		Interaction:       NewInteractionClient(cfg),
		MessageCursor:     NewMessageCursorClient(cfg),
		ProtocolAuditLog:  NewProtocolAuditLogClient(cfg),
		ProtocolStatus:    NewProtocolStatusClient(cfg),
		QuarantineMessage: NewQuarantineMessageClient(cfg),
		RecoveryOperation: NewRecoveryOperationClient(cfg),
		StatusTransition:  NewStatusTransitionClient(cfg),
		UserCurrentStatus: NewUserCurrentStatusClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Interaction.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Interaction, c.MessageCursor, c.ProtocolAuditLog, c.ProtocolStatus,
		c.QuarantineMessage, c.RecoveryOperation, c.StatusTransition,
		c.UserCurrentStatus,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Interaction, c.MessageCursor, c.ProtocolAuditLog, c.ProtocolStatus,
		c.QuarantineMessage, c.RecoveryOperation, c.StatusTransition,
		c.UserCurrentStatus,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *InteractionMutation:
		return c.Interaction.mutate(ctx, m)
	case *MessageCursorMutation:
		return c.MessageCursor.mutate(ctx, m)
	case *ProtocolAuditLogMutation:
		return c.ProtocolAuditLog.mutate(ctx, m)
	case *ProtocolStatusMutation:
		return c.ProtocolStatus.mutate(ctx, m)
	case *QuarantineMessageMutation:
		return c.QuarantineMessage.mutate(ctx, m)
	case *RecoveryOperationMutation:
		return c.RecoveryOperation.mutate(ctx, m)
	case *StatusTransitionMutation:
		return c.StatusTransition.mutate(ctx, m)
	case *UserCurrentStatusMutation:
		return c.UserCurrentStatus.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// InteractionClient is a client for the Interaction schema.
type InteractionClient struct {
	config
}

// NewInteractionClient returns a client for the Interaction from the given config.
func NewInteractionClient(c config) *InteractionClient {
	return &InteractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interaction.Hooks(f(g(h())))`.
func (c *InteractionClient) Use(hooks ...Hook) {
	c.hooks.Interaction = append(c.hooks.Interaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interaction.Intercept(f(g(h())))`.
func (c *InteractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Interaction = append(c.inters.Interaction, interceptors...)
}

// Create returns a builder for creating a Interaction entity.
func (c *InteractionClient) Create() *InteractionCreate {
	mutation := newInteractionMutation(c.config, OpCreate)
	return &InteractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Interaction entities.
func (c *InteractionClient) CreateBulk(builders ...*InteractionCreate) *InteractionCreateBulk {
	return &InteractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InteractionClient) MapCreateBulk(slice any, setFunc func(*InteractionCreate, int)) *InteractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InteractionCreateBulk{err: fmt.Errorf("calling to InteractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InteractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InteractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Interaction.
func (c *InteractionClient) Update() *InteractionUpdate {
	mutation := newInteractionMutation(c.config, OpUpdate)
	return &InteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InteractionClient) UpdateOne(_m *Interaction) *InteractionUpdateOne {
	mutation := newInteractionMutation(c.config, OpUpdateOne, withInteraction(_m))
	return &InteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InteractionClient) UpdateOneID(id string) *InteractionUpdateOne {
	mutation := newInteractionMutation(c.config, OpUpdateOne, withInteractionID(id))
	return &InteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Interaction.
func (c *InteractionClient) Delete() *InteractionDelete {
	mutation := newInteractionMutation(c.config, OpDelete)
	return &InteractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InteractionClient) DeleteOne(_m *Interaction) *InteractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InteractionClient) DeleteOneID(id string) *InteractionDeleteOne {
	builder := c.Delete().Where(interaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InteractionDeleteOne{builder}
}

// Query returns a query builder for Interaction.
func (c *InteractionClient) Query() *InteractionQuery {
	return &InteractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInteraction},
		inters: c.Interceptors(),
	}
}

// Get returns a Interaction entity by its id.
func (c *InteractionClient) Get(ctx context.Context, id string) (*Interaction, error) {
	return c.Query().Where(interaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InteractionClient) GetX(ctx context.Context, id string) *Interaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InteractionClient) Hooks() []Hook {
	return c.hooks.Interaction
}

// Interceptors returns the client interceptors.
func (c *InteractionClient) Interceptors() []Interceptor {
	return c.inters.Interaction
}

func (c *InteractionClient) mutate(ctx context.Context, m *InteractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InteractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InteractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Interaction mutation op: %q", m.Op())
	}
}

// MessageCursorClient is a client for the MessageCursor schema.
type MessageCursorClient struct {
	config
}

// NewMessageCursorClient returns a client for the MessageCursor from the given config.
func NewMessageCursorClient(c config) *MessageCursorClient {
	return &MessageCursorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messagecursor.Hooks(f(g(h())))`.
func (c *MessageCursorClient) Use(hooks ...Hook) {
	c.hooks.MessageCursor = append(c.hooks.MessageCursor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messagecursor.Intercept(f(g(h())))`.
func (c *MessageCursorClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageCursor = append(c.inters.MessageCursor, interceptors...)
}

// Create returns a builder for creating a MessageCursor entity.
func (c *MessageCursorClient) Create() *MessageCursorCreate {
	mutation := newMessageCursorMutation(c.config, OpCreate)
	return &MessageCursorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageCursor entities.
func (c *MessageCursorClient) CreateBulk(builders ...*MessageCursorCreate) *MessageCursorCreateBulk {
	return &MessageCursorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageCursorClient) MapCreateBulk(slice any, setFunc func(*MessageCursorCreate, int)) *MessageCursorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCursorCreateBulk{err: fmt.Errorf("calling to MessageCursorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCursorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCursorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageCursor.
func (c *MessageCursorClient) Update() *MessageCursorUpdate {
	mutation := newMessageCursorMutation(c.config, OpUpdate)
	return &MessageCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageCursorClient) UpdateOne(_m *MessageCursor) *MessageCursorUpdateOne {
	mutation := newMessageCursorMutation(c.config, OpUpdateOne, withMessageCursor(_m))
	return &MessageCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageCursorClient) UpdateOneID(id int64) *MessageCursorUpdateOne {
	mutation := newMessageCursorMutation(c.config, OpUpdateOne, withMessageCursorID(id))
	return &MessageCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageCursor.
func (c *MessageCursorClient) Delete() *MessageCursorDelete {
	mutation := newMessageCursorMutation(c.config, OpDelete)
	return &MessageCursorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageCursorClient) DeleteOne(_m *MessageCursor) *MessageCursorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageCursorClient) DeleteOneID(id int64) *MessageCursorDeleteOne {
	builder := c.Delete().Where(messagecursor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageCursorDeleteOne{builder}
}

// Query returns a query builder for MessageCursor.
func (c *MessageCursorClient) Query() *MessageCursorQuery {
	return &MessageCursorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageCursor},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageCursor entity by its id.
func (c *MessageCursorClient) Get(ctx context.Context, id int64) (*MessageCursor, error) {
	return c.Query().Where(messagecursor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageCursorClient) GetX(ctx context.Context, id int64) *MessageCursor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageCursorClient) Hooks() []Hook {
	return c.hooks.MessageCursor
}

// Interceptors returns the client interceptors.
func (c *MessageCursorClient) Interceptors() []Interceptor {
	return c.inters.MessageCursor
}

func (c *MessageCursorClient) mutate(ctx context.Context, m *MessageCursorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCursorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageCursorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageCursorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageCursorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageCursor mutation op: %q", m.Op())
	}
}

// ProtocolAuditLogClient is a client for the ProtocolAuditLog schema.
type ProtocolAuditLogClient struct {
	config
}

// NewProtocolAuditLogClient returns a client for the ProtocolAuditLog from the given config.
func NewProtocolAuditLogClient(c config) *ProtocolAuditLogClient {
	return &ProtocolAuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `protocolauditlog.Hooks(f(g(h())))`.
func (c *ProtocolAuditLogClient) Use(hooks ...Hook) {
	c.hooks.ProtocolAuditLog = append(c.hooks.ProtocolAuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `protocolauditlog.Intercept(f(g(h())))`.
func (c *ProtocolAuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProtocolAuditLog = append(c.inters.ProtocolAuditLog, interceptors...)
}

// Create returns a builder for creating a ProtocolAuditLog entity.
func (c *ProtocolAuditLogClient) Create() *ProtocolAuditLogCreate {
	mutation := newProtocolAuditLogMutation(c.config, OpCreate)
	return &ProtocolAuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProtocolAuditLog entities.
func (c *ProtocolAuditLogClient) CreateBulk(builders ...*ProtocolAuditLogCreate) *ProtocolAuditLogCreateBulk {
	return &ProtocolAuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProtocolAuditLogClient) MapCreateBulk(slice any, setFunc func(*ProtocolAuditLogCreate, int)) *ProtocolAuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProtocolAuditLogCreateBulk{err: fmt.Errorf("calling to ProtocolAuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProtocolAuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProtocolAuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProtocolAuditLog.
func (c *ProtocolAuditLogClient) Update() *ProtocolAuditLogUpdate {
	mutation := newProtocolAuditLogMutation(c.config, OpUpdate)
	return &ProtocolAuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProtocolAuditLogClient) UpdateOne(_m *ProtocolAuditLog) *ProtocolAuditLogUpdateOne {
	mutation := newProtocolAuditLogMutation(c.config, OpUpdateOne, withProtocolAuditLog(_m))
	return &ProtocolAuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProtocolAuditLogClient) UpdateOneID(id string) *ProtocolAuditLogUpdateOne {
	mutation := newProtocolAuditLogMutation(c.config, OpUpdateOne, withProtocolAuditLogID(id))
	return &ProtocolAuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProtocolAuditLog.
func (c *ProtocolAuditLogClient) Delete() *ProtocolAuditLogDelete {
	mutation := newProtocolAuditLogMutation(c.config, OpDelete)
	return &ProtocolAuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProtocolAuditLogClient) DeleteOne(_m *ProtocolAuditLog) *ProtocolAuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProtocolAuditLogClient) DeleteOneID(id string) *ProtocolAuditLogDeleteOne {
	builder := c.Delete().Where(protocolauditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProtocolAuditLogDeleteOne{builder}
}

// Query returns a query builder for ProtocolAuditLog.
func (c *ProtocolAuditLogClient) Query() *ProtocolAuditLogQuery {
	return &ProtocolAuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProtocolAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ProtocolAuditLog entity by its id.
func (c *ProtocolAuditLogClient) Get(ctx context.Context, id string) (*ProtocolAuditLog, error) {
	return c.Query().Where(protocolauditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProtocolAuditLogClient) GetX(ctx context.Context, id string) *ProtocolAuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProtocolAuditLogClient) Hooks() []Hook {
	return c.hooks.ProtocolAuditLog
}

// Interceptors returns the client interceptors.
func (c *ProtocolAuditLogClient) Interceptors() []Interceptor {
	return c.inters.ProtocolAuditLog
}

func (c *ProtocolAuditLogClient) mutate(ctx context.Context, m *ProtocolAuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProtocolAuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProtocolAuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProtocolAuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProtocolAuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProtocolAuditLog mutation op: %q", m.Op())
	}
}

// ProtocolStatusClient is a client for the ProtocolStatus schema.
type ProtocolStatusClient struct {
	config
}

// NewProtocolStatusClient returns a client for the ProtocolStatus from the given config.
func NewProtocolStatusClient(c config) *ProtocolStatusClient {
	return &ProtocolStatusClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `protocolstatus.Hooks(f(g(h())))`.
func (c *ProtocolStatusClient) Use(hooks ...Hook) {
	c.hooks.ProtocolStatus = append(c.hooks.ProtocolStatus, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `protocolstatus.Intercept(f(g(h())))`.
func (c *ProtocolStatusClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProtocolStatus = append(c.inters.ProtocolStatus, interceptors...)
}

// Create returns a builder for creating a ProtocolStatus entity.
func (c *ProtocolStatusClient) Create() *ProtocolStatusCreate {
	mutation := newProtocolStatusMutation(c.config, OpCreate)
	return &ProtocolStatusCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProtocolStatus entities.
func (c *ProtocolStatusClient) CreateBulk(builders ...*ProtocolStatusCreate) *ProtocolStatusCreateBulk {
	return &ProtocolStatusCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProtocolStatusClient) MapCreateBulk(slice any, setFunc func(*ProtocolStatusCreate, int)) *ProtocolStatusCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProtocolStatusCreateBulk{err: fmt.Errorf("calling to ProtocolStatusClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProtocolStatusCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProtocolStatusCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProtocolStatus.
func (c *ProtocolStatusClient) Update() *ProtocolStatusUpdate {
	mutation := newProtocolStatusMutation(c.config, OpUpdate)
	return &ProtocolStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProtocolStatusClient) UpdateOne(_m *ProtocolStatus) *ProtocolStatusUpdateOne {
	mutation := newProtocolStatusMutation(c.config, OpUpdateOne, withProtocolStatus(_m))
	return &ProtocolStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProtocolStatusClient) UpdateOneID(id int64) *ProtocolStatusUpdateOne {
	mutation := newProtocolStatusMutation(c.config, OpUpdateOne, withProtocolStatusID(id))
	return &ProtocolStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProtocolStatus.
func (c *ProtocolStatusClient) Delete() *ProtocolStatusDelete {
	mutation := newProtocolStatusMutation(c.config, OpDelete)
	return &ProtocolStatusDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProtocolStatusClient) DeleteOne(_m *ProtocolStatus) *ProtocolStatusDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProtocolStatusClient) DeleteOneID(id int64) *ProtocolStatusDeleteOne {
	builder := c.Delete().Where(protocolstatus.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProtocolStatusDeleteOne{builder}
}

// Query returns a query builder for ProtocolStatus.
func (c *ProtocolStatusClient) Query() *ProtocolStatusQuery {
	return &ProtocolStatusQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProtocolStatus},
		inters: c.Interceptors(),
	}
}

// Get returns a ProtocolStatus entity by its id.
func (c *ProtocolStatusClient) Get(ctx context.Context, id int64) (*ProtocolStatus, error) {
	return c.Query().Where(protocolstatus.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProtocolStatusClient) GetX(ctx context.Context, id int64) *ProtocolStatus {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProtocolStatusClient) Hooks() []Hook {
	return c.hooks.ProtocolStatus
}

// Interceptors returns the client interceptors.
func (c *ProtocolStatusClient) Interceptors() []Interceptor {
	return c.inters.ProtocolStatus
}

func (c *ProtocolStatusClient) mutate(ctx context.Context, m *ProtocolStatusMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProtocolStatusCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProtocolStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProtocolStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProtocolStatusDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProtocolStatus mutation op: %q", m.Op())
	}
}

// QuarantineMessageClient is a client for the QuarantineMessage schema.
type QuarantineMessageClient struct {
	config
}

// NewQuarantineMessageClient returns a client for the QuarantineMessage from the given config.
func NewQuarantineMessageClient(c config) *QuarantineMessageClient {
	return &QuarantineMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quarantinemessage.Hooks(f(g(h())))`.
func (c *QuarantineMessageClient) Use(hooks ...Hook) {
	c.hooks.QuarantineMessage = append(c.hooks.QuarantineMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quarantinemessage.Intercept(f(g(h())))`.
func (c *QuarantineMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuarantineMessage = append(c.inters.QuarantineMessage, interceptors...)
}

// Create returns a builder for creating a QuarantineMessage entity.
func (c *QuarantineMessageClient) Create() *QuarantineMessageCreate {
	mutation := newQuarantineMessageMutation(c.config, OpCreate)
	return &QuarantineMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuarantineMessage entities.
func (c *QuarantineMessageClient) CreateBulk(builders ...*QuarantineMessageCreate) *QuarantineMessageCreateBulk {
	return &QuarantineMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuarantineMessageClient) MapCreateBulk(slice any, setFunc func(*QuarantineMessageCreate, int)) *QuarantineMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuarantineMessageCreateBulk{err: fmt.Errorf("calling to QuarantineMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuarantineMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuarantineMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuarantineMessage.
func (c *QuarantineMessageClient) Update() *QuarantineMessageUpdate {
	mutation := newQuarantineMessageMutation(c.config, OpUpdate)
	return &QuarantineMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuarantineMessageClient) UpdateOne(_m *QuarantineMessage) *QuarantineMessageUpdateOne {
	mutation := newQuarantineMessageMutation(c.config, OpUpdateOne, withQuarantineMessage(_m))
	return &QuarantineMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuarantineMessageClient) UpdateOneID(id string) *QuarantineMessageUpdateOne {
	mutation := newQuarantineMessageMutation(c.config, OpUpdateOne, withQuarantineMessageID(id))
	return &QuarantineMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuarantineMessage.
func (c *QuarantineMessageClient) Delete() *QuarantineMessageDelete {
	mutation := newQuarantineMessageMutation(c.config, OpDelete)
	return &QuarantineMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuarantineMessageClient) DeleteOne(_m *QuarantineMessage) *QuarantineMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuarantineMessageClient) DeleteOneID(id string) *QuarantineMessageDeleteOne {
	builder := c.Delete().Where(quarantinemessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuarantineMessageDeleteOne{builder}
}

// Query returns a query builder for QuarantineMessage.
func (c *QuarantineMessageClient) Query() *QuarantineMessageQuery {
	return &QuarantineMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuarantineMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a QuarantineMessage entity by its id.
func (c *QuarantineMessageClient) Get(ctx context.Context, id string) (*QuarantineMessage, error) {
	return c.Query().Where(quarantinemessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuarantineMessageClient) GetX(ctx context.Context, id string) *QuarantineMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuarantineMessageClient) Hooks() []Hook {
	return c.hooks.QuarantineMessage
}

// Interceptors returns the client interceptors.
func (c *QuarantineMessageClient) Interceptors() []Interceptor {
	return c.inters.QuarantineMessage
}

func (c *QuarantineMessageClient) mutate(ctx context.Context, m *QuarantineMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuarantineMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuarantineMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuarantineMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuarantineMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuarantineMessage mutation op: %q", m.Op())
	}
}

// RecoveryOperationClient is a client for the RecoveryOperation schema.
type RecoveryOperationClient struct {
	config
}

// NewRecoveryOperationClient returns a client for the RecoveryOperation from the given config.
func NewRecoveryOperationClient(c config) *RecoveryOperationClient {
	return &RecoveryOperationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recoveryoperation.Hooks(f(g(h())))`.
func (c *RecoveryOperationClient) Use(hooks ...Hook) {
	c.hooks.RecoveryOperation = append(c.hooks.RecoveryOperation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recoveryoperation.Intercept(f(g(h())))`.
func (c *RecoveryOperationClient) Intercept(interceptors ...Interceptor) {
	c.inters.RecoveryOperation = append(c.inters.RecoveryOperation, interceptors...)
}

// Create returns a builder for creating a RecoveryOperation entity.
func (c *RecoveryOperationClient) Create() *RecoveryOperationCreate {
	mutation := newRecoveryOperationMutation(c.config, OpCreate)
	return &RecoveryOperationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RecoveryOperation entities.
func (c *RecoveryOperationClient) CreateBulk(builders ...*RecoveryOperationCreate) *RecoveryOperationCreateBulk {
	return &RecoveryOperationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecoveryOperationClient) MapCreateBulk(slice any, setFunc func(*RecoveryOperationCreate, int)) *RecoveryOperationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecoveryOperationCreateBulk{err: fmt.Errorf("calling to RecoveryOperationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecoveryOperationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecoveryOperationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RecoveryOperation.
func (c *RecoveryOperationClient) Update() *RecoveryOperationUpdate {
	mutation := newRecoveryOperationMutation(c.config, OpUpdate)
	return &RecoveryOperationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecoveryOperationClient) UpdateOne(_m *RecoveryOperation) *RecoveryOperationUpdateOne {
	mutation := newRecoveryOperationMutation(c.config, OpUpdateOne, withRecoveryOperation(_m))
	return &RecoveryOperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecoveryOperationClient) UpdateOneID(id string) *RecoveryOperationUpdateOne {
	mutation := newRecoveryOperationMutation(c.config, OpUpdateOne, withRecoveryOperationID(id))
	return &RecoveryOperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RecoveryOperation.
func (c *RecoveryOperationClient) Delete() *RecoveryOperationDelete {
	mutation := newRecoveryOperationMutation(c.config, OpDelete)
	return &RecoveryOperationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecoveryOperationClient) DeleteOne(_m *RecoveryOperation) *RecoveryOperationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecoveryOperationClient) DeleteOneID(id string) *RecoveryOperationDeleteOne {
	builder := c.Delete().Where(recoveryoperation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecoveryOperationDeleteOne{builder}
}

// Query returns a query builder for RecoveryOperation.
func (c *RecoveryOperationClient) Query() *RecoveryOperationQuery {
	return &RecoveryOperationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecoveryOperation},
		inters: c.Interceptors(),
	}
}

// Get returns a RecoveryOperation entity by its id.
func (c *RecoveryOperationClient) Get(ctx context.Context, id string) (*RecoveryOperation, error) {
	return c.Query().Where(recoveryoperation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecoveryOperationClient) GetX(ctx context.Context, id string) *RecoveryOperation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RecoveryOperationClient) Hooks() []Hook {
	return c.hooks.RecoveryOperation
}

// Interceptors returns the client interceptors.
func (c *RecoveryOperationClient) Interceptors() []Interceptor {
	return c.inters.RecoveryOperation
}

func (c *RecoveryOperationClient) mutate(ctx context.Context, m *RecoveryOperationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecoveryOperationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecoveryOperationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecoveryOperationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecoveryOperationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RecoveryOperation mutation op: %q", m.Op())
	}
}

// StatusTransitionClient is a client for the StatusTransition schema.
type StatusTransitionClient struct {
	config
}

// NewStatusTransitionClient returns a client for the StatusTransition from the given config.
func NewStatusTransitionClient(c config) *StatusTransitionClient {
	return &StatusTransitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `statustransition.Hooks(f(g(h())))`.
func (c *StatusTransitionClient) Use(hooks ...Hook) {
	c.hooks.StatusTransition = append(c.hooks.StatusTransition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `statustransition.Intercept(f(g(h())))`.
func (c *StatusTransitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StatusTransition = append(c.inters.StatusTransition, interceptors...)
}

// Create returns a builder for creating a StatusTransition entity.
func (c *StatusTransitionClient) Create() *StatusTransitionCreate {
	mutation := newStatusTransitionMutation(c.config, OpCreate)
	return &StatusTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StatusTransition entities.
func (c *StatusTransitionClient) CreateBulk(builders ...*StatusTransitionCreate) *StatusTransitionCreateBulk {
	return &StatusTransitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StatusTransitionClient) MapCreateBulk(slice any, setFunc func(*StatusTransitionCreate, int)) *StatusTransitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StatusTransitionCreateBulk{err: fmt.Errorf("calling to StatusTransitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StatusTransitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StatusTransitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StatusTransition.
func (c *StatusTransitionClient) Update() *StatusTransitionUpdate {
	mutation := newStatusTransitionMutation(c.config, OpUpdate)
	return &StatusTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StatusTransitionClient) UpdateOne(_m *StatusTransition) *StatusTransitionUpdateOne {
	mutation := newStatusTransitionMutation(c.config, OpUpdateOne, withStatusTransition(_m))
	return &StatusTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StatusTransitionClient) UpdateOneID(id string) *StatusTransitionUpdateOne {
	mutation := newStatusTransitionMutation(c.config, OpUpdateOne, withStatusTransitionID(id))
	return &StatusTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StatusTransition.
func (c *StatusTransitionClient) Delete() *StatusTransitionDelete {
	mutation := newStatusTransitionMutation(c.config, OpDelete)
	return &StatusTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StatusTransitionClient) DeleteOne(_m *StatusTransition) *StatusTransitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StatusTransitionClient) DeleteOneID(id string) *StatusTransitionDeleteOne {
	builder := c.Delete().Where(statustransition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StatusTransitionDeleteOne{builder}
}

// Query returns a query builder for StatusTransition.
func (c *StatusTransitionClient) Query() *StatusTransitionQuery {
	return &StatusTransitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStatusTransition},
		inters: c.Interceptors(),
	}
}

// Get returns a StatusTransition entity by its id.
func (c *StatusTransitionClient) Get(ctx context.Context, id string) (*StatusTransition, error) {
	return c.Query().Where(statustransition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StatusTransitionClient) GetX(ctx context.Context, id string) *StatusTransition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StatusTransitionClient) Hooks() []Hook {
	return c.hooks.StatusTransition
}

// Interceptors returns the client interceptors.
func (c *StatusTransitionClient) Interceptors() []Interceptor {
	return c.inters.StatusTransition
}

func (c *StatusTransitionClient) mutate(ctx context.Context, m *StatusTransitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StatusTransitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StatusTransitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StatusTransitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StatusTransitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StatusTransition mutation op: %q", m.Op())
	}
}

// UserCurrentStatusClient is a client for the UserCurrentStatus schema.
type UserCurrentStatusClient struct {
	config
}

// NewUserCurrentStatusClient returns a client for the UserCurrentStatus from the given config.
func NewUserCurrentStatusClient(c config) *UserCurrentStatusClient {
	return &UserCurrentStatusClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usercurrentstatus.Hooks(f(g(h())))`.
func (c *UserCurrentStatusClient) Use(hooks ...Hook) {
	c.hooks.UserCurrentStatus = append(c.hooks.UserCurrentStatus, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usercurrentstatus.Intercept(f(g(h())))`.
func (c *UserCurrentStatusClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserCurrentStatus = append(c.inters.UserCurrentStatus, interceptors...)
}

// Create returns a builder for creating a UserCurrentStatus entity.
func (c *UserCurrentStatusClient) Create() *UserCurrentStatusCreate {
	mutation := newUserCurrentStatusMutation(c.config, OpCreate)
	return &UserCurrentStatusCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserCurrentStatus entities.
func (c *UserCurrentStatusClient) CreateBulk(builders ...*UserCurrentStatusCreate) *UserCurrentStatusCreateBulk {
	return &UserCurrentStatusCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserCurrentStatusClient) MapCreateBulk(slice any, setFunc func(*UserCurrentStatusCreate, int)) *UserCurrentStatusCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCurrentStatusCreateBulk{err: fmt.Errorf("calling to UserCurrentStatusClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCurrentStatusCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCurrentStatusCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserCurrentStatus.
func (c *UserCurrentStatusClient) Update() *UserCurrentStatusUpdate {
	mutation := newUserCurrentStatusMutation(c.config, OpUpdate)
	return &UserCurrentStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserCurrentStatusClient) UpdateOne(_m *UserCurrentStatus) *UserCurrentStatusUpdateOne {
	mutation := newUserCurrentStatusMutation(c.config, OpUpdateOne, withUserCurrentStatus(_m))
	return &UserCurrentStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserCurrentStatusClient) UpdateOneID(id int64) *UserCurrentStatusUpdateOne {
	mutation := newUserCurrentStatusMutation(c.config, OpUpdateOne, withUserCurrentStatusID(id))
	return &UserCurrentStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserCurrentStatus.
func (c *UserCurrentStatusClient) Delete() *UserCurrentStatusDelete {
	mutation := newUserCurrentStatusMutation(c.config, OpDelete)
	return &UserCurrentStatusDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserCurrentStatusClient) DeleteOne(_m *UserCurrentStatus) *UserCurrentStatusDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserCurrentStatusClient) DeleteOneID(id int64) *UserCurrentStatusDeleteOne {
	builder := c.Delete().Where(usercurrentstatus.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserCurrentStatusDeleteOne{builder}
}

// Query returns a query builder for UserCurrentStatus.
func (c *UserCurrentStatusClient) Query() *UserCurrentStatusQuery {
	return &UserCurrentStatusQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserCurrentStatus},
		inters: c.Interceptors(),
	}
}

// Get returns a UserCurrentStatus entity by its id.
func (c *UserCurrentStatusClient) Get(ctx context.Context, id int64) (*UserCurrentStatus, error) {
	return c.Query().Where(usercurrentstatus.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserCurrentStatusClient) GetX(ctx context.Context, id int64) *UserCurrentStatus {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserCurrentStatusClient) Hooks() []Hook {
	return c.hooks.UserCurrentStatus
}

// Interceptors returns the client interceptors.
func (c *UserCurrentStatusClient) Interceptors() []Interceptor {
	return c.inters.UserCurrentStatus
}

func (c *UserCurrentStatusClient) mutate(ctx context.Context, m *UserCurrentStatusMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCurrentStatusCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserCurrentStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserCurrentStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserCurrentStatusDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserCurrentStatus mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Interaction, MessageCursor, ProtocolAuditLog, ProtocolStatus, QuarantineMessage,
		RecoveryOperation, StatusTransition, UserCurrentStatus []ent.Hook
	}
	inters struct {
		Interaction, MessageCursor, ProtocolAuditLog, ProtocolStatus, QuarantineMessage,
		RecoveryOperation, StatusTransition, UserCurrentStatus []ent.Interceptor
	}
)
