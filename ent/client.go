// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/vi3318/Research-AI-sub000/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vi3318/Research-AI-sub000/ent/agentrecord"
	"github.com/vi3318/Research-AI-sub000/ent/event"
	"github.com/vi3318/Research-AI-sub000/ent/iteration"
	"github.com/vi3318/Research-AI-sub000/ent/job"
	"github.com/vi3318/Research-AI-sub000/ent/logentry"
	"github.com/vi3318/Research-AI-sub000/ent/orchestrationlock"
	"github.com/vi3318/Research-AI-sub000/ent/paper"
	"github.com/vi3318/Research-AI-sub000/ent/resultrecord"
	"github.com/vi3318/Research-AI-sub000/ent/run"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentRecord is the client for interacting with the AgentRecord builders.
	AgentRecord *AgentRecordClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Iteration is the client for interacting with the Iteration builders.
	Iteration *IterationClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// LogEntry is the client for interacting with the LogEntry builders.
	LogEntry *LogEntryClient
	// OrchestrationLock is the client for interacting with the OrchestrationLock builders.
	OrchestrationLock *OrchestrationLockClient
	// Paper is the client for interacting with the Paper builders.
	Paper *PaperClient
	// ResultRecord is the client for interacting with the ResultRecord builders.
	ResultRecord *ResultRecordClient
	// Run is the client for interacting with the Run builders.
	Run *RunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentRecord = NewAgentRecordClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Iteration = NewIterationClient(c.config)
	c.Job = NewJobClient(c.config)
	c.LogEntry = NewLogEntryClient(c.config)
	c.OrchestrationLock = NewOrchestrationLockClient(c.config)
	c.Paper = NewPaperClient(c.config)
	c.ResultRecord = NewResultRecordClient(c.config)
	c.Run = NewRunClient(c.config)
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
		AgentRecord:       NewAgentRecordClient(cfg),
		Event:             NewEventClient(cfg),
		Iteration:         NewIterationClient(cfg),
		Job:               NewJobClient(cfg),
		LogEntry:          NewLogEntryClient(cfg),
		OrchestrationLock: NewOrchestrationLockClient(cfg),
		Paper:             NewPaperClient(cfg),
		ResultRecord:      NewResultRecordClient(cfg),
		Run:               NewRunClient(cfg),
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
		AgentRecord:       NewAgentRecordClient(cfg),
		Event:             NewEventClient(cfg),
		Iteration:         NewIterationClient(cfg),
		Job:               NewJobClient(cfg),
		LogEntry:          NewLogEntryClient(cfg),
		OrchestrationLock: NewOrchestrationLockClient(cfg),
		Paper:             NewPaperClient(cfg),
		ResultRecord:      NewResultRecordClient(cfg),
		Run:               NewRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentRecord.
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
		c.AgentRecord, c.Event, c.Iteration, c.Job, c.LogEntry, c.OrchestrationLock,
		c.Paper, c.ResultRecord, c.Run,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentRecord, c.Event, c.Iteration, c.Job, c.LogEntry, c.OrchestrationLock,
		c.Paper, c.ResultRecord, c.Run,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentRecordMutation:
		return c.AgentRecord.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *IterationMutation:
		return c.Iteration.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *LogEntryMutation:
		return c.LogEntry.mutate(ctx, m)
	case *OrchestrationLockMutation:
		return c.OrchestrationLock.mutate(ctx, m)
	case *PaperMutation:
		return c.Paper.mutate(ctx, m)
	case *ResultRecordMutation:
		return c.ResultRecord.mutate(ctx, m)
	case *RunMutation:
		return c.Run.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentRecordClient is a client for the AgentRecord schema.
type AgentRecordClient struct {
	config
}

// NewAgentRecordClient returns a client for the AgentRecord from the given config.
func NewAgentRecordClient(c config) *AgentRecordClient {
	return &AgentRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentrecord.Hooks(f(g(h())))`.
func (c *AgentRecordClient) Use(hooks ...Hook) {
	c.hooks.AgentRecord = append(c.hooks.AgentRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentrecord.Intercept(f(g(h())))`.
func (c *AgentRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentRecord = append(c.inters.AgentRecord, interceptors...)
}

// Create returns a builder for creating a AgentRecord entity.
func (c *AgentRecordClient) Create() *AgentRecordCreate {
	mutation := newAgentRecordMutation(c.config, OpCreate)
	return &AgentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentRecord entities.
func (c *AgentRecordClient) CreateBulk(builders ...*AgentRecordCreate) *AgentRecordCreateBulk {
	return &AgentRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentRecordClient) MapCreateBulk(slice any, setFunc func(*AgentRecordCreate, int)) *AgentRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentRecordCreateBulk{err: fmt.Errorf("calling to AgentRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentRecord.
func (c *AgentRecordClient) Update() *AgentRecordUpdate {
	mutation := newAgentRecordMutation(c.config, OpUpdate)
	return &AgentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentRecordClient) UpdateOne(_m *AgentRecord) *AgentRecordUpdateOne {
	mutation := newAgentRecordMutation(c.config, OpUpdateOne, withAgentRecord(_m))
	return &AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentRecordClient) UpdateOneID(id string) *AgentRecordUpdateOne {
	mutation := newAgentRecordMutation(c.config, OpUpdateOne, withAgentRecordID(id))
	return &AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentRecord.
func (c *AgentRecordClient) Delete() *AgentRecordDelete {
	mutation := newAgentRecordMutation(c.config, OpDelete)
	return &AgentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentRecordClient) DeleteOne(_m *AgentRecord) *AgentRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentRecordClient) DeleteOneID(id string) *AgentRecordDeleteOne {
	builder := c.Delete().Where(agentrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentRecordDeleteOne{builder}
}

// Query returns a query builder for AgentRecord.
func (c *AgentRecordClient) Query() *AgentRecordQuery {
	return &AgentRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentRecord entity by its id.
func (c *AgentRecordClient) Get(ctx context.Context, id string) (*AgentRecord, error) {
	return c.Query().Where(agentrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentRecordClient) GetX(ctx context.Context, id string) *AgentRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a AgentRecord.
func (c *AgentRecordClient) QueryRun(_m *AgentRecord) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrecord.Table, agentrecord.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentrecord.RunTable, agentrecord.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIteration queries the iteration edge of a AgentRecord.
func (c *AgentRecordClient) QueryIteration(_m *AgentRecord) *IterationQuery {
	query := (&IterationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrecord.Table, agentrecord.FieldID, id),
			sqlgraph.To(iteration.Table, iteration.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentrecord.IterationTable, agentrecord.IterationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentRecordClient) Hooks() []Hook {
	return c.hooks.AgentRecord
}

// Interceptors returns the client interceptors.
func (c *AgentRecordClient) Interceptors() []Interceptor {
	return c.inters.AgentRecord
}

func (c *AgentRecordClient) mutate(ctx context.Context, m *AgentRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentRecord mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a Event.
func (c *EventClient) QueryRun(_m *Event) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.RunTable, event.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// IterationClient is a client for the Iteration schema.
type IterationClient struct {
	config
}

// NewIterationClient returns a client for the Iteration from the given config.
func NewIterationClient(c config) *IterationClient {
	return &IterationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `iteration.Hooks(f(g(h())))`.
func (c *IterationClient) Use(hooks ...Hook) {
	c.hooks.Iteration = append(c.hooks.Iteration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `iteration.Intercept(f(g(h())))`.
func (c *IterationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Iteration = append(c.inters.Iteration, interceptors...)
}

// Create returns a builder for creating a Iteration entity.
func (c *IterationClient) Create() *IterationCreate {
	mutation := newIterationMutation(c.config, OpCreate)
	return &IterationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Iteration entities.
func (c *IterationClient) CreateBulk(builders ...*IterationCreate) *IterationCreateBulk {
	return &IterationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IterationClient) MapCreateBulk(slice any, setFunc func(*IterationCreate, int)) *IterationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IterationCreateBulk{err: fmt.Errorf("calling to IterationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IterationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IterationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Iteration.
func (c *IterationClient) Update() *IterationUpdate {
	mutation := newIterationMutation(c.config, OpUpdate)
	return &IterationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IterationClient) UpdateOne(_m *Iteration) *IterationUpdateOne {
	mutation := newIterationMutation(c.config, OpUpdateOne, withIteration(_m))
	return &IterationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IterationClient) UpdateOneID(id string) *IterationUpdateOne {
	mutation := newIterationMutation(c.config, OpUpdateOne, withIterationID(id))
	return &IterationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Iteration.
func (c *IterationClient) Delete() *IterationDelete {
	mutation := newIterationMutation(c.config, OpDelete)
	return &IterationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IterationClient) DeleteOne(_m *Iteration) *IterationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IterationClient) DeleteOneID(id string) *IterationDeleteOne {
	builder := c.Delete().Where(iteration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IterationDeleteOne{builder}
}

// Query returns a query builder for Iteration.
func (c *IterationClient) Query() *IterationQuery {
	return &IterationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIteration},
		inters: c.Interceptors(),
	}
}

// Get returns a Iteration entity by its id.
func (c *IterationClient) Get(ctx context.Context, id string) (*Iteration, error) {
	return c.Query().Where(iteration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IterationClient) GetX(ctx context.Context, id string) *Iteration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a Iteration.
func (c *IterationClient) QueryRun(_m *Iteration) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(iteration.Table, iteration.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, iteration.RunTable, iteration.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentRecords queries the agent_records edge of a Iteration.
func (c *IterationClient) QueryAgentRecords(_m *Iteration) *AgentRecordQuery {
	query := (&AgentRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(iteration.Table, iteration.FieldID, id),
			sqlgraph.To(agentrecord.Table, agentrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, iteration.AgentRecordsTable, iteration.AgentRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *IterationClient) Hooks() []Hook {
	return c.hooks.Iteration
}

// Interceptors returns the client interceptors.
func (c *IterationClient) Interceptors() []Interceptor {
	return c.inters.Iteration
}

func (c *IterationClient) mutate(ctx context.Context, m *IterationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IterationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IterationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IterationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IterationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Iteration mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// LogEntryClient is a client for the LogEntry schema.
type LogEntryClient struct {
	config
}

// NewLogEntryClient returns a client for the LogEntry from the given config.
func NewLogEntryClient(c config) *LogEntryClient {
	return &LogEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `logentry.Hooks(f(g(h())))`.
func (c *LogEntryClient) Use(hooks ...Hook) {
	c.hooks.LogEntry = append(c.hooks.LogEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `logentry.Intercept(f(g(h())))`.
func (c *LogEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.LogEntry = append(c.inters.LogEntry, interceptors...)
}

// Create returns a builder for creating a LogEntry entity.
func (c *LogEntryClient) Create() *LogEntryCreate {
	mutation := newLogEntryMutation(c.config, OpCreate)
	return &LogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LogEntry entities.
func (c *LogEntryClient) CreateBulk(builders ...*LogEntryCreate) *LogEntryCreateBulk {
	return &LogEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LogEntryClient) MapCreateBulk(slice any, setFunc func(*LogEntryCreate, int)) *LogEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LogEntryCreateBulk{err: fmt.Errorf("calling to LogEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LogEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LogEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LogEntry.
func (c *LogEntryClient) Update() *LogEntryUpdate {
	mutation := newLogEntryMutation(c.config, OpUpdate)
	return &LogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LogEntryClient) UpdateOne(_m *LogEntry) *LogEntryUpdateOne {
	mutation := newLogEntryMutation(c.config, OpUpdateOne, withLogEntry(_m))
	return &LogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LogEntryClient) UpdateOneID(id int) *LogEntryUpdateOne {
	mutation := newLogEntryMutation(c.config, OpUpdateOne, withLogEntryID(id))
	return &LogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LogEntry.
func (c *LogEntryClient) Delete() *LogEntryDelete {
	mutation := newLogEntryMutation(c.config, OpDelete)
	return &LogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LogEntryClient) DeleteOne(_m *LogEntry) *LogEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LogEntryClient) DeleteOneID(id int) *LogEntryDeleteOne {
	builder := c.Delete().Where(logentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LogEntryDeleteOne{builder}
}

// Query returns a query builder for LogEntry.
func (c *LogEntryClient) Query() *LogEntryQuery {
	return &LogEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLogEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a LogEntry entity by its id.
func (c *LogEntryClient) Get(ctx context.Context, id int) (*LogEntry, error) {
	return c.Query().Where(logentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LogEntryClient) GetX(ctx context.Context, id int) *LogEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a LogEntry.
func (c *LogEntryClient) QueryRun(_m *LogEntry) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(logentry.Table, logentry.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, logentry.RunTable, logentry.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LogEntryClient) Hooks() []Hook {
	return c.hooks.LogEntry
}

// Interceptors returns the client interceptors.
func (c *LogEntryClient) Interceptors() []Interceptor {
	return c.inters.LogEntry
}

func (c *LogEntryClient) mutate(ctx context.Context, m *LogEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LogEntry mutation op: %q", m.Op())
	}
}

// OrchestrationLockClient is a client for the OrchestrationLock schema.
type OrchestrationLockClient struct {
	config
}

// NewOrchestrationLockClient returns a client for the OrchestrationLock from the given config.
func NewOrchestrationLockClient(c config) *OrchestrationLockClient {
	return &OrchestrationLockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orchestrationlock.Hooks(f(g(h())))`.
func (c *OrchestrationLockClient) Use(hooks ...Hook) {
	c.hooks.OrchestrationLock = append(c.hooks.OrchestrationLock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orchestrationlock.Intercept(f(g(h())))`.
func (c *OrchestrationLockClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrchestrationLock = append(c.inters.OrchestrationLock, interceptors...)
}

// Create returns a builder for creating a OrchestrationLock entity.
func (c *OrchestrationLockClient) Create() *OrchestrationLockCreate {
	mutation := newOrchestrationLockMutation(c.config, OpCreate)
	return &OrchestrationLockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrchestrationLock entities.
func (c *OrchestrationLockClient) CreateBulk(builders ...*OrchestrationLockCreate) *OrchestrationLockCreateBulk {
	return &OrchestrationLockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrchestrationLockClient) MapCreateBulk(slice any, setFunc func(*OrchestrationLockCreate, int)) *OrchestrationLockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrchestrationLockCreateBulk{err: fmt.Errorf("calling to OrchestrationLockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrchestrationLockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrchestrationLockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrchestrationLock.
func (c *OrchestrationLockClient) Update() *OrchestrationLockUpdate {
	mutation := newOrchestrationLockMutation(c.config, OpUpdate)
	return &OrchestrationLockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrchestrationLockClient) UpdateOne(_m *OrchestrationLock) *OrchestrationLockUpdateOne {
	mutation := newOrchestrationLockMutation(c.config, OpUpdateOne, withOrchestrationLock(_m))
	return &OrchestrationLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrchestrationLockClient) UpdateOneID(id string) *OrchestrationLockUpdateOne {
	mutation := newOrchestrationLockMutation(c.config, OpUpdateOne, withOrchestrationLockID(id))
	return &OrchestrationLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrchestrationLock.
func (c *OrchestrationLockClient) Delete() *OrchestrationLockDelete {
	mutation := newOrchestrationLockMutation(c.config, OpDelete)
	return &OrchestrationLockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrchestrationLockClient) DeleteOne(_m *OrchestrationLock) *OrchestrationLockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrchestrationLockClient) DeleteOneID(id string) *OrchestrationLockDeleteOne {
	builder := c.Delete().Where(orchestrationlock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrchestrationLockDeleteOne{builder}
}

// Query returns a query builder for OrchestrationLock.
func (c *OrchestrationLockClient) Query() *OrchestrationLockQuery {
	return &OrchestrationLockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrchestrationLock},
		inters: c.Interceptors(),
	}
}

// Get returns a OrchestrationLock entity by its id.
func (c *OrchestrationLockClient) Get(ctx context.Context, id string) (*OrchestrationLock, error) {
	return c.Query().Where(orchestrationlock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrchestrationLockClient) GetX(ctx context.Context, id string) *OrchestrationLock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrchestrationLockClient) Hooks() []Hook {
	return c.hooks.OrchestrationLock
}

// Interceptors returns the client interceptors.
func (c *OrchestrationLockClient) Interceptors() []Interceptor {
	return c.inters.OrchestrationLock
}

func (c *OrchestrationLockClient) mutate(ctx context.Context, m *OrchestrationLockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrchestrationLockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrchestrationLockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrchestrationLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrchestrationLockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrchestrationLock mutation op: %q", m.Op())
	}
}

// PaperClient is a client for the Paper schema.
type PaperClient struct {
	config
}

// NewPaperClient returns a client for the Paper from the given config.
func NewPaperClient(c config) *PaperClient {
	return &PaperClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paper.Hooks(f(g(h())))`.
func (c *PaperClient) Use(hooks ...Hook) {
	c.hooks.Paper = append(c.hooks.Paper, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paper.Intercept(f(g(h())))`.
func (c *PaperClient) Intercept(interceptors ...Interceptor) {
	c.inters.Paper = append(c.inters.Paper, interceptors...)
}

// Create returns a builder for creating a Paper entity.
func (c *PaperClient) Create() *PaperCreate {
	mutation := newPaperMutation(c.config, OpCreate)
	return &PaperCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Paper entities.
func (c *PaperClient) CreateBulk(builders ...*PaperCreate) *PaperCreateBulk {
	return &PaperCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaperClient) MapCreateBulk(slice any, setFunc func(*PaperCreate, int)) *PaperCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaperCreateBulk{err: fmt.Errorf("calling to PaperClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaperCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaperCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Paper.
func (c *PaperClient) Update() *PaperUpdate {
	mutation := newPaperMutation(c.config, OpUpdate)
	return &PaperUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaperClient) UpdateOne(_m *Paper) *PaperUpdateOne {
	mutation := newPaperMutation(c.config, OpUpdateOne, withPaper(_m))
	return &PaperUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaperClient) UpdateOneID(id string) *PaperUpdateOne {
	mutation := newPaperMutation(c.config, OpUpdateOne, withPaperID(id))
	return &PaperUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Paper.
func (c *PaperClient) Delete() *PaperDelete {
	mutation := newPaperMutation(c.config, OpDelete)
	return &PaperDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaperClient) DeleteOne(_m *Paper) *PaperDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaperClient) DeleteOneID(id string) *PaperDeleteOne {
	builder := c.Delete().Where(paper.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaperDeleteOne{builder}
}

// Query returns a query builder for Paper.
func (c *PaperClient) Query() *PaperQuery {
	return &PaperQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaper},
		inters: c.Interceptors(),
	}
}

// Get returns a Paper entity by its id.
func (c *PaperClient) Get(ctx context.Context, id string) (*Paper, error) {
	return c.Query().Where(paper.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaperClient) GetX(ctx context.Context, id string) *Paper {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a Paper.
func (c *PaperClient) QueryRun(_m *Paper) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paper.Table, paper.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, paper.RunTable, paper.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PaperClient) Hooks() []Hook {
	return c.hooks.Paper
}

// Interceptors returns the client interceptors.
func (c *PaperClient) Interceptors() []Interceptor {
	return c.inters.Paper
}

func (c *PaperClient) mutate(ctx context.Context, m *PaperMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaperCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaperUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaperUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaperDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Paper mutation op: %q", m.Op())
	}
}

// ResultRecordClient is a client for the ResultRecord schema.
type ResultRecordClient struct {
	config
}

// NewResultRecordClient returns a client for the ResultRecord from the given config.
func NewResultRecordClient(c config) *ResultRecordClient {
	return &ResultRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `resultrecord.Hooks(f(g(h())))`.
func (c *ResultRecordClient) Use(hooks ...Hook) {
	c.hooks.ResultRecord = append(c.hooks.ResultRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `resultrecord.Intercept(f(g(h())))`.
func (c *ResultRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResultRecord = append(c.inters.ResultRecord, interceptors...)
}

// Create returns a builder for creating a ResultRecord entity.
func (c *ResultRecordClient) Create() *ResultRecordCreate {
	mutation := newResultRecordMutation(c.config, OpCreate)
	return &ResultRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResultRecord entities.
func (c *ResultRecordClient) CreateBulk(builders ...*ResultRecordCreate) *ResultRecordCreateBulk {
	return &ResultRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResultRecordClient) MapCreateBulk(slice any, setFunc func(*ResultRecordCreate, int)) *ResultRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResultRecordCreateBulk{err: fmt.Errorf("calling to ResultRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResultRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResultRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResultRecord.
func (c *ResultRecordClient) Update() *ResultRecordUpdate {
	mutation := newResultRecordMutation(c.config, OpUpdate)
	return &ResultRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResultRecordClient) UpdateOne(_m *ResultRecord) *ResultRecordUpdateOne {
	mutation := newResultRecordMutation(c.config, OpUpdateOne, withResultRecord(_m))
	return &ResultRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResultRecordClient) UpdateOneID(id string) *ResultRecordUpdateOne {
	mutation := newResultRecordMutation(c.config, OpUpdateOne, withResultRecordID(id))
	return &ResultRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResultRecord.
func (c *ResultRecordClient) Delete() *ResultRecordDelete {
	mutation := newResultRecordMutation(c.config, OpDelete)
	return &ResultRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResultRecordClient) DeleteOne(_m *ResultRecord) *ResultRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResultRecordClient) DeleteOneID(id string) *ResultRecordDeleteOne {
	builder := c.Delete().Where(resultrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResultRecordDeleteOne{builder}
}

// Query returns a query builder for ResultRecord.
func (c *ResultRecordClient) Query() *ResultRecordQuery {
	return &ResultRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResultRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ResultRecord entity by its id.
func (c *ResultRecordClient) Get(ctx context.Context, id string) (*ResultRecord, error) {
	return c.Query().Where(resultrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResultRecordClient) GetX(ctx context.Context, id string) *ResultRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a ResultRecord.
func (c *ResultRecordClient) QueryRun(_m *ResultRecord) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(resultrecord.Table, resultrecord.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, resultrecord.RunTable, resultrecord.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResultRecordClient) Hooks() []Hook {
	return c.hooks.ResultRecord
}

// Interceptors returns the client interceptors.
func (c *ResultRecordClient) Interceptors() []Interceptor {
	return c.inters.ResultRecord
}

func (c *ResultRecordClient) mutate(ctx context.Context, m *ResultRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResultRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResultRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResultRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResultRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResultRecord mutation op: %q", m.Op())
	}
}

// RunClient is a client for the Run schema.
type RunClient struct {
	config
}

// NewRunClient returns a client for the Run from the given config.
func NewRunClient(c config) *RunClient {
	return &RunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `run.Hooks(f(g(h())))`.
func (c *RunClient) Use(hooks ...Hook) {
	c.hooks.Run = append(c.hooks.Run, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `run.Intercept(f(g(h())))`.
func (c *RunClient) Intercept(interceptors ...Interceptor) {
	c.inters.Run = append(c.inters.Run, interceptors...)
}

// Create returns a builder for creating a Run entity.
func (c *RunClient) Create() *RunCreate {
	mutation := newRunMutation(c.config, OpCreate)
	return &RunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Run entities.
func (c *RunClient) CreateBulk(builders ...*RunCreate) *RunCreateBulk {
	return &RunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunClient) MapCreateBulk(slice any, setFunc func(*RunCreate, int)) *RunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunCreateBulk{err: fmt.Errorf("calling to RunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Run.
func (c *RunClient) Update() *RunUpdate {
	mutation := newRunMutation(c.config, OpUpdate)
	return &RunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunClient) UpdateOne(_m *Run) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRun(_m))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunClient) UpdateOneID(id string) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRunID(id))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Run.
func (c *RunClient) Delete() *RunDelete {
	mutation := newRunMutation(c.config, OpDelete)
	return &RunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunClient) DeleteOne(_m *Run) *RunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunClient) DeleteOneID(id string) *RunDeleteOne {
	builder := c.Delete().Where(run.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunDeleteOne{builder}
}

// Query returns a query builder for Run.
func (c *RunClient) Query() *RunQuery {
	return &RunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRun},
		inters: c.Interceptors(),
	}
}

// Get returns a Run entity by its id.
func (c *RunClient) Get(ctx context.Context, id string) (*Run, error) {
	return c.Query().Where(run.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunClient) GetX(ctx context.Context, id string) *Run {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPapers queries the papers edge of a Run.
func (c *RunClient) QueryPapers(_m *Run) *PaperQuery {
	query := (&PaperClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(paper.Table, paper.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.PapersTable, run.PapersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIterations queries the iterations edge of a Run.
func (c *RunClient) QueryIterations(_m *Run) *IterationQuery {
	query := (&IterationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(iteration.Table, iteration.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.IterationsTable, run.IterationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentRecords queries the agent_records edge of a Run.
func (c *RunClient) QueryAgentRecords(_m *Run) *AgentRecordQuery {
	query := (&AgentRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(agentrecord.Table, agentrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.AgentRecordsTable, run.AgentRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogEntries queries the log_entries edge of a Run.
func (c *RunClient) QueryLogEntries(_m *Run) *LogEntryQuery {
	query := (&LogEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(logentry.Table, logentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.LogEntriesTable, run.LogEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResult queries the result edge of a Run.
func (c *RunClient) QueryResult(_m *Run) *ResultRecordQuery {
	query := (&ResultRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(resultrecord.Table, resultrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, run.ResultTable, run.ResultColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Run.
func (c *RunClient) QueryEvents(_m *Run) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.EventsTable, run.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunClient) Hooks() []Hook {
	return c.hooks.Run
}

// Interceptors returns the client interceptors.
func (c *RunClient) Interceptors() []Interceptor {
	return c.inters.Run
}

func (c *RunClient) mutate(ctx context.Context, m *RunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Run mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentRecord, Event, Iteration, Job, LogEntry, OrchestrationLock, Paper,
		ResultRecord, Run []ent.Hook
	}
	inters struct {
		AgentRecord, Event, Iteration, Job, LogEntry, OrchestrationLock, Paper,
		ResultRecord, Run []ent.Interceptor
	}
)
