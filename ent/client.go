// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/vulnsentinel/vulnsentinel/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vulnsentinel/vulnsentinel/ent/agentrun"
	"github.com/vulnsentinel/vulnsentinel/ent/agenttoolcall"
	"github.com/vulnsentinel/vulnsentinel/ent/clientvuln"
	"github.com/vulnsentinel/vulnsentinel/ent/event"
	"github.com/vulnsentinel/vulnsentinel/ent/library"
	"github.com/vulnsentinel/vulnsentinel/ent/project"
	"github.com/vulnsentinel/vulnsentinel/ent/projectdependency"
	"github.com/vulnsentinel/vulnsentinel/ent/upstreamvuln"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentRun is the client for interacting with the AgentRun builders.
	AgentRun *AgentRunClient
	// AgentToolCall is the client for interacting with the AgentToolCall builders.
	AgentToolCall *AgentToolCallClient
	// ClientVuln is the client for interacting with the ClientVuln builders.
	ClientVuln *ClientVulnClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Library is the client for interacting with the Library builders.
	Library *LibraryClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// ProjectDependency is the client for interacting with the ProjectDependency builders.
	ProjectDependency *ProjectDependencyClient
	// UpstreamVuln is the client for interacting with the UpstreamVuln builders.
	UpstreamVuln *UpstreamVulnClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentRun = NewAgentRunClient(c.config)
	c.AgentToolCall = NewAgentToolCallClient(c.config)
	c.ClientVuln = NewClientVulnClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Library = NewLibraryClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.ProjectDependency = NewProjectDependencyClient(c.config)
	c.UpstreamVuln = NewUpstreamVulnClient(c.config)
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
		AgentRun:          NewAgentRunClient(cfg),
		AgentToolCall:     NewAgentToolCallClient(cfg),
		ClientVuln:        NewClientVulnClient(cfg),
		Event:             NewEventClient(cfg),
		Library:           NewLibraryClient(cfg),
		Project:           NewProjectClient(cfg),
		ProjectDependency: NewProjectDependencyClient(cfg),
		UpstreamVuln:      NewUpstreamVulnClient(cfg),
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
		AgentRun:          NewAgentRunClient(cfg),
		AgentToolCall:     NewAgentToolCallClient(cfg),
		ClientVuln:        NewClientVulnClient(cfg),
		Event:             NewEventClient(cfg),
		Library:           NewLibraryClient(cfg),
		Project:           NewProjectClient(cfg),
		ProjectDependency: NewProjectDependencyClient(cfg),
		UpstreamVuln:      NewUpstreamVulnClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentRun.
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
		c.AgentRun, c.AgentToolCall, c.ClientVuln, c.Event, c.Library, c.Project,
		c.ProjectDependency, c.UpstreamVuln,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentRun, c.AgentToolCall, c.ClientVuln, c.Event, c.Library, c.Project,
		c.ProjectDependency, c.UpstreamVuln,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentRunMutation:
		return c.AgentRun.mutate(ctx, m)
	case *AgentToolCallMutation:
		return c.AgentToolCall.mutate(ctx, m)
	case *ClientVulnMutation:
		return c.ClientVuln.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *LibraryMutation:
		return c.Library.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *ProjectDependencyMutation:
		return c.ProjectDependency.mutate(ctx, m)
	case *UpstreamVulnMutation:
		return c.UpstreamVuln.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentRunClient is a client for the AgentRun schema.
type AgentRunClient struct {
	config
}

// NewAgentRunClient returns a client for the AgentRun from the given config.
func NewAgentRunClient(c config) *AgentRunClient {
	return &AgentRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentrun.Hooks(f(g(h())))`.
func (c *AgentRunClient) Use(hooks ...Hook) {
	c.hooks.AgentRun = append(c.hooks.AgentRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentrun.Intercept(f(g(h())))`.
func (c *AgentRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentRun = append(c.inters.AgentRun, interceptors...)
}

// Create returns a builder for creating a AgentRun entity.
func (c *AgentRunClient) Create() *AgentRunCreate {
	mutation := newAgentRunMutation(c.config, OpCreate)
	return &AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentRun entities.
func (c *AgentRunClient) CreateBulk(builders ...*AgentRunCreate) *AgentRunCreateBulk {
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentRunClient) MapCreateBulk(slice any, setFunc func(*AgentRunCreate, int)) *AgentRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentRunCreateBulk{err: fmt.Errorf("calling to AgentRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentRun.
func (c *AgentRunClient) Update() *AgentRunUpdate {
	mutation := newAgentRunMutation(c.config, OpUpdate)
	return &AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentRunClient) UpdateOne(_m *AgentRun) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRun(_m))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentRunClient) UpdateOneID(id string) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRunID(id))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentRun.
func (c *AgentRunClient) Delete() *AgentRunDelete {
	mutation := newAgentRunMutation(c.config, OpDelete)
	return &AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentRunClient) DeleteOne(_m *AgentRun) *AgentRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentRunClient) DeleteOneID(id string) *AgentRunDeleteOne {
	builder := c.Delete().Where(agentrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentRunDeleteOne{builder}
}

// Query returns a query builder for AgentRun.
func (c *AgentRunClient) Query() *AgentRunQuery {
	return &AgentRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentRun},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentRun entity by its id.
func (c *AgentRunClient) Get(ctx context.Context, id string) (*AgentRun, error) {
	return c.Query().Where(agentrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentRunClient) GetX(ctx context.Context, id string) *AgentRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryToolCalls queries the tool_calls edge of a AgentRun.
func (c *AgentRunClient) QueryToolCalls(_m *AgentRun) *AgentToolCallQuery {
	query := (&AgentToolCallClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(agenttoolcall.Table, agenttoolcall.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.ToolCallsTable, agentrun.ToolCallsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentRunClient) Hooks() []Hook {
	return c.hooks.AgentRun
}

// Interceptors returns the client interceptors.
func (c *AgentRunClient) Interceptors() []Interceptor {
	return c.inters.AgentRun
}

func (c *AgentRunClient) mutate(ctx context.Context, m *AgentRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentRun mutation op: %q", m.Op())
	}
}

// AgentToolCallClient is a client for the AgentToolCall schema.
type AgentToolCallClient struct {
	config
}

// NewAgentToolCallClient returns a client for the AgentToolCall from the given config.
func NewAgentToolCallClient(c config) *AgentToolCallClient {
	return &AgentToolCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agenttoolcall.Hooks(f(g(h())))`.
func (c *AgentToolCallClient) Use(hooks ...Hook) {
	c.hooks.AgentToolCall = append(c.hooks.AgentToolCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agenttoolcall.Intercept(f(g(h())))`.
func (c *AgentToolCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentToolCall = append(c.inters.AgentToolCall, interceptors...)
}

// Create returns a builder for creating a AgentToolCall entity.
func (c *AgentToolCallClient) Create() *AgentToolCallCreate {
	mutation := newAgentToolCallMutation(c.config, OpCreate)
	return &AgentToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentToolCall entities.
func (c *AgentToolCallClient) CreateBulk(builders ...*AgentToolCallCreate) *AgentToolCallCreateBulk {
	return &AgentToolCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentToolCallClient) MapCreateBulk(slice any, setFunc func(*AgentToolCallCreate, int)) *AgentToolCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentToolCallCreateBulk{err: fmt.Errorf("calling to AgentToolCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentToolCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentToolCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentToolCall.
func (c *AgentToolCallClient) Update() *AgentToolCallUpdate {
	mutation := newAgentToolCallMutation(c.config, OpUpdate)
	return &AgentToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentToolCallClient) UpdateOne(_m *AgentToolCall) *AgentToolCallUpdateOne {
	mutation := newAgentToolCallMutation(c.config, OpUpdateOne, withAgentToolCall(_m))
	return &AgentToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentToolCallClient) UpdateOneID(id string) *AgentToolCallUpdateOne {
	mutation := newAgentToolCallMutation(c.config, OpUpdateOne, withAgentToolCallID(id))
	return &AgentToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentToolCall.
func (c *AgentToolCallClient) Delete() *AgentToolCallDelete {
	mutation := newAgentToolCallMutation(c.config, OpDelete)
	return &AgentToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentToolCallClient) DeleteOne(_m *AgentToolCall) *AgentToolCallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentToolCallClient) DeleteOneID(id string) *AgentToolCallDeleteOne {
	builder := c.Delete().Where(agenttoolcall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentToolCallDeleteOne{builder}
}

// Query returns a query builder for AgentToolCall.
func (c *AgentToolCallClient) Query() *AgentToolCallQuery {
	return &AgentToolCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentToolCall},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentToolCall entity by its id.
func (c *AgentToolCallClient) Get(ctx context.Context, id string) (*AgentToolCall, error) {
	return c.Query().Where(agenttoolcall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentToolCallClient) GetX(ctx context.Context, id string) *AgentToolCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a AgentToolCall.
func (c *AgentToolCallClient) QueryRun(_m *AgentToolCall) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agenttoolcall.Table, agenttoolcall.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agenttoolcall.RunTable, agenttoolcall.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentToolCallClient) Hooks() []Hook {
	return c.hooks.AgentToolCall
}

// Interceptors returns the client interceptors.
func (c *AgentToolCallClient) Interceptors() []Interceptor {
	return c.inters.AgentToolCall
}

func (c *AgentToolCallClient) mutate(ctx context.Context, m *AgentToolCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentToolCall mutation op: %q", m.Op())
	}
}

// ClientVulnClient is a client for the ClientVuln schema.
type ClientVulnClient struct {
	config
}

// NewClientVulnClient returns a client for the ClientVuln from the given config.
func NewClientVulnClient(c config) *ClientVulnClient {
	return &ClientVulnClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clientvuln.Hooks(f(g(h())))`.
func (c *ClientVulnClient) Use(hooks ...Hook) {
	c.hooks.ClientVuln = append(c.hooks.ClientVuln, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clientvuln.Intercept(f(g(h())))`.
func (c *ClientVulnClient) Intercept(interceptors ...Interceptor) {
	c.inters.ClientVuln = append(c.inters.ClientVuln, interceptors...)
}

// Create returns a builder for creating a ClientVuln entity.
func (c *ClientVulnClient) Create() *ClientVulnCreate {
	mutation := newClientVulnMutation(c.config, OpCreate)
	return &ClientVulnCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ClientVuln entities.
func (c *ClientVulnClient) CreateBulk(builders ...*ClientVulnCreate) *ClientVulnCreateBulk {
	return &ClientVulnCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClientVulnClient) MapCreateBulk(slice any, setFunc func(*ClientVulnCreate, int)) *ClientVulnCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClientVulnCreateBulk{err: fmt.Errorf("calling to ClientVulnClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClientVulnCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClientVulnCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ClientVuln.
func (c *ClientVulnClient) Update() *ClientVulnUpdate {
	mutation := newClientVulnMutation(c.config, OpUpdate)
	return &ClientVulnUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClientVulnClient) UpdateOne(_m *ClientVuln) *ClientVulnUpdateOne {
	mutation := newClientVulnMutation(c.config, OpUpdateOne, withClientVuln(_m))
	return &ClientVulnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClientVulnClient) UpdateOneID(id string) *ClientVulnUpdateOne {
	mutation := newClientVulnMutation(c.config, OpUpdateOne, withClientVulnID(id))
	return &ClientVulnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ClientVuln.
func (c *ClientVulnClient) Delete() *ClientVulnDelete {
	mutation := newClientVulnMutation(c.config, OpDelete)
	return &ClientVulnDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClientVulnClient) DeleteOne(_m *ClientVuln) *ClientVulnDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClientVulnClient) DeleteOneID(id string) *ClientVulnDeleteOne {
	builder := c.Delete().Where(clientvuln.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClientVulnDeleteOne{builder}
}

// Query returns a query builder for ClientVuln.
func (c *ClientVulnClient) Query() *ClientVulnQuery {
	return &ClientVulnQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClientVuln},
		inters: c.Interceptors(),
	}
}

// Get returns a ClientVuln entity by its id.
func (c *ClientVulnClient) Get(ctx context.Context, id string) (*ClientVuln, error) {
	return c.Query().Where(clientvuln.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClientVulnClient) GetX(ctx context.Context, id string) *ClientVuln {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUpstreamVuln queries the upstream_vuln edge of a ClientVuln.
func (c *ClientVulnClient) QueryUpstreamVuln(_m *ClientVuln) *UpstreamVulnQuery {
	query := (&UpstreamVulnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clientvuln.Table, clientvuln.FieldID, id),
			sqlgraph.To(upstreamvuln.Table, upstreamvuln.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clientvuln.UpstreamVulnTable, clientvuln.UpstreamVulnColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProject queries the project edge of a ClientVuln.
func (c *ClientVulnClient) QueryProject(_m *ClientVuln) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(clientvuln.Table, clientvuln.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, clientvuln.ProjectTable, clientvuln.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ClientVulnClient) Hooks() []Hook {
	return c.hooks.ClientVuln
}

// Interceptors returns the client interceptors.
func (c *ClientVulnClient) Interceptors() []Interceptor {
	return c.inters.ClientVuln
}

func (c *ClientVulnClient) mutate(ctx context.Context, m *ClientVulnMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClientVulnCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClientVulnUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClientVulnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClientVulnDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ClientVuln mutation op: %q", m.Op())
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
func (c *EventClient) UpdateOneID(id string) *EventUpdateOne {
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
func (c *EventClient) DeleteOneID(id string) *EventDeleteOne {
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
func (c *EventClient) Get(ctx context.Context, id string) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id string) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLibrary queries the library edge of a Event.
func (c *EventClient) QueryLibrary(_m *Event) *LibraryQuery {
	query := (&LibraryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(library.Table, library.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.LibraryTable, event.LibraryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUpstreamVulns queries the upstream_vulns edge of a Event.
func (c *EventClient) QueryUpstreamVulns(_m *Event) *UpstreamVulnQuery {
	query := (&UpstreamVulnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(upstreamvuln.Table, upstreamvuln.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, event.UpstreamVulnsTable, event.UpstreamVulnsColumn),
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

// LibraryClient is a client for the Library schema.
type LibraryClient struct {
	config
}

// NewLibraryClient returns a client for the Library from the given config.
func NewLibraryClient(c config) *LibraryClient {
	return &LibraryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `library.Hooks(f(g(h())))`.
func (c *LibraryClient) Use(hooks ...Hook) {
	c.hooks.Library = append(c.hooks.Library, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `library.Intercept(f(g(h())))`.
func (c *LibraryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Library = append(c.inters.Library, interceptors...)
}

// Create returns a builder for creating a Library entity.
func (c *LibraryClient) Create() *LibraryCreate {
	mutation := newLibraryMutation(c.config, OpCreate)
	return &LibraryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Library entities.
func (c *LibraryClient) CreateBulk(builders ...*LibraryCreate) *LibraryCreateBulk {
	return &LibraryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LibraryClient) MapCreateBulk(slice any, setFunc func(*LibraryCreate, int)) *LibraryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LibraryCreateBulk{err: fmt.Errorf("calling to LibraryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LibraryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LibraryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Library.
func (c *LibraryClient) Update() *LibraryUpdate {
	mutation := newLibraryMutation(c.config, OpUpdate)
	return &LibraryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LibraryClient) UpdateOne(_m *Library) *LibraryUpdateOne {
	mutation := newLibraryMutation(c.config, OpUpdateOne, withLibrary(_m))
	return &LibraryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LibraryClient) UpdateOneID(id string) *LibraryUpdateOne {
	mutation := newLibraryMutation(c.config, OpUpdateOne, withLibraryID(id))
	return &LibraryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Library.
func (c *LibraryClient) Delete() *LibraryDelete {
	mutation := newLibraryMutation(c.config, OpDelete)
	return &LibraryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LibraryClient) DeleteOne(_m *Library) *LibraryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LibraryClient) DeleteOneID(id string) *LibraryDeleteOne {
	builder := c.Delete().Where(library.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LibraryDeleteOne{builder}
}

// Query returns a query builder for Library.
func (c *LibraryClient) Query() *LibraryQuery {
	return &LibraryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLibrary},
		inters: c.Interceptors(),
	}
}

// Get returns a Library entity by its id.
func (c *LibraryClient) Get(ctx context.Context, id string) (*Library, error) {
	return c.Query().Where(library.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LibraryClient) GetX(ctx context.Context, id string) *Library {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvents queries the events edge of a Library.
func (c *LibraryClient) QueryEvents(_m *Library) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(library.Table, library.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, library.EventsTable, library.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUpstreamVulns queries the upstream_vulns edge of a Library.
func (c *LibraryClient) QueryUpstreamVulns(_m *Library) *UpstreamVulnQuery {
	query := (&UpstreamVulnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(library.Table, library.FieldID, id),
			sqlgraph.To(upstreamvuln.Table, upstreamvuln.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, library.UpstreamVulnsTable, library.UpstreamVulnsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDependencies queries the dependencies edge of a Library.
func (c *LibraryClient) QueryDependencies(_m *Library) *ProjectDependencyQuery {
	query := (&ProjectDependencyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(library.Table, library.FieldID, id),
			sqlgraph.To(projectdependency.Table, projectdependency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, library.DependenciesTable, library.DependenciesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LibraryClient) Hooks() []Hook {
	return c.hooks.Library
}

// Interceptors returns the client interceptors.
func (c *LibraryClient) Interceptors() []Interceptor {
	return c.inters.Library
}

func (c *LibraryClient) mutate(ctx context.Context, m *LibraryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LibraryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LibraryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LibraryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LibraryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Library mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDependencies queries the dependencies edge of a Project.
func (c *ProjectClient) QueryDependencies(_m *Project) *ProjectDependencyQuery {
	query := (&ProjectDependencyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(projectdependency.Table, projectdependency.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.DependenciesTable, project.DependenciesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryClientVulns queries the client_vulns edge of a Project.
func (c *ProjectClient) QueryClientVulns(_m *Project) *ClientVulnQuery {
	query := (&ClientVulnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(clientvuln.Table, clientvuln.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.ClientVulnsTable, project.ClientVulnsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// ProjectDependencyClient is a client for the ProjectDependency schema.
type ProjectDependencyClient struct {
	config
}

// NewProjectDependencyClient returns a client for the ProjectDependency from the given config.
func NewProjectDependencyClient(c config) *ProjectDependencyClient {
	return &ProjectDependencyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `projectdependency.Hooks(f(g(h())))`.
func (c *ProjectDependencyClient) Use(hooks ...Hook) {
	c.hooks.ProjectDependency = append(c.hooks.ProjectDependency, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `projectdependency.Intercept(f(g(h())))`.
func (c *ProjectDependencyClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProjectDependency = append(c.inters.ProjectDependency, interceptors...)
}

// Create returns a builder for creating a ProjectDependency entity.
func (c *ProjectDependencyClient) Create() *ProjectDependencyCreate {
	mutation := newProjectDependencyMutation(c.config, OpCreate)
	return &ProjectDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProjectDependency entities.
func (c *ProjectDependencyClient) CreateBulk(builders ...*ProjectDependencyCreate) *ProjectDependencyCreateBulk {
	return &ProjectDependencyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectDependencyClient) MapCreateBulk(slice any, setFunc func(*ProjectDependencyCreate, int)) *ProjectDependencyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectDependencyCreateBulk{err: fmt.Errorf("calling to ProjectDependencyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectDependencyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectDependencyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProjectDependency.
func (c *ProjectDependencyClient) Update() *ProjectDependencyUpdate {
	mutation := newProjectDependencyMutation(c.config, OpUpdate)
	return &ProjectDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectDependencyClient) UpdateOne(_m *ProjectDependency) *ProjectDependencyUpdateOne {
	mutation := newProjectDependencyMutation(c.config, OpUpdateOne, withProjectDependency(_m))
	return &ProjectDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectDependencyClient) UpdateOneID(id string) *ProjectDependencyUpdateOne {
	mutation := newProjectDependencyMutation(c.config, OpUpdateOne, withProjectDependencyID(id))
	return &ProjectDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProjectDependency.
func (c *ProjectDependencyClient) Delete() *ProjectDependencyDelete {
	mutation := newProjectDependencyMutation(c.config, OpDelete)
	return &ProjectDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectDependencyClient) DeleteOne(_m *ProjectDependency) *ProjectDependencyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectDependencyClient) DeleteOneID(id string) *ProjectDependencyDeleteOne {
	builder := c.Delete().Where(projectdependency.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDependencyDeleteOne{builder}
}

// Query returns a query builder for ProjectDependency.
func (c *ProjectDependencyClient) Query() *ProjectDependencyQuery {
	return &ProjectDependencyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProjectDependency},
		inters: c.Interceptors(),
	}
}

// Get returns a ProjectDependency entity by its id.
func (c *ProjectDependencyClient) Get(ctx context.Context, id string) (*ProjectDependency, error) {
	return c.Query().Where(projectdependency.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectDependencyClient) GetX(ctx context.Context, id string) *ProjectDependency {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a ProjectDependency.
func (c *ProjectDependencyClient) QueryProject(_m *ProjectDependency) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(projectdependency.Table, projectdependency.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, projectdependency.ProjectTable, projectdependency.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLibrary queries the library edge of a ProjectDependency.
func (c *ProjectDependencyClient) QueryLibrary(_m *ProjectDependency) *LibraryQuery {
	query := (&LibraryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(projectdependency.Table, projectdependency.FieldID, id),
			sqlgraph.To(library.Table, library.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, projectdependency.LibraryTable, projectdependency.LibraryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectDependencyClient) Hooks() []Hook {
	return c.hooks.ProjectDependency
}

// Interceptors returns the client interceptors.
func (c *ProjectDependencyClient) Interceptors() []Interceptor {
	return c.inters.ProjectDependency
}

func (c *ProjectDependencyClient) mutate(ctx context.Context, m *ProjectDependencyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectDependencyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectDependencyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectDependencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDependencyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProjectDependency mutation op: %q", m.Op())
	}
}

// UpstreamVulnClient is a client for the UpstreamVuln schema.
type UpstreamVulnClient struct {
	config
}

// NewUpstreamVulnClient returns a client for the UpstreamVuln from the given config.
func NewUpstreamVulnClient(c config) *UpstreamVulnClient {
	return &UpstreamVulnClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `upstreamvuln.Hooks(f(g(h())))`.
func (c *UpstreamVulnClient) Use(hooks ...Hook) {
	c.hooks.UpstreamVuln = append(c.hooks.UpstreamVuln, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `upstreamvuln.Intercept(f(g(h())))`.
func (c *UpstreamVulnClient) Intercept(interceptors ...Interceptor) {
	c.inters.UpstreamVuln = append(c.inters.UpstreamVuln, interceptors...)
}

// Create returns a builder for creating a UpstreamVuln entity.
func (c *UpstreamVulnClient) Create() *UpstreamVulnCreate {
	mutation := newUpstreamVulnMutation(c.config, OpCreate)
	return &UpstreamVulnCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UpstreamVuln entities.
func (c *UpstreamVulnClient) CreateBulk(builders ...*UpstreamVulnCreate) *UpstreamVulnCreateBulk {
	return &UpstreamVulnCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UpstreamVulnClient) MapCreateBulk(slice any, setFunc func(*UpstreamVulnCreate, int)) *UpstreamVulnCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UpstreamVulnCreateBulk{err: fmt.Errorf("calling to UpstreamVulnClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UpstreamVulnCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UpstreamVulnCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UpstreamVuln.
func (c *UpstreamVulnClient) Update() *UpstreamVulnUpdate {
	mutation := newUpstreamVulnMutation(c.config, OpUpdate)
	return &UpstreamVulnUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UpstreamVulnClient) UpdateOne(_m *UpstreamVuln) *UpstreamVulnUpdateOne {
	mutation := newUpstreamVulnMutation(c.config, OpUpdateOne, withUpstreamVuln(_m))
	return &UpstreamVulnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UpstreamVulnClient) UpdateOneID(id string) *UpstreamVulnUpdateOne {
	mutation := newUpstreamVulnMutation(c.config, OpUpdateOne, withUpstreamVulnID(id))
	return &UpstreamVulnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UpstreamVuln.
func (c *UpstreamVulnClient) Delete() *UpstreamVulnDelete {
	mutation := newUpstreamVulnMutation(c.config, OpDelete)
	return &UpstreamVulnDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UpstreamVulnClient) DeleteOne(_m *UpstreamVuln) *UpstreamVulnDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UpstreamVulnClient) DeleteOneID(id string) *UpstreamVulnDeleteOne {
	builder := c.Delete().Where(upstreamvuln.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UpstreamVulnDeleteOne{builder}
}

// Query returns a query builder for UpstreamVuln.
func (c *UpstreamVulnClient) Query() *UpstreamVulnQuery {
	return &UpstreamVulnQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUpstreamVuln},
		inters: c.Interceptors(),
	}
}

// Get returns a UpstreamVuln entity by its id.
func (c *UpstreamVulnClient) Get(ctx context.Context, id string) (*UpstreamVuln, error) {
	return c.Query().Where(upstreamvuln.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UpstreamVulnClient) GetX(ctx context.Context, id string) *UpstreamVuln {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvent queries the event edge of a UpstreamVuln.
func (c *UpstreamVulnClient) QueryEvent(_m *UpstreamVuln) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(upstreamvuln.Table, upstreamvuln.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, upstreamvuln.EventTable, upstreamvuln.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLibrary queries the library edge of a UpstreamVuln.
func (c *UpstreamVulnClient) QueryLibrary(_m *UpstreamVuln) *LibraryQuery {
	query := (&LibraryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(upstreamvuln.Table, upstreamvuln.FieldID, id),
			sqlgraph.To(library.Table, library.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, upstreamvuln.LibraryTable, upstreamvuln.LibraryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryClientVulns queries the client_vulns edge of a UpstreamVuln.
func (c *UpstreamVulnClient) QueryClientVulns(_m *UpstreamVuln) *ClientVulnQuery {
	query := (&ClientVulnClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(upstreamvuln.Table, upstreamvuln.FieldID, id),
			sqlgraph.To(clientvuln.Table, clientvuln.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, upstreamvuln.ClientVulnsTable, upstreamvuln.ClientVulnsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UpstreamVulnClient) Hooks() []Hook {
	return c.hooks.UpstreamVuln
}

// Interceptors returns the client interceptors.
func (c *UpstreamVulnClient) Interceptors() []Interceptor {
	return c.inters.UpstreamVuln
}

func (c *UpstreamVulnClient) mutate(ctx context.Context, m *UpstreamVulnMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UpstreamVulnCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UpstreamVulnUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UpstreamVulnUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UpstreamVulnDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UpstreamVuln mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentRun, AgentToolCall, ClientVuln, Event, Library, Project, ProjectDependency,
		UpstreamVuln []ent.Hook
	}
	inters struct {
		AgentRun, AgentToolCall, ClientVuln, Event, Library, Project, ProjectDependency,
		UpstreamVuln []ent.Interceptor
	}
)
