// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/arnavj/mathsprint/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/arnavj/mathsprint/ent/achievementstate"
	"github.com/arnavj/mathsprint/ent/lessonprogress"
	"github.com/arnavj/mathsprint/ent/powerup"
	"github.com/arnavj/mathsprint/ent/profile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AchievementState is the client for interacting with the AchievementState builders.
	AchievementState *AchievementStateClient
	// LessonProgress is the client for interacting with the LessonProgress builders.
	LessonProgress *LessonProgressClient
	// PowerUp is the client for interacting with the PowerUp builders.
	PowerUp *PowerUpClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AchievementState = NewAchievementStateClient(c.config)
	c.LessonProgress = NewLessonProgressClient(c.config)
	c.PowerUp = NewPowerUpClient(c.config)
	c.Profile = NewProfileClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AchievementState: NewAchievementStateClient(cfg),
		LessonProgress:   NewLessonProgressClient(cfg),
		PowerUp:          NewPowerUpClient(cfg),
		Profile:          NewProfileClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AchievementState: NewAchievementStateClient(cfg),
		LessonProgress:   NewLessonProgressClient(cfg),
		PowerUp:          NewPowerUpClient(cfg),
		Profile:          NewProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AchievementState.
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
	c.AchievementState.Use(hooks...)
	c.LessonProgress.Use(hooks...)
	c.PowerUp.Use(hooks...)
	c.Profile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AchievementState.Intercept(interceptors...)
	c.LessonProgress.Intercept(interceptors...)
	c.PowerUp.Intercept(interceptors...)
	c.Profile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AchievementStateMutation:
		return c.AchievementState.mutate(ctx, m)
	case *LessonProgressMutation:
		return c.LessonProgress.mutate(ctx, m)
	case *PowerUpMutation:
		return c.PowerUp.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AchievementStateClient is a client for the AchievementState schema.
type AchievementStateClient struct {
	config
}

// NewAchievementStateClient returns a client for the AchievementState from the given config.
func NewAchievementStateClient(c config) *AchievementStateClient {
	return &AchievementStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `achievementstate.Hooks(f(g(h())))`.
func (c *AchievementStateClient) Use(hooks ...Hook) {
	c.hooks.AchievementState = append(c.hooks.AchievementState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `achievementstate.Intercept(f(g(h())))`.
func (c *AchievementStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.AchievementState = append(c.inters.AchievementState, interceptors...)
}

// Create returns a builder for creating a AchievementState entity.
func (c *AchievementStateClient) Create() *AchievementStateCreate {
	mutation := newAchievementStateMutation(c.config, OpCreate)
	return &AchievementStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AchievementState entities.
func (c *AchievementStateClient) CreateBulk(builders ...*AchievementStateCreate) *AchievementStateCreateBulk {
	return &AchievementStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AchievementStateClient) MapCreateBulk(slice any, setFunc func(*AchievementStateCreate, int)) *AchievementStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AchievementStateCreateBulk{err: fmt.Errorf("calling to AchievementStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AchievementStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AchievementStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AchievementState.
func (c *AchievementStateClient) Update() *AchievementStateUpdate {
	mutation := newAchievementStateMutation(c.config, OpUpdate)
	return &AchievementStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AchievementStateClient) UpdateOne(_m *AchievementState) *AchievementStateUpdateOne {
	mutation := newAchievementStateMutation(c.config, OpUpdateOne, withAchievementState(_m))
	return &AchievementStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AchievementStateClient) UpdateOneID(id int) *AchievementStateUpdateOne {
	mutation := newAchievementStateMutation(c.config, OpUpdateOne, withAchievementStateID(id))
	return &AchievementStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AchievementState.
func (c *AchievementStateClient) Delete() *AchievementStateDelete {
	mutation := newAchievementStateMutation(c.config, OpDelete)
	return &AchievementStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AchievementStateClient) DeleteOne(_m *AchievementState) *AchievementStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AchievementStateClient) DeleteOneID(id int) *AchievementStateDeleteOne {
	builder := c.Delete().Where(achievementstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AchievementStateDeleteOne{builder}
}

// Query returns a query builder for AchievementState.
func (c *AchievementStateClient) Query() *AchievementStateQuery {
	return &AchievementStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAchievementState},
		inters: c.Interceptors(),
	}
}

// Get returns a AchievementState entity by its id.
func (c *AchievementStateClient) Get(ctx context.Context, id int) (*AchievementState, error) {
	return c.Query().Where(achievementstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AchievementStateClient) GetX(ctx context.Context, id int) *AchievementState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AchievementStateClient) Hooks() []Hook {
	return c.hooks.AchievementState
}

// Interceptors returns the client interceptors.
func (c *AchievementStateClient) Interceptors() []Interceptor {
	return c.inters.AchievementState
}

func (c *AchievementStateClient) mutate(ctx context.Context, m *AchievementStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AchievementStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AchievementStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AchievementStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AchievementStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AchievementState mutation op: %q", m.Op())
	}
}

// LessonProgressClient is a client for the LessonProgress schema.
type LessonProgressClient struct {
	config
}

// NewLessonProgressClient returns a client for the LessonProgress from the given config.
func NewLessonProgressClient(c config) *LessonProgressClient {
	return &LessonProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonprogress.Hooks(f(g(h())))`.
func (c *LessonProgressClient) Use(hooks ...Hook) {
	c.hooks.LessonProgress = append(c.hooks.LessonProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonprogress.Intercept(f(g(h())))`.
func (c *LessonProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonProgress = append(c.inters.LessonProgress, interceptors...)
}

// Create returns a builder for creating a LessonProgress entity.
func (c *LessonProgressClient) Create() *LessonProgressCreate {
	mutation := newLessonProgressMutation(c.config, OpCreate)
	return &LessonProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonProgress entities.
func (c *LessonProgressClient) CreateBulk(builders ...*LessonProgressCreate) *LessonProgressCreateBulk {
	return &LessonProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonProgressClient) MapCreateBulk(slice any, setFunc func(*LessonProgressCreate, int)) *LessonProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonProgressCreateBulk{err: fmt.Errorf("calling to LessonProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonProgress.
func (c *LessonProgressClient) Update() *LessonProgressUpdate {
	mutation := newLessonProgressMutation(c.config, OpUpdate)
	return &LessonProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonProgressClient) UpdateOne(_m *LessonProgress) *LessonProgressUpdateOne {
	mutation := newLessonProgressMutation(c.config, OpUpdateOne, withLessonProgress(_m))
	return &LessonProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonProgressClient) UpdateOneID(id int) *LessonProgressUpdateOne {
	mutation := newLessonProgressMutation(c.config, OpUpdateOne, withLessonProgressID(id))
	return &LessonProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonProgress.
func (c *LessonProgressClient) Delete() *LessonProgressDelete {
	mutation := newLessonProgressMutation(c.config, OpDelete)
	return &LessonProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonProgressClient) DeleteOne(_m *LessonProgress) *LessonProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonProgressClient) DeleteOneID(id int) *LessonProgressDeleteOne {
	builder := c.Delete().Where(lessonprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonProgressDeleteOne{builder}
}

// Query returns a query builder for LessonProgress.
func (c *LessonProgressClient) Query() *LessonProgressQuery {
	return &LessonProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonProgress entity by its id.
func (c *LessonProgressClient) Get(ctx context.Context, id int) (*LessonProgress, error) {
	return c.Query().Where(lessonprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonProgressClient) GetX(ctx context.Context, id int) *LessonProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonProgressClient) Hooks() []Hook {
	return c.hooks.LessonProgress
}

// Interceptors returns the client interceptors.
func (c *LessonProgressClient) Interceptors() []Interceptor {
	return c.inters.LessonProgress
}

func (c *LessonProgressClient) mutate(ctx context.Context, m *LessonProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonProgress mutation op: %q", m.Op())
	}
}

// PowerUpClient is a client for the PowerUp schema.
type PowerUpClient struct {
	config
}

// NewPowerUpClient returns a client for the PowerUp from the given config.
func NewPowerUpClient(c config) *PowerUpClient {
	return &PowerUpClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `powerup.Hooks(f(g(h())))`.
func (c *PowerUpClient) Use(hooks ...Hook) {
	c.hooks.PowerUp = append(c.hooks.PowerUp, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `powerup.Intercept(f(g(h())))`.
func (c *PowerUpClient) Intercept(interceptors ...Interceptor) {
	c.inters.PowerUp = append(c.inters.PowerUp, interceptors...)
}

// Create returns a builder for creating a PowerUp entity.
func (c *PowerUpClient) Create() *PowerUpCreate {
	mutation := newPowerUpMutation(c.config, OpCreate)
	return &PowerUpCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PowerUp entities.
func (c *PowerUpClient) CreateBulk(builders ...*PowerUpCreate) *PowerUpCreateBulk {
	return &PowerUpCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PowerUpClient) MapCreateBulk(slice any, setFunc func(*PowerUpCreate, int)) *PowerUpCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PowerUpCreateBulk{err: fmt.Errorf("calling to PowerUpClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PowerUpCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PowerUpCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PowerUp.
func (c *PowerUpClient) Update() *PowerUpUpdate {
	mutation := newPowerUpMutation(c.config, OpUpdate)
	return &PowerUpUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PowerUpClient) UpdateOne(_m *PowerUp) *PowerUpUpdateOne {
	mutation := newPowerUpMutation(c.config, OpUpdateOne, withPowerUp(_m))
	return &PowerUpUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PowerUpClient) UpdateOneID(id int) *PowerUpUpdateOne {
	mutation := newPowerUpMutation(c.config, OpUpdateOne, withPowerUpID(id))
	return &PowerUpUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PowerUp.
func (c *PowerUpClient) Delete() *PowerUpDelete {
	mutation := newPowerUpMutation(c.config, OpDelete)
	return &PowerUpDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PowerUpClient) DeleteOne(_m *PowerUp) *PowerUpDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PowerUpClient) DeleteOneID(id int) *PowerUpDeleteOne {
	builder := c.Delete().Where(powerup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PowerUpDeleteOne{builder}
}

// Query returns a query builder for PowerUp.
func (c *PowerUpClient) Query() *PowerUpQuery {
	return &PowerUpQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePowerUp},
		inters: c.Interceptors(),
	}
}

// Get returns a PowerUp entity by its id.
func (c *PowerUpClient) Get(ctx context.Context, id int) (*PowerUp, error) {
	return c.Query().Where(powerup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PowerUpClient) GetX(ctx context.Context, id int) *PowerUp {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PowerUpClient) Hooks() []Hook {
	return c.hooks.PowerUp
}

// Interceptors returns the client interceptors.
func (c *PowerUpClient) Interceptors() []Interceptor {
	return c.inters.PowerUp
}

func (c *PowerUpClient) mutate(ctx context.Context, m *PowerUpMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PowerUpCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PowerUpUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PowerUpUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PowerUpDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PowerUp mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id int) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id int) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id int) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id int) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AchievementState, LessonProgress, PowerUp, Profile []ent.Hook
	}
	inters struct {
		AchievementState, LessonProgress, PowerUp, Profile []ent.Interceptor
	}
)
