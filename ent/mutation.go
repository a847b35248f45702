// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arnavj/mathsprint/ent/achievementstate"
	"github.com/arnavj/mathsprint/ent/lessonprogress"
	"github.com/arnavj/mathsprint/ent/powerup"
	"github.com/arnavj/mathsprint/ent/predicate"
	"github.com/arnavj/mathsprint/ent/profile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAchievementState = "AchievementState"
	TypeLessonProgress   = "LessonProgress"
	TypePowerUp          = "PowerUp"
	TypeProfile          = "Profile"
)

// AchievementStateMutation represents an operation that mutates the AchievementState nodes in the graph.
type AchievementStateMutation struct {
	config
	op             Op
	typ            string
	id             *int
	achievement_id *string
	progress       *int
	addprogress    *int
	unlocked       *bool
	unlocked_at    *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AchievementState, error)
	predicates     []predicate.AchievementState
}

var _ ent.Mutation = (*AchievementStateMutation)(nil)

// achievementstateOption allows management of the mutation configuration using functional options.
type achievementstateOption func(*AchievementStateMutation)

// newAchievementStateMutation creates new mutation for the AchievementState entity.
func newAchievementStateMutation(c config, op Op, opts ...achievementstateOption) *AchievementStateMutation {
	m := &AchievementStateMutation{
		config:        c,
		op:            op,
		typ:           TypeAchievementState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAchievementStateID sets the ID field of the mutation.
func withAchievementStateID(id int) achievementstateOption {
	return func(m *AchievementStateMutation) {
		var (
			err   error
			once  sync.Once
			value *AchievementState
		)
		m.oldValue = func(ctx context.Context) (*AchievementState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AchievementState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAchievementState sets the old AchievementState of the mutation.
func withAchievementState(node *AchievementState) achievementstateOption {
	return func(m *AchievementStateMutation) {
		m.oldValue = func(context.Context) (*AchievementState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AchievementStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AchievementStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AchievementStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AchievementStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AchievementState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAchievementID sets the "achievement_id" field.
func (m *AchievementStateMutation) SetAchievementID(s string) {
	m.achievement_id = &s
}

// AchievementID returns the value of the "achievement_id" field in the mutation.
func (m *AchievementStateMutation) AchievementID() (r string, exists bool) {
	v := m.achievement_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAchievementID returns the old "achievement_id" field's value of the AchievementState entity.
// If the AchievementState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementStateMutation) OldAchievementID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAchievementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAchievementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAchievementID: %w", err)
	}
	return oldValue.AchievementID, nil
}

// ResetAchievementID resets all changes to the "achievement_id" field.
func (m *AchievementStateMutation) ResetAchievementID() {
	m.achievement_id = nil
}

// SetProgress sets the "progress" field.
func (m *AchievementStateMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *AchievementStateMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the AchievementState entity.
// If the AchievementState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementStateMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *AchievementStateMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *AchievementStateMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *AchievementStateMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetUnlocked sets the "unlocked" field.
func (m *AchievementStateMutation) SetUnlocked(b bool) {
	m.unlocked = &b
}

// Unlocked returns the value of the "unlocked" field in the mutation.
func (m *AchievementStateMutation) Unlocked() (r bool, exists bool) {
	v := m.unlocked
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlocked returns the old "unlocked" field's value of the AchievementState entity.
// If the AchievementState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementStateMutation) OldUnlocked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlocked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlocked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlocked: %w", err)
	}
	return oldValue.Unlocked, nil
}

// ResetUnlocked resets all changes to the "unlocked" field.
func (m *AchievementStateMutation) ResetUnlocked() {
	m.unlocked = nil
}

// SetUnlockedAt sets the "unlocked_at" field.
func (m *AchievementStateMutation) SetUnlockedAt(t time.Time) {
	m.unlocked_at = &t
}

// UnlockedAt returns the value of the "unlocked_at" field in the mutation.
func (m *AchievementStateMutation) UnlockedAt() (r time.Time, exists bool) {
	v := m.unlocked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlockedAt returns the old "unlocked_at" field's value of the AchievementState entity.
// If the AchievementState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementStateMutation) OldUnlockedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlockedAt: %w", err)
	}
	return oldValue.UnlockedAt, nil
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (m *AchievementStateMutation) ClearUnlockedAt() {
	m.unlocked_at = nil
	m.clearedFields[achievementstate.FieldUnlockedAt] = struct{}{}
}

// UnlockedAtCleared returns if the "unlocked_at" field was cleared in this mutation.
func (m *AchievementStateMutation) UnlockedAtCleared() bool {
	_, ok := m.clearedFields[achievementstate.FieldUnlockedAt]
	return ok
}

// ResetUnlockedAt resets all changes to the "unlocked_at" field.
func (m *AchievementStateMutation) ResetUnlockedAt() {
	m.unlocked_at = nil
	delete(m.clearedFields, achievementstate.FieldUnlockedAt)
}

// Where appends a list predicates to the AchievementStateMutation builder.
func (m *AchievementStateMutation) Where(ps ...predicate.AchievementState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AchievementStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AchievementStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AchievementState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AchievementStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AchievementStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AchievementState).
func (m *AchievementStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AchievementStateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.achievement_id != nil {
		fields = append(fields, achievementstate.FieldAchievementID)
	}
	if m.progress != nil {
		fields = append(fields, achievementstate.FieldProgress)
	}
	if m.unlocked != nil {
		fields = append(fields, achievementstate.FieldUnlocked)
	}
	if m.unlocked_at != nil {
		fields = append(fields, achievementstate.FieldUnlockedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AchievementStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case achievementstate.FieldAchievementID:
		return m.AchievementID()
	case achievementstate.FieldProgress:
		return m.Progress()
	case achievementstate.FieldUnlocked:
		return m.Unlocked()
	case achievementstate.FieldUnlockedAt:
		return m.UnlockedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AchievementStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case achievementstate.FieldAchievementID:
		return m.OldAchievementID(ctx)
	case achievementstate.FieldProgress:
		return m.OldProgress(ctx)
	case achievementstate.FieldUnlocked:
		return m.OldUnlocked(ctx)
	case achievementstate.FieldUnlockedAt:
		return m.OldUnlockedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AchievementState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case achievementstate.FieldAchievementID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAchievementID(v)
		return nil
	case achievementstate.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case achievementstate.FieldUnlocked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlocked(v)
		return nil
	case achievementstate.FieldUnlockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlockedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AchievementState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AchievementStateMutation) AddedFields() []string {
	var fields []string
	if m.addprogress != nil {
		fields = append(fields, achievementstate.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AchievementStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case achievementstate.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case achievementstate.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown AchievementState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AchievementStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(achievementstate.FieldUnlockedAt) {
		fields = append(fields, achievementstate.FieldUnlockedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AchievementStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AchievementStateMutation) ClearField(name string) error {
	switch name {
	case achievementstate.FieldUnlockedAt:
		m.ClearUnlockedAt()
		return nil
	}
	return fmt.Errorf("unknown AchievementState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AchievementStateMutation) ResetField(name string) error {
	switch name {
	case achievementstate.FieldAchievementID:
		m.ResetAchievementID()
		return nil
	case achievementstate.FieldProgress:
		m.ResetProgress()
		return nil
	case achievementstate.FieldUnlocked:
		m.ResetUnlocked()
		return nil
	case achievementstate.FieldUnlockedAt:
		m.ResetUnlockedAt()
		return nil
	}
	return fmt.Errorf("unknown AchievementState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AchievementStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AchievementStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AchievementStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AchievementStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AchievementStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AchievementStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AchievementStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AchievementState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AchievementStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AchievementState edge %s", name)
}

// LessonProgressMutation represents an operation that mutates the LessonProgress nodes in the graph.
type LessonProgressMutation struct {
	config
	op            Op
	typ           string
	id            *int
	lesson_id     *string
	completed     *bool
	stars         *int
	addstars      *int
	best_score    *int
	addbest_score *int
	attempts      *int
	addattempts   *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LessonProgress, error)
	predicates    []predicate.LessonProgress
}

var _ ent.Mutation = (*LessonProgressMutation)(nil)

// lessonprogressOption allows management of the mutation configuration using functional options.
type lessonprogressOption func(*LessonProgressMutation)

// newLessonProgressMutation creates new mutation for the LessonProgress entity.
func newLessonProgressMutation(c config, op Op, opts ...lessonprogressOption) *LessonProgressMutation {
	m := &LessonProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeLessonProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonProgressID sets the ID field of the mutation.
func withLessonProgressID(id int) lessonprogressOption {
	return func(m *LessonProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *LessonProgress
		)
		m.oldValue = func(ctx context.Context) (*LessonProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LessonProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLessonProgress sets the old LessonProgress of the mutation.
func withLessonProgress(node *LessonProgress) lessonprogressOption {
	return func(m *LessonProgressMutation) {
		m.oldValue = func(context.Context) (*LessonProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LessonProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLessonID sets the "lesson_id" field.
func (m *LessonProgressMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *LessonProgressMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *LessonProgressMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetCompleted sets the "completed" field.
func (m *LessonProgressMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *LessonProgressMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *LessonProgressMutation) ResetCompleted() {
	m.completed = nil
}

// SetStars sets the "stars" field.
func (m *LessonProgressMutation) SetStars(i int) {
	m.stars = &i
	m.addstars = nil
}

// Stars returns the value of the "stars" field in the mutation.
func (m *LessonProgressMutation) Stars() (r int, exists bool) {
	v := m.stars
	if v == nil {
		return
	}
	return *v, true
}

// OldStars returns the old "stars" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldStars(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStars is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStars requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStars: %w", err)
	}
	return oldValue.Stars, nil
}

// AddStars adds i to the "stars" field.
func (m *LessonProgressMutation) AddStars(i int) {
	if m.addstars != nil {
		*m.addstars += i
	} else {
		m.addstars = &i
	}
}

// AddedStars returns the value that was added to the "stars" field in this mutation.
func (m *LessonProgressMutation) AddedStars() (r int, exists bool) {
	v := m.addstars
	if v == nil {
		return
	}
	return *v, true
}

// ResetStars resets all changes to the "stars" field.
func (m *LessonProgressMutation) ResetStars() {
	m.stars = nil
	m.addstars = nil
}

// SetBestScore sets the "best_score" field.
func (m *LessonProgressMutation) SetBestScore(i int) {
	m.best_score = &i
	m.addbest_score = nil
}

// BestScore returns the value of the "best_score" field in the mutation.
func (m *LessonProgressMutation) BestScore() (r int, exists bool) {
	v := m.best_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBestScore returns the old "best_score" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldBestScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestScore: %w", err)
	}
	return oldValue.BestScore, nil
}

// AddBestScore adds i to the "best_score" field.
func (m *LessonProgressMutation) AddBestScore(i int) {
	if m.addbest_score != nil {
		*m.addbest_score += i
	} else {
		m.addbest_score = &i
	}
}

// AddedBestScore returns the value that was added to the "best_score" field in this mutation.
func (m *LessonProgressMutation) AddedBestScore() (r int, exists bool) {
	v := m.addbest_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBestScore resets all changes to the "best_score" field.
func (m *LessonProgressMutation) ResetBestScore() {
	m.best_score = nil
	m.addbest_score = nil
}

// SetAttempts sets the "attempts" field.
func (m *LessonProgressMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *LessonProgressMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *LessonProgressMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *LessonProgressMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *LessonProgressMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// Where appends a list predicates to the LessonProgressMutation builder.
func (m *LessonProgressMutation) Where(ps ...predicate.LessonProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LessonProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LessonProgress).
func (m *LessonProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonProgressMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.lesson_id != nil {
		fields = append(fields, lessonprogress.FieldLessonID)
	}
	if m.completed != nil {
		fields = append(fields, lessonprogress.FieldCompleted)
	}
	if m.stars != nil {
		fields = append(fields, lessonprogress.FieldStars)
	}
	if m.best_score != nil {
		fields = append(fields, lessonprogress.FieldBestScore)
	}
	if m.attempts != nil {
		fields = append(fields, lessonprogress.FieldAttempts)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lessonprogress.FieldLessonID:
		return m.LessonID()
	case lessonprogress.FieldCompleted:
		return m.Completed()
	case lessonprogress.FieldStars:
		return m.Stars()
	case lessonprogress.FieldBestScore:
		return m.BestScore()
	case lessonprogress.FieldAttempts:
		return m.Attempts()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lessonprogress.FieldLessonID:
		return m.OldLessonID(ctx)
	case lessonprogress.FieldCompleted:
		return m.OldCompleted(ctx)
	case lessonprogress.FieldStars:
		return m.OldStars(ctx)
	case lessonprogress.FieldBestScore:
		return m.OldBestScore(ctx)
	case lessonprogress.FieldAttempts:
		return m.OldAttempts(ctx)
	}
	return nil, fmt.Errorf("unknown LessonProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lessonprogress.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case lessonprogress.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case lessonprogress.FieldStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStars(v)
		return nil
	case lessonprogress.FieldBestScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestScore(v)
		return nil
	case lessonprogress.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown LessonProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonProgressMutation) AddedFields() []string {
	var fields []string
	if m.addstars != nil {
		fields = append(fields, lessonprogress.FieldStars)
	}
	if m.addbest_score != nil {
		fields = append(fields, lessonprogress.FieldBestScore)
	}
	if m.addattempts != nil {
		fields = append(fields, lessonprogress.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lessonprogress.FieldStars:
		return m.AddedStars()
	case lessonprogress.FieldBestScore:
		return m.AddedBestScore()
	case lessonprogress.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lessonprogress.FieldStars:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStars(v)
		return nil
	case lessonprogress.FieldBestScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestScore(v)
		return nil
	case lessonprogress.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown LessonProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonProgressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonProgressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LessonProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonProgressMutation) ResetField(name string) error {
	switch name {
	case lessonprogress.FieldLessonID:
		m.ResetLessonID()
		return nil
	case lessonprogress.FieldCompleted:
		m.ResetCompleted()
		return nil
	case lessonprogress.FieldStars:
		m.ResetStars()
		return nil
	case lessonprogress.FieldBestScore:
		m.ResetBestScore()
		return nil
	case lessonprogress.FieldAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown LessonProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LessonProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LessonProgress edge %s", name)
}

// PowerUpMutation represents an operation that mutates the PowerUp nodes in the graph.
type PowerUpMutation struct {
	config
	op            Op
	typ           string
	id            *int
	_type         *string
	active        *bool
	expires_at    *time.Time
	acquired_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PowerUp, error)
	predicates    []predicate.PowerUp
}

var _ ent.Mutation = (*PowerUpMutation)(nil)

// powerupOption allows management of the mutation configuration using functional options.
type powerupOption func(*PowerUpMutation)

// newPowerUpMutation creates new mutation for the PowerUp entity.
func newPowerUpMutation(c config, op Op, opts ...powerupOption) *PowerUpMutation {
	m := &PowerUpMutation{
		config:        c,
		op:            op,
		typ:           TypePowerUp,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPowerUpID sets the ID field of the mutation.
func withPowerUpID(id int) powerupOption {
	return func(m *PowerUpMutation) {
		var (
			err   error
			once  sync.Once
			value *PowerUp
		)
		m.oldValue = func(ctx context.Context) (*PowerUp, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PowerUp.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPowerUp sets the old PowerUp of the mutation.
func withPowerUp(node *PowerUp) powerupOption {
	return func(m *PowerUpMutation) {
		m.oldValue = func(context.Context) (*PowerUp, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PowerUpMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PowerUpMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PowerUpMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PowerUpMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PowerUp.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *PowerUpMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *PowerUpMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the PowerUp entity.
// If the PowerUp object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PowerUpMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *PowerUpMutation) ResetType() {
	m._type = nil
}

// SetActive sets the "active" field.
func (m *PowerUpMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *PowerUpMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the PowerUp entity.
// If the PowerUp object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PowerUpMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *PowerUpMutation) ResetActive() {
	m.active = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *PowerUpMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *PowerUpMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the PowerUp entity.
// If the PowerUp object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PowerUpMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *PowerUpMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[powerup.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *PowerUpMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[powerup.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *PowerUpMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, powerup.FieldExpiresAt)
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *PowerUpMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *PowerUpMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the PowerUp entity.
// If the PowerUp object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PowerUpMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *PowerUpMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// Where appends a list predicates to the PowerUpMutation builder.
func (m *PowerUpMutation) Where(ps ...predicate.PowerUp) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PowerUpMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PowerUpMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PowerUp, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PowerUpMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PowerUpMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PowerUp).
func (m *PowerUpMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PowerUpMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m._type != nil {
		fields = append(fields, powerup.FieldType)
	}
	if m.active != nil {
		fields = append(fields, powerup.FieldActive)
	}
	if m.expires_at != nil {
		fields = append(fields, powerup.FieldExpiresAt)
	}
	if m.acquired_at != nil {
		fields = append(fields, powerup.FieldAcquiredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PowerUpMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case powerup.FieldType:
		return m.GetType()
	case powerup.FieldActive:
		return m.Active()
	case powerup.FieldExpiresAt:
		return m.ExpiresAt()
	case powerup.FieldAcquiredAt:
		return m.AcquiredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PowerUpMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case powerup.FieldType:
		return m.OldType(ctx)
	case powerup.FieldActive:
		return m.OldActive(ctx)
	case powerup.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case powerup.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	}
	return nil, fmt.Errorf("unknown PowerUp field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PowerUpMutation) SetField(name string, value ent.Value) error {
	switch name {
	case powerup.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case powerup.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case powerup.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case powerup.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	}
	return fmt.Errorf("unknown PowerUp field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PowerUpMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PowerUpMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PowerUpMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PowerUp numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PowerUpMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(powerup.FieldExpiresAt) {
		fields = append(fields, powerup.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PowerUpMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PowerUpMutation) ClearField(name string) error {
	switch name {
	case powerup.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown PowerUp nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PowerUpMutation) ResetField(name string) error {
	switch name {
	case powerup.FieldType:
		m.ResetType()
		return nil
	case powerup.FieldActive:
		m.ResetActive()
		return nil
	case powerup.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case powerup.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	}
	return fmt.Errorf("unknown PowerUp field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PowerUpMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PowerUpMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PowerUpMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PowerUpMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PowerUpMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PowerUpMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PowerUpMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PowerUp unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PowerUpMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PowerUp edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	username                   *string
	xp                         *int
	addxp                      *int
	hearts                     *int
	addhearts                  *int
	max_hearts                 *int
	addmax_hearts              *int
	coins                      *int
	addcoins                   *int
	streak_count               *int
	addstreak_count            *int
	longest_streak             *int
	addlongest_streak          *int
	last_active_date           *time.Time
	last_heart_loss            *time.Time
	daily_xp_goal              *int
	adddaily_xp_goal           *int
	daily_xp_earned            *int
	adddaily_xp_earned         *int
	total_xp_earned            *int
	addtotal_xp_earned         *int
	total_lessons_completed    *int
	addtotal_lessons_completed *int
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*Profile, error)
	predicates                 []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id int) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *ProfileMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *ProfileMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *ProfileMutation) ResetUsername() {
	m.username = nil
}

// SetXp sets the "xp" field.
func (m *ProfileMutation) SetXp(i int) {
	m.xp = &i
	m.addxp = nil
}

// Xp returns the value of the "xp" field in the mutation.
func (m *ProfileMutation) Xp() (r int, exists bool) {
	v := m.xp
	if v == nil {
		return
	}
	return *v, true
}

// OldXp returns the old "xp" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXp: %w", err)
	}
	return oldValue.Xp, nil
}

// AddXp adds i to the "xp" field.
func (m *ProfileMutation) AddXp(i int) {
	if m.addxp != nil {
		*m.addxp += i
	} else {
		m.addxp = &i
	}
}

// AddedXp returns the value that was added to the "xp" field in this mutation.
func (m *ProfileMutation) AddedXp() (r int, exists bool) {
	v := m.addxp
	if v == nil {
		return
	}
	return *v, true
}

// ResetXp resets all changes to the "xp" field.
func (m *ProfileMutation) ResetXp() {
	m.xp = nil
	m.addxp = nil
}

// SetHearts sets the "hearts" field.
func (m *ProfileMutation) SetHearts(i int) {
	m.hearts = &i
	m.addhearts = nil
}

// Hearts returns the value of the "hearts" field in the mutation.
func (m *ProfileMutation) Hearts() (r int, exists bool) {
	v := m.hearts
	if v == nil {
		return
	}
	return *v, true
}

// OldHearts returns the old "hearts" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldHearts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHearts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHearts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHearts: %w", err)
	}
	return oldValue.Hearts, nil
}

// AddHearts adds i to the "hearts" field.
func (m *ProfileMutation) AddHearts(i int) {
	if m.addhearts != nil {
		*m.addhearts += i
	} else {
		m.addhearts = &i
	}
}

// AddedHearts returns the value that was added to the "hearts" field in this mutation.
func (m *ProfileMutation) AddedHearts() (r int, exists bool) {
	v := m.addhearts
	if v == nil {
		return
	}
	return *v, true
}

// ResetHearts resets all changes to the "hearts" field.
func (m *ProfileMutation) ResetHearts() {
	m.hearts = nil
	m.addhearts = nil
}

// SetMaxHearts sets the "max_hearts" field.
func (m *ProfileMutation) SetMaxHearts(i int) {
	m.max_hearts = &i
	m.addmax_hearts = nil
}

// MaxHearts returns the value of the "max_hearts" field in the mutation.
func (m *ProfileMutation) MaxHearts() (r int, exists bool) {
	v := m.max_hearts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxHearts returns the old "max_hearts" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldMaxHearts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxHearts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxHearts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxHearts: %w", err)
	}
	return oldValue.MaxHearts, nil
}

// AddMaxHearts adds i to the "max_hearts" field.
func (m *ProfileMutation) AddMaxHearts(i int) {
	if m.addmax_hearts != nil {
		*m.addmax_hearts += i
	} else {
		m.addmax_hearts = &i
	}
}

// AddedMaxHearts returns the value that was added to the "max_hearts" field in this mutation.
func (m *ProfileMutation) AddedMaxHearts() (r int, exists bool) {
	v := m.addmax_hearts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxHearts resets all changes to the "max_hearts" field.
func (m *ProfileMutation) ResetMaxHearts() {
	m.max_hearts = nil
	m.addmax_hearts = nil
}

// SetCoins sets the "coins" field.
func (m *ProfileMutation) SetCoins(i int) {
	m.coins = &i
	m.addcoins = nil
}

// Coins returns the value of the "coins" field in the mutation.
func (m *ProfileMutation) Coins() (r int, exists bool) {
	v := m.coins
	if v == nil {
		return
	}
	return *v, true
}

// OldCoins returns the old "coins" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCoins(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoins is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoins requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoins: %w", err)
	}
	return oldValue.Coins, nil
}

// AddCoins adds i to the "coins" field.
func (m *ProfileMutation) AddCoins(i int) {
	if m.addcoins != nil {
		*m.addcoins += i
	} else {
		m.addcoins = &i
	}
}

// AddedCoins returns the value that was added to the "coins" field in this mutation.
func (m *ProfileMutation) AddedCoins() (r int, exists bool) {
	v := m.addcoins
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoins resets all changes to the "coins" field.
func (m *ProfileMutation) ResetCoins() {
	m.coins = nil
	m.addcoins = nil
}

// SetStreakCount sets the "streak_count" field.
func (m *ProfileMutation) SetStreakCount(i int) {
	m.streak_count = &i
	m.addstreak_count = nil
}

// StreakCount returns the value of the "streak_count" field in the mutation.
func (m *ProfileMutation) StreakCount() (r int, exists bool) {
	v := m.streak_count
	if v == nil {
		return
	}
	return *v, true
}

// OldStreakCount returns the old "streak_count" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldStreakCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreakCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreakCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreakCount: %w", err)
	}
	return oldValue.StreakCount, nil
}

// AddStreakCount adds i to the "streak_count" field.
func (m *ProfileMutation) AddStreakCount(i int) {
	if m.addstreak_count != nil {
		*m.addstreak_count += i
	} else {
		m.addstreak_count = &i
	}
}

// AddedStreakCount returns the value that was added to the "streak_count" field in this mutation.
func (m *ProfileMutation) AddedStreakCount() (r int, exists bool) {
	v := m.addstreak_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreakCount resets all changes to the "streak_count" field.
func (m *ProfileMutation) ResetStreakCount() {
	m.streak_count = nil
	m.addstreak_count = nil
}

// SetLongestStreak sets the "longest_streak" field.
func (m *ProfileMutation) SetLongestStreak(i int) {
	m.longest_streak = &i
	m.addlongest_streak = nil
}

// LongestStreak returns the value of the "longest_streak" field in the mutation.
func (m *ProfileMutation) LongestStreak() (r int, exists bool) {
	v := m.longest_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldLongestStreak returns the old "longest_streak" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldLongestStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongestStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongestStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongestStreak: %w", err)
	}
	return oldValue.LongestStreak, nil
}

// AddLongestStreak adds i to the "longest_streak" field.
func (m *ProfileMutation) AddLongestStreak(i int) {
	if m.addlongest_streak != nil {
		*m.addlongest_streak += i
	} else {
		m.addlongest_streak = &i
	}
}

// AddedLongestStreak returns the value that was added to the "longest_streak" field in this mutation.
func (m *ProfileMutation) AddedLongestStreak() (r int, exists bool) {
	v := m.addlongest_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongestStreak resets all changes to the "longest_streak" field.
func (m *ProfileMutation) ResetLongestStreak() {
	m.longest_streak = nil
	m.addlongest_streak = nil
}

// SetLastActiveDate sets the "last_active_date" field.
func (m *ProfileMutation) SetLastActiveDate(t time.Time) {
	m.last_active_date = &t
}

// LastActiveDate returns the value of the "last_active_date" field in the mutation.
func (m *ProfileMutation) LastActiveDate() (r time.Time, exists bool) {
	v := m.last_active_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActiveDate returns the old "last_active_date" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldLastActiveDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActiveDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActiveDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActiveDate: %w", err)
	}
	return oldValue.LastActiveDate, nil
}

// ClearLastActiveDate clears the value of the "last_active_date" field.
func (m *ProfileMutation) ClearLastActiveDate() {
	m.last_active_date = nil
	m.clearedFields[profile.FieldLastActiveDate] = struct{}{}
}

// LastActiveDateCleared returns if the "last_active_date" field was cleared in this mutation.
func (m *ProfileMutation) LastActiveDateCleared() bool {
	_, ok := m.clearedFields[profile.FieldLastActiveDate]
	return ok
}

// ResetLastActiveDate resets all changes to the "last_active_date" field.
func (m *ProfileMutation) ResetLastActiveDate() {
	m.last_active_date = nil
	delete(m.clearedFields, profile.FieldLastActiveDate)
}

// SetLastHeartLoss sets the "last_heart_loss" field.
func (m *ProfileMutation) SetLastHeartLoss(t time.Time) {
	m.last_heart_loss = &t
}

// LastHeartLoss returns the value of the "last_heart_loss" field in the mutation.
func (m *ProfileMutation) LastHeartLoss() (r time.Time, exists bool) {
	v := m.last_heart_loss
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartLoss returns the old "last_heart_loss" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldLastHeartLoss(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartLoss is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartLoss requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartLoss: %w", err)
	}
	return oldValue.LastHeartLoss, nil
}

// ClearLastHeartLoss clears the value of the "last_heart_loss" field.
func (m *ProfileMutation) ClearLastHeartLoss() {
	m.last_heart_loss = nil
	m.clearedFields[profile.FieldLastHeartLoss] = struct{}{}
}

// LastHeartLossCleared returns if the "last_heart_loss" field was cleared in this mutation.
func (m *ProfileMutation) LastHeartLossCleared() bool {
	_, ok := m.clearedFields[profile.FieldLastHeartLoss]
	return ok
}

// ResetLastHeartLoss resets all changes to the "last_heart_loss" field.
func (m *ProfileMutation) ResetLastHeartLoss() {
	m.last_heart_loss = nil
	delete(m.clearedFields, profile.FieldLastHeartLoss)
}

// SetDailyXpGoal sets the "daily_xp_goal" field.
func (m *ProfileMutation) SetDailyXpGoal(i int) {
	m.daily_xp_goal = &i
	m.adddaily_xp_goal = nil
}

// DailyXpGoal returns the value of the "daily_xp_goal" field in the mutation.
func (m *ProfileMutation) DailyXpGoal() (r int, exists bool) {
	v := m.daily_xp_goal
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyXpGoal returns the old "daily_xp_goal" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldDailyXpGoal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyXpGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyXpGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyXpGoal: %w", err)
	}
	return oldValue.DailyXpGoal, nil
}

// AddDailyXpGoal adds i to the "daily_xp_goal" field.
func (m *ProfileMutation) AddDailyXpGoal(i int) {
	if m.adddaily_xp_goal != nil {
		*m.adddaily_xp_goal += i
	} else {
		m.adddaily_xp_goal = &i
	}
}

// AddedDailyXpGoal returns the value that was added to the "daily_xp_goal" field in this mutation.
func (m *ProfileMutation) AddedDailyXpGoal() (r int, exists bool) {
	v := m.adddaily_xp_goal
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyXpGoal resets all changes to the "daily_xp_goal" field.
func (m *ProfileMutation) ResetDailyXpGoal() {
	m.daily_xp_goal = nil
	m.adddaily_xp_goal = nil
}

// SetDailyXpEarned sets the "daily_xp_earned" field.
func (m *ProfileMutation) SetDailyXpEarned(i int) {
	m.daily_xp_earned = &i
	m.adddaily_xp_earned = nil
}

// DailyXpEarned returns the value of the "daily_xp_earned" field in the mutation.
func (m *ProfileMutation) DailyXpEarned() (r int, exists bool) {
	v := m.daily_xp_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyXpEarned returns the old "daily_xp_earned" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldDailyXpEarned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyXpEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyXpEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyXpEarned: %w", err)
	}
	return oldValue.DailyXpEarned, nil
}

// AddDailyXpEarned adds i to the "daily_xp_earned" field.
func (m *ProfileMutation) AddDailyXpEarned(i int) {
	if m.adddaily_xp_earned != nil {
		*m.adddaily_xp_earned += i
	} else {
		m.adddaily_xp_earned = &i
	}
}

// AddedDailyXpEarned returns the value that was added to the "daily_xp_earned" field in this mutation.
func (m *ProfileMutation) AddedDailyXpEarned() (r int, exists bool) {
	v := m.adddaily_xp_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyXpEarned resets all changes to the "daily_xp_earned" field.
func (m *ProfileMutation) ResetDailyXpEarned() {
	m.daily_xp_earned = nil
	m.adddaily_xp_earned = nil
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (m *ProfileMutation) SetTotalXpEarned(i int) {
	m.total_xp_earned = &i
	m.addtotal_xp_earned = nil
}

// TotalXpEarned returns the value of the "total_xp_earned" field in the mutation.
func (m *ProfileMutation) TotalXpEarned() (r int, exists bool) {
	v := m.total_xp_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalXpEarned returns the old "total_xp_earned" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldTotalXpEarned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalXpEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalXpEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalXpEarned: %w", err)
	}
	return oldValue.TotalXpEarned, nil
}

// AddTotalXpEarned adds i to the "total_xp_earned" field.
func (m *ProfileMutation) AddTotalXpEarned(i int) {
	if m.addtotal_xp_earned != nil {
		*m.addtotal_xp_earned += i
	} else {
		m.addtotal_xp_earned = &i
	}
}

// AddedTotalXpEarned returns the value that was added to the "total_xp_earned" field in this mutation.
func (m *ProfileMutation) AddedTotalXpEarned() (r int, exists bool) {
	v := m.addtotal_xp_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalXpEarned resets all changes to the "total_xp_earned" field.
func (m *ProfileMutation) ResetTotalXpEarned() {
	m.total_xp_earned = nil
	m.addtotal_xp_earned = nil
}

// SetTotalLessonsCompleted sets the "total_lessons_completed" field.
func (m *ProfileMutation) SetTotalLessonsCompleted(i int) {
	m.total_lessons_completed = &i
	m.addtotal_lessons_completed = nil
}

// TotalLessonsCompleted returns the value of the "total_lessons_completed" field in the mutation.
func (m *ProfileMutation) TotalLessonsCompleted() (r int, exists bool) {
	v := m.total_lessons_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalLessonsCompleted returns the old "total_lessons_completed" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldTotalLessonsCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalLessonsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalLessonsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalLessonsCompleted: %w", err)
	}
	return oldValue.TotalLessonsCompleted, nil
}

// AddTotalLessonsCompleted adds i to the "total_lessons_completed" field.
func (m *ProfileMutation) AddTotalLessonsCompleted(i int) {
	if m.addtotal_lessons_completed != nil {
		*m.addtotal_lessons_completed += i
	} else {
		m.addtotal_lessons_completed = &i
	}
}

// AddedTotalLessonsCompleted returns the value that was added to the "total_lessons_completed" field in this mutation.
func (m *ProfileMutation) AddedTotalLessonsCompleted() (r int, exists bool) {
	v := m.addtotal_lessons_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalLessonsCompleted resets all changes to the "total_lessons_completed" field.
func (m *ProfileMutation) ResetTotalLessonsCompleted() {
	m.total_lessons_completed = nil
	m.addtotal_lessons_completed = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.username != nil {
		fields = append(fields, profile.FieldUsername)
	}
	if m.xp != nil {
		fields = append(fields, profile.FieldXp)
	}
	if m.hearts != nil {
		fields = append(fields, profile.FieldHearts)
	}
	if m.max_hearts != nil {
		fields = append(fields, profile.FieldMaxHearts)
	}
	if m.coins != nil {
		fields = append(fields, profile.FieldCoins)
	}
	if m.streak_count != nil {
		fields = append(fields, profile.FieldStreakCount)
	}
	if m.longest_streak != nil {
		fields = append(fields, profile.FieldLongestStreak)
	}
	if m.last_active_date != nil {
		fields = append(fields, profile.FieldLastActiveDate)
	}
	if m.last_heart_loss != nil {
		fields = append(fields, profile.FieldLastHeartLoss)
	}
	if m.daily_xp_goal != nil {
		fields = append(fields, profile.FieldDailyXpGoal)
	}
	if m.daily_xp_earned != nil {
		fields = append(fields, profile.FieldDailyXpEarned)
	}
	if m.total_xp_earned != nil {
		fields = append(fields, profile.FieldTotalXpEarned)
	}
	if m.total_lessons_completed != nil {
		fields = append(fields, profile.FieldTotalLessonsCompleted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldUsername:
		return m.Username()
	case profile.FieldXp:
		return m.Xp()
	case profile.FieldHearts:
		return m.Hearts()
	case profile.FieldMaxHearts:
		return m.MaxHearts()
	case profile.FieldCoins:
		return m.Coins()
	case profile.FieldStreakCount:
		return m.StreakCount()
	case profile.FieldLongestStreak:
		return m.LongestStreak()
	case profile.FieldLastActiveDate:
		return m.LastActiveDate()
	case profile.FieldLastHeartLoss:
		return m.LastHeartLoss()
	case profile.FieldDailyXpGoal:
		return m.DailyXpGoal()
	case profile.FieldDailyXpEarned:
		return m.DailyXpEarned()
	case profile.FieldTotalXpEarned:
		return m.TotalXpEarned()
	case profile.FieldTotalLessonsCompleted:
		return m.TotalLessonsCompleted()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldUsername:
		return m.OldUsername(ctx)
	case profile.FieldXp:
		return m.OldXp(ctx)
	case profile.FieldHearts:
		return m.OldHearts(ctx)
	case profile.FieldMaxHearts:
		return m.OldMaxHearts(ctx)
	case profile.FieldCoins:
		return m.OldCoins(ctx)
	case profile.FieldStreakCount:
		return m.OldStreakCount(ctx)
	case profile.FieldLongestStreak:
		return m.OldLongestStreak(ctx)
	case profile.FieldLastActiveDate:
		return m.OldLastActiveDate(ctx)
	case profile.FieldLastHeartLoss:
		return m.OldLastHeartLoss(ctx)
	case profile.FieldDailyXpGoal:
		return m.OldDailyXpGoal(ctx)
	case profile.FieldDailyXpEarned:
		return m.OldDailyXpEarned(ctx)
	case profile.FieldTotalXpEarned:
		return m.OldTotalXpEarned(ctx)
	case profile.FieldTotalLessonsCompleted:
		return m.OldTotalLessonsCompleted(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case profile.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXp(v)
		return nil
	case profile.FieldHearts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHearts(v)
		return nil
	case profile.FieldMaxHearts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxHearts(v)
		return nil
	case profile.FieldCoins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoins(v)
		return nil
	case profile.FieldStreakCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreakCount(v)
		return nil
	case profile.FieldLongestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongestStreak(v)
		return nil
	case profile.FieldLastActiveDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActiveDate(v)
		return nil
	case profile.FieldLastHeartLoss:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartLoss(v)
		return nil
	case profile.FieldDailyXpGoal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyXpGoal(v)
		return nil
	case profile.FieldDailyXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyXpEarned(v)
		return nil
	case profile.FieldTotalXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalXpEarned(v)
		return nil
	case profile.FieldTotalLessonsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalLessonsCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	var fields []string
	if m.addxp != nil {
		fields = append(fields, profile.FieldXp)
	}
	if m.addhearts != nil {
		fields = append(fields, profile.FieldHearts)
	}
	if m.addmax_hearts != nil {
		fields = append(fields, profile.FieldMaxHearts)
	}
	if m.addcoins != nil {
		fields = append(fields, profile.FieldCoins)
	}
	if m.addstreak_count != nil {
		fields = append(fields, profile.FieldStreakCount)
	}
	if m.addlongest_streak != nil {
		fields = append(fields, profile.FieldLongestStreak)
	}
	if m.adddaily_xp_goal != nil {
		fields = append(fields, profile.FieldDailyXpGoal)
	}
	if m.adddaily_xp_earned != nil {
		fields = append(fields, profile.FieldDailyXpEarned)
	}
	if m.addtotal_xp_earned != nil {
		fields = append(fields, profile.FieldTotalXpEarned)
	}
	if m.addtotal_lessons_completed != nil {
		fields = append(fields, profile.FieldTotalLessonsCompleted)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldXp:
		return m.AddedXp()
	case profile.FieldHearts:
		return m.AddedHearts()
	case profile.FieldMaxHearts:
		return m.AddedMaxHearts()
	case profile.FieldCoins:
		return m.AddedCoins()
	case profile.FieldStreakCount:
		return m.AddedStreakCount()
	case profile.FieldLongestStreak:
		return m.AddedLongestStreak()
	case profile.FieldDailyXpGoal:
		return m.AddedDailyXpGoal()
	case profile.FieldDailyXpEarned:
		return m.AddedDailyXpEarned()
	case profile.FieldTotalXpEarned:
		return m.AddedTotalXpEarned()
	case profile.FieldTotalLessonsCompleted:
		return m.AddedTotalLessonsCompleted()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case profile.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXp(v)
		return nil
	case profile.FieldHearts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHearts(v)
		return nil
	case profile.FieldMaxHearts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxHearts(v)
		return nil
	case profile.FieldCoins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoins(v)
		return nil
	case profile.FieldStreakCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreakCount(v)
		return nil
	case profile.FieldLongestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongestStreak(v)
		return nil
	case profile.FieldDailyXpGoal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyXpGoal(v)
		return nil
	case profile.FieldDailyXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyXpEarned(v)
		return nil
	case profile.FieldTotalXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalXpEarned(v)
		return nil
	case profile.FieldTotalLessonsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalLessonsCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profile.FieldLastActiveDate) {
		fields = append(fields, profile.FieldLastActiveDate)
	}
	if m.FieldCleared(profile.FieldLastHeartLoss) {
		fields = append(fields, profile.FieldLastHeartLoss)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	switch name {
	case profile.FieldLastActiveDate:
		m.ClearLastActiveDate()
		return nil
	case profile.FieldLastHeartLoss:
		m.ClearLastHeartLoss()
		return nil
	}
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldUsername:
		m.ResetUsername()
		return nil
	case profile.FieldXp:
		m.ResetXp()
		return nil
	case profile.FieldHearts:
		m.ResetHearts()
		return nil
	case profile.FieldMaxHearts:
		m.ResetMaxHearts()
		return nil
	case profile.FieldCoins:
		m.ResetCoins()
		return nil
	case profile.FieldStreakCount:
		m.ResetStreakCount()
		return nil
	case profile.FieldLongestStreak:
		m.ResetLongestStreak()
		return nil
	case profile.FieldLastActiveDate:
		m.ResetLastActiveDate()
		return nil
	case profile.FieldLastHeartLoss:
		m.ResetLastHeartLoss()
		return nil
	case profile.FieldDailyXpGoal:
		m.ResetDailyXpGoal()
		return nil
	case profile.FieldDailyXpEarned:
		m.ResetDailyXpEarned()
		return nil
	case profile.FieldTotalXpEarned:
		m.ResetTotalXpEarned()
		return nil
	case profile.FieldTotalLessonsCompleted:
		m.ResetTotalLessonsCompleted()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Profile edge %s", name)
}
