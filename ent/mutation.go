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
	"github.com/acampos/giftwise/ent/developmentplan"
	"github.com/acampos/giftwise/ent/giftresult"
	"github.com/acampos/giftwise/ent/predicate"
	"github.com/acampos/giftwise/ent/schema"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDevelopmentPlan = "DevelopmentPlan"
	TypeGiftResult      = "GiftResult"
)

// DevelopmentPlanMutation represents an operation that mutates the DevelopmentPlan nodes in the graph.
type DevelopmentPlanMutation struct {
	config
	op            Op
	typ           string
	id            *int
	doc_key       *string
	owner_name    *string
	owner_email   *string
	data          *map[string]interface{}
	last_updated  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DevelopmentPlan, error)
	predicates    []predicate.DevelopmentPlan
}

var _ ent.Mutation = (*DevelopmentPlanMutation)(nil)

// developmentplanOption allows management of the mutation configuration using functional options.
type developmentplanOption func(*DevelopmentPlanMutation)

// newDevelopmentPlanMutation creates new mutation for the DevelopmentPlan entity.
func newDevelopmentPlanMutation(c config, op Op, opts ...developmentplanOption) *DevelopmentPlanMutation {
	m := &DevelopmentPlanMutation{
		config:        c,
		op:            op,
		typ:           TypeDevelopmentPlan,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDevelopmentPlanID sets the ID field of the mutation.
func withDevelopmentPlanID(id int) developmentplanOption {
	return func(m *DevelopmentPlanMutation) {
		var (
			err   error
			once  sync.Once
			value *DevelopmentPlan
		)
		m.oldValue = func(ctx context.Context) (*DevelopmentPlan, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DevelopmentPlan.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDevelopmentPlan sets the old DevelopmentPlan of the mutation.
func withDevelopmentPlan(node *DevelopmentPlan) developmentplanOption {
	return func(m *DevelopmentPlanMutation) {
		m.oldValue = func(context.Context) (*DevelopmentPlan, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DevelopmentPlanMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DevelopmentPlanMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DevelopmentPlanMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DevelopmentPlanMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DevelopmentPlan.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocKey sets the "doc_key" field.
func (m *DevelopmentPlanMutation) SetDocKey(s string) {
	m.doc_key = &s
}

// DocKey returns the value of the "doc_key" field in the mutation.
func (m *DevelopmentPlanMutation) DocKey() (r string, exists bool) {
	v := m.doc_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDocKey returns the old "doc_key" field's value of the DevelopmentPlan entity.
// If the DevelopmentPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DevelopmentPlanMutation) OldDocKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocKey: %w", err)
	}
	return oldValue.DocKey, nil
}

// ResetDocKey resets all changes to the "doc_key" field.
func (m *DevelopmentPlanMutation) ResetDocKey() {
	m.doc_key = nil
}

// SetOwnerName sets the "owner_name" field.
func (m *DevelopmentPlanMutation) SetOwnerName(s string) {
	m.owner_name = &s
}

// OwnerName returns the value of the "owner_name" field in the mutation.
func (m *DevelopmentPlanMutation) OwnerName() (r string, exists bool) {
	v := m.owner_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerName returns the old "owner_name" field's value of the DevelopmentPlan entity.
// If the DevelopmentPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DevelopmentPlanMutation) OldOwnerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerName: %w", err)
	}
	return oldValue.OwnerName, nil
}

// ResetOwnerName resets all changes to the "owner_name" field.
func (m *DevelopmentPlanMutation) ResetOwnerName() {
	m.owner_name = nil
}

// SetOwnerEmail sets the "owner_email" field.
func (m *DevelopmentPlanMutation) SetOwnerEmail(s string) {
	m.owner_email = &s
}

// OwnerEmail returns the value of the "owner_email" field in the mutation.
func (m *DevelopmentPlanMutation) OwnerEmail() (r string, exists bool) {
	v := m.owner_email
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerEmail returns the old "owner_email" field's value of the DevelopmentPlan entity.
// If the DevelopmentPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DevelopmentPlanMutation) OldOwnerEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerEmail: %w", err)
	}
	return oldValue.OwnerEmail, nil
}

// ResetOwnerEmail resets all changes to the "owner_email" field.
func (m *DevelopmentPlanMutation) ResetOwnerEmail() {
	m.owner_email = nil
}

// SetData sets the "data" field.
func (m *DevelopmentPlanMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *DevelopmentPlanMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the DevelopmentPlan entity.
// If the DevelopmentPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DevelopmentPlanMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *DevelopmentPlanMutation) ResetData() {
	m.data = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *DevelopmentPlanMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *DevelopmentPlanMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the DevelopmentPlan entity.
// If the DevelopmentPlan object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DevelopmentPlanMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *DevelopmentPlanMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// Where appends a list predicates to the DevelopmentPlanMutation builder.
func (m *DevelopmentPlanMutation) Where(ps ...predicate.DevelopmentPlan) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DevelopmentPlanMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DevelopmentPlanMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DevelopmentPlan, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DevelopmentPlanMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DevelopmentPlanMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DevelopmentPlan).
func (m *DevelopmentPlanMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DevelopmentPlanMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.doc_key != nil {
		fields = append(fields, developmentplan.FieldDocKey)
	}
	if m.owner_name != nil {
		fields = append(fields, developmentplan.FieldOwnerName)
	}
	if m.owner_email != nil {
		fields = append(fields, developmentplan.FieldOwnerEmail)
	}
	if m.data != nil {
		fields = append(fields, developmentplan.FieldData)
	}
	if m.last_updated != nil {
		fields = append(fields, developmentplan.FieldLastUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DevelopmentPlanMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case developmentplan.FieldDocKey:
		return m.DocKey()
	case developmentplan.FieldOwnerName:
		return m.OwnerName()
	case developmentplan.FieldOwnerEmail:
		return m.OwnerEmail()
	case developmentplan.FieldData:
		return m.Data()
	case developmentplan.FieldLastUpdated:
		return m.LastUpdated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DevelopmentPlanMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case developmentplan.FieldDocKey:
		return m.OldDocKey(ctx)
	case developmentplan.FieldOwnerName:
		return m.OldOwnerName(ctx)
	case developmentplan.FieldOwnerEmail:
		return m.OldOwnerEmail(ctx)
	case developmentplan.FieldData:
		return m.OldData(ctx)
	case developmentplan.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown DevelopmentPlan field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DevelopmentPlanMutation) SetField(name string, value ent.Value) error {
	switch name {
	case developmentplan.FieldDocKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocKey(v)
		return nil
	case developmentplan.FieldOwnerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerName(v)
		return nil
	case developmentplan.FieldOwnerEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerEmail(v)
		return nil
	case developmentplan.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case developmentplan.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown DevelopmentPlan field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DevelopmentPlanMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DevelopmentPlanMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DevelopmentPlanMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DevelopmentPlan numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DevelopmentPlanMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DevelopmentPlanMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DevelopmentPlanMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DevelopmentPlan nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DevelopmentPlanMutation) ResetField(name string) error {
	switch name {
	case developmentplan.FieldDocKey:
		m.ResetDocKey()
		return nil
	case developmentplan.FieldOwnerName:
		m.ResetOwnerName()
		return nil
	case developmentplan.FieldOwnerEmail:
		m.ResetOwnerEmail()
		return nil
	case developmentplan.FieldData:
		m.ResetData()
		return nil
	case developmentplan.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown DevelopmentPlan field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DevelopmentPlanMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DevelopmentPlanMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DevelopmentPlanMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DevelopmentPlanMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DevelopmentPlanMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DevelopmentPlanMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DevelopmentPlanMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DevelopmentPlan unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DevelopmentPlanMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DevelopmentPlan edge %s", name)
}

// GiftResultMutation represents an operation that mutates the GiftResult nodes in the graph.
type GiftResultMutation struct {
	config
	op               Op
	typ              string
	id               *int
	submission_id    *string
	name             *string
	user_email       *string
	top_gifts        *[]schema.GiftScoreDoc
	appendtop_gifts  []schema.GiftScoreDoc
	all_scores       *[]schema.GiftScoreDoc
	appendall_scores []schema.GiftScoreDoc
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*GiftResult, error)
	predicates       []predicate.GiftResult
}

var _ ent.Mutation = (*GiftResultMutation)(nil)

// giftresultOption allows management of the mutation configuration using functional options.
type giftresultOption func(*GiftResultMutation)

// newGiftResultMutation creates new mutation for the GiftResult entity.
func newGiftResultMutation(c config, op Op, opts ...giftresultOption) *GiftResultMutation {
	m := &GiftResultMutation{
		config:        c,
		op:            op,
		typ:           TypeGiftResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGiftResultID sets the ID field of the mutation.
func withGiftResultID(id int) giftresultOption {
	return func(m *GiftResultMutation) {
		var (
			err   error
			once  sync.Once
			value *GiftResult
		)
		m.oldValue = func(ctx context.Context) (*GiftResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GiftResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGiftResult sets the old GiftResult of the mutation.
func withGiftResult(node *GiftResult) giftresultOption {
	return func(m *GiftResultMutation) {
		m.oldValue = func(context.Context) (*GiftResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GiftResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GiftResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GiftResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GiftResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GiftResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubmissionID sets the "submission_id" field.
func (m *GiftResultMutation) SetSubmissionID(s string) {
	m.submission_id = &s
}

// SubmissionID returns the value of the "submission_id" field in the mutation.
func (m *GiftResultMutation) SubmissionID() (r string, exists bool) {
	v := m.submission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmissionID returns the old "submission_id" field's value of the GiftResult entity.
// If the GiftResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GiftResultMutation) OldSubmissionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmissionID: %w", err)
	}
	return oldValue.SubmissionID, nil
}

// ResetSubmissionID resets all changes to the "submission_id" field.
func (m *GiftResultMutation) ResetSubmissionID() {
	m.submission_id = nil
}

// SetName sets the "name" field.
func (m *GiftResultMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GiftResultMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the GiftResult entity.
// If the GiftResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GiftResultMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *GiftResultMutation) ResetName() {
	m.name = nil
}

// SetUserEmail sets the "user_email" field.
func (m *GiftResultMutation) SetUserEmail(s string) {
	m.user_email = &s
}

// UserEmail returns the value of the "user_email" field in the mutation.
func (m *GiftResultMutation) UserEmail() (r string, exists bool) {
	v := m.user_email
	if v == nil {
		return
	}
	return *v, true
}

// OldUserEmail returns the old "user_email" field's value of the GiftResult entity.
// If the GiftResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GiftResultMutation) OldUserEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserEmail: %w", err)
	}
	return oldValue.UserEmail, nil
}

// ResetUserEmail resets all changes to the "user_email" field.
func (m *GiftResultMutation) ResetUserEmail() {
	m.user_email = nil
}

// SetTopGifts sets the "top_gifts" field.
func (m *GiftResultMutation) SetTopGifts(ssd []schema.GiftScoreDoc) {
	m.top_gifts = &ssd
	m.appendtop_gifts = nil
}

// TopGifts returns the value of the "top_gifts" field in the mutation.
func (m *GiftResultMutation) TopGifts() (r []schema.GiftScoreDoc, exists bool) {
	v := m.top_gifts
	if v == nil {
		return
	}
	return *v, true
}

// OldTopGifts returns the old "top_gifts" field's value of the GiftResult entity.
// If the GiftResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GiftResultMutation) OldTopGifts(ctx context.Context) (v []schema.GiftScoreDoc, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopGifts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopGifts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopGifts: %w", err)
	}
	return oldValue.TopGifts, nil
}

// AppendTopGifts adds ssd to the "top_gifts" field.
func (m *GiftResultMutation) AppendTopGifts(ssd []schema.GiftScoreDoc) {
	m.appendtop_gifts = append(m.appendtop_gifts, ssd...)
}

// AppendedTopGifts returns the list of values that were appended to the "top_gifts" field in this mutation.
func (m *GiftResultMutation) AppendedTopGifts() ([]schema.GiftScoreDoc, bool) {
	if len(m.appendtop_gifts) == 0 {
		return nil, false
	}
	return m.appendtop_gifts, true
}

// ResetTopGifts resets all changes to the "top_gifts" field.
func (m *GiftResultMutation) ResetTopGifts() {
	m.top_gifts = nil
	m.appendtop_gifts = nil
}

// SetAllScores sets the "all_scores" field.
func (m *GiftResultMutation) SetAllScores(ssd []schema.GiftScoreDoc) {
	m.all_scores = &ssd
	m.appendall_scores = nil
}

// AllScores returns the value of the "all_scores" field in the mutation.
func (m *GiftResultMutation) AllScores() (r []schema.GiftScoreDoc, exists bool) {
	v := m.all_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldAllScores returns the old "all_scores" field's value of the GiftResult entity.
// If the GiftResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GiftResultMutation) OldAllScores(ctx context.Context) (v []schema.GiftScoreDoc, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllScores: %w", err)
	}
	return oldValue.AllScores, nil
}

// AppendAllScores adds ssd to the "all_scores" field.
func (m *GiftResultMutation) AppendAllScores(ssd []schema.GiftScoreDoc) {
	m.appendall_scores = append(m.appendall_scores, ssd...)
}

// AppendedAllScores returns the list of values that were appended to the "all_scores" field in this mutation.
func (m *GiftResultMutation) AppendedAllScores() ([]schema.GiftScoreDoc, bool) {
	if len(m.appendall_scores) == 0 {
		return nil, false
	}
	return m.appendall_scores, true
}

// ResetAllScores resets all changes to the "all_scores" field.
func (m *GiftResultMutation) ResetAllScores() {
	m.all_scores = nil
	m.appendall_scores = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GiftResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GiftResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GiftResult entity.
// If the GiftResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GiftResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GiftResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the GiftResultMutation builder.
func (m *GiftResultMutation) Where(ps ...predicate.GiftResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GiftResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GiftResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GiftResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GiftResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GiftResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GiftResult).
func (m *GiftResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GiftResultMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.submission_id != nil {
		fields = append(fields, giftresult.FieldSubmissionID)
	}
	if m.name != nil {
		fields = append(fields, giftresult.FieldName)
	}
	if m.user_email != nil {
		fields = append(fields, giftresult.FieldUserEmail)
	}
	if m.top_gifts != nil {
		fields = append(fields, giftresult.FieldTopGifts)
	}
	if m.all_scores != nil {
		fields = append(fields, giftresult.FieldAllScores)
	}
	if m.created_at != nil {
		fields = append(fields, giftresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GiftResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case giftresult.FieldSubmissionID:
		return m.SubmissionID()
	case giftresult.FieldName:
		return m.Name()
	case giftresult.FieldUserEmail:
		return m.UserEmail()
	case giftresult.FieldTopGifts:
		return m.TopGifts()
	case giftresult.FieldAllScores:
		return m.AllScores()
	case giftresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GiftResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case giftresult.FieldSubmissionID:
		return m.OldSubmissionID(ctx)
	case giftresult.FieldName:
		return m.OldName(ctx)
	case giftresult.FieldUserEmail:
		return m.OldUserEmail(ctx)
	case giftresult.FieldTopGifts:
		return m.OldTopGifts(ctx)
	case giftresult.FieldAllScores:
		return m.OldAllScores(ctx)
	case giftresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GiftResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GiftResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case giftresult.FieldSubmissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmissionID(v)
		return nil
	case giftresult.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case giftresult.FieldUserEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserEmail(v)
		return nil
	case giftresult.FieldTopGifts:
		v, ok := value.([]schema.GiftScoreDoc)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopGifts(v)
		return nil
	case giftresult.FieldAllScores:
		v, ok := value.([]schema.GiftScoreDoc)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllScores(v)
		return nil
	case giftresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GiftResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GiftResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GiftResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GiftResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GiftResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GiftResultMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GiftResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GiftResultMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GiftResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GiftResultMutation) ResetField(name string) error {
	switch name {
	case giftresult.FieldSubmissionID:
		m.ResetSubmissionID()
		return nil
	case giftresult.FieldName:
		m.ResetName()
		return nil
	case giftresult.FieldUserEmail:
		m.ResetUserEmail()
		return nil
	case giftresult.FieldTopGifts:
		m.ResetTopGifts()
		return nil
	case giftresult.FieldAllScores:
		m.ResetAllScores()
		return nil
	case giftresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GiftResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GiftResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GiftResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GiftResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GiftResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GiftResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GiftResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GiftResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GiftResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GiftResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GiftResult edge %s", name)
}
