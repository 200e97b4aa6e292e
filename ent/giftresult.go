// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/acampos/giftwise/ent/giftresult"
	"github.com/acampos/giftwise/ent/schema"
)

// GiftResult is the model entity for the GiftResult schema.
type GiftResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Client-generated uuid for the submission
	SubmissionID string `json:"submission_id,omitempty"`
	// Respondent display name
	Name string `json:"name,omitempty"`
	// Respondent email, the query key for recall
	UserEmail string `json:"user_email,omitempty"`
	// Primary gifts in rank order
	TopGifts []schema.GiftScoreDoc `json:"top_gifts,omitempty"`
	// Every gift's score in catalog order
	AllScores []schema.GiftScoreDoc `json:"all_scores,omitempty"`
	// Store-assigned creation time
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GiftResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case giftresult.FieldTopGifts, giftresult.FieldAllScores:
			values[i] = new([]byte)
		case giftresult.FieldID:
			values[i] = new(sql.NullInt64)
		case giftresult.FieldSubmissionID, giftresult.FieldName, giftresult.FieldUserEmail:
			values[i] = new(sql.NullString)
		case giftresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GiftResult fields.
func (_m *GiftResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case giftresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case giftresult.FieldSubmissionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submission_id", values[i])
			} else if value.Valid {
				_m.SubmissionID = value.String
			}
		case giftresult.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case giftresult.FieldUserEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_email", values[i])
			} else if value.Valid {
				_m.UserEmail = value.String
			}
		case giftresult.FieldTopGifts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field top_gifts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopGifts); err != nil {
					return fmt.Errorf("unmarshal field top_gifts: %w", err)
				}
			}
		case giftresult.FieldAllScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field all_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AllScores); err != nil {
					return fmt.Errorf("unmarshal field all_scores: %w", err)
				}
			}
		case giftresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GiftResult.
// This includes values selected through modifiers, order, etc.
func (_m *GiftResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GiftResult.
// Note that you need to call GiftResult.Unwrap() before calling this method if this GiftResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GiftResult) Update() *GiftResultUpdateOne {
	return NewGiftResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GiftResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GiftResult) Unwrap() *GiftResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GiftResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GiftResult) String() string {
	var builder strings.Builder
	builder.WriteString("GiftResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("submission_id=")
	builder.WriteString(_m.SubmissionID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("user_email=")
	builder.WriteString(_m.UserEmail)
	builder.WriteString(", ")
	builder.WriteString("top_gifts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopGifts))
	builder.WriteString(", ")
	builder.WriteString("all_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllScores))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GiftResults is a parsable slice of GiftResult.
type GiftResults []*GiftResult
