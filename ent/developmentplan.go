// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/acampos/giftwise/ent/developmentplan"
)

// DevelopmentPlan is the model entity for the DevelopmentPlan schema.
type DevelopmentPlan struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Sanitized email, the document key
	DocKey string `json:"doc_key,omitempty"`
	// Display name of the plan owner
	OwnerName string `json:"owner_name,omitempty"`
	// Raw (unsanitized) owner email
	OwnerEmail string `json:"owner_email,omitempty"`
	// Full plan document as JSON
	Data map[string]interface{} `json:"data,omitempty"`
	// Store-assigned last update time
	LastUpdated  time.Time `json:"last_updated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DevelopmentPlan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case developmentplan.FieldData:
			values[i] = new([]byte)
		case developmentplan.FieldID:
			values[i] = new(sql.NullInt64)
		case developmentplan.FieldDocKey, developmentplan.FieldOwnerName, developmentplan.FieldOwnerEmail:
			values[i] = new(sql.NullString)
		case developmentplan.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DevelopmentPlan fields.
func (_m *DevelopmentPlan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case developmentplan.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case developmentplan.FieldDocKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_key", values[i])
			} else if value.Valid {
				_m.DocKey = value.String
			}
		case developmentplan.FieldOwnerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_name", values[i])
			} else if value.Valid {
				_m.OwnerName = value.String
			}
		case developmentplan.FieldOwnerEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_email", values[i])
			} else if value.Valid {
				_m.OwnerEmail = value.String
			}
		case developmentplan.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case developmentplan.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DevelopmentPlan.
// This includes values selected through modifiers, order, etc.
func (_m *DevelopmentPlan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DevelopmentPlan.
// Note that you need to call DevelopmentPlan.Unwrap() before calling this method if this DevelopmentPlan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DevelopmentPlan) Update() *DevelopmentPlanUpdateOne {
	return NewDevelopmentPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DevelopmentPlan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DevelopmentPlan) Unwrap() *DevelopmentPlan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DevelopmentPlan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DevelopmentPlan) String() string {
	var builder strings.Builder
	builder.WriteString("DevelopmentPlan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("doc_key=")
	builder.WriteString(_m.DocKey)
	builder.WriteString(", ")
	builder.WriteString("owner_name=")
	builder.WriteString(_m.OwnerName)
	builder.WriteString(", ")
	builder.WriteString("owner_email=")
	builder.WriteString(_m.OwnerEmail)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DevelopmentPlans is a parsable slice of DevelopmentPlan.
type DevelopmentPlans []*DevelopmentPlan
