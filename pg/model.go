package pg

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// BaseModel carries the audit timestamps shared by every table row model in
// this module. Embed it in a row struct and bun stamps the fields on write.
type BaseModel struct {
	CreatedAt time.Time `bun:",nullzero" json:"created_at"`
	UpdatedAt time.Time `bun:",nullzero" json:"updated_at"`
}

var _ bun.BeforeAppendModelHook = (*BaseModel)(nil)

// BeforeAppendModel sets CreatedAt and UpdatedAt on inserts and refreshes
// UpdatedAt on updates. Reads leave both fields untouched.
func (m *BaseModel) BeforeAppendModel(_ context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.InsertQuery:
		m.CreatedAt = time.Now()
		m.UpdatedAt = time.Now()
	case *bun.UpdateQuery:
		m.UpdatedAt = time.Now()
	}
	return nil
}
