package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/seo-content-engine/internal/db"
)

// NopStore is a Store that discards all writes. Used for one-off CLI runs
// that don't persist jobs.
type NopStore struct{}

func (NopStore) UpdateStatus(context.Context, uuid.UUID, db.JobStatus) error { return nil }
func (NopStore) SaveSERPData(context.Context, uuid.UUID, any) error          { return nil }
func (NopStore) SaveOutlineData(context.Context, uuid.UUID, any) error       { return nil }
func (NopStore) SaveResult(context.Context, uuid.UUID, any) error            { return nil }
func (NopStore) SaveError(context.Context, uuid.UUID, string, string) error  { return nil }
