package listview

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/sdms-portal/internal/models"
	appErrors "github.com/noah-isme/sdms-portal/pkg/errors"
)

// Edit and delete workflows. Mutations never patch local state: on success
// the whole list is refetched, on failure the list is left untouched and the
// backend message surfaces verbatim.

// SubmitEdit sends the edited fields for one record, then refreshes.
func (v *View) SubmitEdit(ctx context.Context, record models.Record, fields models.Record) error {
	if v.cfg.Update == nil {
		return appErrors.Clone(appErrors.ErrInternal, "view is not editable")
	}
	id := record.ID(v.cfg.IDField)
	if id == "" {
		return appErrors.Clone(appErrors.ErrValidation, "record has no "+v.cfg.IDField)
	}
	if err := v.cfg.Update(ctx, id, fields); err != nil {
		v.logger.Warn("edit rejected",
			zap.String("view", v.cfg.Title),
			zap.String("id", id),
			zap.Error(err))
		return err
	}
	return v.Refresh(ctx)
}

// RequestDelete stages a record for deletion pending explicit confirmation.
func (v *View) RequestDelete(record models.Record) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pendingDelete = record
}

// PendingDelete returns the record awaiting confirmation, if any.
func (v *View) PendingDelete() models.Record {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pendingDelete
}

// CancelDelete clears the staged deletion.
func (v *View) CancelDelete() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pendingDelete = nil
}

// ConfirmDelete performs the staged deletion, then refreshes on success.
func (v *View) ConfirmDelete(ctx context.Context) error {
	if v.cfg.Delete == nil {
		return appErrors.Clone(appErrors.ErrInternal, "view does not support deletion")
	}

	v.mu.Lock()
	record := v.pendingDelete
	v.pendingDelete = nil
	v.mu.Unlock()

	if record == nil {
		return appErrors.Clone(appErrors.ErrValidation, "no deletion pending")
	}
	id := record.ID(v.cfg.IDField)
	if id == "" {
		return appErrors.Clone(appErrors.ErrValidation, "record has no "+v.cfg.IDField)
	}

	if err := v.cfg.Delete(ctx, id); err != nil {
		v.logger.Warn("delete rejected",
			zap.String("view", v.cfg.Title),
			zap.String("id", id),
			zap.Error(err))
		return err
	}
	return v.Refresh(ctx)
}
