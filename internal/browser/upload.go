// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package browser

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/forkify/internal/upload"
	"github.com/pdiddy/forkify/pkg/types"
)

// UploadSuccess is the message shown after a recipe is uploaded.
const UploadSuccess = "Recipe uploaded successfully"

// UploadState is a snapshot of the add-recipe window.
type UploadState struct {
	Open    bool
	Loading bool
	Err     string
	Success string
}

// UploadView submits the add-recipe form. After a successful upload the
// success message stays for the dismiss delay, then the window closes.
type UploadView struct {
	api    Uploader
	delay  time.Duration
	logger *zap.Logger

	// OnDismiss, when set, is called after the success message is
	// dismissed and the window closed.
	OnDismiss func()

	mu    sync.Mutex
	state UploadState
	timer *time.Timer
}

// NewUploadView returns a closed add-recipe window.
func NewUploadView(api Uploader, dismissDelay time.Duration, logger *zap.Logger) *UploadView {
	if dismissDelay <= 0 {
		dismissDelay = types.DefaultDismissDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadView{api: api, delay: dismissDelay, logger: logger}
}

// Toggle opens a closed window and closes an open one, clearing messages.
func (v *UploadView) Toggle() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stopTimerLocked()
	v.state = UploadState{Open: !v.state.Open}
}

// Close closes the window and clears its messages.
func (v *UploadView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stopTimerLocked()
	v.state = UploadState{}
}

// Submit validates and uploads form. On success it shows the success
// message, schedules the window to close after the dismiss delay, and
// returns the stored recipe. On failure the error (a validation error or
// the server's message) becomes the window's error message.
func (v *UploadView) Submit(ctx context.Context, form upload.Form) (types.Recipe, error) {
	v.mu.Lock()
	v.stopTimerLocked()
	v.state.Open = true
	v.state.Loading = true
	v.state.Err = ""
	v.state.Success = ""
	v.mu.Unlock()

	r, err := v.submit(ctx, form)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Loading = false
	if err != nil {
		v.state.Err = errorMessage(err)
		v.logger.Debug("upload failed", zap.Error(err))
		return types.Recipe{}, err
	}
	v.state.Success = UploadSuccess
	v.timer = time.AfterFunc(v.delay, v.dismiss)
	v.logger.Debug("upload completed", zap.String("id", r.ID))
	return r, nil
}

func (v *UploadView) submit(ctx context.Context, form upload.Form) (types.Recipe, error) {
	payload, err := form.Recipe()
	if err != nil {
		return types.Recipe{}, err
	}
	return v.api.Upload(ctx, payload)
}

// dismiss clears the success message and closes the window.
func (v *UploadView) dismiss() {
	v.mu.Lock()
	if v.state.Success == "" {
		v.mu.Unlock()
		return
	}
	v.state = UploadState{}
	v.timer = nil
	onDismiss := v.OnDismiss
	v.mu.Unlock()

	if onDismiss != nil {
		onDismiss()
	}
}

func (v *UploadView) stopTimerLocked() {
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
}

// State returns a snapshot of the window.
func (v *UploadView) State() UploadState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}
