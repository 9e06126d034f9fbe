package interfaces

import (
	"context"
	"errors"

	"ryft_bridge/internal/domain/entities"
)

var ErrUIHostDetached = errors.New("ui host detached")

// DropInDelegate receives drop-in results. It may be invoked from any goroutine.
type DropInDelegate func(entities.DropInOutcome)

// IDropInController is the handle on a presented drop-in.
type IDropInController interface {
	// HandleRequiredAction continues a 3-D Secure challenge inside the drop-in.
	HandleRequiredAction(ctx context.Context, returnURL string, action entities.RequiredAction) error
}

// IUIHost is the attached screen able to present the vendor drop-in UI
// (an Android activity or an iOS root view controller).
type IUIHost interface {
	Available() bool
	PresentDropIn(ctx context.Context, cfg entities.DropInConfiguration, delegate DropInDelegate) (IDropInController, error)
}
