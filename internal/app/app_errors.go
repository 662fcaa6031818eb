package app

import "errors"

// ErrNoGUI is returned by New in builds without the ebiten tag.
var ErrNoGUI = errors.New("viewer built without the ebiten tag; rebuild with -tags ebiten")
