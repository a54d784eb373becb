package domain

import "errors"

// ErrRecordNotFound is returned by record stores when the addressed record
// does not exist in the zone.
var ErrRecordNotFound = errors.New("record not found")
