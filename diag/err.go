// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package diag

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is a fatal ingestion failure of a given Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Cause implements the github.com/pkg/errors causer.
func (e *Error) Cause() error {
	return e.Err
}

// New creates an Error of kind k with a formatted message.
func New(k Kind, format string, args ...interface{}) error {
	return &Error{Kind: k, Err: errors.Errorf(format, args...)}
}

// Wrap wraps err as an Error of kind k.  If err is nil,
// Wrap returns nil.  If err already carries a Kind, the
// kind is kept and only the message is extended.
func Wrap(k Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return &Error{Kind: de.Kind, Err: errors.Wrap(de.Err, msg)}
	}
	return &Error{Kind: k, Err: errors.Wrap(err, msg)}
}

// KindOf returns the Kind of err, KindNone if err is nil,
// and KindIO if err carries no Kind.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindIO
}

// Is reports whether err carries kind k.
func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
