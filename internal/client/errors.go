package client

import "errors"

var ErrMissingDependency = errors.New("client dependency is nil")
