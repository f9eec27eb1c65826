package dashboardapimodels

import "github.com/pkg/errors"

var errInvalidRole = errors.New("неизвестная роль")
