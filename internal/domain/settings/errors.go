package settings

import "errors"

var ErrSettingsNotFound = errors.New("office settings not found")
