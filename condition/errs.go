package condition

import "errors"

var ErrCondition = errors.New("condition error")
