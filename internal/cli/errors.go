package cli

import "errors"

// ErrNotInteractive indicates play was started without a terminal.
var ErrNotInteractive = errors.New("play needs an interactive terminal")
