package domain

import "errors"

// ErrNoInputFiles signals an input directory with no CSV files to analyze.
// A missing directory surfaces the same way as an empty one.
var ErrNoInputFiles = errors.New("no CSV files found in input directory")
