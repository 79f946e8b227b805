package main

import (
	"errors"

	"coursetimetabler/internal/catalogue"
	"coursetimetabler/internal/config"
	"coursetimetabler/internal/loader"
	"coursetimetabler/internal/preprocessor"
)

// Exit codes, distinct per error kind so a wrapping script can tell a bad
// config from a bad dataset from an infeasible catalogue without scraping
// stderr.
const (
	exitConfigError     = 2
	exitDatasetError    = 3
	exitInfeasibleError = 4
)

type codedErr struct {
	error
	code int
}

func (e codedErr) Code() int { return e.code }

// classify wraps err with the exit code matching its concrete kind, if
// recognized; unrecognized errors fall through to exitCodeFor's default.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var missing *config.MissingError
	if errors.As(err, &missing) {
		return codedErr{err, exitConfigError}
	}
	var valErrs *loader.ValidationErrors
	if errors.As(err, &valErrs) {
		return codedErr{err, exitDatasetError}
	}
	var refMissing *catalogue.ReferenceMissing
	if errors.As(err, &refMissing) {
		return codedErr{err, exitDatasetError}
	}
	var insufficient *preprocessor.InsufficientCapacity
	if errors.As(err, &insufficient) {
		return codedErr{err, exitInfeasibleError}
	}
	return err
}
