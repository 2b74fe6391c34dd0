package dataset

import "errors"

var (
	// ErrEmptyDataset indicates a dataset with no records.
	ErrEmptyDataset = errors.New("dataset: no records")

	// ErrDuplicateYear indicates two records for the same year.
	ErrDuplicateYear = errors.New("dataset: duplicate year")

	// ErrNegativeCount indicates a record with a typhoon count below zero.
	ErrNegativeCount = errors.New("dataset: negative typhoon count")
)
