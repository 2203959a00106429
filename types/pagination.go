package types

import "github.com/nakamauwu/hirechat/errs"

// MaxPageSize bounds first and last of cursor pages.
const MaxPageSize = 200

type Page[T any] struct {
	Items    []T      `json:"items"`
	PageInfo PageInfo `json:"page_info"`
}

type PageInfo struct {
	EndCursor       *string `json:"end_cursor"`
	HasNextPage     bool    `json:"has_next_page"`
	StartCursor     *string `json:"start_cursor"`
	HasPreviousPage bool    `json:"has_previous_page"`
}

type PageArgs struct {
	First  *uint
	After  *string
	Last   *uint
	Before *string
}

func (args PageArgs) IsBackwards() bool {
	return args.Last != nil || args.Before != nil
}

func (args *PageArgs) Validate() error {
	if args.First != nil && args.Last != nil {
		return pageArgError("First", "cannot specify both first and last")
	}

	if args.After != nil && args.Before != nil {
		return pageArgError("After", "cannot specify both after and before")
	}

	if args.First != nil && *args.First < 1 {
		return pageArgError("First", "first must be greater than 0")
	}

	if args.Last != nil && *args.Last < 1 {
		return pageArgError("Last", "last must be greater than 0")
	}

	if args.First != nil && *args.First > MaxPageSize {
		return pageArgError("First", "first overflow")
	}

	if args.Last != nil && *args.Last > MaxPageSize {
		return pageArgError("Last", "last overflow")
	}

	return nil
}

func pageArgError(field, msg string) error {
	return errs.NewInvalidArgumentError(errs.CodeValidationFailed, field, msg)
}
