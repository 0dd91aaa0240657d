package rental

import "errors"

var (
	ErrRetrievalInPast         = errors.New("retrieval date cannot be in the past")
	ErrReturnNotAfterRetrieval = errors.New("return date must be after the retrieval date")
)
