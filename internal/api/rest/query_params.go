package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/wallet-ledger/internal/api/shared/executor"
)

// ListTransactionsQueryParams holds query parameters for GET /transactions
type ListTransactionsQueryParams struct {
	// Filters
	Status *string `form:"status"`
	Type   *string `form:"type"`

	// Pagination
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=20"`
}

// ParseListTransactionsQuery parses query parameters for GET /transactions
func ParseListTransactionsQuery(c *gin.Context) (*ListTransactionsQueryParams, error) {
	var params ListTransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > executor.MaxLimit {
		params.Limit = executor.MaxLimit
	}

	return &params, nil
}

// ToExecutorParams converts the query into executor parameters
func (p *ListTransactionsQueryParams) ToExecutorParams() executor.ListTransactionsParams {
	return executor.ListTransactionsParams{
		Page:   p.Page,
		Limit:  p.Limit,
		Status: p.Status,
		Type:   p.Type,
	}
}
