package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loopcart-io/loopcart/internal/shared/constants"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     Pagination
	}{
		{
			name:     "valid values pass through",
			page:     3,
			pageSize: 50,
			want:     Pagination{Page: 3, PageSize: 50},
		},
		{
			name:     "zero page defaults",
			page:     0,
			pageSize: 20,
			want:     Pagination{Page: constants.DefaultPage, PageSize: 20},
		},
		{
			name:     "negative page size defaults",
			page:     1,
			pageSize: -1,
			want:     Pagination{Page: 1, PageSize: constants.DefaultPageSize},
		},
		{
			name:     "oversized page size is capped",
			page:     1,
			pageSize: 10000,
			want:     Pagination{Page: 1, PageSize: constants.MaxPageSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.want, got)
		})
	}
}
