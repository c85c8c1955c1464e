package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"taskbox/shared/constant"
	"taskbox/shared/dto"
	"taskbox/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "title",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "title",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
		{
			name: "with invalid sort direction",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			request := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(request, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name: "eq operator with table",
			filter: dto.Filter{
				Field:    "email",
				Operator: dto.FilterOperatorEq,
				Value:    "a@b.c",
				Table:    "users",
			},
			wantClause: "users.email = :email",
			wantArgs:   map[string]any{"email": "a@b.c"},
		},
		{
			name: "eq operator without table",
			filter: dto.Filter{
				Field:    "done",
				Operator: dto.FilterOperatorEq,
				Value:    true,
			},
			wantClause: "done = :done",
			wantArgs:   map[string]any{"done": true},
		},
		{
			name: "like operator wraps value",
			filter: dto.Filter{
				Field:    "title",
				Operator: dto.FilterOperatorLike,
				Value:    "milk",
				Table:    "todos",
			},
			wantClause: "LOWER(todos.title) LIKE LOWER(:title) ",
			wantArgs:   map[string]any{"title": "%milk%"},
		},
		{
			name: "is null operator",
			filter: dto.Filter{
				Field:    "deleted_at",
				Operator: dto.FilterIsNull,
				Table:    "todos",
			},
			wantClause: "todos.deleted_at IS NULL",
			wantArgs:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if clause != tt.wantClause {
				t.Errorf("expected clause %q, got %q", tt.wantClause, clause)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for key, want := range tt.wantArgs {
				if args[key] != want {
					t.Errorf("expected arg %s to be %v, got %v", key, want, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{}

		clause, args := group.GetWhereClause()
		if clause != "" {
			t.Errorf("expected empty clause, got %q", clause)
		}
		if len(args) != 0 {
			t.Errorf("expected no args, got %v", args)
		}
	})

	t.Run("defaults to AND", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "id", Operator: dto.FilterOperatorEq, Value: int64(1), Table: "todos"},
				dto.Filter{Field: "user_id", Operator: dto.FilterOperatorEq, Value: int64(2), Table: "todos"},
			},
		}

		clause, args := group.GetWhereClause()
		if clause != "(todos.id = :id AND todos.user_id = :user_id)" {
			t.Errorf("unexpected clause: %q", clause)
		}
		if len(args) != 2 {
			t.Errorf("expected 2 args, got %d", len(args))
		}
	})

	t.Run("explicit OR operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "done", Operator: dto.FilterOperatorEq, Value: true},
				dto.Filter{Field: "done", ArgName: "done_false", Operator: dto.FilterOperatorEq, Value: false},
			},
		}

		clause, _ := group.GetWhereClause()
		if clause != "(done = :done OR done = :done_false)" {
			t.Errorf("unexpected clause: %q", clause)
		}
	})
}
