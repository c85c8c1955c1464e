package shared_test

import (
	"testing"
	"time"

	"taskbox/shared"
	"taskbox/shared/constant"
	"taskbox/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid T string",
			input:    "T",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil {
				t.Fatalf("expected %v, got nil", *tt.expected)
			}

			if *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns one page",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns one page",
			total:    25,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    20,
			limit:    10,
			expected: 2,
		},
		{
			name:     "rounds up",
			total:    21,
			limit:    10,
			expected: 3,
		},
		{
			name:     "single page",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := shared.CalculateTotalPage(tt.total, tt.limit); result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already normalized",
			input:    "user@example.com",
			expected: "user@example.com",
		},
		{
			name:     "uppercase lowered",
			input:    "User@Example.COM",
			expected: "user@example.com",
		},
		{
			name:     "whitespace trimmed",
			input:    "  user@example.com\t",
			expected: "user@example.com",
		},
		{
			name:     "mixed",
			input:    " Mixed.Case@Example.Com ",
			expected: "mixed.case@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := shared.NormalizeEmail(tt.input); result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	title := "new title"
	done := false

	type updateRequest struct {
		Title *string `db:"title"`
		Done  *bool   `db:"done"`
	}

	t.Run("non-zero fields collected with modified_at stamp", func(t *testing.T) {
		fields := shared.TransformFields(updateRequest{Title: &title, Done: &done})

		if got, ok := fields["title"].(*string); !ok || *got != title {
			t.Errorf("expected title %q, got %v", title, fields["title"])
		}

		if got, ok := fields["done"].(*bool); !ok || *got != done {
			t.Errorf("expected done %v, got %v", done, fields["done"])
		}

		if _, ok := fields[constant.FieldModifiedAt].(time.Time); !ok {
			t.Errorf("expected %s to be stamped, got %v", constant.FieldModifiedAt, fields[constant.FieldModifiedAt])
		}
	})

	t.Run("nil pointers skipped", func(t *testing.T) {
		fields := shared.TransformFields(updateRequest{Title: &title})

		if _, ok := fields["done"]; ok {
			t.Error("expected done to be skipped")
		}

		if _, ok := fields["title"]; !ok {
			t.Error("expected title to be present")
		}
	})
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(42, "id", "todos")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", group.Filters[0])
	}

	if filter.Field != "id" || filter.Table != "todos" || filter.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter: %+v", filter)
	}

	if filter.Value != int64(42) {
		t.Errorf("expected value 42, got %v", filter.Value)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("todo", "1", "10"); key != "todo:1:10" {
		t.Errorf("expected 'todo:1:10', got %q", key)
	}

	if key := shared.BuildCacheKey("health"); key != "health" {
		t.Errorf("expected 'health', got %q", key)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
