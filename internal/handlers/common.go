package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PrVille/json-mock-data-api-sub000/internal/services"
	"github.com/PrVille/json-mock-data-api-sub000/internal/types"
	"github.com/PrVille/json-mock-data-api-sub000/internal/validate"
	"github.com/gofiber/fiber/v2"
)

const maxTake = 100

// sortKeySet is a resource's fixed sort-key enumeration: API names in
// presentation order, mapped to their columns.
type sortKeySet struct {
	allowed []string
	columns map[string]string
}

var userSortKeys = sortKeySet{
	allowed: []string{"id", "username", "email", "firstName", "lastName", "age", "createdAt", "updatedAt"},
	columns: map[string]string{
		"id":        "id",
		"username":  "username",
		"email":     "email",
		"firstName": "first_name",
		"lastName":  "last_name",
		"age":       "age",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	},
}

var postSortKeys = sortKeySet{
	allowed: []string{"id", "title", "content", "userId", "createdAt", "updatedAt"},
	columns: map[string]string{
		"id":        "id",
		"title":     "title",
		"content":   "content",
		"userId":    "user_id",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	},
}

var commentSortKeys = sortKeySet{
	allowed: []string{"id", "content", "userId", "postId", "createdAt", "updatedAt"},
	columns: map[string]string{
		"id":        "id",
		"content":   "content",
		"userId":    "user_id",
		"postId":    "post_id",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	},
}

// parseListParams validates skip/take/sortBy/sortOrder query params against
// a resource's sort-key enumeration. Every failing param is reported.
func parseListParams(c *fiber.Ctx, keys sortKeySet) (services.ListParams, error) {
	p := services.DefaultListParams()
	v := validate.New()

	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			v.AddAt(types.LocationQuery, "skip", "The skip parameter must be a non-negative integer.", raw)
		} else {
			p.Skip = skip
		}
	}

	if raw := c.Query("take"); raw != "" {
		take, err := strconv.Atoi(raw)
		if err != nil || take < 0 || take > maxTake {
			v.AddAt(types.LocationQuery, "take", fmt.Sprintf("The take parameter must be an integer between 0 and %d.", maxTake), raw)
		} else {
			p.Take = take
		}
	}

	if raw := c.Query("sortBy"); raw != "" {
		column, ok := keys.columns[raw]
		if !ok {
			v.AddAt(types.LocationQuery, "sortBy",
				fmt.Sprintf("The sortBy parameter must be one of: %s.", strings.Join(keys.allowed, ", ")), raw)
		} else {
			p.OrderColumn = column
		}
	}

	if raw := c.Query("sortOrder"); raw != "" {
		if raw != "asc" && raw != "desc" {
			v.AddAt(types.LocationQuery, "sortOrder", "The sortOrder parameter must be 'asc' or 'desc'.", raw)
		} else {
			p.SortOrder = raw
		}
	}

	return p, v.Err()
}

// invalidBody is the field error for a request body that does not parse.
func invalidBody() error {
	return &types.ValidationError{Errors: []types.FieldError{{
		Type:     "field",
		Msg:      "Invalid request body.",
		Path:     "body",
		Location: types.LocationBody,
	}}}
}
