package fragql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zoobzio/fragql"
)

func publishedAuthors() *fragql.Builder {
	return fragql.Select(fragql.F("user_id")).
		From(fragql.T("posts")).
		Where(fragql.C("published", 1))
}

func TestSubquery(t *testing.T) {
	t.Run("default borders", func(t *testing.T) {
		assert.Equal(t, "(SELECT user_id FROM posts WHERE published = 1)", publishedAuthors().Subquery().Render())
	})

	t.Run("custom borders", func(t *testing.T) {
		assert.Equal(t, "[SELECT user_id FROM posts WHERE published = 1]", publishedAuthors().Subquery("[", "]").Render())
		assert.Equal(t, "SELECT user_id FROM posts WHERE published = 1", publishedAuthors().Subquery("", "").Render())
	})

	t.Run("wrong border count falls back", func(t *testing.T) {
		want := "(SELECT user_id FROM posts WHERE published = 1)"
		assert.Equal(t, want, publishedAuthors().Subquery("[").Render())
		assert.Equal(t, want, publishedAuthors().Subquery("[", "]", "x").Render())
	})

	t.Run("builder default borders", func(t *testing.T) {
		b := fragql.New(fragql.WithBorders("(", ") AS sub")).Select(fragql.F("1"))
		assert.Equal(t, "(SELECT 1 ) AS sub", b.Subquery().Render())
		assert.Equal(t, "(SELECT 1 ) AS sub", b.Subquery("only one").Render())
	})

	t.Run("later changes show up", func(t *testing.T) {
		b := publishedAuthors()
		sub := b.Subquery()
		b.Limit(5)
		assert.Equal(t, "(SELECT user_id FROM posts WHERE published = 1 LIMIT 5)", sub.Render())
	})
}

func TestSubqueryPlacement(t *testing.T) {
	tests := []struct {
		name     string
		builder  *fragql.Builder
		expected string
	}{
		{
			name: "in where",
			builder: fragql.Select(fragql.F("*")).
				From(fragql.T("users")).
				Where(fragql.Raw(fragql.In("id", publishedAuthors().Subquery("", "")))),
			expected: "SELECT * FROM users WHERE id IN(SELECT user_id FROM posts WHERE published = 1)",
		},
		{
			name: "as table",
			builder: fragql.Select(fragql.F("p.user_id")).
				From(fragql.T(publishedAuthors().Subquery(), "p")),
			expected: "SELECT p.user_id FROM (SELECT user_id FROM posts WHERE published = 1) p",
		},
		{
			name: "as joined table",
			builder: fragql.Select(fragql.F("u.name")).
				From(fragql.T("users", "u")).
				InnerJoin(fragql.T(publishedAuthors().Subquery(), "p"), fragql.On("p.user_id", "u.id")),
			expected: "SELECT u.name FROM users u INNER JOIN (SELECT user_id FROM posts WHERE published = 1) p ON p.user_id = u.id",
		},
		{
			name:     "as field",
			builder:  fragql.Select(fragql.F(fragql.Select(fragql.F("COUNT(*)")).From(fragql.T("posts")).Subquery(), "total")),
			expected: "SELECT (SELECT COUNT(*) FROM posts) AS total ",
		},
		{
			name: "exists",
			builder: fragql.Select(fragql.F("*")).
				From(fragql.T("users")).
				Where(fragql.Raw(fragql.Framed("EXISTS ", "", "", "").AddChildren("q", publishedAuthors().Subquery()).
					SetGroupFormat("q", fragql.SuppressName(true)))),
			expected: "SELECT * FROM users WHERE EXISTS (SELECT user_id FROM posts WHERE published = 1)",
		},
		{
			name:     "insert values",
			builder:  fragql.New().InsertValues("authors", []string{"user_id"}, publishedAuthors().Subquery()),
			expected: "INSERT INTO authors(user_id) VALUES (SELECT user_id FROM posts WHERE published = 1)",
		},
		{
			name: "insert select",
			builder: fragql.New().InsertSelect("archive", []string{"id", "name"},
				fragql.Select(fragql.Fields("id", "name")...).From(fragql.T("users")).Expression()),
			expected: "INSERT INTO archive(id, name) SELECT id, name FROM users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.builder.Render())
		})
	}
}
