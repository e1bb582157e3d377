package integration

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zoobzio/fragql"
)

// Database is the minimal surface the shared scenarios need from an engine.
type Database interface {
	Exec(t *testing.T, query string)
	QueryInt(t *testing.T, query string) int
	QueryStrings(t *testing.T, query string) []string
}

// SQLDatabase adapts a database/sql handle.
type SQLDatabase struct {
	db *sql.DB
}

// Exec executes a SQL statement.
func (s *SQLDatabase) Exec(t *testing.T, query string) {
	t.Helper()
	if _, err := s.db.Exec(query); err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, query)
	}
}

// QueryInt runs a query returning a single integer.
func (s *SQLDatabase) QueryInt(t *testing.T, query string) int {
	t.Helper()
	var n int
	if err := s.db.QueryRow(query).Scan(&n); err != nil {
		t.Fatalf("Failed to query: %v\nSQL: %s", err, query)
	}
	return n
}

// QueryStrings runs a query returning one text column.
func (s *SQLDatabase) QueryStrings(t *testing.T, query string) []string {
	t.Helper()
	rows, err := s.db.Query(query)
	if err != nil {
		t.Fatalf("Failed to query: %v\nSQL: %s", err, query)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	return out
}

// schemaDDL uses only types every tested engine accepts.
var schemaDDL = []string{
	"DROP TABLE IF EXISTS posts",
	"DROP TABLE IF EXISTS users",
	`CREATE TABLE users (
		id INT PRIMARY KEY,
		username VARCHAR(50) NOT NULL,
		age INT,
		active INT NOT NULL
	)`,
	`CREATE TABLE posts (
		id INT PRIMARY KEY,
		user_id INT NOT NULL,
		title VARCHAR(100) NOT NULL,
		views INT NOT NULL,
		published INT NOT NULL
	)`,
}

func setupSchema(t *testing.T, db Database) {
	t.Helper()
	for _, stmt := range schemaDDL {
		db.Exec(t, stmt)
	}
}

// resetData empties both tables and inserts the fixture rows.
func resetData(t *testing.T, db Database) {
	t.Helper()

	db.Exec(t, fragql.Delete().From(fragql.T("posts")).Render())
	db.Exec(t, fragql.Delete().From(fragql.T("users")).Render())

	db.Exec(t, fragql.Insert("users", []string{"id", "username", "age", "active"},
		fragql.Row("1", "'alice'", "30", "1"),
		fragql.Row("2", "'bob'", "25", "1"),
		fragql.Row("3", "'carol'", "35", "0"),
		fragql.Row("4", "'dave'", "28", "1"),
	).Render())

	db.Exec(t, fragql.Insert("posts", []string{"id", "user_id", "title", "views", "published"},
		fragql.Row("1", "1", "'first'", "100", "1"),
		fragql.Row("2", "1", "'second'", "50", "0"),
		fragql.Row("3", "2", "'hello'", "10", "1"),
		fragql.Row("4", "4", "'draft'", "0", "0"),
	).Render())
}

func countAll() fragql.Field {
	return fragql.F("COUNT(*)")
}

// runScenarios executes statements every engine accepts and checks results.
func runScenarios(t *testing.T, db Database) {
	t.Helper()
	setupSchema(t, db)

	scenarios := []struct {
		name string
		run  func(t *testing.T)
	}{
		{"where", func(t *testing.T) {
			q := fragql.Select(countAll()).From(fragql.T("users")).Where(fragql.C("active", 1))
			assert.Equal(t, 3, db.QueryInt(t, q.Render()))
		}},
		{"or where", func(t *testing.T) {
			q := fragql.Select(countAll()).
				From(fragql.T("users")).
				OrWhere(fragql.C("username", "'bob'")).
				Where(fragql.C("age", "> 32"))
			assert.Equal(t, 2, db.QueryInt(t, q.Render()))
		}},
		{"rules", func(t *testing.T) {
			q := fragql.Select(countAll()).
				From(fragql.T("users")).
				Where(
					fragql.Raw(fragql.Between("age", 26, 31)),
					fragql.Raw(fragql.In("id", 1, 2, 3, 4)),
					fragql.Raw(fragql.Or(fragql.Like("username", "'a%'"), fragql.Like("username", "'d%'"))),
				)
			assert.Equal(t, 2, db.QueryInt(t, q.Render()))
		}},
		{"inner join", func(t *testing.T) {
			q := fragql.Select(countAll()).
				From(fragql.T("users", "u")).
				InnerJoin(fragql.T("posts", "p"), fragql.On("p.user_id", "u.id"), fragql.On("p.published", 1))
			assert.Equal(t, 2, db.QueryInt(t, q.Render()))
		}},
		{"left join with or routing", func(t *testing.T) {
			q := fragql.Select(fragql.F("COUNT(p.id)")).
				From(fragql.T("users", "u")).
				LeftJoin(fragql.T("posts", "p"), fragql.On("p.user_id", "u.id"), fragql.OrOn("p.views", "> 1000"))
			assert.Equal(t, 4, db.QueryInt(t, q.Render()))
		}},
		{"group by having", func(t *testing.T) {
			groups := fragql.Select(fragql.F("user_id")).
				From(fragql.T("posts")).
				GroupBy(fragql.F("user_id")).
				Having(fragql.C("COUNT(*)", "> 1")).
				OrHaving(fragql.C("SUM(views)", ">= 10"))
			q := fragql.Select(countAll()).From(fragql.T(groups.Subquery(), "g"))
			assert.Equal(t, 2, db.QueryInt(t, q.Render()))
		}},
		{"subquery in where", func(t *testing.T) {
			authors := fragql.Select(fragql.F("user_id")).From(fragql.T("posts")).Where(fragql.C("published", 1))
			q := fragql.Select(countAll()).
				From(fragql.T("users")).
				Where(fragql.Raw(fragql.In("id", authors.Subquery("", ""))))
			assert.Equal(t, 2, db.QueryInt(t, q.Render()))
		}},
		{"order by", func(t *testing.T) {
			q := fragql.Select(fragql.F("username")).
				OrderBy(fragql.O("age", fragql.DESC)).
				Where(fragql.C("active", 1)).
				From(fragql.T("users"))
			assert.Equal(t, []string{"alice", "dave", "bob"}, db.QueryStrings(t, q.Render()))
		}},
		{"update", func(t *testing.T) {
			db.Exec(t, fragql.Update("users", fragql.Assign("active", 0)).Where(fragql.C("age", "< 26")).Render())
			q := fragql.Select(countAll()).From(fragql.T("users")).Where(fragql.C("active", 1))
			assert.Equal(t, 2, db.QueryInt(t, q.Render()))
		}},
		{"update with expression", func(t *testing.T) {
			db.Exec(t, fragql.Update("posts", fragql.Assign("views", fragql.Rule("views", 1, "+"))).Render())
			q := fragql.Select(fragql.F("SUM(views)")).From(fragql.T("posts"))
			assert.Equal(t, 164, db.QueryInt(t, q.Render()))
		}},
		{"delete", func(t *testing.T) {
			db.Exec(t, fragql.Delete().From(fragql.T("posts")).Where(fragql.C("published", 0)).Render())
			assert.Equal(t, 2, db.QueryInt(t, fragql.Select(countAll()).From(fragql.T("posts")).Render()))
		}},
		{"insert select", func(t *testing.T) {
			source := fragql.Select(
				fragql.F("id + 100"), fragql.F("id"), fragql.F("username"), fragql.F("0"), fragql.F("0"),
			).From(fragql.T("users"))
			db.Exec(t, fragql.New().InsertSelect("posts",
				[]string{"id", "user_id", "title", "views", "published"},
				source.Expression(),
			).Render())
			assert.Equal(t, 8, db.QueryInt(t, fragql.Select(countAll()).From(fragql.T("posts")).Render()))
		}},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			resetData(t, db)
			sc.run(t)
		})
	}
}
