package ui

// Context is one browsable (data source, table) pair with its known
// field set and a handful of rows to render.
type Context struct {
	Source string
	Table  string
	Fields []string
	Rows   []map[string]string
}

// SampleContexts returns the built-in demo datasets used when the
// caller supplies none.
func SampleContexts() []Context {
	return []Context{{
		Source: "demo",
		Table:  "users",
		Fields: []string{"id", "email", "name", "role", "status", "created_at"},
		Rows: []map[string]string{
			{"id": "1", "email": "ada@example.com", "name": "Ada", "role": "admin", "status": "active", "created_at": "2024-01-12"},
			{"id": "2", "email": "grace@example.com", "name": "Grace", "role": "editor", "status": "active", "created_at": "2024-02-03"},
			{"id": "3", "email": "linus@example.com", "name": "Linus", "role": "viewer", "status": "invited", "created_at": "2024-03-18"},
			{"id": "4", "email": "margaret@example.com", "name": "Margaret", "role": "admin", "status": "active", "created_at": "2024-04-29"},
			{"id": "5", "email": "alan@example.com", "name": "Alan", "role": "viewer", "status": "disabled", "created_at": "2024-06-07"},
		},
	}, {
		Source: "demo",
		Table:  "orders",
		Fields: []string{"id", "user_id", "total", "currency", "placed_at", "shipped"},
		Rows: []map[string]string{
			{"id": "1001", "user_id": "2", "total": "41.50", "currency": "USD", "placed_at": "2024-06-01", "shipped": "yes"},
			{"id": "1002", "user_id": "1", "total": "12.00", "currency": "USD", "placed_at": "2024-06-02", "shipped": "yes"},
			{"id": "1003", "user_id": "4", "total": "99.90", "currency": "EUR", "placed_at": "2024-06-04", "shipped": "no"},
			{"id": "1004", "user_id": "2", "total": "7.25", "currency": "USD", "placed_at": "2024-06-05", "shipped": "no"},
		},
	}}
}
