package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

var (
	// BaseTime is the creation time of the newest fixture blog.
	BaseTime = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

	// SchemaTables lists tables created by migrations.
	SchemaTables = []string{
		Tables.User.Name,
		Tables.Category.Name,
		Tables.Blog.Name,
		Tables.Tag.Name,
		Tables.BlogTag.Name,
		Tables.Comment.Name,
		Tables.MenuItem.Name,
	}
)

// ResetPublicSchema drops and recreates the public schema
func ResetPublicSchema(ctx context.Context, database *pg.DB) error {
	_, err := database.ExecContext(ctx, `DROP SCHEMA IF EXISTS public CASCADE; CREATE SCHEMA public;`)
	if err != nil {
		return fmt.Errorf("reset public schema: %w", err)
	}
	return nil
}

// EnsureTablesExist verifies that the specified tables exist in the database
func EnsureTablesExist(ctx context.Context, database *pg.DB, tables []string) error {
	for _, tbl := range tables {
		var exists bool
		_, err := database.QueryOneContext(ctx, pg.Scan(&exists), `
			SELECT EXISTS (
				SELECT 1
				FROM information_schema.tables
				WHERE table_schema = 'public' AND table_name = ?
			)`, tbl)
		if err != nil {
			return fmt.Errorf("check table %s exists: %w", tbl, err)
		}
		if !exists {
			return fmt.Errorf("table %q does not exist after migrations", tbl)
		}
	}
	return nil
}

// LoadTestData fills the schema with a small fixture:
// users alice(1) and bob(2); categories Tech(1) > Go(2) > Generics(3) and Sports(4);
// blogs 1..5 by alice with the last one inactive; tags go, rust, sql; three comments on blog 1.
func LoadTestData(ctx context.Context, database *pg.DB) error {
	_, err := database.ExecContext(ctx, `
		TRUNCATE TABLE "comments", "blogTags", "tags", "blogs", "categories", "users", "menuItems" RESTART IDENTITY CASCADE;
	`)
	if err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}

	users := []User{
		{Username: "alice", Email: "alice@example.com", PasswordHash: "x", CreatedAt: BaseTime},
		{Username: "bob", Email: "bob@example.com", PasswordHash: "x", CreatedAt: BaseTime},
	}
	for i := range users {
		if _, err := database.ModelContext(ctx, &users[i]).Insert(); err != nil {
			return fmt.Errorf("insert user %q: %w", users[i].Username, err)
		}
	}

	tech, goID := 1, 2
	categories := []Category{
		{Title: "Tech"},
		{Title: "Go", ParentID: &tech},
		{Title: "Generics", ParentID: &goID},
		{Title: "Sports"},
	}
	for i := range categories {
		if _, err := database.ModelContext(ctx, &categories[i]).Insert(); err != nil {
			return fmt.Errorf("insert category %q: %w", categories[i].Title, err)
		}
	}

	tags := []Tag{{Name: "go", Slug: "go"}, {Name: "rust", Slug: "rust"}, {Name: "sql", Slug: "sql"}}
	if _, err := database.ModelContext(ctx, &tags).Insert(); err != nil {
		return fmt.Errorf("insert tags: %w", err)
	}

	blogs := []Blog{
		{Title: "Generics in Go", Content: "<p>type parameters</p>", AuthorID: 1, CategoryID: &goID, IsActive: true},
		{Title: "Ownership", Content: "<p>borrow checker</p>", AuthorID: 1, CategoryID: &tech, IsActive: true},
		{Title: "Indexes", Content: "<p>btree 100% explained</p>", AuthorID: 2, IsActive: true},
		{Title: "Football", Content: "<p>goals</p>", AuthorID: 2, IsActive: true},
		{Title: "Draft", Content: "<p>hidden</p>", AuthorID: 1, IsActive: false},
	}
	for i := range blogs {
		blogs[i].CreatedAt = BaseTime.Add(-time.Duration(i) * 24 * time.Hour)
		if _, err := database.ModelContext(ctx, &blogs[i]).Insert(); err != nil {
			return fmt.Errorf("insert blog %q: %w", blogs[i].Title, err)
		}
	}

	links := []BlogTag{{BlogID: 1, TagID: 1}, {BlogID: 1, TagID: 2}, {BlogID: 2, TagID: 2}, {BlogID: 3, TagID: 3}}
	if _, err := database.ModelContext(ctx, &links).Insert(); err != nil {
		return fmt.Errorf("insert blog tags: %w", err)
	}

	root := 1
	comments := []Comment{
		{Content: "first", BlogID: 1, AuthorID: 2, CreatedAt: BaseTime},
		{Content: "reply", BlogID: 1, AuthorID: 1, ParentID: &root, CreatedAt: BaseTime.Add(time.Minute)},
		{Content: "reply to reply", BlogID: 1, AuthorID: 2, CreatedAt: BaseTime.Add(2 * time.Minute)},
	}
	for i := range comments {
		if i == 2 {
			reply := comments[1].ID
			comments[i].ParentID = &reply
		}
		if _, err := database.ModelContext(ctx, &comments[i]).Returning("*").Insert(); err != nil {
			return fmt.Errorf("insert comment %q: %w", comments[i].Content, err)
		}
	}

	menu := []MenuItem{
		{Title: "About", URL: "/about", OrderNumber: 2},
		{Title: "Home", URL: "/", OrderNumber: 1},
	}
	if _, err := database.ModelContext(ctx, &menu).Insert(); err != nil {
		return fmt.Errorf("insert menu items: %w", err)
	}

	return nil
}

// SetupTestDB connects to url, recreates the schema with migrations and loads the fixture.
func SetupTestDB(ctx context.Context, url string) (*pg.DB, error) {
	opt, err := pg.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	database := pg.Connect(opt)

	if err := database.Ping(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := ResetPublicSchema(ctx, database); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to reset schema: %w", err)
	}

	if err := Migrate(ctx, opt); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := EnsureTablesExist(ctx, database, SchemaTables); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("schema verification failed: %w", err)
	}

	if err := LoadTestData(ctx, database); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to load test data: %w", err)
	}

	return database, nil
}
