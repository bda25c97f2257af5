package blogportaltest

import (
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// Password is the password of every fixture user.
const Password = "password123"

// Fixture is a store seeded like db.LoadTestData, plus a staff user.
type Fixture struct {
	Store *Store

	Alice, Bob, Staff db.User

	Tech, Go, Generics, Sports db.Category

	// Generics, Ownership, Indexes, Football are active; Draft is not.
	GenericsBlog, Ownership, Indexes, Football, Draft db.Blog

	// First is a root comment on GenericsBlog, Reply answers First, Deep answers Reply.
	First, Reply, Deep db.Comment
}

func NewFixture() *Fixture {
	s := NewStore()
	f := &Fixture{Store: s}

	f.Alice = s.AddUser("alice", "alice@example.com", Password, false)
	f.Bob = s.AddUser("bob", "bob@example.com", Password, false)
	f.Staff = s.AddUser("admin", "admin@example.com", Password, true)

	f.Tech = s.AddCategory("Tech", nil)
	f.Go = s.AddCategory("Go", &f.Tech.ID)
	f.Generics = s.AddCategory("Generics", &f.Go.ID)
	f.Sports = s.AddCategory("Sports", nil)

	const day = 24 * time.Hour
	f.GenericsBlog = s.AddBlog(db.Blog{
		Title: "Generics in Go", Content: "type parameters", AuthorID: f.Alice.ID,
		CategoryID: &f.Go.ID, CreatedAt: db.BaseTime, IsActive: true,
	}, "go", "rust")
	f.Ownership = s.AddBlog(db.Blog{
		Title: "Ownership", Content: "borrow checker", AuthorID: f.Alice.ID,
		CategoryID: &f.Tech.ID, CreatedAt: db.BaseTime.Add(-day), IsActive: true,
	}, "rust")
	f.Indexes = s.AddBlog(db.Blog{
		Title: "Indexes", Content: "btree 100% explained", AuthorID: f.Bob.ID,
		CreatedAt: db.BaseTime.Add(-(2 * day)), IsActive: true,
	}, "sql")
	f.Football = s.AddBlog(db.Blog{
		Title: "Football", Content: "offside rule", AuthorID: f.Bob.ID,
		CategoryID: &f.Sports.ID, CreatedAt: db.BaseTime.Add(-(3 * day)), IsActive: true,
	})
	f.Draft = s.AddBlog(db.Blog{
		Title: "Draft", Content: "unfinished", AuthorID: f.Alice.ID,
		CreatedAt: db.BaseTime.Add(-(4 * day)), IsActive: false,
	})

	f.First = s.AddComment(db.Comment{
		Content: "first", BlogID: f.GenericsBlog.ID, AuthorID: f.Bob.ID, CreatedAt: db.BaseTime,
	})
	f.Reply = s.AddComment(db.Comment{
		Content: "reply", BlogID: f.GenericsBlog.ID, AuthorID: f.Alice.ID,
		ParentID: &f.First.ID, CreatedAt: db.BaseTime.Add(time.Hour),
	})
	f.Deep = s.AddComment(db.Comment{
		Content: "reply to reply", BlogID: f.GenericsBlog.ID, AuthorID: f.Bob.ID,
		ParentID: &f.Reply.ID, CreatedAt: db.BaseTime.Add(2 * time.Hour),
	})

	s.AddMenuItem("About", "/about", 2)
	s.AddMenuItem("Home", "/", 1)

	return f
}
