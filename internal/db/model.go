// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Blog struct {
		ID, Title, Image, Content, AuthorID, CategoryID, CreatedAt, IsActive string

		Author, Category string
	}
	BlogTag struct {
		BlogID, TagID string

		Tag string
	}
	Category struct {
		ID, Title, ParentID string
	}
	Comment struct {
		ID, Content, BlogID, AuthorID, ParentID, CreatedAt, Likes, Dislikes string

		Author string
	}
	MenuItem struct {
		ID, Title, URL, OrderNumber string
	}
	Tag struct {
		ID, Name, Slug string
	}
	User struct {
		ID, Username, Email, PasswordHash, FirstName, LastName, ProfileImage, IsStaff, CreatedAt string
	}
}{
	Blog: struct {
		ID, Title, Image, Content, AuthorID, CategoryID, CreatedAt, IsActive string

		Author, Category string
	}{
		ID:         "blogId",
		Title:      "title",
		Image:      "image",
		Content:    "content",
		AuthorID:   "authorId",
		CategoryID: "categoryId",
		CreatedAt:  "createdAt",
		IsActive:   "isActive",

		Author:   "Author",
		Category: "Category",
	},
	BlogTag: struct {
		BlogID, TagID string

		Tag string
	}{
		BlogID: "blogId",
		TagID:  "tagId",

		Tag: "Tag",
	},
	Category: struct {
		ID, Title, ParentID string
	}{
		ID:       "categoryId",
		Title:    "title",
		ParentID: "parentId",
	},
	Comment: struct {
		ID, Content, BlogID, AuthorID, ParentID, CreatedAt, Likes, Dislikes string

		Author string
	}{
		ID:        "commentId",
		Content:   "content",
		BlogID:    "blogId",
		AuthorID:  "authorId",
		ParentID:  "parentId",
		CreatedAt: "createdAt",
		Likes:     "likes",
		Dislikes:  "dislikes",

		Author: "Author",
	},
	MenuItem: struct {
		ID, Title, URL, OrderNumber string
	}{
		ID:          "menuItemId",
		Title:       "title",
		URL:         "url",
		OrderNumber: "orderNumber",
	},
	Tag: struct {
		ID, Name, Slug string
	}{
		ID:   "tagId",
		Name: "name",
		Slug: "slug",
	},
	User: struct {
		ID, Username, Email, PasswordHash, FirstName, LastName, ProfileImage, IsStaff, CreatedAt string
	}{
		ID:           "userId",
		Username:     "username",
		Email:        "email",
		PasswordHash: "passwordHash",
		FirstName:    "firstName",
		LastName:     "lastName",
		ProfileImage: "profileImage",
		IsStaff:      "isStaff",
		CreatedAt:    "createdAt",
	},
}

var Tables = struct {
	Blog struct {
		Name, Alias string
	}
	BlogTag struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
	MenuItem struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Blog: struct {
		Name, Alias string
	}{
		Name:  "blogs",
		Alias: "t",
	},
	BlogTag: struct {
		Name, Alias string
	}{
		Name:  "blogTags",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	MenuItem: struct {
		Name, Alias string
	}{
		Name:  "menuItems",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Blog struct {
	tableName struct{} `pg:"blogs,alias:t,discard_unknown_columns"`

	ID         int       `pg:"blogId,pk"`
	Title      string    `pg:"title,use_zero"`
	Image      *string   `pg:"image"`
	Content    string    `pg:"content,use_zero"`
	AuthorID   int       `pg:"authorId,use_zero"`
	CategoryID *int      `pg:"categoryId"`
	CreatedAt  time.Time `pg:"createdAt,use_zero"`
	IsActive   bool      `pg:"isActive,use_zero"`

	Author   *User     `pg:"fk:authorId,rel:has-one"`
	Category *Category `pg:"fk:categoryId,rel:has-one"`
}

type BlogTag struct {
	tableName struct{} `pg:"blogTags,alias:t,discard_unknown_columns"`

	BlogID int `pg:"blogId,pk"`
	TagID  int `pg:"tagId,pk"`

	Tag *Tag `pg:"fk:tagId,rel:has-one"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID       int    `pg:"categoryId,pk"`
	Title    string `pg:"title,use_zero"`
	ParentID *int   `pg:"parentId"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int       `pg:"commentId,pk"`
	Content   string    `pg:"content,use_zero"`
	BlogID    int       `pg:"blogId,use_zero"`
	AuthorID  int       `pg:"authorId,use_zero"`
	ParentID  *int      `pg:"parentId"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
	Likes     int       `pg:"likes,use_zero"`
	Dislikes  int       `pg:"dislikes,use_zero"`

	Author *User `pg:"fk:authorId,rel:has-one"`
}

type MenuItem struct {
	tableName struct{} `pg:"menuItems,alias:t,discard_unknown_columns"`

	ID          int    `pg:"menuItemId,pk"`
	Title       string `pg:"title,use_zero"`
	URL         string `pg:"url,use_zero"`
	OrderNumber int    `pg:"orderNumber,use_zero"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID   int    `pg:"tagId,pk"`
	Name string `pg:"name,use_zero"`
	Slug string `pg:"slug,use_zero"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int       `pg:"userId,pk"`
	Username     string    `pg:"username,use_zero"`
	Email        string    `pg:"email,use_zero"`
	PasswordHash string    `pg:"passwordHash,use_zero"`
	FirstName    string    `pg:"firstName,use_zero"`
	LastName     string    `pg:"lastName,use_zero"`
	ProfileImage *string   `pg:"profileImage"`
	IsStaff      bool      `pg:"isStaff,use_zero"`
	CreatedAt    time.Time `pg:"createdAt,use_zero"`
}

// TagCount is a tag with the number of blogs using it.
type TagCount struct {
	Tag
	Count int `pg:"count"`
}
