// Method table and SMD for BlogService in the layout zenrpc generates.
// Kept in sync by hand: update it together with blog.go method signatures, or
// replace it by running go generate.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	BlogService struct{ List, ByID, Categories, Category, Menu, Tags string }
}{
	BlogService: struct{ List, ByID, Categories, Category, Menu, Tags string }{
		List:       "list",
		ByID:       "byid",
		Categories: "categories",
		Category:   "category",
		Menu:       "menu",
		Tags:       "tags",
	},
}

func (BlogService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List returns active blogs, newest first, filtered and paginated like GET /blogs.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "filter",
						Description: `blog filter`,
						Type:        smd.Object,
					},
				},
				Returns: smd.JSONSchema{
					Description: `page of blogs without content`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"ByID": {
				Description: `ByID returns one active blog with its content.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "id",
						Description: `blog numeric ID`,
						Type:        smd.Integer,
					},
				},
				Returns: smd.JSONSchema{
					Description: `blog with content`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "blog not found",
					500: "internal server error",
				},
			},
			"Categories": {
				Description: `Categories returns root categories ordered by title, each with its direct children.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of categories`,
					Optional:    true,
					Type:        smd.Array,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Category": {
				Description: `Category returns one category with its direct children.`,
				Parameters: []smd.JSONSchema{
					{
						Name:        "id",
						Description: `category numeric ID`,
						Type:        smd.Integer,
					},
				},
				Returns: smd.JSONSchema{
					Description: `category`,
					Optional:    true,
					Type:        smd.Object,
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "category not found",
					500: "internal server error",
				},
			},
			"Menu": {
				Description: `Menu returns menu items by order.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `menu items`,
					Optional:    true,
					Type:        smd.Array,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Tags": {
				Description: `Tags returns tags with usage counts, most used first.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `tags with counts`,
					Optional:    true,
					Type:        smd.Array,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s BlogService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.BlogService.List:
		var args = struct {
			Filter BlogFilter `json:"filter"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"filter"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.List(ctx, args.Filter))

	case RPC.BlogService.ByID:
		var args = struct {
			Id int `json:"id"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ByID(ctx, args.Id))

	case RPC.BlogService.Categories:
		resp.Set(s.Categories(ctx))

	case RPC.BlogService.Category:
		var args = struct {
			Id int `json:"id"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"id"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Category(ctx, args.Id))

	case RPC.BlogService.Menu:
		resp.Set(s.Menu(ctx))

	case RPC.BlogService.Tags:
		resp.Set(s.Tags(ctx))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
