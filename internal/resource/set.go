package resource

import (
	"fmt"

	"github.com/smileynet/curio/internal/api"
	"github.com/smileynet/curio/internal/store"
)

// Insert policies are fixed per resource: activity-style collections
// (todos, comments) show the newest record first, catalog-style collections
// (posts, recipes, products) keep server order and append.
var (
	todosMeta = Meta{
		Tag: "todos", Title: "Todos", Singular: "todo",
		Policy:  store.Prepend,
		Columns: []string{"ID", "Done", "Todo"},
		Fields: []Field{
			{Name: "todo", Kind: KindString, Required: true, Help: "task text"},
			{Name: "completed", Kind: KindBool, Help: "true/false"},
			{Name: "userId", Kind: KindInt, Required: true, Help: "owner user id"},
		},
	}

	commentsMeta = Meta{
		Tag: "comments", Title: "Comments", Singular: "comment",
		Policy:  store.Prepend,
		Columns: []string{"ID", "Author", "Body"},
		Fields: []Field{
			{Name: "body", Kind: KindString, Required: true, Help: "comment text"},
			{Name: "postId", Kind: KindInt, Required: true, Help: "post commented on"},
			{Name: "userId", Kind: KindInt, Required: true, Help: "author user id"},
			{Name: "likes", Kind: KindInt, Help: "like count"},
		},
	}

	postsMeta = Meta{
		Tag: "posts", Title: "Posts", Singular: "post",
		Policy:  store.Append,
		Columns: []string{"ID", "Title", "Tags"},
		Fields: []Field{
			{Name: "title", Kind: KindString, Required: true, Help: "post title"},
			{Name: "body", Kind: KindString, Help: "post body"},
			{Name: "userId", Kind: KindInt, Required: true, Help: "author user id"},
			{Name: "tags", Kind: KindStrings, Help: "comma-separated tags"},
		},
	}

	recipesMeta = Meta{
		Tag: "recipes", Title: "Recipes", Singular: "recipe",
		Policy:  store.Append,
		Columns: []string{"ID", "Name", "Cuisine", "Time"},
		Fields: []Field{
			{Name: "name", Kind: KindString, Required: true, Help: "recipe name"},
			{Name: "cuisine", Kind: KindString, Required: true, Help: "cuisine"},
			{Name: "difficulty", Kind: KindString, Help: "Easy/Medium/Hard"},
			{Name: "prepTimeMinutes", Kind: KindInt, Help: "prep minutes"},
			{Name: "cookTimeMinutes", Kind: KindInt, Help: "cook minutes"},
			{Name: "servings", Kind: KindInt, Help: "servings"},
			{Name: "rating", Kind: KindFloat, Help: "0-5"},
		},
	}

	productsMeta = Meta{
		Tag: "products", Title: "Products", Singular: "product",
		Policy:  store.Append,
		Columns: []string{"ID", "Title", "Category", "Price"},
		Fields: []Field{
			{Name: "title", Kind: KindString, Required: true, Help: "product title"},
			{Name: "brand", Kind: KindString, Help: "brand"},
			{Name: "category", Kind: KindString, Required: true, Help: "category"},
			{Name: "price", Kind: KindFloat, Required: true, Help: "unit price"},
			{Name: "stock", Kind: KindInt, Help: "units in stock"},
			{Name: "rating", Kind: KindFloat, Help: "0-5"},
		},
	}
)

// Tags lists the browsable resources in page order.
var Tags = []string{"todos", "posts", "comments", "recipes", "products"}

// Set owns one page per resource and the state table tracking their cache
// lifecycles. It is created per process and injected into whichever front
// end (TUI or CLI command) drives it.
type Set struct {
	pages map[string]Pager
	table *store.Table
}

// NewSet builds the full page catalog over one API client.
func NewSet(client *api.Client) *Set {
	s := &Set{pages: make(map[string]Pager), table: store.NewTable()}
	addPage(s, todosMeta, api.NewRemote[Todo](client, todosMeta.Tag))
	addPage(s, postsMeta, api.NewRemote[Post](client, postsMeta.Tag))
	addPage(s, commentsMeta, api.NewRemote[Comment](client, commentsMeta.Tag))
	addPage(s, recipesMeta, api.NewRemote[Recipe](client, recipesMeta.Tag))
	addPage(s, productsMeta, api.NewRemote[Product](client, productsMeta.Tag))
	return s
}

func addPage[T record](s *Set, meta Meta, remote store.Remote[T]) {
	page := NewPage(meta, remote)
	s.pages[meta.Tag] = page
	// Registration cannot collide: metas are package constants with
	// distinct tags.
	if err := s.table.Register(meta.Tag, page.Sync()); err != nil {
		panic(err)
	}
}

// Page returns the page for tag.
func (s *Set) Page(tag string) (Pager, error) {
	p, ok := s.pages[tag]
	if !ok {
		return nil, fmt.Errorf("resource: unknown resource %q", tag)
	}
	return p, nil
}

// Invalidate discards the cached collection for one tag, as when its page
// unmounts.
func (s *Set) Invalidate(tag string) {
	s.table.Invalidate(tag)
}

// InvalidateAll discards every cached collection.
func (s *Set) InvalidateAll() {
	s.table.InvalidateAll()
}
