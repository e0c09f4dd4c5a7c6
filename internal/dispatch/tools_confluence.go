package dispatch

import (
	"context"
	"fmt"

	"github.com/saharshpoddar/learning-gateway/internal/format"
)

func (d *Dispatcher) registerConfluenceTools() {
	d.register(toolSpec{
		Name:        "confluence_search",
		Product:     ProductConfluence,
		Description: "Search pages with CQL or free text",
		Required:    []string{"query"},
		Numeric:     []string{"limit"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			pages, err := d.confluence.Search(ctx, args["query"], intArg(args, "limit"))
			if err != nil {
				return "", err
			}
			return format.ConfluencePageList(pages), nil
		},
	})

	d.register(toolSpec{
		Name:        "confluence_get_page",
		Product:     ProductConfluence,
		Description: "Fetch one page with its body",
		Required:    []string{"pageId"},
		Numeric:     []string{"pageId"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			page, err := d.confluence.GetPage(ctx, args["pageId"])
			if err != nil {
				return "", err
			}
			return format.ConfluencePageDetail(page), nil
		},
	})

	d.register(toolSpec{
		Name:        "confluence_create_page",
		Product:     ProductConfluence,
		Description: "Create a page in a space",
		Required:    []string{"spaceKey", "title"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			page, err := d.confluence.CreatePage(ctx, args["spaceKey"], args["title"], args["body"])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Created page %s (%q) in space %s.", page.ID, page.Title, args["spaceKey"]), nil
		},
	})

	d.register(toolSpec{
		Name:        "confluence_update_page",
		Product:     ProductConfluence,
		Description: "Replace a page body, bumping its version",
		Required:    []string{"pageId", "body"},
		Numeric:     []string{"pageId"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			page, err := d.confluence.UpdatePage(ctx, args["pageId"], args["title"], args["body"])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Updated page %s to version %d.", page.ID, page.Version), nil
		},
	})

	d.register(toolSpec{
		Name:        "confluence_list_spaces",
		Product:     ProductConfluence,
		Description: "List visible spaces",
		Numeric:     []string{"limit"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			spaces, err := d.confluence.ListSpaces(ctx, intArg(args, "limit"))
			if err != nil {
				return "", err
			}
			return format.ConfluenceSpaceList(spaces), nil
		},
	})

	d.register(toolSpec{
		Name:        "confluence_get_page_children",
		Product:     ProductConfluence,
		Description: "List the child pages of a page",
		Required:    []string{"pageId"},
		Numeric:     []string{"pageId", "limit"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			children, err := d.confluence.GetPageChildren(ctx, args["pageId"], intArg(args, "limit"))
			if err != nil {
				return "", err
			}
			return format.ConfluencePageList(children), nil
		},
	})

	d.register(toolSpec{
		Name:        "confluence_delete_page",
		Product:     ProductConfluence,
		Description: "Delete a page",
		Required:    []string{"pageId"},
		Numeric:     []string{"pageId"},
		Handler: func(ctx context.Context, args map[string]string) (string, error) {
			if err := d.confluence.DeletePage(ctx, args["pageId"]); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted page %s.", args["pageId"]), nil
		},
	})
}
