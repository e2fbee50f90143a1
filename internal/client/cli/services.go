package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/trademinutes/tmclient/internal/client/catalog"
	"github.com/trademinutes/tmclient/internal/common"
)

// serviceWidth is the word-wrap width of a rendered service page.
const serviceWidth = 80

// Services opens the catalog on page n. Out-of-range pages are clamped.
func (a *App) Services(ctx context.Context, page int) error {
	a.servicesPage = a.catalog.Page(page).Number
	return a.Open(ctx, common.RouteServices)
}

func (a *App) Service(ctx context.Context, slug string) error {
	return a.Open(ctx, common.RouteServices+"/"+slug)
}

func (a *App) renderServices() {
	st := a.theme.Styles()
	p := a.catalog.Page(a.servicesPage)

	a.println(st.Title.Render("Services"))
	if len(p.Items) == 0 {
		a.println(st.Muted.Render("No services available."))
		return
	}
	for _, s := range p.Items {
		a.printf("%-32s %-18s %s %s\n",
			s.Slug,
			s.User,
			st.Badge.Render(fmt.Sprintf("%d credits", s.Price)),
			st.Muted.Render(fmt.Sprintf("★ %.1f (%d)", s.Rating, s.Reviews)),
		)
	}

	nav := []string{fmt.Sprintf("Page %d of %d", p.Number, p.Total)}
	if p.HasPrev() {
		nav = append(nav, fmt.Sprintf("prev: services %d", p.Number-1))
	}
	if p.HasNext() {
		nav = append(nav, fmt.Sprintf("next: services %d", p.Number+1))
	}
	a.println(st.Muted.Render(strings.Join(nav, " | ")))
}

func (a *App) renderService(slug string) {
	s, err := a.catalog.BySlug(slug)
	if err != nil {
		a.println(a.theme.Styles().Error.Render("Service not found"))
		return
	}
	out, err := catalog.Render(s, a.mdStyle(), serviceWidth)
	if err != nil {
		a.log.Warn(context.Background(), "rendering service failed", "slug", slug, "error", err)
		a.println(catalog.Markdown(s))
		return
	}
	a.println(out)
}
