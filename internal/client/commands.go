package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/models"
)

// ── Auth ──

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.newFlagSet("register")
	username := fs.String("username", "", "public user name, 3 to 30 characters")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password, at least 6 characters")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.services.AuthService.Register(ctx, models.RegisterRequest{
		Username: *username,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	return a.print(user, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Registered and logged in as %s (%s)\n", user.Username, user.Email)
		return err
	})
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.services.AuthService.Login(ctx, models.LoginRequest{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	return a.print(user, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Logged in as %s (%s)\n", user.Username, user.Email)
		return err
	})
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := a.newFlagSet("logout").Parse(args); err != nil {
		return err
	}

	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}

	return a.printMessage("Logged out")
}

func (a *App) whoami(ctx context.Context, args []string) error {
	if err := a.newFlagSet("whoami").Parse(args); err != nil {
		return err
	}

	session, err := a.services.AuthService.Restore(ctx)
	if errors.Is(err, service.ErrNotLoggedIn) {
		return errLoginRequired
	}
	if err != nil {
		return err
	}

	return a.print(session.User, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s (%s), id %d, logged in since %s\n",
			session.User.Username, session.User.Email, session.User.ID, session.SavedAt.Format(timeLayout))
		return err
	})
}

// ── Products ──

func (a *App) listProducts(ctx context.Context, args []string) error {
	fs := a.newFlagSet("products")
	page := fs.Int("page", 0, "page number, starting at 1")
	limit := fs.Int("limit", 0, "products per page, at most 50")
	search := fs.String("search", "", "match title or description")
	category := fs.String("category", "", "exact category")
	sortBy := fs.String("sort", "", "created_at, title or price")
	order := fs.String("order", "", "ASC or DESC")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.services.ProductService.ListProducts(ctx, models.ProductFilter{
		Page:     *page,
		Limit:    *limit,
		Search:   *search,
		Category: *category,
		SortBy:   *sortBy,
		Order:    *order,
	})
	if err != nil {
		return err
	}

	return a.print(result, func(w io.Writer) error {
		return writeProductTable(w, result.Products, result.Pagination, "products")
	})
}

func (a *App) getProduct(ctx context.Context, args []string) error {
	fs := a.newFlagSet("product")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	product, err := a.services.ProductService.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	return a.print(product, func(w io.Writer) error {
		return writeProduct(w, product)
	})
}

func (a *App) createProduct(ctx context.Context, args []string) error {
	fs := a.newFlagSet("create")
	title := fs.String("title", "", "product title, 2 to 200 characters")
	description := fs.String("description", "", "product description, 10 to 2000 characters")
	price := fs.Float64("price", 0, "price, greater than 0")
	image := fs.String("image", "", "image URL")
	category := fs.String("category", "", "category name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	product, err := a.services.ProductService.CreateProduct(ctx, models.ProductInput{
		Title:       *title,
		Description: *description,
		Price:       *price,
		Image:       *image,
		Category:    *category,
	})
	if err != nil {
		return err
	}

	return a.print(product, func(w io.Writer) error {
		return writeProduct(w, product)
	})
}

func (a *App) updateProduct(ctx context.Context, args []string) error {
	fs := a.newFlagSet("update")
	title := fs.String("title", "", "new title")
	description := fs.String("description", "", "new description")
	price := fs.Float64("price", 0, "new price")
	image := fs.String("image", "", "new image URL, empty clears it")
	category := fs.String("category", "", "new category")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}

	var update models.ProductUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			update.Title = models.Some(*title)
		case "description":
			update.Description = models.Some(*description)
		case "price":
			update.Price = models.Some(*price)
		case "image":
			if *image == "" {
				update.Image = models.Null[string]()
			} else {
				update.Image = models.Some(*image)
			}
		case "category":
			update.Category = models.Some(*category)
		}
	})
	if update.IsEmpty() {
		return errNothingToUpdate
	}

	product, err := a.services.ProductService.UpdateProduct(ctx, id, update)
	if err != nil {
		return err
	}

	return a.print(product, func(w io.Writer) error {
		return writeProduct(w, product)
	})
}

func (a *App) deleteProduct(ctx context.Context, args []string) error {
	id, err := parseWithID(a.newFlagSet("delete"), args)
	if err != nil {
		return err
	}

	if err = a.services.ProductService.DeleteProduct(ctx, id); err != nil {
		return err
	}

	return a.printMessage(fmt.Sprintf("Product %d deleted", id))
}

// ── Favorites ──

func (a *App) listFavorites(ctx context.Context, args []string) error {
	fs := a.newFlagSet("favorites")
	page := fs.Int("page", 0, "page number, starting at 1")
	limit := fs.Int("limit", 0, "favorites per page, at most 50")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.services.FavoriteService.ListFavorites(ctx, models.PageRequest{Page: *page, Limit: *limit})
	if err != nil {
		return err
	}

	return a.print(result, func(w io.Writer) error {
		return writeProductTable(w, result.Favorites, result.Pagination, "favorites")
	})
}

func (a *App) addFavorite(ctx context.Context, args []string) error {
	id, err := parseWithID(a.newFlagSet("favorite"), args)
	if err != nil {
		return err
	}

	if err = a.services.FavoriteService.AddFavorite(ctx, id); err != nil {
		return err
	}

	return a.printMessage(fmt.Sprintf("Product %d added to favorites", id))
}

func (a *App) removeFavorite(ctx context.Context, args []string) error {
	id, err := parseWithID(a.newFlagSet("unfavorite"), args)
	if err != nil {
		return err
	}

	if err = a.services.FavoriteService.RemoveFavorite(ctx, id); err != nil {
		return err
	}

	return a.printMessage(fmt.Sprintf("Product %d removed from favorites", id))
}

// ── Helpers ──

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// parseWithID accepts the product id either before or after the flags.
func parseWithID(fs *flag.FlagSet, args []string) (int64, error) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		if err := fs.Parse(args[1:]); err != nil {
			return 0, err
		}
		return parseProductID(args[0])
	}

	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	return parseProductID(fs.Arg(0))
}

func parseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidProductID, raw)
	}
	return id, nil
}
