package store

import (
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-marketplace/models"
)

const (
	deleteAllFavorites   = `DELETE FROM favorites;`
	deleteAllProducts    = `DELETE FROM products;`
	deleteAllUsers       = `DELETE FROM users;`
	resetSQLiteSequences = `DELETE FROM sqlite_sequence WHERE name IN ('users', 'products', 'favorites');`

	truncateAllPostgres = `TRUNCATE favorites, products, users RESTART IDENTITY CASCADE;`
)

// likeEscape is the escape character declared in every LIKE clause.
const likeEscape = `\`

var userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

// productColumns is the projection shared by product and favorite reads.
// The order matches scanProduct.
var productColumns = []string{
	"p.id",
	"p.title",
	"p.description",
	"p.price",
	"p.image",
	"p.category",
	"p.seller_id",
	"u.username",
	"p.created_at",
	"p.updated_at",
}

// sortColumns maps the accepted sortBy values to qualified columns.
var sortColumns = map[string]string{
	models.SortByCreatedAt: "p.created_at",
	models.SortByTitle:     "p.title",
	models.SortByPrice:     "p.price",
}

// escapeLike makes %, _ and the escape character match literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return r.Replace(s)
}

// productFilters returns the WHERE predicates of a listing.
func productFilters(q models.ProductQuery) squirrel.And {
	where := squirrel.And{}

	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		where = append(where, squirrel.Or{
			squirrel.Expr(`LOWER(p.title) LIKE ? ESCAPE '`+likeEscape+`'`, pattern),
			squirrel.Expr(`LOWER(p.description) LIKE ? ESCAPE '`+likeEscape+`'`, pattern),
		})
	}

	if q.Category != "" {
		where = append(where, squirrel.Eq{"p.category": q.Category})
	}

	return where
}

// orderBy returns the ORDER BY terms with an id tie-breaker in the same
// direction.
func orderBy(sortBy, order string) []string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = sortColumns[models.SortByCreatedAt]
	}

	direction := models.OrderDesc
	if order == models.OrderAsc {
		direction = models.OrderAsc
	}

	return []string{column + " " + direction, "p.id " + direction}
}

// selectProducts is the base products SELECT with the seller name and the
// favorite flag for viewerID. Anonymous viewers use 0, which matches no user.
func selectProducts(b squirrel.StatementBuilderType, viewerID int64) squirrel.SelectBuilder {
	return b.
		Select(productColumns...).
		Column("(f.id IS NOT NULL) AS is_favorited").
		From("products p").
		LeftJoin("users u ON u.id = p.seller_id").
		LeftJoin("favorites f ON f.product_id = p.id AND f.user_id = ?", viewerID)
}

func buildListProductsQuery(b squirrel.StatementBuilderType, q models.ProductQuery) (string, []any, error) {
	return selectProducts(b, q.ViewerID).
		Where(productFilters(q)).
		OrderBy(orderBy(q.SortBy, q.Order)...).
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset())).
		ToSql()
}

func buildCountProductsQuery(b squirrel.StatementBuilderType, q models.ProductQuery) (string, []any, error) {
	return b.
		Select("COUNT(*)").
		From("products p").
		Where(productFilters(q)).
		ToSql()
}

func buildGetProductQuery(b squirrel.StatementBuilderType, id, viewerID int64) (string, []any, error) {
	return selectProducts(b, viewerID).
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
}

func buildProductExistsQuery(b squirrel.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("1").From("products").Where(squirrel.Eq{"id": id}).ToSql()
}

func buildCreateProductQuery(b squirrel.StatementBuilderType, input models.ProductInput, now time.Time) (string, []any, error) {
	category := input.Category
	if category == "" {
		category = models.DefaultCategory
	}

	return b.
		Insert("products").
		Columns("title", "description", "price", "image", "category", "seller_id", "created_at", "updated_at").
		Values(input.Title, input.Description, input.Price, input.Image, category, input.SellerID, now, now).
		Suffix("RETURNING id").
		ToSql()
}

// buildUpdateProductQuery writes the present fields of update and always
// bumps updated_at. A null image clears it.
func buildUpdateProductQuery(b squirrel.StatementBuilderType, id int64, update models.ProductUpdate, now time.Time) (string, []any, error) {
	set := map[string]any{"updated_at": now}

	if update.Title.Present() {
		set["title"] = update.Title.Value
	}
	if update.Description.Present() {
		set["description"] = update.Description.Value
	}
	if update.Price.Present() {
		set["price"] = update.Price.Value
	}
	if update.Image.Set {
		// Value is "" for an explicit null
		set["image"] = update.Image.Value
	}
	if update.Category.Present() {
		category := update.Category.Value
		if category == "" {
			category = models.DefaultCategory
		}
		set["category"] = category
	}

	return b.
		Update("products").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func buildDeleteProductQuery(b squirrel.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete("products").Where(squirrel.Eq{"id": id}).ToSql()
}

func buildListFavoritesQuery(b squirrel.StatementBuilderType, userID int64, page models.PageRequest) (string, []any, error) {
	return b.
		Select(productColumns...).
		Column("f.created_at").
		From("favorites f").
		Join("products p ON p.id = f.product_id").
		LeftJoin("users u ON u.id = p.seller_id").
		Where(squirrel.Eq{"f.user_id": userID}).
		OrderBy("f.created_at DESC", "f.id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
}

func buildCountFavoritesQuery(b squirrel.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("COUNT(*)").From("favorites").Where(squirrel.Eq{"user_id": userID}).ToSql()
}

func buildAddFavoriteQuery(b squirrel.StatementBuilderType, userID, productID int64, now time.Time) (string, []any, error) {
	return b.
		Insert("favorites").
		Columns("user_id", "product_id", "created_at").
		Values(userID, productID, now).
		ToSql()
}

func buildRemoveFavoriteQuery(b squirrel.StatementBuilderType, userID, productID int64) (string, []any, error) {
	return b.
		Delete("favorites").
		Where(squirrel.Eq{"user_id": userID, "product_id": productID}).
		ToSql()
}

func buildCreateUserQuery(b squirrel.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	return b.
		Insert("users").
		Columns("username", "email", "password_hash", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, now).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserByEmailQuery(b squirrel.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).From("users").Where(squirrel.Eq{"email": email}).ToSql()
}

func buildUserExistsQuery(b squirrel.StatementBuilderType, email, username string) (string, []any, error) {
	return b.
		Select("COUNT(*)").
		From("users").
		Where(squirrel.Or{squirrel.Eq{"email": email}, squirrel.Eq{"username": username}}).
		ToSql()
}
