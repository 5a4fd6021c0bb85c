package repository

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"newsdesk/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) InsertArticle(article *model.Article) error {
	return r.db.QueryRow(`
		INSERT INTO article(title, slug, content, excerpt, featured_image, category_id, author_id, status, is_breaking, is_featured, read_time, tags, published_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`, article.Title, article.Slug, article.Content, article.Excerpt, article.FeaturedImage,
		article.CategoryID, article.AuthorID, article.Status, article.IsBreaking, article.IsFeatured,
		article.ReadTime, pq.Array(article.Tags), article.PublishedAt).Scan(&article.ID)
}

// DemoteStaleBreaking clears the breaking flag on every article published
// before the cutoff. This is the only mechanism that clears the flag.
func (r *ArticleRepository) DemoteStaleBreaking(cutoff time.Time) (int64, error) {
	res, err := r.db.Exec(`
		UPDATE article SET is_breaking = FALSE
		WHERE is_breaking = TRUE AND published_at < $1
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ArticleRepository) GetCategoryByName(name string) (*model.Category, error) {
	var category model.Category
	err := r.db.QueryRow(`
		SELECT id, name, slug
		FROM category
		WHERE LOWER(name) = LOWER($1)
	`, name).Scan(&category.ID, &category.Name, &category.Slug)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *ArticleRepository) GetAllCategories() ([]model.Category, error) {
	rows, err := r.db.Query(`
		SELECT id, name, slug
		FROM category
		ORDER BY name
	`)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		err := rows.Scan(&c.ID, &c.Name, &c.Slug)
		if err != nil {
			return nil, err
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *ArticleRepository) GetUserRoles(userID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT role FROM user_role
		WHERE user_id = $1
	`, userID)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}

func (r *ArticleRepository) CountArticles() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM article
	`).Scan(&total)
	return total, err
}
