package postRepo

import (
	"context"
	"database/sql"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/rehan-adi/Blog-Backend/models"
)

type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{
		db: db,
	}
}

const postColumns = `p.id, p.content, p.image, p.tags, p.created_at,
		u.id, u.username, u.name, u.profile_picture,
		c.id, c.name`

const postFrom = ` FROM posts p
		JOIN users u ON u.id = p.author
		JOIN categories c ON c.id = p.category`

func scanPost(row interface{ Scan(...interface{}) error }) (models.Post, error) {
	var post models.Post
	var image sql.NullString
	err := row.Scan(
		&post.ID, &post.Content, &image, pq.Array(&post.Tags), &post.CreatedAt,
		&post.Author.ID, &post.Author.Username, &post.Author.Name, &post.Author.ProfilePicture,
		&post.Category.ID, &post.Category.Name,
	)
	if err != nil {
		return models.Post{}, err
	}
	if image.Valid {
		post.Image = &image.String
	}
	return post, nil
}

func (pr *PostgresRepo) CreatePost(ctx context.Context, fields PostFields) (models.Post, error) {
	var image interface{}
	if fields.Image != nil {
		image = *fields.Image
	}
	var id string
	err := pr.db.QueryRowContext(ctx,
		`INSERT INTO posts (content, author, image, tags, category)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		fields.Content, fields.Author, image, pq.Array(fields.Tags), fields.CategoryID).Scan(&id)
	if err != nil {
		log.Println("Error creating post: ", err.Error())
		return models.Post{}, err
	}
	return pr.GetPost(ctx, id)
}

func (pr *PostgresRepo) GetPost(ctx context.Context, id string) (models.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Post{}, ErrPostNotFound
	}
	row := pr.db.QueryRowContext(ctx,
		`SELECT `+postColumns+postFrom+` WHERE p.id = $1`, id)
	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Printf("Error fetching post{%v}: %v\n", id, err.Error())
		return models.Post{}, err
	}
	return post, nil
}

func (pr *PostgresRepo) ListPosts(ctx context.Context) ([]models.Post, error) {
	rows, err := pr.db.QueryContext(ctx,
		`SELECT `+postColumns+postFrom+` ORDER BY p.created_at DESC`)
	if err != nil {
		log.Println("Error listing posts: ", err.Error())
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (pr *PostgresRepo) ListPostsByCategory(ctx context.Context, categoryID string) ([]models.Post, error) {
	if _, err := uuid.Parse(categoryID); err != nil {
		return nil, ErrCategoryNotFound
	}
	var exists bool
	err := pr.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, categoryID).Scan(&exists)
	if err != nil {
		log.Printf("Error checking category{%v}: %v\n", categoryID, err.Error())
		return nil, err
	}
	if !exists {
		return nil, ErrCategoryNotFound
	}
	rows, err := pr.db.QueryContext(ctx,
		`SELECT `+postColumns+postFrom+` WHERE p.category = $1 ORDER BY p.created_at DESC`, categoryID)
	if err != nil {
		log.Printf("Error listing posts for category{%v}: %v\n", categoryID, err.Error())
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (pr *PostgresRepo) ListPostsByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	rows, err := pr.db.QueryContext(ctx,
		`SELECT `+postColumns+postFrom+` WHERE p.author = $1 ORDER BY p.created_at DESC`, authorID)
	if err != nil {
		log.Printf("Error listing posts for user{%v}: %v\n", authorID, err.Error())
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (pr *PostgresRepo) UpdatePost(ctx context.Context, id string, update PostUpdate) (models.Post, error) {
	var image interface{}
	if update.Image != nil {
		image = *update.Image
	}
	var tags interface{}
	if update.Tags != nil {
		tags = pq.Array(update.Tags)
	}
	res, err := pr.db.ExecContext(ctx,
		`UPDATE posts SET content = $1,
			image = COALESCE($2::text, image),
			tags = COALESCE($3::text[], tags)
		WHERE id = $4`,
		update.Content, image, tags, id)
	if err != nil {
		log.Printf("Error updating post{%v}: %v\n", id, err.Error())
		return models.Post{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Post{}, ErrPostNotFound
	}
	return pr.GetPost(ctx, id)
}

func (pr *PostgresRepo) DeletePost(ctx context.Context, id string) error {
	res, err := pr.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting post{%v}: %v\n", id, err.Error())
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrPostNotFound
	}
	return nil
}

// Concurrent creators of the same new name can both pass the insert; the
// conflict clause keeps a single row per name and the select below returns it.
func (pr *PostgresRepo) GetOrCreateCategory(ctx context.Context, name string) (models.Category, error) {
	_, err := pr.db.ExecContext(ctx,
		`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		log.Printf("Error creating category{%v}: %v\n", name, err.Error())
		return models.Category{}, err
	}
	var category models.Category
	err = pr.db.QueryRowContext(ctx,
		`SELECT id, name FROM categories WHERE name = $1`, name).Scan(&category.ID, &category.Name)
	if err != nil {
		log.Printf("Error fetching category{%v}: %v\n", name, err.Error())
		return models.Category{}, err
	}
	return category, nil
}

func (pr *PostgresRepo) GetUser(ctx context.Context, id string) (models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.User{}, ErrUserNotFound
	}
	var user models.User
	err := pr.db.QueryRowContext(ctx,
		`SELECT id, username, name, bio, profile_picture FROM users WHERE id = $1`, id).Scan(
		&user.ID, &user.Username, &user.Name, &user.Bio, &user.ProfilePicture)
	if err == sql.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Printf("Error fetching user{%v}: %v\n", id, err.Error())
		return models.User{}, err
	}
	return user, nil
}

func (pr *PostgresRepo) CountPostsByAuthor(ctx context.Context, authorID string) (int, error) {
	var count int
	err := pr.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE author = $1`, authorID).Scan(&count)
	if err != nil {
		log.Printf("Error counting posts for user{%v}: %v\n", authorID, err.Error())
		return 0, err
	}
	return count, nil
}

func collectPosts(rows *sql.Rows) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
