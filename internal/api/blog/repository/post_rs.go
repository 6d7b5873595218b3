package blogRepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"ZencrowWebsite/database"
	"ZencrowWebsite/internal/api/blog"
	"ZencrowWebsite/internal/entity"
	contextPkg "ZencrowWebsite/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type PostDB struct {
	ID         int64          `db:"id"`
	Title      sql.NullString `db:"title"`
	Content    sql.NullString `db:"content"`
	Author     sql.NullString `db:"author"`
	DatePosted time.Time      `db:"date_posted"`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern that matches term as a literal
// substring. Case folding happens in SQL.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// searchQuery picks the case-folding function for the driver.
func searchQuery(driverName string) string {
	fold := "LOWER"
	if driverName == database.DriverSQLite {
		fold = database.FoldFunc
	}
	return fmt.Sprintf(querySearchPosts, fold)
}

func (r *postsRepository) CreatePost(ctx context.Context, post entity.Post) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	datePosted := post.DatePosted
	if datePosted.IsZero() {
		datePosted = time.Now()
	}

	argsKV := map[string]interface{}{
		"title":       post.Title,
		"content":     post.Content,
		"author":      post.Author,
		"date_posted": datePosted.UTC(),
	}

	query, args, err := sqlx.Named(queryCreatePost, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreatePost")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating post")
		return 0, err
	}

	return id, nil
}

func (r *postsRepository) GetPostByID(ctx context.Context, id int64) (entity.Post, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var post PostDB

	query, args, err := sqlx.Named(queryGetPostByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostByID named query preparation err")
		return entity.Post{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&post); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetPostByID no rows found")
			return entity.Post{}, blog.ErrPostNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetPostByID execution err")
		return entity.Post{}, err
	}

	return r.makePost(post), nil
}

func (r *postsRepository) ListPosts(ctx context.Context, filter PostFilter) ([]entity.Post, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var postsList []PostDB

	statement := queryListPosts
	argsKV := map[string]interface{}{}
	if filter.Search != "" {
		statement = searchQuery(r.q.DriverName())
		argsKV["pattern"] = containsPattern(filter.Search)
	}

	query, args, err := sqlx.Named(statement, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListPosts named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &postsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"search":     filter.Search,
			"error":      err.Error(),
		}).Error("ListPosts execution err")
		return nil, err
	}

	posts := make([]entity.Post, 0, len(postsList))
	for _, postDB := range postsList {
		posts = append(posts, r.makePost(postDB))
	}

	return posts, nil
}

func (r *postsRepository) makePost(post PostDB) entity.Post {
	return entity.Post{
		ID:         post.ID,
		Title:      post.Title.String,
		Content:    post.Content.String,
		Author:     post.Author.String,
		DatePosted: post.DatePosted,
	}
}
