// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"mingle/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var categoryNames = []string{
	"Travel", "Food", "Technology", "Music", "Fitness",
	"Books", "Movies", "Photography", "Gaming", "Science",
}

// Seed populates the database with test data. All seeded users share the
// password "password123".
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	categories, err := createCategories(db)
	if err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	log.Printf("created %d categories", len(categories))

	posts, err := createPosts(db, users, categories, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := createEngagement(db, users, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Println("seeding complete")

	return nil
}

func clearData(db *gorm.DB) error {
	// Children before parents so foreign keys never block the wipe.
	for _, model := range []any{
		&models.Like{}, &models.Comment{}, &models.Follow{},
		&models.Post{}, &models.Category{}, &models.Profile{}, &models.User{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, n int) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		birth := gofakeit.DateRange(
			time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC))
		gender := models.GenderMale
		if gofakeit.Bool() {
			gender = models.GenderFemale
		}

		user := models.User{
			Email:    fmt.Sprintf("%s%d@%s", gofakeit.Username(), i, gofakeit.DomainName()),
			Password: string(hash),
			// The first user doubles as the admin account.
			IsStaff:     i == 0,
			IsSuperuser: i == 0,
			Profile: &models.Profile{
				Bio:       gofakeit.Sentence(8),
				Location:  gofakeit.City(),
				Gender:    gender,
				BirthDate: &birth,
				ProfilePicture: fmt.Sprintf(
					"https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
			},
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createCategories(db *gorm.DB) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		category := models.Category{
			CategoryName: name,
			Description:  gofakeit.Sentence(10),
		}
		if err := db.Create(&category).Error; err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func createPosts(db *gorm.DB, users []models.User, categories []models.Category, n int) ([]models.Post, error) {
	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		post := models.Post{
			Title:      gofakeit.Sentence(5),
			Content:    gofakeit.Paragraph(1, 3, 8, "\n"),
			CategoryID: categories[rand.Intn(len(categories))].ID,
			UserID:     users[rand.Intn(len(users))].ID,
		}
		if gofakeit.Bool() {
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
		}
		if len(post.Title) > 100 {
			post.Title = post.Title[:100]
		}
		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// createEngagement scatters comments, likes and follow edges across the
// seeded users. Duplicate likes and follows are skipped, not retried.
func createEngagement(db *gorm.DB, users []models.User, posts []models.Post) error {
	for _, post := range posts {
		for i := 0; i < rand.Intn(5); i++ {
			text := gofakeit.Sentence(6)
			if len(text) > 255 {
				text = text[:255]
			}
			comment := models.Comment{
				Comment: text,
				PostID:  post.ID,
				UserID:  users[rand.Intn(len(users))].ID,
			}
			if err := db.Create(&comment).Error; err != nil {
				return err
			}
		}

		seen := map[int]bool{}
		for i := 0; i < rand.Intn(len(users)); i++ {
			u := rand.Intn(len(users))
			if seen[u] {
				continue
			}
			seen[u] = true
			like := models.Like{PostID: post.ID, UserID: users[u].ID}
			if err := db.Create(&like).Error; err != nil {
				return err
			}
		}
	}

	for i := range users {
		for j := 0; j < rand.Intn(6); j++ {
			target := rand.Intn(len(users))
			if target == i {
				continue
			}
			var count int64
			db.Model(&models.Follow{}).
				Where("user_id = ? AND following_id = ?", users[i].ID, users[target].ID).
				Count(&count)
			if count > 0 {
				continue
			}
			follow := models.Follow{UserID: users[i].ID, FollowingID: users[target].ID}
			if err := db.Create(&follow).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
