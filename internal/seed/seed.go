// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"flare/internal/models"

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

// promptBank holds the starter prompts inserted on every seed run.
var promptBank = map[string][]string{
	"food": {
		"Pineapple on pizza?",
		"Is a hot dog a sandwich?",
		"Does cereal count as soup?",
		"Should ketchup go in the fridge?",
	},
	"technology": {
		"Will AI replace most programming jobs within a decade?",
		"Is social media doing more harm than good?",
		"Should phones be banned in schools?",
		"Are electric cars actually better for the environment?",
	},
	"lifestyle": {
		"Is it rude to recline your seat on a plane?",
		"Should you make your bed every morning?",
		"Is working from home better than the office?",
		"Are early birds more productive than night owls?",
	},
	"entertainment": {
		"Are remakes ruining cinema?",
		"Is binge-watching better than weekly episodes?",
		"Do video games count as a sport?",
	},
	"sports": {
		"Is a tie an acceptable way to end a game?",
		"Should college athletes be paid?",
		"Is golf actually a sport?",
	},
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)
	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	prompts, err := createPrompts(db)
	if err != nil {
		return fmt.Errorf("failed to create prompts: %w", err)
	}
	log.Printf("%d prompts available", len(prompts))

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	posts, err := createPosts(db, users, prompts, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	replies, err := createReplies(db, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create replies: %w", err)
	}
	log.Printf("%d replies created", replies)

	follows, err := createFollows(db, users)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("%d follow relationships created", follows)

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE replies, posts, follows, prompts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createPrompts(db *gorm.DB) ([]models.Prompt, error) {
	var prompts []models.Prompt
	for category, texts := range promptBank {
		for _, text := range texts {
			prompts = append(prompts, models.Prompt{
				PromptText: text,
				Category:   category,
			})
		}
	}
	if err := db.Create(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	// One shared password so testers can log in as anyone.
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		avatar := fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID())
		users = append(users, models.User{
			Username:       fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:          gofakeit.Email(),
			Password:       string(hashed),
			Bio:            gofakeit.Sentence(10),
			ProfilePicture: &avatar,
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func createPosts(db *gorm.DB, users []models.User, prompts []models.Prompt, count int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	//nolint:gosec // weak randomness is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		post := models.Post{
			UserID:        users[r.Intn(len(users))].ID,
			PostText:      gofakeit.Paragraph(1, 3, 8, " "),
			UpvoteCount:   r.Intn(200),
			DownvoteCount: r.Intn(50),
			CreatedAt:     randomPastTime(r, 90),
		}
		// Most posts answer a prompt; some stand alone.
		if len(prompts) > 0 && r.Intn(10) < 8 {
			promptID := prompts[r.Intn(len(prompts))].ID
			post.PromptID = &promptID
		}
		posts = append(posts, post)
	}
	if err := db.Create(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func createReplies(db *gorm.DB, users []models.User, posts []models.Post) (int, error) {
	if len(users) == 0 || len(posts) == 0 {
		return 0, nil
	}

	//nolint:gosec // weak randomness is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	var replies []models.Reply
	for _, post := range posts {
		for i := 0; i < r.Intn(4); i++ {
			reply := models.Reply{
				PostID:    post.ID,
				UserID:    users[r.Intn(len(users))].ID,
				ReplyText: gofakeit.Sentence(12),
				CreatedAt: post.CreatedAt.Add(time.Duration(r.Intn(48)) * time.Hour),
			}
			// Tri-state agreement: agree, disagree, or no stance.
			switch r.Intn(3) {
			case 0:
				agree := true
				reply.IsAgree = &agree
			case 1:
				agree := false
				reply.IsAgree = &agree
			}
			replies = append(replies, reply)
		}
	}
	if len(replies) == 0 {
		return 0, nil
	}
	if err := db.Create(&replies).Error; err != nil {
		return 0, err
	}

	// Reply points track total replies authored.
	counts := make(map[uint]int)
	for _, reply := range replies {
		counts[reply.UserID]++
	}
	for userID, n := range counts {
		if err := db.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("reply_points", gorm.Expr("reply_points + ?", n)).Error; err != nil {
			return 0, err
		}
	}

	return len(replies), nil
}

func createFollows(db *gorm.DB, users []models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	//nolint:gosec // weak randomness is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	created := 0
	for _, follower := range users {
		for i := 0; i < r.Intn(5); i++ {
			followee := users[r.Intn(len(users))]
			if followee.ID == follower.ID {
				continue
			}
			res := db.Exec(
				"INSERT INTO follows (follower_id, followee_id, created_at) VALUES (?, ?, NOW()) ON CONFLICT (follower_id, followee_id) DO NOTHING",
				follower.ID, followee.ID,
			)
			if res.Error != nil {
				return created, res.Error
			}
			created += int(res.RowsAffected)
		}
	}
	return created, nil
}

func randomPastTime(r *rand.Rand, maxDays int) time.Time {
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
