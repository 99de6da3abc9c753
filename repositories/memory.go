package repositories

import (
	"context"
	"sync"

	"blogify/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The in-memory backend keeps everything in process. It backs DB_DRIVER=memory
// for local runs and the router tests.

type memoryPostRepository struct {
	mu    sync.RWMutex
	posts []models.Post
}

func NewMemoryPostRepository() PostRepository {
	return &memoryPostRepository{}
}

func (r *memoryPostRepository) Create(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	r.posts = append(r.posts, clonePost(*post))
	return nil
}

func (r *memoryPostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	post := clonePost(r.posts[i])
	return &post, nil
}

func (r *memoryPostRepository) List(ctx context.Context, skip, limit int) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	posts := []models.Post{}
	if skip < 0 {
		return posts, nil
	}
	for i := skip; i < len(r.posts) && len(posts) < limit; i++ {
		posts = append(posts, clonePost(r.posts[i]))
	}
	return posts, nil
}

func (r *memoryPostRepository) EstimatedCount(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.posts)), nil
}

func (r *memoryPostRepository) ListByAuthor(ctx context.Context, authorEmail string) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	posts := []models.Post{}
	for _, p := range r.posts {
		if p.AuthorEmail == authorEmail {
			posts = append(posts, clonePost(p))
		}
	}
	return posts, nil
}

func (r *memoryPostRepository) Update(ctx context.Context, post *models.Post) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(post.ID)
	if i < 0 {
		return false, nil
	}
	stored := &r.posts[i]
	if stored.Title == post.Title && stored.Content == post.Content && stored.ImageURL == post.ImageURL {
		return false, nil
	}
	stored.Title = post.Title
	stored.Content = post.Content
	stored.ImageURL = post.ImageURL
	return true, nil
}

func (r *memoryPostRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.posts = append(r.posts[:i], r.posts[i+1:]...)
	return true, nil
}

func (r *memoryPostRepository) indexOf(id primitive.ObjectID) int {
	for i := range r.posts {
		if r.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func clonePost(p models.Post) models.Post {
	p.Tags = append([]string{}, p.Tags...)
	return p
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicateKey
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	user := r.users[i]
	return &user, nil
}

func (r *memoryUserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.User{}, r.users...), nil
}

func (r *memoryUserRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.users[i].Status = status
	return true, nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.users = append(r.users[:i], r.users[i+1:]...)
	return true, nil
}

func (r *memoryUserRepository) indexOf(id primitive.ObjectID) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}
