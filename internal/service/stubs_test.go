package service

import (
	"context"

	"github.com/google/uuid"

	"mingle/internal/models"
	"mingle/internal/pagination"
	"mingle/internal/repository"
)

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uuid.UUID) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	listFn          func(context.Context, int, int) (*pagination.Page[models.User], error)
	deleteFn        func(context.Context, uuid.UUID) error
	getProfileFn    func(context.Context, uuid.UUID) (*models.Profile, error)
	updateProfileFn func(context.Context, *models.Profile) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) List(ctx context.Context, page, pageSize int) (*pagination.Page[models.User], error) {
	return s.listFn(ctx, page, pageSize)
}
func (s *userRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.getProfileFn(ctx, userID)
}
func (s *userRepoStub) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	return s.updateProfileFn(ctx, profile)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(context.Context, *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, id uuid.UUID) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		listFn: func(context.Context, int, int) (*pagination.Page[models.User], error) {
			return pagination.NewPage([]models.User{}, 0, 1, 10), nil
		},
		deleteFn:     func(context.Context, uuid.UUID) error { return nil },
		getProfileFn: func(_ context.Context, id uuid.UUID) (*models.Profile, error) { return &models.Profile{UserID: id}, nil },
		updateProfileFn: func(context.Context, *models.Profile) error { return nil },
	}
}

type categoryRepoStub struct {
	createFn  func(context.Context, *models.Category) error
	getByIDFn func(context.Context, uuid.UUID) (*models.Category, error)
	listFn    func(context.Context, int, int) (*pagination.Page[models.Category], error)
	updateFn  func(context.Context, *models.Category) error
	deleteFn  func(context.Context, uuid.UUID) error
}

func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	return s.createFn(ctx, category)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) List(ctx context.Context, page, pageSize int) (*pagination.Page[models.Category], error) {
	return s.listFn(ctx, page, pageSize)
}
func (s *categoryRepoStub) Update(ctx context.Context, category *models.Category) error {
	return s.updateFn(ctx, category)
}
func (s *categoryRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		createFn:  func(context.Context, *models.Category) error { return nil },
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.Category, error) { return &models.Category{ID: id}, nil },
		listFn: func(context.Context, int, int) (*pagination.Page[models.Category], error) {
			return pagination.NewPage([]models.Category{}, 0, 1, 10), nil
		},
		updateFn: func(context.Context, *models.Category) error { return nil },
		deleteFn: func(context.Context, uuid.UUID) error { return nil },
	}
}

type postRepoStub struct {
	createFn  func(context.Context, *models.Post) error
	getByIDFn func(context.Context, uuid.UUID) (*models.Post, error)
	listFn    func(context.Context, int, int) (*pagination.Page[models.Post], error)
	updateFn  func(context.Context, *models.Post) error
	deleteFn  func(context.Context, uuid.UUID) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, page, pageSize int) (*pagination.Page[models.Post], error) {
	return s.listFn(ctx, page, pageSize)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(context.Context, *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listFn: func(context.Context, int, int) (*pagination.Page[models.Post], error) {
			return pagination.NewPage([]models.Post{}, 0, 1, 10), nil
		},
		updateFn: func(context.Context, *models.Post) error { return nil },
		deleteFn: func(context.Context, uuid.UUID) error { return nil },
	}
}

type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uuid.UUID) (*models.Comment, error)
	listFn       func(context.Context, int, int) (*pagination.Page[models.Comment], error)
	listByPostFn func(context.Context, uuid.UUID, int, int) (*pagination.Page[models.Comment], error)
	listByUserFn func(context.Context, uuid.UUID, int, int) (*pagination.Page[models.Comment], error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uuid.UUID) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) List(ctx context.Context, page, pageSize int) (*pagination.Page[models.Comment], error) {
	return s.listFn(ctx, page, pageSize)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uuid.UUID, page, pageSize int) (*pagination.Page[models.Comment], error) {
	return s.listByPostFn(ctx, postID, page, pageSize)
}
func (s *commentRepoStub) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) (*pagination.Page[models.Comment], error) {
	return s.listByUserFn(ctx, userID, page, pageSize)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	emptyPage := func(context.Context, int, int) (*pagination.Page[models.Comment], error) {
		return pagination.NewPage([]models.Comment{}, 0, 1, 10), nil
	}
	return &commentRepoStub{
		createFn:  func(context.Context, *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listFn:    emptyPage,
		listByPostFn: func(ctx context.Context, _ uuid.UUID, page, pageSize int) (*pagination.Page[models.Comment], error) {
			return emptyPage(ctx, page, pageSize)
		},
		listByUserFn: func(ctx context.Context, _ uuid.UUID, page, pageSize int) (*pagination.Page[models.Comment], error) {
			return emptyPage(ctx, page, pageSize)
		},
		updateFn: func(context.Context, *models.Comment) error { return nil },
		deleteFn: func(context.Context, uuid.UUID) error { return nil },
	}
}

type likeRepoStub struct {
	createFn     func(context.Context, *models.Like) error
	existsFn     func(context.Context, uuid.UUID, uuid.UUID) (bool, error)
	listByPostFn func(context.Context, uuid.UUID, int, int) (*pagination.Page[models.Like], error)
}

func (s *likeRepoStub) Create(ctx context.Context, like *models.Like) error {
	return s.createFn(ctx, like)
}
func (s *likeRepoStub) Exists(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	return s.existsFn(ctx, postID, userID)
}
func (s *likeRepoStub) ListByPost(ctx context.Context, postID uuid.UUID, page, pageSize int) (*pagination.Page[models.Like], error) {
	return s.listByPostFn(ctx, postID, page, pageSize)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		createFn: func(context.Context, *models.Like) error { return nil },
		existsFn: func(context.Context, uuid.UUID, uuid.UUID) (bool, error) { return false, nil },
		listByPostFn: func(context.Context, uuid.UUID, int, int) (*pagination.Page[models.Like], error) {
			return pagination.NewPage([]models.Like{}, 0, 1, 10), nil
		},
	}
}

type followRepoStub struct {
	createFn        func(context.Context, *models.Follow) error
	existsFn        func(context.Context, uuid.UUID, uuid.UUID) (bool, error)
	listFollowersFn func(context.Context, uuid.UUID, int, int) (*pagination.Page[models.Follow], error)
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) Exists(ctx context.Context, userID, followingID uuid.UUID) (bool, error) {
	return s.existsFn(ctx, userID, followingID)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, userID uuid.UUID, page, pageSize int) (*pagination.Page[models.Follow], error) {
	return s.listFollowersFn(ctx, userID, page, pageSize)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn: func(context.Context, *models.Follow) error { return nil },
		existsFn: func(context.Context, uuid.UUID, uuid.UUID) (bool, error) { return false, nil },
		listFollowersFn: func(context.Context, uuid.UUID, int, int) (*pagination.Page[models.Follow], error) {
			return pagination.NewPage([]models.Follow{}, 0, 1, 10), nil
		},
	}
}

type searchRepoStub struct {
	postsFn            func(context.Context, repository.PostFilter) ([]models.Post, error)
	commentsFn         func(context.Context, repository.CommentFilter) ([]models.Comment, error)
	usersByEmailFn     func(context.Context, string) ([]models.User, error)
	categoriesByNameFn func(context.Context, string) ([]models.Category, error)
}

func (s *searchRepoStub) Posts(ctx context.Context, filter repository.PostFilter) ([]models.Post, error) {
	return s.postsFn(ctx, filter)
}
func (s *searchRepoStub) Comments(ctx context.Context, filter repository.CommentFilter) ([]models.Comment, error) {
	return s.commentsFn(ctx, filter)
}
func (s *searchRepoStub) UsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	return s.usersByEmailFn(ctx, email)
}
func (s *searchRepoStub) CategoriesByName(ctx context.Context, name string) ([]models.Category, error) {
	return s.categoriesByNameFn(ctx, name)
}

func noopSearchRepo() *searchRepoStub {
	return &searchRepoStub{
		postsFn: func(context.Context, repository.PostFilter) ([]models.Post, error) { return nil, nil },
		commentsFn: func(context.Context, repository.CommentFilter) ([]models.Comment, error) {
			return nil, nil
		},
		usersByEmailFn:     func(context.Context, string) ([]models.User, error) { return nil, nil },
		categoriesByNameFn: func(context.Context, string) ([]models.Category, error) { return nil, nil },
	}
}
