package mongo

import (
	"context"
	"strings"
	"time"

	"userauth/internal/domain/entity"
	domainerrors "userauth/internal/domain/errors"
	"userauth/internal/domain/repository"
	"userauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements repository.UserRepository on a MongoDB collection.
type userRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewUserRepository wraps collection. A positive timeout bounds every operation.
func NewUserRepository(collection *mongo.Collection, timeout time.Duration) repository.UserRepository {
	return &userRepository{
		collection: collection,
		timeout:    timeout,
	}
}

func (repo *userRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if repo.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, repo.timeout)
}

// Create inserts the user document. The unique email index turns a second
// registration for the same address into ErrUserAlreadyExists.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if missing := user.MissingRequiredFields(); len(missing) > 0 {
		return errors.WithStack(domainerrors.ErrUserCreationFailed.WithDetails(strings.Join(missing, ", ") + " required"))
	}

	doc := fromUserDomain(user)
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc.CreatedAt = now
	doc.UpdatedAt = now

	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		return translateInsertError(err)
	}

	user.CreatedAt = doc.CreatedAt
	user.UpdatedAt = doc.UpdatedAt

	return nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()

	var doc model.UserDocument
	err := repo.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&doc)
}

func translateInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
}

// --- Mapper Functions ---

func toUserDomain(doc *model.UserDocument) (*entity.User, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "stored user has malformed id")
	}

	return &entity.User{
		ID:           id,
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		MobileNo:     doc.MobileNo,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func fromUserDomain(user *entity.User) *model.UserDocument {
	return &model.UserDocument{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
		MobileNo:  user.MobileNo,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
