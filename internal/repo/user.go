package repo

import (
	"Catalog/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository — доступ к пользователям.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	// UpdateUser применяет частичное обновление и возвращает актуальную запись.
	UpdateUser(ctx context.Context, id int64, updates map[string]any) (*model.User, error)
	// DeleteUser удаляет пользователя вместе с его товарами, блокировками и сессиями.
	DeleteUser(ctx context.Context, id int64) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *userRepo) first(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) UpdateUser(ctx context.Context, id int64, updates map[string]any) (*model.User, error) {
	if len(updates) > 0 {
		tx := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(updates)
		if tx.Error != nil {
			return nil, tx.Error
		}
		if tx.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetUserByID(ctx, id)
}

// DeleteUser — каскад выполняется явно, не полагаясь на внешние ключи (в SQLite они могут быть выключены).
// Бренды пользователя не удаляются: на них могут ссылаться чужие товары, поэтому только сбрасывается created_by.
func (r *userRepo) DeleteUser(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blocker_id = ? OR blocked_id = ?", id, id).Delete(&model.Block{}).Error; err != nil {
			return err
		}
		if err := tx.Where("added_by = ?", id).Delete(&model.Product{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.RefreshSession{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Brand{}).Where("created_by = ?", id).Update("created_by", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
