package repository

import (
	"context"
	"strings"
	"time"

	"eventpro/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;size:64;uniqueIndex;not null"`
	Email        string    `gorm:"column:email;size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;size:16;not null;index"`
	Phone        *string   `gorm:"column:phone;size:32"`
	Avatar       *string   `gorm:"column:avatar;size:512"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var phone, avatar string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.Avatar != nil {
		avatar = *m.Avatar
	}

	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.UserRole(m.Role),
		Phone:        phone,
		Avatar:       avatar,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	var phone, avatar *string
	if u.Phone != "" {
		v := u.Phone
		phone = &v
	}
	if u.Avatar != "" {
		v := u.Avatar
		avatar = &v
	}

	return userModel{
		ID:           u.ID,
		Username:     strings.TrimSpace(u.Username),
		Email:        normalizeEmail(u.Email),
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Phone:        phone,
		Avatar:       avatar,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserFilter narrows List; an empty Role lists everyone.
type UserFilter struct {
	Role domain.UserRole
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err, "create user")
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err, "get user")
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&m).Error; err != nil {
		return nil, translate(err, "get user by email")
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, exceptID int64) (bool, error) {
	return r.exists(ctx, "email = ?", normalizeEmail(email), exceptID)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string, exceptID int64) (bool, error) {
	return r.exists(ctx, "username = ?", strings.TrimSpace(username), exceptID)
}

func (r *UserRepository) exists(ctx context.Context, cond string, value any, exceptID int64) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&userModel{}).Where(cond, value)
	if exceptID > 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, translate(err, "check user exists")
	}
	return n > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	res := r.db.WithContext(ctx).Model(&userModel{ID: u.ID}).Updates(map[string]any{
		"username":      m.Username,
		"email":         m.Email,
		"password_hash": m.PasswordHash,
		"role":          m.Role,
		"phone":         m.Phone,
		"avatar":        m.Avatar,
		"updated_at":    time.Now().UTC(),
	})
	if res.Error != nil {
		return translate(res.Error, "update user")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&userModel{}, id)
	if res.Error != nil {
		return translate(res.Error, "delete user")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, filter UserFilter, limit, offset int) ([]domain.User, int64, error) {
	scope := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&userModel{})
		if filter.Role != "" {
			q = q.Where("role = ?", string(filter.Role))
		}
		return q
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, translate(err, "count users")
	}

	var rows []userModel
	if err := scope().
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, translate(err, "list users")
	}

	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainUser(m))
	}
	return out, total, nil
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

func (r *UserRepository) CountByRole(ctx context.Context) ([]RoleCount, error) {
	var out []RoleCount
	err := r.db.WithContext(ctx).Model(&userModel{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Order("role").
		Scan(&out).Error
	return out, translate(err, "count users by role")
}
