package service

import (
	"Catalog/internal/model"
	"Catalog/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) UpdateUser(ctx context.Context, id int64, updates map[string]any) (*model.User, error) {
	args := m.Called(ctx, id, updates)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockBlockRepo struct{ mock.Mock }

func (m *mockBlockRepo) CreateIfAbsent(ctx context.Context, blockerID, blockedID int64) (*model.Block, bool, error) {
	args := m.Called(ctx, blockerID, blockedID)
	b, _ := args.Get(0).(*model.Block)
	return b, args.Bool(1), args.Error(2)
}
func (m *mockBlockRepo) Delete(ctx context.Context, blockerID, blockedID int64) (bool, error) {
	args := m.Called(ctx, blockerID, blockedID)
	return args.Bool(0), args.Error(1)
}
func (m *mockBlockRepo) Exists(ctx context.Context, blockerID, blockedID int64) (bool, error) {
	args := m.Called(ctx, blockerID, blockedID)
	return args.Bool(0), args.Error(1)
}
func (m *mockBlockRepo) ListByBlocker(ctx context.Context, blockerID int64) ([]model.Block, error) {
	args := m.Called(ctx, blockerID)
	if v, ok := args.Get(0).([]model.Block); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBlockRepo) BlockerIDs(ctx context.Context, blockedID int64) ([]int64, error) {
	args := m.Called(ctx, blockedID)
	if v, ok := args.Get(0).([]int64); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.BlockRepository = (*mockBlockRepo)(nil)

type mockBrandRepo struct{ mock.Mock }

func (m *mockBrandRepo) Create(ctx context.Context, b *model.Brand) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockBrandRepo) GetByID(ctx context.Context, id string) (*model.Brand, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Brand); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBrandRepo) GetByName(ctx context.Context, name string) (*model.Brand, error) {
	args := m.Called(ctx, name)
	if v, ok := args.Get(0).(*model.Brand); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBrandRepo) List(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Brand); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBrandRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Brand, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Brand); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBrandRepo) ReplaceCategories(ctx context.Context, id string, categories []string) (*model.Brand, error) {
	args := m.Called(ctx, id, categories)
	if v, ok := args.Get(0).(*model.Brand); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBrandRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockBrandRepo) CountProducts(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.BrandRepository = (*mockBrandRepo)(nil)

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Product); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProductRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Product, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Product); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockProductRepo) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, f)
	if v, ok := args.Get(0).([]model.Product); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ProductRepository = (*mockProductRepo)(nil)

type mockSessionStore struct{ mock.Mock }

func (m *mockSessionStore) Save(ctx context.Context, s model.RefreshSession) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockSessionStore) Consume(ctx context.Context, id string) (*model.RefreshSession, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.RefreshSession); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSessionStore) DeleteByUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

var _ repo.SessionStore = (*mockSessionStore)(nil)

// хелперы
func ptrStr(s string) *string   { return &s }
func ptrF64(v float64) *float64 { return &v }
func ptrI64(v int64) *int64     { return &v }
