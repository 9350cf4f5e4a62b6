package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"betcontrol/internal/domain"
	"betcontrol/internal/usecase"
)

// MockUsuarioRepository is a mock implementation of UsuarioRepository.
type MockUsuarioRepository struct {
	mu       sync.RWMutex
	usuarios map[string]*domain.Usuario

	CreateFunc              func(ctx context.Context, usuario *domain.Usuario) error
	GetByIDFunc             func(ctx context.Context, id string) (*domain.Usuario, error)
	ListFunc                func(ctx context.Context, limit, offset int) ([]*domain.Usuario, error)
	UpdateFunc              func(ctx context.Context, usuario *domain.Usuario) error
	DeleteFunc              func(ctx context.Context, id string) error
	ExistsFunc              func(ctx context.Context, id string) (bool, error)
	ListExcederamLimiteFunc func(ctx context.Context, mes string) ([]*domain.LimiteExcedido, error)
}

func NewMockUsuarioRepository() *MockUsuarioRepository {
	return &MockUsuarioRepository{
		usuarios: make(map[string]*domain.Usuario),
	}
}

func (m *MockUsuarioRepository) Create(ctx context.Context, usuario *domain.Usuario) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, usuario)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usuarios[usuario.ID] = usuario
	return nil
}

func (m *MockUsuarioRepository) GetByID(ctx context.Context, id string) (*domain.Usuario, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.usuarios[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUsuarioNotFound
}

func (m *MockUsuarioRepository) List(ctx context.Context, limit, offset int) ([]*domain.Usuario, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var usuarios []*domain.Usuario
	for _, u := range m.usuarios {
		usuarios = append(usuarios, u)
	}
	return usuarios, nil
}

func (m *MockUsuarioRepository) Update(ctx context.Context, usuario *domain.Usuario) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, usuario)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.usuarios[usuario.ID]; !ok {
		return domain.ErrUsuarioNotFound
	}
	m.usuarios[usuario.ID] = usuario
	return nil
}

func (m *MockUsuarioRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.usuarios[id]; !ok {
		return domain.ErrUsuarioNotFound
	}
	delete(m.usuarios, id)
	return nil
}

func (m *MockUsuarioRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.usuarios[id]
	return ok, nil
}

func (m *MockUsuarioRepository) ListExcederamLimite(ctx context.Context, mes string) ([]*domain.LimiteExcedido, error) {
	if m.ListExcederamLimiteFunc != nil {
		return m.ListExcederamLimiteFunc(ctx, mes)
	}
	return nil, nil
}

// MockApostaRepository is a mock implementation of ApostaRepository.
type MockApostaRepository struct {
	mu      sync.RWMutex
	apostas map[string]*domain.Aposta

	CreateFunc               func(ctx context.Context, tx usecase.Transaction, aposta *domain.Aposta) error
	GetByIDFunc              func(ctx context.Context, id string) (*domain.Aposta, error)
	ListFunc                 func(ctx context.Context, limit, offset int) ([]*domain.Aposta, error)
	UpdateFunc               func(ctx context.Context, tx usecase.Transaction, aposta *domain.Aposta) error
	DeleteFunc               func(ctx context.Context, tx usecase.Transaction, id string) error
	SumValorByUsuarioMesFunc func(ctx context.Context, usuarioID, mes string) (decimal.Decimal, error)
	MediaValorFunc           func(ctx context.Context) (decimal.Decimal, error)
	ListAcimaDaMediaFunc     func(ctx context.Context) ([]*domain.Aposta, error)
}

func NewMockApostaRepository() *MockApostaRepository {
	return &MockApostaRepository{
		apostas: make(map[string]*domain.Aposta),
	}
}

func (m *MockApostaRepository) Create(ctx context.Context, tx usecase.Transaction, aposta *domain.Aposta) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, aposta)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apostas[aposta.ID] = aposta
	return nil
}

func (m *MockApostaRepository) GetByID(ctx context.Context, id string) (*domain.Aposta, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.apostas[id]; ok {
		return a, nil
	}
	return nil, domain.ErrApostaNotFound
}

func (m *MockApostaRepository) List(ctx context.Context, limit, offset int) ([]*domain.Aposta, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var apostas []*domain.Aposta
	for _, a := range m.apostas {
		apostas = append(apostas, a)
	}
	return apostas, nil
}

func (m *MockApostaRepository) Update(ctx context.Context, tx usecase.Transaction, aposta *domain.Aposta) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, aposta)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.apostas[aposta.ID]; !ok {
		return domain.ErrApostaNotFound
	}
	m.apostas[aposta.ID] = aposta
	return nil
}

func (m *MockApostaRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.apostas[id]; !ok {
		return domain.ErrApostaNotFound
	}
	delete(m.apostas, id)
	return nil
}

func (m *MockApostaRepository) SumValorByUsuarioMes(ctx context.Context, usuarioID, mes string) (decimal.Decimal, error) {
	if m.SumValorByUsuarioMesFunc != nil {
		return m.SumValorByUsuarioMesFunc(ctx, usuarioID, mes)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, a := range m.apostas {
		if a.UsuarioID == usuarioID && a.MesAposta() == mes {
			sum = sum.Add(a.Valor)
		}
	}
	return sum, nil
}

func (m *MockApostaRepository) MediaValor(ctx context.Context) (decimal.Decimal, error) {
	if m.MediaValorFunc != nil {
		return m.MediaValorFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.apostas) == 0 {
		return decimal.Zero, nil
	}
	sum := decimal.Zero
	for _, a := range m.apostas {
		sum = sum.Add(a.Valor)
	}
	return sum.Div(decimal.NewFromInt(int64(len(m.apostas)))), nil
}

func (m *MockApostaRepository) ListAcimaDaMedia(ctx context.Context) ([]*domain.Aposta, error) {
	if m.ListAcimaDaMediaFunc != nil {
		return m.ListAcimaDaMediaFunc(ctx)
	}
	media, _ := m.MediaValor(ctx)
	m.mu.RLock()
	defer m.mu.RUnlock()
	var apostas []*domain.Aposta
	for _, a := range m.apostas {
		if a.Valor.GreaterThan(media) {
			apostas = append(apostas, a)
		}
	}
	return apostas, nil
}

// MockLimiteRepository is a mock implementation of LimiteRepository.
type MockLimiteRepository struct {
	mu      sync.RWMutex
	limites map[string]*domain.Limite

	CreateFunc                   func(ctx context.Context, limite *domain.Limite) error
	GetByIDFunc                  func(ctx context.Context, id string) (*domain.Limite, error)
	ListFunc                     func(ctx context.Context, limit, offset int) ([]*domain.Limite, error)
	UpdateFunc                   func(ctx context.Context, limite *domain.Limite) error
	DeleteFunc                   func(ctx context.Context, id string) error
	GetByUsuarioMesForUpdateFunc func(ctx context.Context, tx usecase.Transaction, usuarioID, mes string) (*domain.Limite, error)
	UpdateValorAtualFunc         func(ctx context.Context, tx usecase.Transaction, id string, valorAtual decimal.Decimal, updatedAt time.Time) error
}

func NewMockLimiteRepository() *MockLimiteRepository {
	return &MockLimiteRepository{
		limites: make(map[string]*domain.Limite),
	}
}

func (m *MockLimiteRepository) Create(ctx context.Context, limite *domain.Limite) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, limite)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.limites {
		if l.UsuarioID == limite.UsuarioID && l.MesReferencia == limite.MesReferencia {
			return domain.ErrLimiteJaCadastrado
		}
	}
	m.limites[limite.ID] = limite
	return nil
}

func (m *MockLimiteRepository) GetByID(ctx context.Context, id string) (*domain.Limite, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if l, ok := m.limites[id]; ok {
		return l, nil
	}
	return nil, domain.ErrLimiteNotFound
}

func (m *MockLimiteRepository) List(ctx context.Context, limit, offset int) ([]*domain.Limite, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var limites []*domain.Limite
	for _, l := range m.limites {
		limites = append(limites, l)
	}
	return limites, nil
}

func (m *MockLimiteRepository) Update(ctx context.Context, limite *domain.Limite) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, limite)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.limites[limite.ID]; !ok {
		return domain.ErrLimiteNotFound
	}
	m.limites[limite.ID] = limite
	return nil
}

func (m *MockLimiteRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.limites[id]; !ok {
		return domain.ErrLimiteNotFound
	}
	delete(m.limites, id)
	return nil
}

func (m *MockLimiteRepository) GetByUsuarioMesForUpdate(ctx context.Context, tx usecase.Transaction, usuarioID, mes string) (*domain.Limite, error) {
	if m.GetByUsuarioMesForUpdateFunc != nil {
		return m.GetByUsuarioMesForUpdateFunc(ctx, tx, usuarioID, mes)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, l := range m.limites {
		if l.UsuarioID == usuarioID && l.MesReferencia == mes {
			return l, nil
		}
	}
	return nil, nil
}

func (m *MockLimiteRepository) UpdateValorAtual(ctx context.Context, tx usecase.Transaction, id string, valorAtual decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateValorAtualFunc != nil {
		return m.UpdateValorAtualFunc(ctx, tx, id, valorAtual, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.limites[id]; ok {
		l.ValorAtual = valorAtual
		l.UpdatedAt = updatedAt
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string]string

	GetFunc func(ctx context.Context, key string) (string, error)
	SetFunc func(ctx context.Context, key, value string, ttl time.Duration) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]string),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("cache miss: %s", key)
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
