// Package mocks provides testify mocks for the note use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	notesDomain "github.com/allisson/securenotes/internal/notes/domain"
)

// MockNoteRepository is a mock implementation of usecase.NoteRepository.
type MockNoteRepository struct {
	mock.Mock
}

// NewMockNoteRepository creates a MockNoteRepository that asserts its expectations on cleanup.
func NewMockNoteRepository(t mock.TestingT) *MockNoteRepository {
	m := &MockNoteRepository{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockNoteRepository) Create(ctx context.Context, note *notesDomain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Get(ctx context.Context, id int64) (*notesDomain.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesDomain.Note), args.Error(1)
}

func (m *MockNoteRepository) GetForUpdate(ctx context.Context, id int64) (*notesDomain.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesDomain.Note), args.Error(1)
}

func (m *MockNoteRepository) List(ctx context.Context) ([]*notesDomain.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notesDomain.Note), args.Error(1)
}

func (m *MockNoteRepository) Update(ctx context.Context, note *notesDomain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNoteUseCase is a mock implementation of usecase.NoteUseCase.
type MockNoteUseCase struct {
	mock.Mock
}

// NewMockNoteUseCase creates a MockNoteUseCase that asserts its expectations on cleanup.
func NewMockNoteUseCase(t mock.TestingT) *MockNoteUseCase {
	m := &MockNoteUseCase{}
	m.Test(t)
	if c, ok := t.(interface{ Cleanup(func()) }); ok {
		c.Cleanup(func() { m.AssertExpectations(t) })
	}
	return m
}

func (m *MockNoteUseCase) Create(ctx context.Context, input *notesDomain.NoteInput) (*notesDomain.Note, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesDomain.Note), args.Error(1)
}

func (m *MockNoteUseCase) Get(ctx context.Context, id int64) (*notesDomain.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesDomain.Note), args.Error(1)
}

func (m *MockNoteUseCase) List(ctx context.Context) ([]*notesDomain.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notesDomain.Note), args.Error(1)
}

func (m *MockNoteUseCase) Update(
	ctx context.Context,
	id int64,
	input *notesDomain.NoteInput,
) (*notesDomain.Note, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notesDomain.Note), args.Error(1)
}

func (m *MockNoteUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
