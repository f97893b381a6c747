// Package mocks holds gomock doubles of the cursor interfaces.
package mocks

import (
	"reflect"

	"github.com/golang/mock/gomock"
)

// MockCursor is a mock of the cursorkit.Cursor interface.
type MockCursor[Item any] struct {
	ctrl     *gomock.Controller
	recorder *MockCursorMockRecorder[Item]
}

// MockCursorMockRecorder is the mock recorder for MockCursor.
type MockCursorMockRecorder[Item any] struct {
	mock *MockCursor[Item]
}

// NewMockCursor creates a new mock instance.
func NewMockCursor[Item any](ctrl *gomock.Controller) *MockCursor[Item] {
	mock := &MockCursor[Item]{ctrl: ctrl}
	mock.recorder = &MockCursorMockRecorder[Item]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCursor[Item]) EXPECT() *MockCursorMockRecorder[Item] {
	return m.recorder
}

// Current mocks base method.
func (m *MockCursor[Item]) Current() (Item, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Current")
	ret0, _ := ret[0].(Item)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Current indicates an expected call of Current.
func (mr *MockCursorMockRecorder[Item]) Current() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Current", reflect.TypeOf((*MockCursor[Item])(nil).Current))
}

// Advance mocks base method.
func (m *MockCursor[Item]) Advance() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Advance")
}

// Advance indicates an expected call of Advance.
func (mr *MockCursorMockRecorder[Item]) Advance() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Advance", reflect.TypeOf((*MockCursor[Item])(nil).Advance))
}

// MockBiCursor is a mock of the cursorkit.BiCursor interface.
type MockBiCursor[Item any] struct {
	*MockCursor[Item]
	recorder *MockBiCursorMockRecorder[Item]
}

// MockBiCursorMockRecorder is the mock recorder for MockBiCursor.
type MockBiCursorMockRecorder[Item any] struct {
	*MockCursorMockRecorder[Item]
	mock *MockBiCursor[Item]
}

// NewMockBiCursor creates a new mock instance.
func NewMockBiCursor[Item any](ctrl *gomock.Controller) *MockBiCursor[Item] {
	mock := &MockBiCursor[Item]{MockCursor: NewMockCursor[Item](ctrl)}
	mock.recorder = &MockBiCursorMockRecorder[Item]{MockCursorMockRecorder: mock.MockCursor.recorder, mock: mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBiCursor[Item]) EXPECT() *MockBiCursorMockRecorder[Item] {
	return m.recorder
}

// SkipBack mocks base method.
func (m *MockBiCursor[Item]) SkipBack() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SkipBack")
}

// SkipBack indicates an expected call of SkipBack.
func (mr *MockBiCursorMockRecorder[Item]) SkipBack() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SkipBack", reflect.TypeOf((*MockBiCursor[Item])(nil).SkipBack))
}
